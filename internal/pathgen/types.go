// Package pathgen assembles ordered, video-backed learning paths from a
// goal, an overall knowledge level, and a gap list.
package pathgen

import (
	"time"

	"github.com/learnloop/learnloop/internal/content"
)

// MaxVideosPerModule caps how many videos a module carries.
const MaxVideosPerModule = 3

// Module is one step of a learning path.
type Module struct {
	ID          string          `json:"id"`
	Order       int             `json:"order"`
	Topic       string          `json:"topic"`
	Explanation string          `json:"explanation"`
	Videos      []content.Video `json:"videos"`
}

// LearningPath is the final artifact of a session. Created exactly once
// when generation completes; immutable thereafter.
type LearningPath struct {
	ID             string    `json:"id"`
	SessionID      string    `json:"sessionId"`
	Goal           string    `json:"goal"`
	KnowledgeLevel string    `json:"knowledgeLevel"`
	Modules        []Module  `json:"modules"`
	TotalVideos    int       `json:"totalVideos"`
	CreatedAt      time.Time `json:"createdAt"`
}
