// Package workflow owns the session state machine that drives a learner
// from goal capture through assessment to a generated learning path.
//
// Every operation follows the same explicit state-passing contract: load
// the full SessionData from the memory store, compute, persist the full
// SessionData back. There is no shared in-process session state; the last
// writer wins, which is acceptable for one learner submitting answers
// sequentially.
package workflow

import (
	"time"

	"github.com/learnloop/learnloop/internal/assessment"
)

// Phase is the session lifecycle phase. Transitions are forward-only:
// init → assessment → generating → completed.
type Phase string

const (
	PhaseInit       Phase = "init"
	PhaseAssessment Phase = "assessment"
	PhaseGenerating Phase = "generating"
	PhaseCompleted  Phase = "completed"
)

// LearningGoal is the immutable goal record captured at session start.
type LearningGoal struct {
	ID        string    `json:"id"`
	Goal      string    `json:"goal"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionData is the workflow's full state, persisted wholesale after
// each mutation.
//
// Invariant: len(Answers) == len(KnowledgeLevels) == CurrentQuestionIndex
// <= len(Questions).
type SessionData struct {
	SessionID            string                      `json:"sessionId"`
	Goal                 string                      `json:"goal"`
	CurrentQuestionIndex int                         `json:"currentQuestionIndex"`
	Questions            []assessment.Question       `json:"questions"`
	Answers              []assessment.Answer         `json:"answers"`
	KnowledgeLevels      []assessment.KnowledgeLevel `json:"knowledgeLevels"`
	Phase                Phase                       `json:"phase"`
}

// Progress reports how far through the battery the learner is.
type Progress struct {
	Current    int `json:"current"`
	Total      int `json:"total"`
	Percentage int `json:"percentage,omitempty"`
}

// Memory store keys for session artifacts.
const (
	keyGoal         = "goal"
	keySessionData  = "session_data"
	keyLearningPath = "learning_path"
)
