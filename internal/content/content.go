// Package content provides lookup of learning videos by topic keyword.
// The video corpus itself is an external concern: the core only depends on
// the Lookup interface, and the bundled Catalog is the default backend.
package content

import "context"

// Video is a single learning video. Videos come back from a Lookup
// verbatim; the core never mutates them.
type Video struct {
	ID           string   `json:"id" yaml:"id"`
	VideoID      string   `json:"videoId" yaml:"video_id"`
	Title        string   `json:"title" yaml:"title"`
	URL          string   `json:"url" yaml:"url"`
	Channel      string   `json:"channel" yaml:"channel"`
	Duration     string   `json:"duration" yaml:"duration"`
	ThumbnailURL string   `json:"thumbnailUrl" yaml:"thumbnail_url"`
	Topics       []string `json:"topics" yaml:"topics"`
}

// Lookup finds videos for a topic keyword. Implementations perform fuzzy
// substring matching and are safe to call with arbitrary kebab-case tags.
type Lookup interface {
	SearchByTopic(ctx context.Context, keyword string) ([]Video, error)
}
