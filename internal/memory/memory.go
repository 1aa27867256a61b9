package memory

import (
	"context"
	"time"
)

// Record is a single entry in a session's working memory.
// Records are append-only: a key may accumulate many records over the
// session's lifetime, and readers ask for the N most recent.
type Record struct {
	ID        string
	SessionID string
	Key       string
	Content   string
	At        time.Time
}

// Store is the workflow's only persistence mechanism. All entries are
// scoped to a session id and live exactly as long as the session does.
type Store interface {
	// StartSession allocates a new session scope and returns its id.
	StartSession(ctx context.Context) (string, error)

	// Put appends a record under the given key. Existing records for the
	// same key are never overwritten.
	Put(ctx context.Context, sessionID, key, content string) error

	// Get returns up to mostRecentN records for the key, newest first.
	// An unknown session or key yields an empty slice, not an error.
	Get(ctx context.Context, sessionID, key string, mostRecentN int) ([]Record, error)

	// EndSession marks the session finished. Records are retained for
	// inspection until the database is reset.
	EndSession(ctx context.Context, sessionID string) error
}

// LLMRequestEventData captures a single LLM API call for the event log.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns up to limit events, newest first (0 = all).
	QueryLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error)

	// GetLLMEvent returns the event with the given id, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
}
