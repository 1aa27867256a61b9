package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemory is a Store kept entirely in process memory. It backs tests and
// the interactive CLI flow, where nothing should outlive the process.
type InMemory struct {
	mu       sync.Mutex
	sessions map[string]bool
	records  map[string][]Record // sessionID/key → records, oldest first
	events   []LLMEvent
}

// NewInMemory creates an empty in-memory store.
func NewInMemory() *InMemory {
	return &InMemory{
		sessions: make(map[string]bool),
		records:  make(map[string][]Record),
	}
}

func (m *InMemory) StartSession(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.NewString()
	m.sessions[id] = true
	return id, nil
}

func (m *InMemory) Put(_ context.Context, sessionID, key, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := sessionID + "/" + key
	m.records[k] = append(m.records[k], Record{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Key:       key,
		Content:   content,
		At:        time.Now(),
	})
	return nil
}

func (m *InMemory) Get(_ context.Context, sessionID, key string, mostRecentN int) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := m.records[sessionID+"/"+key]

	// Newest first.
	out := make([]Record, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		out = append(out, stored[i])
		if mostRecentN > 0 && len(out) == mostRecentN {
			break
		}
	}
	return out, nil
}

func (m *InMemory) EndSession(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

// EventRepo returns an in-memory EventRepo.
func (m *InMemory) EventRepo() EventRepo {
	return &inMemEventRepo{store: m}
}

type inMemEventRepo struct {
	store *InMemory
}

func (r *inMemEventRepo) AppendLLMRequest(_ context.Context, data LLMRequestEventData) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.events = append(r.store.events, LLMEvent{
		ID:                  len(r.store.events) + 1,
		Timestamp:           time.Now(),
		LLMRequestEventData: data,
	})
	return nil
}

func (r *inMemEventRepo) QueryLLMEvents(_ context.Context, limit int) ([]LLMEvent, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []LLMEvent
	for i := len(r.store.events) - 1; i >= 0; i-- {
		out = append(out, r.store.events[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *inMemEventRepo) GetLLMEvent(_ context.Context, id int) (*LLMEvent, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if id < 1 || id > len(r.store.events) {
		return nil, nil
	}
	e := r.store.events[id-1]
	return &e, nil
}
