package memory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLite_ReopenPersistsRecords(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "learnloop.db")
	ctx := context.Background()

	s, err := Open(dbPath)
	require.NoError(t, err)

	sid, err := s.StartSession(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, sid, "goal", "learn vercel"))
	require.NoError(t, s.Close())

	s, err = Open(dbPath)
	require.NoError(t, err)
	defer s.Close()

	records, err := s.Get(ctx, sid, "goal", 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "learn vercel", records[0].Content)
	assert.Equal(t, sid, records[0].SessionID)
	assert.False(t, records[0].At.IsZero())
}

func TestSQLite_EventIDsIncrement(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "learnloop.db"))
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	repo := s.EventRepo()

	for range 3 {
		require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: "question-gen", Success: true,
		}))
	}

	events, err := repo.QueryLLMEvents(ctx, 0)
	require.NoError(t, err)
	require.Len(t, events, 3)
	// Newest first, ids strictly decreasing.
	assert.Greater(t, events[0].ID, events[1].ID)
	assert.Greater(t, events[1].ID, events[2].ID)
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "nested", "dir", "custom.db")
	t.Setenv("LEARNLOOP_DB", custom)

	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, custom, p)
	// The parent directory is created as a side effect.
	assert.DirExists(t, filepath.Dir(p))
}

func TestDefaultDBPath_XDGDataHome(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("LEARNLOOP_DB", "")
	t.Setenv("XDG_DATA_HOME", dataHome)

	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, "learnloop", "learnloop.db"), p)
}
