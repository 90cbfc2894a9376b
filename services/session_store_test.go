package services

import (
	"context"
	"testing"
	"time"

	"github.com/Henry-L/hl-apps/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryEscapeSessionStore(t *testing.T) {
	store := NewMemoryEscapeSessionStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	now := time.Now()
	session := &models.EscapeSession{
		SessionID: "s1",
		Player:    1,
		Solved:    []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, store.Create(ctx, session))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Player)
	assert.Empty(t, got.Solved)

	require.NoError(t, store.SaveSolved(ctx, "s1", models.NewSolvedSet("p1-clock", "p1-safe")))
	got, err = store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1-clock", "p1-safe"}, got.Solved)

	// Reset writes an empty set over the saved progress
	require.NoError(t, store.SaveSolved(ctx, "s1", ResetProgress()))
	got, err = store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, got.Solved)

	assert.ErrorIs(t, store.SaveSolved(ctx, "missing", ResetProgress()), ErrSessionNotFound)
}

func TestSolvedSetStorageRoundTrip(t *testing.T) {
	solved := models.NewSolvedSet("b", "a", "c")
	assert.Equal(t, []string{"a", "b", "c"}, solved.IDs())

	restored := models.NewSolvedSet(solved.IDs()...)
	assert.True(t, restored.Has("a"))
	assert.True(t, restored.Has("b"))
	assert.True(t, restored.Has("c"))
	assert.False(t, restored.Has("d"))
}
