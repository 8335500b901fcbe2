package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

func newGame() *game.Game {
	return game.New(mapset.NewThreadUnsafeSet[string]("CRANE", "SLATE", "MANGO"), 6)
}

// TestMemory_SaveView verifies a saved session can be read back by ID.
func TestMemory_SaveView(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	g := newGame()
	require.NoError(t, st.Save(ctx, g))
	assert.Equal(t, 1, st.Len())

	var seen string
	require.NoError(t, st.View(ctx, g.ID, func(got *game.Game) error {
		seen = got.ID
		return nil
	}))
	assert.Equal(t, g.ID, seen)
}

// TestMemory_NotFound verifies unknown IDs report ErrNotFound.
func TestMemory_NotFound(t *testing.T) {
	err := NewMemoryStore().Update(context.Background(), "missing", func(*game.Game) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestMemory_UpdatePropagatesError verifies fn's error is returned unchanged.
func TestMemory_UpdatePropagatesError(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	g := newGame()
	require.NoError(t, st.Save(ctx, g))

	boom := errors.New("boom")
	err := st.Update(ctx, g.ID, func(*game.Game) error { return boom })
	assert.ErrorIs(t, err, boom)
}

// TestMemory_CanceledContext verifies a canceled context short-circuits.
func TestMemory_CanceledContext(t *testing.T) {
	st := NewMemoryStore()
	g := newGame()
	require.NoError(t, st.Save(context.Background(), g))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := st.View(ctx, g.ID, func(*game.Game) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

// TestMemory_Delete verifies deleted sessions are gone.
func TestMemory_Delete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	g := newGame()
	require.NoError(t, st.Save(ctx, g))
	require.NoError(t, st.Delete(ctx, g.ID))
	assert.Equal(t, 0, st.Len())
	assert.ErrorIs(t, st.View(ctx, g.ID, func(*game.Game) error { return nil }), ErrNotFound)
}

// TestMemory_ConcurrentRoundsSerialized verifies rounds on one session never interleave.
func TestMemory_ConcurrentRoundsSerialized(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	g := game.New(mapset.NewThreadUnsafeSet[string]("CRANE", "SLATE", "MANGO"), 100)
	require.NoError(t, st.Save(ctx, g))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = st.Update(ctx, g.ID, func(g *game.Game) error {
				_, err := g.Play("QQQQQ", []int{0, 0, 0, 0, 0})
				return err
			})
		}()
	}
	wg.Wait()

	require.NoError(t, st.View(ctx, g.ID, func(g *game.Game) error {
		assert.Equal(t, 20, g.Attempts)
		assert.Len(t, g.Rounds, 20)
		return nil
	}))
}
