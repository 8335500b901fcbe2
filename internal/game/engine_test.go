package game

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

func fruitList() mapset.Set[string] {
	return mapset.NewThreadUnsafeSet[string]("APPLE", "GRAPE", "MANGO")
}

// TestNew_Defaults verifies a fresh game starts awaiting a guess with the full pool.
func TestNew_Defaults(t *testing.T) {
	g := New(fruitList(), 0)
	assert.NotEmpty(t, g.ID)
	assert.Equal(t, DefaultMaxAttempts, g.MaxAttempts)
	assert.Equal(t, StateAwaitingGuess, g.State)
	assert.Equal(t, []string{"APPLE", "GRAPE", "MANGO"}, g.Candidates())
	assert.NotEqual(t, g.ID, New(fruitList(), 0).ID)
}

// TestPlay_AllCorrectInList verifies an all-correct claim solves immediately.
func TestPlay_AllCorrectInList(t *testing.T) {
	g := New(fruitList(), 6)

	r, err := g.Play("mango", []int{2, 2, 2, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, StateSolved, r.State)
	assert.Equal(t, StateSolved, g.State)
	assert.Equal(t, "MANGO", g.Solution)
	assert.Equal(t, []string{"MANGO"}, g.Candidates())
	assert.Equal(t, 1, g.Attempts)

	_, err = g.Play("apple", []int{0, 0, 0, 0, 0})
	assert.ErrorIs(t, err, ErrGameOver)
}

// TestPlay_AllCorrectUnknownWord verifies the claim is rejected without side effects.
func TestPlay_AllCorrectUnknownWord(t *testing.T) {
	g := New(fruitList(), 6)

	_, err := g.Play("XXXXX", []int{2, 2, 2, 2, 2})
	assert.ErrorIs(t, err, ErrUnknownSolution)
	assert.Equal(t, 0, g.Attempts)
	assert.Equal(t, 3, g.Remaining())
	assert.Equal(t, StateAwaitingGuess, g.State)
	assert.Empty(t, g.Rounds)
}

// TestPlay_Malformed verifies malformed rounds are retried for free.
func TestPlay_Malformed(t *testing.T) {
	g := New(fruitList(), 6)

	_, err := g.Play("APP", []int{0, 0, 0, 0, 0})
	assert.ErrorIs(t, err, solver.ErrMalformedGuess)
	_, err = g.Play("APPLE", []int{0, 0, 7, 0, 0})
	assert.ErrorIs(t, err, solver.ErrMalformedGuess)

	assert.Equal(t, 0, g.Attempts)
	assert.Equal(t, 3, g.Remaining())
	assert.Equal(t, solver.NewConstraints().View(), g.Constraints().View())
}

// TestPlay_EmptyPoolContinues verifies an empty pool is reported but not terminal.
func TestPlay_EmptyPoolContinues(t *testing.T) {
	g := New(fruitList(), 6)

	r, err := g.Play("APPLE", []int{2, 1, 0, 0, 0})
	require.NoError(t, err)
	assert.True(t, r.Empty)
	assert.Equal(t, 0, r.Remaining)
	assert.Equal(t, StateAwaitingGuess, g.State)
	assert.NotContains(t, g.Candidates(), "APPLE")

	r, err = g.Play("GRAPE", []int{0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 2, r.Number)
}

// TestPlay_NarrowsToOne verifies filtering down to a single word solves the game.
func TestPlay_NarrowsToOne(t *testing.T) {
	g := New(mapset.NewThreadUnsafeSet[string]("CRANE", "TRACE", "CRATE"), 6)

	fb := solver.Score("TRACE", "CRATE")
	r, err := g.Play("CRATE", fb.Ints())
	require.NoError(t, err)
	assert.Equal(t, StateSolved, r.State)
	assert.Equal(t, "TRACE", g.Solution)
	assert.Equal(t, 1, r.Remaining)
}

// TestPlay_Exhausted verifies the attempt budget ends the game.
func TestPlay_Exhausted(t *testing.T) {
	list := mapset.NewThreadUnsafeSet[string]("CRANE", "TRACE", "CRATE", "SLATE", "MANGO")
	g := New(list, 2)

	r, err := g.Play("QQQQQ", []int{0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingGuess, r.State)

	r, err = g.Play("XXXXX", []int{0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, StateExhausted, r.State)
	assert.True(t, g.State.Finished())
	assert.Equal(t, 5, g.Remaining())

	_, err = g.Play("CRANE", []int{2, 2, 2, 2, 2})
	assert.ErrorIs(t, err, ErrGameOver)
	assert.Equal(t, 2, g.Attempts)
}

// TestPlay_PoolNeverGrows replays true feedback and checks the pool shrinks monotonically.
func TestPlay_PoolNeverGrows(t *testing.T) {
	list := mapset.NewThreadUnsafeSet[string](
		"CRANE", "TRACE", "CRATE", "SLATE", "MANGO", "GHOST", "STORM", "PLUMB", "BRINE", "PRICE",
	)
	g := New(list, 6)
	prev := g.Remaining()
	for _, guess := range []string{"SLOTH", "PUDGY", "EERIE"} {
		r, err := g.Play(guess, solver.Score("BRINE", guess).Ints())
		require.NoError(t, err)
		assert.LessOrEqual(t, r.Remaining, prev)
		assert.Contains(t, g.Candidates(), "BRINE")
		prev = r.Remaining
		if g.State.Finished() {
			break
		}
	}
	assert.Equal(t, 10, list.Cardinality(), "full list is never mutated")
}

// TestSnapshot_IsCopy verifies a snapshot reflects the game but does not alias it.
func TestSnapshot_IsCopy(t *testing.T) {
	g := New(fruitList(), 6)
	_, err := g.Play("GRAPE", []int{1, 0, 1, 0, 0})
	require.NoError(t, err)

	s := g.Snapshot()
	assert.Equal(t, g.ID, s.ID)
	assert.Equal(t, 1, s.Attempts)
	assert.Equal(t, []string{"MANGO"}, s.Candidates)
	assert.Equal(t, StateSolved, s.State)
	assert.Equal(t, []string{"A"}, s.Constraints.Excluded[3])
	assert.Equal(t, []string{"E", "P", "R"}, s.Constraints.Forbidden)
	require.Len(t, s.Rounds, 1)

	s.Rounds[0].Word = "ZZZZZ"
	s.Candidates[0] = "ZZZZZ"
	assert.Equal(t, "GRAPE", g.Rounds[0].Word)
	assert.Equal(t, []string{"MANGO"}, g.Candidates())
}
