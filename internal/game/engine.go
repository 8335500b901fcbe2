// apps/go-solver/internal/game/engine.go
//
// Session driver for one solving game.
// Responsibilities:
//   - Create sessions over a word list with an attempt budget (default 6).
//   - Validate rounds before touching any state (malformed input is retried
//     without consuming an attempt).
//   - Handle the all-correct claim by direct membership in the full list.
//   - Otherwise fold the guess into the constraints and re-filter the pool.
//   - Track state transitions: awaiting_guess → solved/exhausted.
//
// Notes:
//   - A Game is owned by one caller at a time and does no locking.
//   - An empty pool is reported on the Round, it does not end the game.

package game

import (
	"errors"
	"fmt"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// DefaultMaxAttempts is the attempt budget used when none is given.
const DefaultMaxAttempts = 6

var (
	// ErrUnknownSolution is returned for an all-correct claim on a word outside the list.
	ErrUnknownSolution = errors.New("solution not in word list")
	// ErrGameOver is returned for rounds submitted after the game finished.
	ErrGameOver = errors.New("game finished")
)

// New constructs a session over list. The list is shared read-only;
// the candidate pool starts as a copy of it.
// maxAttempts <= 0 selects DefaultMaxAttempts.
func New(list mapset.Set[string], maxAttempts int) *Game {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Game{
		ID:          uuid.NewString(),
		MaxAttempts: maxAttempts,
		State:       StateAwaitingGuess,
		Rounds:      []Round{},
		Started:     time.Now().UTC(),
		words:       list,
		pool:        list.Clone(),
		constraints: solver.NewConstraints(),
	}
}

// Play validates and applies one round.
//
// Errors (the game is left unchanged and no attempt is used):
//   - ErrGameOver if the game already finished.
//   - solver.ErrMalformedGuess for bad word/feedback input.
//   - ErrUnknownSolution for an all-correct claim on a word outside the list.
func (g *Game) Play(word string, statuses []int) (Round, error) {
	if g.State.Finished() {
		return Round{}, ErrGameOver
	}
	guess, err := solver.NewGuess(word, statuses)
	if err != nil {
		return Round{}, err
	}
	return g.Apply(guess)
}

// Apply runs one round for an already validated guess.
func (g *Game) Apply(guess solver.Guess) (Round, error) {
	if g.State.Finished() {
		return Round{}, ErrGameOver
	}

	// The all-correct claim bypasses the filter and checks the full list.
	if guess.Feedback.AllCorrect() {
		if !g.words.Contains(guess.Word) {
			return Round{}, fmt.Errorf("%w: %s", ErrUnknownSolution, guess.Word)
		}
		g.pool = mapset.NewThreadUnsafeSet[string](guess.Word)
		g.Solution = guess.Word
		return g.finishRound(guess, StateSolved), nil
	}

	g.State = StateEvaluating
	g.constraints.Update(guess)
	g.pool = solver.Filter(g.pool, g.constraints)

	next := StateAwaitingGuess
	switch {
	case g.pool.Cardinality() == 1:
		next = StateSolved
		g.Solution = g.pool.ToSlice()[0]
	case g.Attempts+1 >= g.MaxAttempts:
		next = StateExhausted
	}
	return g.finishRound(guess, next), nil
}

// finishRound consumes an attempt, records the round, and moves to next.
func (g *Game) finishRound(guess solver.Guess, next State) Round {
	g.Attempts++
	g.State = next
	r := Round{
		Number:    g.Attempts,
		Word:      guess.Word,
		Feedback:  guess.Feedback.Ints(),
		Remaining: g.pool.Cardinality(),
		Empty:     g.pool.Cardinality() == 0,
		State:     next,
	}
	g.Rounds = append(g.Rounds, r)
	return r
}

// Remaining returns the number of candidates left.
func (g *Game) Remaining() int { return g.pool.Cardinality() }

// Candidates returns the remaining candidates in alphabetical order.
func (g *Game) Candidates() []string { return words.Sorted(g.pool) }

// Constraints returns a copy of everything learned so far.
func (g *Game) Constraints() *solver.Constraints { return g.constraints.Clone() }

// Snapshot returns a read-only copy of the session.
func (g *Game) Snapshot() Snapshot {
	rounds := make([]Round, len(g.Rounds))
	copy(rounds, g.Rounds)
	return Snapshot{
		ID:          g.ID,
		State:       g.State,
		Attempts:    g.Attempts,
		MaxAttempts: g.MaxAttempts,
		Solution:    g.Solution,
		Remaining:   g.pool.Cardinality(),
		Candidates:  g.Candidates(),
		Constraints: g.constraints.View(),
		Rounds:      rounds,
	}
}
