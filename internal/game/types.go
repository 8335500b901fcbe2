// apps/go-solver/internal/game/types.go
//
// Core type definitions for a solving session.
// Defines:
//   - State: where the session is in its round loop.
//   - Round: the outcome of one accepted guess.
//   - Game: state for a single in-progress or finished session.
//   - Snapshot: read-only view of a session for display.

package game

import (
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// State is the session's position in the round loop.
type State string

const (
	StateAwaitingGuess State = "awaiting_guess"
	StateEvaluating    State = "evaluating"
	StateSolved        State = "solved"
	StateExhausted     State = "exhausted"
)

// Finished reports whether no further rounds are accepted.
func (s State) Finished() bool { return s == StateSolved || s == StateExhausted }

// Round is the result of one accepted guess.
// Empty is set when filtering left no candidates; the game still continues.
type Round struct {
	Number    int    `json:"number"`
	Word      string `json:"word"`
	Feedback  []int  `json:"feedback"`
	Remaining int    `json:"remaining"`
	Empty     bool   `json:"empty"`
	State     State  `json:"state"`
}

// Game holds the state of a single solving session.
type Game struct {
	ID          string    // Unique session identifier.
	MaxAttempts int       // Attempt budget (typically 6).
	Attempts    int       // Accepted rounds so far.
	State       State     // Current state.
	Solution    string    // Set once the session is solved.
	Rounds      []Round   // Accepted rounds, oldest first.
	Started     time.Time // Creation time (UTC).

	words       mapset.Set[string]  // full word list, never mutated
	pool        mapset.Set[string]  // remaining candidates
	constraints *solver.Constraints // everything learned so far
}

// Snapshot is a read-only copy of a session for reporting.
type Snapshot struct {
	ID          string      `json:"id"`
	State       State       `json:"state"`
	Attempts    int         `json:"attempts"`
	MaxAttempts int         `json:"maxAttempts"`
	Solution    string      `json:"solution,omitempty"`
	Remaining   int         `json:"remaining"`
	Candidates  []string    `json:"candidates"`
	Constraints solver.View `json:"constraints"`
	Rounds      []Round     `json:"rounds"`
}
