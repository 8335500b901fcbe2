// internal/solver/types.go
//
// Core type definitions for the Katla solver.
// Defines:
//   - Status: per-letter feedback signal (absent/present/correct).
//   - Feedback: five statuses aligned with a guessed word.
//   - Guess: a validated (word, feedback) pair, the only input the Update rule accepts.
//
// Words are plain uppercase strings of WordLen ASCII letters.

package solver

import (
	"errors"
	"fmt"
	"strings"
)

// WordLen is the only supported word length.
const WordLen = 5

// Status is the feedback signal for a single letter of a guess.
// The integer values match the digits players type (0/1/2).
type Status int

const (
	Absent  Status = 0 // letter not in the solution (gray)
	Present Status = 1 // letter in the solution, different position (yellow)
	Correct Status = 2 // letter in the solution at this position (green)
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// positive reports whether s confirms the letter is in the solution.
func (s Status) positive() bool { return s == Present || s == Correct }

// Feedback holds one Status per position of the guessed word.
type Feedback [WordLen]Status

// AllCorrect reports whether every position is Correct.
func (f Feedback) AllCorrect() bool {
	for _, s := range f {
		if s != Correct {
			return false
		}
	}
	return true
}

// Ints returns the feedback as 0/1/2 digits.
func (f Feedback) Ints() []int {
	out := make([]int, WordLen)
	for i, s := range f {
		out[i] = int(s)
	}
	return out
}

// String renders the feedback as a digit string, e.g. "21000".
func (f Feedback) String() string {
	var b strings.Builder
	for _, s := range f {
		b.WriteByte(byte('0' + s))
	}
	return b.String()
}

// ErrMalformedGuess is returned when a word or feedback vector fails validation.
var ErrMalformedGuess = errors.New("malformed guess")

// Guess is a validated guess word with its feedback.
type Guess struct {
	Word     string
	Feedback Feedback
}

// NewGuess validates a word and its statuses and returns a Guess.
// The word is trimmed and uppercased; it must be WordLen letters A–Z,
// and statuses must hold WordLen values in {0,1,2}.
func NewGuess(word string, statuses []int) (Guess, error) {
	w, err := NormalizeWord(word)
	if err != nil {
		return Guess{}, err
	}
	if len(statuses) != WordLen {
		return Guess{}, fmt.Errorf("%w: feedback must have %d values, got %d", ErrMalformedGuess, WordLen, len(statuses))
	}
	var fb Feedback
	for i, v := range statuses {
		if v < int(Absent) || v > int(Correct) {
			return Guess{}, fmt.Errorf("%w: feedback value %d at position %d", ErrMalformedGuess, v, i+1)
		}
		fb[i] = Status(v)
	}
	return Guess{Word: w, Feedback: fb}, nil
}

// ParseGuess is NewGuess for a digit string such as "21000".
func ParseGuess(word, digits string) (Guess, error) {
	digits = strings.TrimSpace(digits)
	statuses := make([]int, 0, len(digits))
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Guess{}, fmt.Errorf("%w: feedback %q is not all digits", ErrMalformedGuess, digits)
		}
		statuses = append(statuses, int(r-'0'))
	}
	return NewGuess(word, statuses)
}

// NormalizeWord trims and uppercases w and checks it is WordLen letters A–Z.
func NormalizeWord(w string) (string, error) {
	w = strings.ToUpper(strings.TrimSpace(w))
	if len(w) != WordLen {
		return "", fmt.Errorf("%w: word %q must be %d letters", ErrMalformedGuess, w, WordLen)
	}
	if !isUpperAlpha(w) {
		return "", fmt.Errorf("%w: word %q must contain only letters A-Z", ErrMalformedGuess, w)
	}
	return w, nil
}

// isUpperAlpha reports whether s is all uppercase ASCII letters.
func isUpperAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// countLetters returns the occurrence count of each letter in w.
func countLetters(w string) [26]int {
	var counts [26]int
	for i := 0; i < len(w); i++ {
		counts[idx(w[i])]++
	}
	return counts
}

// idx maps an uppercase ASCII letter to 0..25.
// Assumes inputs are validated to A–Z elsewhere.
func idx(c byte) int { return int(c - 'A') }
