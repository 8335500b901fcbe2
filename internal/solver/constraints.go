// internal/solver/constraints.go
//
// Constraint store for a single solving session.
// Responsibilities:
//   - Accumulate everything learned from feedback (forbidden letters, min/max
//     letter counts, fixed positions, excluded positions).
//   - Fold one validated Guess into the store (Update).
//   - Expose a read-only, JSON-friendly view for reporting.
//
// Notes:
//   - The store is owned by its caller and mutated only by Update; it is never
//     rolled back.
//   - MaxCount is last-writer-wins, not a monotonic bound: a later guess whose
//     letter is fully confirmed with a smaller count lowers an earlier cap.

package solver

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// Constraints is everything inferred from feedback so far.
// Letters are uppercase ASCII bytes, positions are 0..WordLen-1.
type Constraints struct {
	Forbidden mapset.Set[byte]         // letters that must not appear anywhere
	MinCount  map[byte]int             // minimum occurrences per letter
	MaxCount  map[byte]int             // maximum occurrences per letter
	Fixed     map[int]byte             // letter required at a position
	Excluded  map[int]mapset.Set[byte] // letters forbidden at a position
}

// NewConstraints returns an empty store.
func NewConstraints() *Constraints {
	return &Constraints{
		Forbidden: mapset.NewThreadUnsafeSet[byte](),
		MinCount:  make(map[byte]int),
		MaxCount:  make(map[byte]int),
		Fixed:     make(map[int]byte),
		Excluded:  make(map[int]mapset.Set[byte]),
	}
}

// Update folds a guess and its feedback into the store.
//
// Pass 1 derives letter frequencies from the whole guess and updates MinCount
// and MaxCount. Pass 2 walks the positions. The ABSENT branch of pass 2 must
// see the MinCount written by pass 1, so a letter that is absent at one
// position but present at another in the same guess is not banned.
func (c *Constraints) Update(g Guess) {
	positive := make(map[byte]int, WordLen)
	total := make(map[byte]int, WordLen)
	for i := 0; i < WordLen; i++ {
		l := g.Word[i]
		total[l]++
		if g.Feedback[i].positive() {
			positive[l]++
		}
	}

	// Pass 1a: minimum counts only ever grow.
	for l, n := range positive {
		if n > c.MinCount[l] {
			c.MinCount[l] = n
		}
		c.Forbidden.Remove(l)
	}

	// Pass 1b: maximum counts are overwritten from this guess alone.
	for l, n := range total {
		if p := positive[l]; p < n {
			c.MaxCount[l] = p
		} else {
			c.MaxCount[l] = n
		}
	}

	// Pass 2: positional statuses.
	for pos := 0; pos < WordLen; pos++ {
		l := g.Word[pos]
		switch g.Feedback[pos] {
		case Correct:
			c.Fixed[pos] = l
		case Present:
			set, ok := c.Excluded[pos]
			if !ok {
				set = mapset.NewThreadUnsafeSet[byte]()
				c.Excluded[pos] = set
			}
			set.Add(l)
		case Absent:
			if c.MinCount[l] < 1 {
				c.Forbidden.Add(l)
			}
		}
	}
}

// Clone returns a deep copy of the store.
func (c *Constraints) Clone() *Constraints {
	out := &Constraints{
		Forbidden: c.Forbidden.Clone(),
		MinCount:  make(map[byte]int, len(c.MinCount)),
		MaxCount:  make(map[byte]int, len(c.MaxCount)),
		Fixed:     make(map[int]byte, len(c.Fixed)),
		Excluded:  make(map[int]mapset.Set[byte], len(c.Excluded)),
	}
	for l, n := range c.MinCount {
		out.MinCount[l] = n
	}
	for l, n := range c.MaxCount {
		out.MaxCount[l] = n
	}
	for pos, l := range c.Fixed {
		out.Fixed[pos] = l
	}
	for pos, set := range c.Excluded {
		out.Excluded[pos] = set.Clone()
	}
	return out
}

// View is a display form of Constraints with string letters and sorted slices.
// Positions are 1-based to match what players see.
type View struct {
	Forbidden []string         `json:"forbidden"`
	MinCount  map[string]int   `json:"minCount"`
	MaxCount  map[string]int   `json:"maxCount"`
	Fixed     map[int]string   `json:"fixed"`
	Excluded  map[int][]string `json:"excluded"`
}

// View renders the store for reporting.
func (c *Constraints) View() View {
	v := View{
		Forbidden: sortedLetters(c.Forbidden),
		MinCount:  make(map[string]int, len(c.MinCount)),
		MaxCount:  make(map[string]int, len(c.MaxCount)),
		Fixed:     make(map[int]string, len(c.Fixed)),
		Excluded:  make(map[int][]string, len(c.Excluded)),
	}
	for l, n := range c.MinCount {
		v.MinCount[string(l)] = n
	}
	for l, n := range c.MaxCount {
		v.MaxCount[string(l)] = n
	}
	for pos, l := range c.Fixed {
		v.Fixed[pos+1] = string(l)
	}
	for pos, set := range c.Excluded {
		v.Excluded[pos+1] = sortedLetters(set)
	}
	return v
}

func sortedLetters(set mapset.Set[byte]) []string {
	out := make([]string, 0, set.Cardinality())
	for _, l := range set.ToSlice() {
		out = append(out, string(l))
	}
	sort.Strings(out)
	return out
}
