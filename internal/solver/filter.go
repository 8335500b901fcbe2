package solver

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// IsValid reports whether candidate satisfies every constraint in c.
// It never mutates c. Candidates that are not WordLen letters are never valid.
func IsValid(candidate string, c *Constraints) bool {
	w := strings.ToUpper(candidate)
	if len(w) != WordLen || !isUpperAlpha(w) {
		return false
	}

	for i := 0; i < WordLen; i++ {
		if c.Forbidden.Contains(w[i]) {
			return false
		}
	}

	counts := countLetters(w)
	for l, required := range c.MinCount {
		if counts[idx(l)] < required {
			return false
		}
	}
	for l, allowed := range c.MaxCount {
		if counts[idx(l)] > allowed {
			return false
		}
	}

	for pos, l := range c.Fixed {
		if w[pos] != l {
			return false
		}
	}
	for pos, letters := range c.Excluded {
		if letters.Contains(w[pos]) {
			return false
		}
	}
	return true
}

// Filter returns the members of pool that satisfy c.
// The pool itself is left untouched.
func Filter(pool mapset.Set[string], c *Constraints) mapset.Set[string] {
	out := mapset.NewThreadUnsafeSet[string]()
	pool.Each(func(w string) bool {
		if IsValid(w, c) {
			out.Add(w)
		}
		return false
	})
	return out
}
