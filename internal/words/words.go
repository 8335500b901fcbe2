// internal/words/words.go
//
// Word list source for the solver.
//
// Responsibilities:
//   - Read a word list from a file or fall back to the embedded default.
//   - Normalize every entry to uppercase and keep only 5-letter A–Z words.
//   - Collapse duplicates by returning a set.
//
// Input format:
//   - One word per line. Surrounding whitespace is trimmed.
//   - Blank lines and lines starting with '#' are skipped.
//   - Lines that are not exactly 5 letters are ignored, not rejected.
//
// Environment variables (resolved by internal/config):
//   WORDS_FILE=/path/to/wordlist.txt

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// ErrEmpty is returned when a source yields no qualifying words.
var ErrEmpty = errors.New("words: list is empty")

// FromReader reads qualifying words from r.
func FromReader(r io.Reader) (mapset.Set[string], error) {
	out := mapset.NewThreadUnsafeSet[string]()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if w, err := solver.NormalizeWord(line); err == nil {
			out.Add(w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if out.Cardinality() == 0 {
		return nil, ErrEmpty
	}
	return out, nil
}

// Load reads a word list file.
func Load(path string) (mapset.Set[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	set, err := FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return set, nil
}

// Embedded reads the default list compiled into the binary.
func Embedded() (mapset.Set[string], error) {
	f, err := assets.OpenDefault()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromReader(f)
}

// Resolve loads path if set, otherwise the embedded default.
func Resolve(path string) (mapset.Set[string], error) {
	if path == "" {
		set, err := Embedded()
		if err == nil {
			log.Debug().Int("words", set.Cardinality()).Msg("loaded embedded word list")
		}
		return set, err
	}
	set, err := Load(path)
	if err == nil {
		log.Debug().Str("path", path).Int("words", set.Cardinality()).Msg("loaded word list")
	}
	return set, err
}

// Sorted returns the members of set in alphabetical order.
func Sorted(set mapset.Set[string]) []string {
	out := set.ToSlice()
	sort.Strings(out)
	return out
}
