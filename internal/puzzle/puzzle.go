// apps/go-solver/internal/puzzle/puzzle.go
//
// Archive puzzle picker.
// The game publishes numbered archive puzzles at <base>/<n>; the solver can
// point a player at one to practice on.
//   - Number: deterministic per date, HMAC(salt, YYYY-MM-DD) mod count, 1-based.
//   - Random: uniformly random in [1, count] from crypto/rand.
//   - URL:    joins the base URL and the number.

package puzzle

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the archive location used when none is configured.
const DefaultBaseURL = "https://katla.id/arsip"

// DefaultCount is the number of archive puzzles assumed when none is configured.
const DefaultCount = 1122

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Number returns the archive puzzle for date, in [1, count].
// count <= 0 returns 1.
func Number(date time.Time, salt string, count int) int {
	if count <= 0 {
		return 1
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n%uint64(count)) + 1
}

// Random returns a uniformly random archive puzzle in [1, count].
func Random(count int) int {
	if count <= 0 {
		return 1
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(count)))
	if err != nil {
		return 1
	}
	return int(n.Int64()) + 1
}

// URL returns the archive page for puzzle n.
func URL(base string, n int) string {
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimRight(base, "/") + "/" + strconv.Itoa(n)
}
