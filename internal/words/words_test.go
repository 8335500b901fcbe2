package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromReader_Normalizes verifies trimming, uppercasing, filtering and dedup.
func TestFromReader_Normalizes(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"# comment",
		"apple",
		"  Grape  ",
		"APPLE",
		"",
		"kiwi",
		"bananas",
		"m4ngo",
		"mango",
	}, "\n"))

	set, err := FromReader(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"APPLE", "GRAPE", "MANGO"}, Sorted(set))
}

// TestFromReader_Empty verifies a list with no qualifying words is an error.
func TestFromReader_Empty(t *testing.T) {
	_, err := FromReader(strings.NewReader("kiwi\nbananas\n"))
	assert.ErrorIs(t, err, ErrEmpty)
}

// TestLoad reads a list from disk.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")
	require.NoError(t, os.WriteFile(path, []byte("crane\nslate\n"), 0o644))

	set, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Cardinality())
	assert.True(t, set.Contains("CRANE", "SLATE"))

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

// TestResolve_Embedded verifies the default list is used when no path is set.
func TestResolve_Embedded(t *testing.T) {
	set, err := Resolve("")
	require.NoError(t, err)
	assert.Greater(t, set.Cardinality(), 100)
	assert.True(t, set.Contains("APPLE", "GRAPE", "MANGO"))
	for _, w := range set.ToSlice() {
		assert.Len(t, w, 5)
		assert.Equal(t, strings.ToUpper(w), w)
	}
}
