package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromEnv_Defaults verifies defaults when nothing is set.
func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "MAX_ATTEMPTS", "WORDS_FILE", "NODE_ENV", "PUZZLE_COUNT"} {
		t.Setenv(k, "")
	}
	c := FromEnv()
	assert.Equal(t, "5175", c.Port)
	assert.Equal(t, 6, c.MaxAttempts)
	assert.Equal(t, "", c.WordsFile)
	assert.False(t, c.Production)
	assert.Equal(t, 1122, c.PuzzleCount)
}

// TestFromEnv_Overrides verifies environment values win and bad ints fall back.
func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MAX_ATTEMPTS", "8")
	t.Setenv("JWT_EXPIRES_DAYS", "not-a-number")
	t.Setenv("NODE_ENV", "production")

	c := FromEnv()
	assert.Equal(t, "9000", c.Port)
	assert.Equal(t, 8, c.MaxAttempts)
	assert.Equal(t, 14, c.JWTExpiresDays)
	assert.True(t, c.Production)
}

// TestLoad_DotEnv verifies a .env file is read when the variable is unset.
func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PUZZLE_SALT=from_dotenv\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("PUZZLE_SALT", "")
	require.NoError(t, os.Unsetenv("PUZZLE_SALT"))

	c := Load()
	assert.Equal(t, "from_dotenv", c.PuzzleSalt)
}
