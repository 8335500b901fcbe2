package history

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "data", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db))
	return db
}

// TestMigrate_Idempotent verifies migrations can run twice.
func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n))
	assert.Equal(t, 1, n)
}

// TestRunFromGame verifies a finished game maps onto a ledger row.
func TestRunFromGame(t *testing.T) {
	g := game.New(mapset.NewThreadUnsafeSet[string]("APPLE", "GRAPE", "MANGO"), 6)
	_, err := g.Play("GRAPE", []int{1, 0, 1, 0, 0})
	require.NoError(t, err)

	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	r := RunFromGame(g, "u1", now)
	assert.Equal(t, g.ID, r.ID)
	assert.Equal(t, "solved", r.State)
	assert.Equal(t, "MANGO", r.Solution)
	assert.Equal(t, "GRAPE:10100", r.Guesses)
	assert.Equal(t, 1, r.Attempts)
	assert.Equal(t, 1, r.Remaining)
	assert.Equal(t, now, r.FinishedAt)
}

// TestRecordRun_AndQuery verifies runs round-trip and stats aggregate.
func TestRecordRun_AndQuery(t *testing.T) {
	ctx := context.Background()
	st := NewStore(openTestDB(t))
	require.NoError(t, st.CreateUser(ctx, User{ID: "u1", Username: "alice", PasswordHash: "x", CreatedAt: time.Now()}))

	base := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	runs := []Run{
		{ID: "r1", UserID: "u1", State: "solved", Attempts: 3, MaxAttempts: 6, Remaining: 1, Solution: "MANGO", StartedAt: base, FinishedAt: base.Add(time.Minute)},
		{ID: "r2", UserID: "u1", State: "solved", Attempts: 5, MaxAttempts: 6, Remaining: 1, Solution: "CRANE", StartedAt: base, FinishedAt: base.Add(2 * time.Minute)},
		{ID: "r3", UserID: "u1", State: "exhausted", Attempts: 6, MaxAttempts: 6, Remaining: 4, StartedAt: base, FinishedAt: base.Add(3 * time.Minute)},
		{ID: "r4", State: "solved", Attempts: 2, MaxAttempts: 6, Remaining: 1, Solution: "SLATE", StartedAt: base, FinishedAt: base},
	}
	for _, r := range runs {
		require.NoError(t, st.RecordRun(ctx, r))
	}
	// duplicate insert is ignored
	require.NoError(t, st.RecordRun(ctx, runs[0]))

	mine, err := st.RunsByUser(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, "r3", mine[0].ID, "newest first")
	assert.Equal(t, "u1", mine[0].UserID)
	assert.Equal(t, base.Add(3*time.Minute), mine[0].FinishedAt)

	stats, err := st.Stats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, Stats{Runs: 3, Solved: 2, Exhausted: 1, AvgAttempts: 4}, stats)

	all, err := st.Stats(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 4, all.Runs)
	assert.Equal(t, 3, all.Solved)
}

// TestStats_Empty verifies an empty ledger reports zeros.
func TestStats_Empty(t *testing.T) {
	st := NewStore(openTestDB(t))
	stats, err := st.Stats(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)
}

// TestUsers verifies account creation and case-insensitive lookup.
func TestUsers(t *testing.T) {
	ctx := context.Background()
	st := NewStore(openTestDB(t))
	created := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	require.NoError(t, st.CreateUser(ctx, User{ID: "u1", Username: "Alice", PasswordHash: "h", CreatedAt: created}))
	err := st.CreateUser(ctx, User{ID: "u2", Username: "alice", PasswordHash: "h", CreatedAt: created})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	u, err := st.UserByUsername(ctx, "ALICE")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, created, u.CreatedAt)

	u, err = st.UserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Username)

	_, err = st.UserByID(ctx, "nope")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
