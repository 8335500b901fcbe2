// apps/go-solver/internal/history/store.go
//
// Ledger of finished solving sessions and the accounts they belong to.
// Only outcomes are written; a session can never be resumed from here.

package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// ErrUsernameTaken is returned when a username already exists (case-insensitive).
var ErrUsernameTaken = errors.New("username taken")

// Run is one finished session.
type Run struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId,omitempty"`
	State       string    `json:"state"`
	Attempts    int       `json:"attempts"`
	MaxAttempts int       `json:"maxAttempts"`
	Remaining   int       `json:"remaining"`
	Solution    string    `json:"solution,omitempty"`
	Guesses     string    `json:"guesses"` // "CRANE:01020 SLATE:00122"
	StartedAt   time.Time `json:"startedAt"`
	FinishedAt  time.Time `json:"finishedAt"`
}

// RunFromGame builds the ledger row for a finished game.
func RunFromGame(g *game.Game, userID string, finished time.Time) Run {
	parts := make([]string, 0, len(g.Rounds))
	for _, r := range g.Rounds {
		var fb strings.Builder
		for _, v := range r.Feedback {
			fb.WriteByte(byte('0' + v))
		}
		parts = append(parts, r.Word+":"+fb.String())
	}
	return Run{
		ID:          g.ID,
		UserID:      userID,
		State:       string(g.State),
		Attempts:    g.Attempts,
		MaxAttempts: g.MaxAttempts,
		Remaining:   g.Remaining(),
		Solution:    g.Solution,
		Guesses:     strings.Join(parts, " "),
		StartedAt:   g.Started.UTC(),
		FinishedAt:  finished.UTC(),
	}
}

// Stats summarizes finished runs.
type Stats struct {
	Runs        int     `json:"runs"`
	Solved      int     `json:"solved"`
	Exhausted   int     `json:"exhausted"`
	AvgAttempts float64 `json:"avgAttempts"` // over solved runs
}

// User is an account row.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Store wraps the ledger tables.
type Store struct{ db *sql.DB }

// NewStore returns a Store over an already migrated database.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

/**
 * RecordRun inserts a finished run.
 *
 * - Respects PRIMARY KEY(id): recording the same run twice is ignored.
 * - An empty UserID is stored as NULL (guest run).
 */
func (s *Store) RecordRun(ctx context.Context, r Run) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO runs
            (id, user_id, state, attempts, max_attempts, remaining, solution, guesses, started_at, finished_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, nullable(r.UserID), r.State, r.Attempts, r.MaxAttempts, r.Remaining, r.Solution, r.Guesses,
		r.StartedAt.UTC().Format(time.RFC3339), r.FinishedAt.UTC().Format(time.RFC3339),
	)
	return err
}

/**
 * RunsByUser fetches a user's most recent runs, newest first.
 * Default limit is 50 if not specified.
 */
func (s *Store) RunsByUser(ctx context.Context, userID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, COALESCE(user_id, ''), state, attempts, max_attempts, remaining, solution, guesses, started_at, finished_at
        FROM runs
        WHERE user_id=?
        ORDER BY finished_at DESC, id ASC
        LIMIT ?`, userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Run, 0, limit)
	for rows.Next() {
		var r Run
		var started, finished string
		if err := rows.Scan(&r.ID, &r.UserID, &r.State, &r.Attempts, &r.MaxAttempts, &r.Remaining,
			&r.Solution, &r.Guesses, &started, &finished); err != nil {
			return nil, err
		}
		r.StartedAt = parseTime(started)
		r.FinishedAt = parseTime(finished)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Stats summarizes runs for one user, or all runs when userID is empty.
func (s *Store) Stats(ctx context.Context, userID string) (Stats, error) {
	q := `SELECT COUNT(1),
                 COALESCE(SUM(state = 'solved'), 0),
                 COALESCE(SUM(state = 'exhausted'), 0),
                 COALESCE(AVG(CASE WHEN state = 'solved' THEN attempts END), 0)
          FROM runs`
	args := []any{}
	if userID != "" {
		q += ` WHERE user_id=?`
		args = append(args, userID)
	}
	var st Stats
	err := s.db.QueryRowContext(ctx, q, args...).Scan(&st.Runs, &st.Solved, &st.Exhausted, &st.AvgAttempts)
	return st, err
}

// CreateUser inserts a new account. The username must be unique ignoring case.
func (s *Store) CreateUser(ctx context.Context, u User) error {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM users WHERE username=?`, u.Username).Scan(&exists)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("check username: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO users (id, username, password_hash, created_at) VALUES (?,?,?,?)`,
		u.ID, u.Username, u.PasswordHash, u.CreatedAt.UTC().Format(time.RFC3339))
	return err
}

// UserByUsername loads an account by name (case-insensitive).
func (s *Store) UserByUsername(ctx context.Context, username string) (*User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, username, password_hash, created_at FROM users WHERE username=?`, username)
	return scanUser(row)
}

// UserByID loads an account by ID.
func (s *Store) UserByID(ctx context.Context, id string) (*User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, username, password_hash, created_at FROM users WHERE id=?`, id)
	return scanUser(row)
}

// scanUser converts a *sql.Row into a User.
func scanUser(row *sql.Row) (*User, error) {
	var u User
	var created string
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &created); err != nil {
		return nil, err
	}
	u.CreatedAt = parseTime(created)
	return &u, nil
}

// parseTime parses RFC3339 timestamps; on error returns zero time.
func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
