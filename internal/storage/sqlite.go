// Package storage provides SQLite-based persistence for the high score
// leaderboard. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Capacity is the number of entries the leaderboard retains. Submitting a
// score below the current tenth place when the board is full is a no-op.
const Capacity = 10

// MaxNameLen is the longest accepted player name, in runes.
const MaxNameLen = 15

// ErrInvalidName is returned when the submitted player name is empty or
// longer than MaxNameLen runes.
var ErrInvalidName = errors.New("storage: invalid player name")

// Store manages the SQLite database connection for the leaderboard.
type Store struct {
	db *sql.DB
}

// Entry is a single leaderboard record.
type Entry struct {
	ID        int64
	Name      string
	Score     int
	Rounds    int // Rounds completed in the recorded session
	CreatedAt time.Time
}

// Open creates or opens the leaderboard database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			rounds INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_high_scores_top ON high_scores(score DESC, id ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// validateName enforces the leaderboard's name rules.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLen {
		return fmt.Errorf("%w: %d runes, max %d", ErrInvalidName, n, MaxNameLen)
	}
	return nil
}

// Submit records a score under the given name, keeping only the top entries.
// Ties break toward the earlier submission. A score that does not make the
// board is silently dropped; an invalid name returns ErrInvalidName.
func (s *Store) Submit(name string, score, rounds int) error {
	if err := validateName(name); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	// A full board with a better-or-equal tenth place leaves no room:
	// earlier entries win ties.
	var count, minScore int
	err = tx.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(score), 0) FROM (
			SELECT score FROM high_scores ORDER BY score DESC, id ASC LIMIT ?
		)`, Capacity,
	).Scan(&count, &minScore)
	if err != nil {
		return fmt.Errorf("storage: cannot inspect leaderboard: %w", err)
	}
	if count >= Capacity && score <= minScore {
		return nil
	}

	if _, err := tx.Exec(
		"INSERT INTO high_scores (name, score, rounds) VALUES (?, ?, ?)",
		name, score, rounds,
	); err != nil {
		return fmt.Errorf("storage: cannot insert score: %w", err)
	}

	// Trim everything below the cut line.
	if _, err := tx.Exec(
		`DELETE FROM high_scores WHERE id NOT IN (
			SELECT id FROM high_scores ORDER BY score DESC, id ASC LIMIT ?
		)`, Capacity,
	); err != nil {
		return fmt.Errorf("storage: cannot trim leaderboard: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit score: %w", err)
	}
	return nil
}

// Qualifies reports whether a score would make the leaderboard if submitted
// now. Zero and negative scores never qualify.
func (s *Store) Qualifies(score int) (bool, error) {
	if score <= 0 {
		return false, nil
	}

	var count, minScore int
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(score), 0) FROM (
			SELECT score FROM high_scores ORDER BY score DESC, id ASC LIMIT ?
		)`, Capacity,
	).Scan(&count, &minScore)
	if err != nil {
		return false, fmt.Errorf("storage: cannot inspect leaderboard: %w", err)
	}

	return count < Capacity || score > minScore, nil
}

// Top retrieves the leaderboard in rank order: score descending, earlier
// submissions first among ties.
func (s *Store) Top(limit int) ([]Entry, error) {
	if limit <= 0 || limit > Capacity {
		limit = Capacity
	}

	rows, err := s.db.Query(
		`SELECT id, name, score, rounds, created_at
		 FROM high_scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &e.Rounds, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the best recorded score, or 0 when the board is empty.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM high_scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Clear deletes every leaderboard entry.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM high_scores"); err != nil {
		return fmt.Errorf("storage: cannot clear leaderboard: %w", err)
	}
	return nil
}
