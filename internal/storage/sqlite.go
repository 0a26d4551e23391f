// Package storage provides SQLite-based persistence for the runner: a small
// key-value table (best score lives there) and a history of finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry represents one finished run.
type RunEntry struct {
	ID        int64
	Score     int
	Best      int // Best score after this run
	Duration  time.Duration
	CreatedAt time.Time
}

// Stats contains aggregated statistics over all recorded runs.
type Stats struct {
	Runs       int
	HighScore  int
	AvgScore   float64
	TotalTime  time.Duration
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandHome(dbPath)
	if err != nil {
		return nil, err
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

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			best INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
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

// Get returns the value stored under key. The bool is false when the key is
// absent.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete %q: %w", key, err)
	}
	return nil
}

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(score, best int, duration time.Duration) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (score, best, duration_ms) VALUES (?, ?, ?)",
		score, best, duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns retrieves the N highest scoring runs, best first.
func (s *Store) TopRuns(limit int) ([]RunEntry, error) {
	return s.queryRuns(
		`SELECT id, score, best, duration_ms, created_at FROM runs
		 ORDER BY score DESC, id ASC LIMIT ?`, limit)
}

// RecentRuns retrieves the N most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	return s.queryRuns(
		`SELECT id, score, best, duration_ms, created_at FROM runs
		 ORDER BY id DESC LIMIT ?`, limit)
}

func (s *Store) queryRuns(query string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Score, &e.Best, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// GetStats retrieves aggregated statistics over all runs.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}
	var totalMS int64
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(duration_ms), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &totalMS, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.TotalTime = time.Duration(totalMS) * time.Millisecond
	stats.LastPlayed = parseTimestamp(lastPlayed)
	return stats, nil
}

// ClearRuns deletes the run history.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTimestamp handles both time.Time and the string form sqlite returns.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
