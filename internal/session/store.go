// Package session provides SQLite-based run history for datalint. Every
// validation run is recorded in ~/.local/share/datalint/datalint.db so
// the status command can show what was checked and when.
package session

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Run is one recorded validation run.
type Run struct {
	ID            string    `json:"id"`
	SourceFile    string    `json:"source_file"`
	RulesFile     string    `json:"rules_file"`
	OutputFile    string    `json:"output_file"`
	TotalErrors   int       `json:"total_errors"`
	TotalWarnings int       `json:"total_warnings"`
	TotalPassed   int       `json:"total_passed"`
	CreatedAt     time.Time `json:"created_at"`
}

// Store wraps an SQLite database holding the run history.
type Store struct {
	conn *sql.DB
	path string
	mu   sync.RWMutex
}

// DefaultPath returns the path of the per-user run history database.
func DefaultPath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, _ := os.UserHomeDir()
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "datalint", "datalint.db")
}

// Open opens the run history database at the given path, creating parent
// directories as needed. WAL mode is enabled for concurrent reads.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	return &Store{conn: conn, path: path}, nil
}

// OpenDefault opens the per-user run history database.
func OpenDefault() (*Store, error) {
	return Open(DefaultPath())
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.Close()
}

// Path returns the path to the database file.
func (s *Store) Path() string {
	return s.path
}

// Migrate applies all pending schema migrations.
func (s *Store) Migrate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_version table: %w", err)
	}

	var currentVersion int
	row := s.conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("get schema version: %w", err)
	}

	migrations := []struct {
		version int
		sql     string
	}{
		{1, migrationV1Runs},
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}

		tx, err := s.conn.Begin()
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			tx.Rollback()
			return fmt.Errorf("apply migration v%d: %w", m.version, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", m.version); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration v%d: %w", m.version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration v%d: %w", m.version, err)
		}
	}

	return nil
}

const migrationV1Runs = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	source_file TEXT NOT NULL,
	rules_file TEXT NOT NULL DEFAULT '',
	output_file TEXT NOT NULL DEFAULT '',
	total_errors INTEGER NOT NULL DEFAULT 0,
	total_warnings INTEGER NOT NULL DEFAULT 0,
	total_passed INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`

// RecordRun inserts a run into the history. A missing ID is assigned and
// a zero CreatedAt is set to the current time.
func (s *Store) RecordRun(r *Run) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.conn.Exec(`
		INSERT INTO runs (id, source_file, rules_file, output_file, total_errors, total_warnings, total_passed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.SourceFile, r.RulesFile, r.OutputFile, r.TotalErrors, r.TotalWarnings, r.TotalPassed, formatTime(r.CreatedAt))
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// GetRun retrieves a run by ID. It returns nil without error when no run
// has that ID.
func (s *Store) GetRun(id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.conn.QueryRow(`
		SELECT id, source_file, rules_file, output_file, total_errors, total_warnings, total_passed, created_at
		FROM runs WHERE id = ?
	`, id)

	var r Run
	var createdAt string
	err := row.Scan(&r.ID, &r.SourceFile, &r.RulesFile, &r.OutputFile, &r.TotalErrors, &r.TotalWarnings, &r.TotalPassed, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}

	r.CreatedAt, _ = parseTime(createdAt)
	return &r, nil
}

// ListRuns returns runs ordered newest first. A limit of zero or less
// returns all runs.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows *sql.Rows
	var err error

	if limit > 0 {
		rows, err = s.conn.Query(`
			SELECT id, source_file, rules_file, output_file, total_errors, total_warnings, total_passed, created_at
			FROM runs ORDER BY created_at DESC LIMIT ?
		`, limit)
	} else {
		rows, err = s.conn.Query(`
			SELECT id, source_file, rules_file, output_file, total_errors, total_warnings, total_passed, created_at
			FROM runs ORDER BY created_at DESC
		`)
	}
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt string
		if err := rows.Scan(&r.ID, &r.SourceFile, &r.RulesFile, &r.OutputFile, &r.TotalErrors, &r.TotalWarnings, &r.TotalPassed, &createdAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.CreatedAt, _ = parseTime(createdAt)
		runs = append(runs, r)
	}
	return runs, nil
}

// CountRuns returns the number of recorded runs.
func (s *Store) CountRuns() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	row := s.conn.QueryRow("SELECT COUNT(*) FROM runs")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return count, nil
}

// Clear deletes the whole run history. Returns the number of runs deleted.
func (s *Store) Clear() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.conn.Exec("DELETE FROM runs")
	if err != nil {
		return 0, fmt.Errorf("clear runs: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return count, nil
}

// PurgeOlderThan deletes runs older than the specified duration.
// Returns the number of runs deleted.
func (s *Store) PurgeOlderThan(olderThan time.Duration) (int64, error) {
	cutoff := formatTime(time.Now().Add(-olderThan))

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.conn.Exec("DELETE FROM runs WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge old runs: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return count, nil
}

// formatTime formats a time.Time for SQLite storage.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTime parses a time string from SQLite.
func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
