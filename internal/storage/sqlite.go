// Package storage provides SQLite-based persistence for search history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only search telemetry is stored. Grid contents are never saved.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for search history.
type Store struct {
	db *sql.DB
}

// Run is one recorded path request.
type Run struct {
	ID         int64
	Source     string // "local" or the SSH user
	GridSize   int
	StartX     int
	StartY     int
	FinishX    int
	FinishY    int
	Barriers   int
	Found      bool
	Reason     string // grid.Reason name
	PathLength int    // steps; 0 when not found
	Visited    int    // cells discovered by the search
	Duration   time.Duration
	CreatedAt  time.Time
}

// Stats contains aggregated statistics over all runs.
type Stats struct {
	Runs        int
	Found       int
	AvgDuration time.Duration
	LongestPath int
	LastRun     time.Time
}

// Open creates or opens a SQLite database at the given path.
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			grid_size INTEGER NOT NULL,
			start_x INTEGER NOT NULL DEFAULT -1,
			start_y INTEGER NOT NULL DEFAULT -1,
			finish_x INTEGER NOT NULL DEFAULT -1,
			finish_y INTEGER NOT NULL DEFAULT -1,
			barriers INTEGER NOT NULL DEFAULT 0,
			found INTEGER NOT NULL,
			reason TEXT NOT NULL,
			path_length INTEGER NOT NULL DEFAULT 0,
			visited INTEGER NOT NULL DEFAULT 0,
			duration_us INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_source ON runs(source);
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

// SaveRun records a path request.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (source, grid_size, start_x, start_y, finish_x, finish_y, barriers,
		  found, reason, path_length, visited, duration_us)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Source, r.GridSize, r.StartX, r.StartY, r.FinishX, r.FinishY, r.Barriers,
		r.Found, r.Reason, r.PathLength, r.Visited, r.Duration.Microseconds(),
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

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, source, grid_size, start_x, start_y, finish_x, finish_y, barriers,
		        found, reason, path_length, visited, duration_us, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationUS int64
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.Source, &r.GridSize, &r.StartX, &r.StartY, &r.FinishX, &r.FinishY, &r.Barriers,
			&r.Found, &r.Reason, &r.PathLength, &r.Visited, &durationUS, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationUS) * time.Microsecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Stats retrieves aggregated statistics over all runs.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	var avgUS float64
	var lastRun any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(found), 0), COALESCE(AVG(duration_us), 0),
		        COALESCE(MAX(path_length), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.Found, &avgUS, &stats.LongestPath, &lastRun)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	stats.AvgDuration = time.Duration(avgUS) * time.Microsecond
	stats.LastRun = parseTime(lastRun)
	return stats, nil
}

// ClearRuns deletes all recorded runs.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
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
