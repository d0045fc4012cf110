// Package storage provides SQLite-based persistence for completed maze runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only run results are stored. Maze layouts are never persisted.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one completed maze: the player reached the finish.
type Run struct {
	ID        string // UUID, assigned by SaveRun when empty
	Player    string // "local" or the SSH user name
	Rows      int
	Cols      int
	Moves     int
	Ticks     int64 // frames from generation to escape
	TickRate  int
	CreatedAt time.Time
}

// Duration returns the wall-clock time of the run.
func (r Run) Duration() time.Duration {
	if r.TickRate <= 0 {
		return 0
	}
	return time.Duration(r.Ticks) * time.Second / time.Duration(r.TickRate)
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
	// SQLite allows one writer; SSH sessions share the store.
	db.SetMaxOpenConns(1)

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
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL DEFAULT 'local',
			rows INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL DEFAULT 60,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_size ON runs(rows, cols);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(rows, cols, moves, ticks);
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

// SaveRun records a completed run and returns its ID.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Player == "" {
		r.Player = "local"
	}
	if r.TickRate <= 0 {
		r.TickRate = 60
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, player, rows, cols, moves, ticks, tick_rate)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Player, r.Rows, r.Cols, r.Moves, r.Ticks, r.TickRate,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.ID, nil
}

const runColumns = `id, player, rows, cols, moves, ticks, tick_rate, created_at`

// TopRuns retrieves the best runs for a maze size: fewest moves, then
// fastest.
func (s *Store) TopRuns(rows, cols, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE rows = ? AND cols = ?
		 ORDER BY moves ASC, ticks ASC
		 LIMIT ?`,
		rows, cols, limit,
	)
}

// RecentRuns retrieves the latest runs of any size.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
}

// BestRun returns the best run for a maze size, or nil if there is none.
func (s *Store) BestRun(rows, cols int) (*Run, error) {
	runs, err := s.TopRuns(rows, cols, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// RunByID retrieves a run by its ID.
func (s *Store) RunByID(id string) (*Run, error) {
	r, err := scanRun(s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// ClearRuns deletes all runs for a maze size.
func (s *Store) ClearRuns(rows, cols int) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE rows = ? AND cols = ?", rows, cols)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	var createdAt any
	if err := sc.Scan(&r.ID, &r.Player, &r.Rows, &r.Cols, &r.Moves, &r.Ticks, &r.TickRate, &createdAt); err != nil {
		return Run{}, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles the datetime column, which the driver returns either as
// time.Time or as a string.
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

// SizeStats contains aggregated statistics for one maze size.
type SizeStats struct {
	Rows       int
	Cols       int
	Runs       int
	BestMoves  int
	AvgMoves   float64
	BestTicks  int64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for every maze size played, ordered
// by size.
func (s *Store) Stats() ([]SizeStats, error) {
	rows, err := s.db.Query(
		`SELECT rows, cols, COUNT(*), MIN(moves), AVG(moves), MIN(ticks), MAX(created_at)
		 FROM runs
		 GROUP BY rows, cols
		 ORDER BY rows, cols`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	defer rows.Close()

	var stats []SizeStats
	for rows.Next() {
		var st SizeStats
		var lastPlayed any
		if err := rows.Scan(&st.Rows, &st.Cols, &st.Runs, &st.BestMoves, &st.AvgMoves, &st.BestTicks, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
