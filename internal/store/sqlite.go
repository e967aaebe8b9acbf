// internal/store/sqlite.go
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a run ID is unknown.
var ErrNotFound = errors.New("run not found")

// Outcome of a finished run.
const (
	OutcomeGameOver = "game_over"
	OutcomeWin      = "win"
)

// Run — итог завершённого забега.
type Run struct {
	ID         string
	Outcome    string
	Level      int
	Score      int
	Gold       int
	Towers     int
	DurationMs int64
	CreatedAt  time.Time
}

// SQLiteDB хранит историю забегов.
type SQLiteDB struct {
	db *sql.DB
}

// Open opens (or creates) the history database at path and migrates it.
func Open(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Одно соединение: запись редкая, а ":memory:" иначе даёт разные базы
	db.SetMaxOpenConns(1)

	s := &SQLiteDB{db: db}
	if err := s.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// Migrate runs database migrations
func (s *SQLiteDB) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			outcome TEXT NOT NULL,
			level INTEGER NOT NULL,
			score INTEGER NOT NULL,
			gold INTEGER NOT NULL,
			towers INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC)`,
	}
	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// SaveRun stores a finished run, assigning an ID and timestamp when missing.
func (s *SQLiteDB) SaveRun(run *Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(`INSERT INTO runs (
		id, outcome, level, score, gold, towers, duration_ms, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Outcome, run.Level, run.Score, run.Gold, run.Towers,
		run.DurationMs, run.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

// GetRun returns the run with the given ID or ErrNotFound.
func (s *SQLiteDB) GetRun(id string) (*Run, error) {
	row := s.db.QueryRow(`SELECT id, outcome, level, score, gold, towers, duration_ms, created_at
		FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run %s: %w", id, err)
	}
	return run, nil
}

// TopRuns returns up to limit runs ordered by score, best first.
func (s *SQLiteDB) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(`SELECT id, outcome, level, score, gold, towers, duration_ms, created_at
		FROM runs ORDER BY score DESC, created_at ASC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*Run, error) {
	var (
		run       Run
		createdAt int64
	)
	if err := sc.Scan(&run.ID, &run.Outcome, &run.Level, &run.Score, &run.Gold,
		&run.Towers, &run.DurationMs, &createdAt); err != nil {
		return nil, err
	}
	run.CreatedAt = time.UnixMilli(createdAt)
	return &run, nil
}
