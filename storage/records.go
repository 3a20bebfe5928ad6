package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Run outcomes.
const (
	OutcomeComplete = "complete"
	OutcomeDied     = "died"
)

// Records keeps the history of level attempts.
type Records struct {
	db *sql.DB
}

// Run is one finished attempt at a level.
type Run struct {
	ID        int64
	Level     string
	Outcome   string
	Seconds   float64
	CreatedAt time.Time
}

// LevelSummary aggregates the runs of one level.
type LevelSummary struct {
	Level       string
	Completions int
	Deaths      int
	BestSeconds float64 // 0 when never completed
}

// DefaultRecordsPath is where the records database lives unless overridden.
const DefaultRecordsPath = "~/.jumpscape/records.db"

// OpenRecords creates or opens the records database at dbPath, creating parent
// directories and the schema as needed.
func OpenRecords(dbPath string) (*Records, error) {
	if strings.HasPrefix(dbPath, "~") {
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

	r := &Records{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return r, nil
}

func (r *Records) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level TEXT NOT NULL,
			outcome TEXT NOT NULL,
			seconds REAL NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level, outcome, seconds);
	`
	_, err := r.db.Exec(schema)
	return err
}

func (r *Records) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Add stores a run and returns its ID.
func (r *Records) Add(level, outcome string, seconds float64) (int64, error) {
	res, err := r.db.Exec(
		"INSERT INTO runs (level, outcome, seconds, created_at) VALUES (?, ?, ?, ?)",
		level, outcome, seconds, time.Now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Recent returns the latest runs, newest first. An empty level matches all.
func (r *Records) Recent(level string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.Query(
		`SELECT id, level, outcome, seconds, created_at
		 FROM runs
		 WHERE ? = '' OR level = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		level, level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var created int64
		if err := rows.Scan(&run.ID, &run.Level, &run.Outcome, &run.Seconds, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		run.CreatedAt = time.Unix(created, 0)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// Summaries returns per-level totals ordered by level name.
func (r *Records) Summaries() ([]LevelSummary, error) {
	rows, err := r.db.Query(
		`SELECT level,
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        COALESCE(MIN(CASE WHEN outcome = ? THEN seconds END), 0)
		 FROM runs
		 GROUP BY level
		 ORDER BY level`,
		OutcomeComplete, OutcomeDied, OutcomeComplete,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query summaries: %w", err)
	}
	defer rows.Close()

	var out []LevelSummary
	for rows.Next() {
		var s LevelSummary
		if err := rows.Scan(&s.Level, &s.Completions, &s.Deaths, &s.BestSeconds); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// String formats the summary as one table row.
func (s LevelSummary) String() string {
	best := "-"
	if s.Completions > 0 {
		best = fmt.Sprintf("%.2fs", s.BestSeconds)
	}
	return fmt.Sprintf("%-20s cleared %3d  died %3d  best %s", s.Level, s.Completions, s.Deaths, best)
}
