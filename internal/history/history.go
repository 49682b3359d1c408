// Package history records task invocations in the SQLite database.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimeLayout is the format runs.started_at is stored in (UTC).
const TimeLayout = "2006-01-02 15:04:05"

// Run is one recorded task invocation.
type Run struct {
	ID         string
	Task       string
	StartedAt  string
	DurationMS int64
	ExitCode   int
	DryRun     bool
}

// Started parses the stored timestamp. Stored times are UTC.
func (r Run) Started() (time.Time, error) {
	return time.ParseInLocation(TimeLayout, r.StartedAt, time.UTC)
}

// Repository provides recording and listing of runs.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository using db.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Record inserts a run row. A missing ID is filled with a fresh UUID;
// a missing StartedAt defaults to now (UTC).
func (r *Repository) Record(run Run) (string, error) {
	if run.Task == "" {
		return "", fmt.Errorf("record run: task name is empty")
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.StartedAt == "" {
		run.StartedAt = time.Now().UTC().Format(TimeLayout)
	}
	dry := 0
	if run.DryRun {
		dry = 1
	}
	_, err := r.db.Exec(
		"INSERT INTO runs (id, task, started_at, duration_ms, exit_code, dry_run) VALUES (?, ?, ?, ?, ?, ?)",
		run.ID, run.Task, run.StartedAt, run.DurationMS, run.ExitCode, dry,
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return run.ID, nil
}

// ListRecent returns the most recent runs, newest first. A non-empty task
// filters to that task's runs.
func (r *Repository) ListRecent(task string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	query := "SELECT id, task, started_at, duration_ms, exit_code, dry_run FROM runs"
	args := []interface{}{}
	if task != "" {
		query += " WHERE task = ?"
		args = append(args, task)
	}
	query += " ORDER BY started_at DESC, rowid DESC LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Run
	for rows.Next() {
		var run Run
		var dry int
		if err := rows.Scan(&run.ID, &run.Task, &run.StartedAt, &run.DurationMS, &run.ExitCode, &dry); err != nil {
			return nil, err
		}
		run.DryRun = dry != 0
		out = append(out, run)
	}
	return out, rows.Err()
}
