// Package history keeps a persistent record of finished downloads.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ytget/ytdl-desktop/internal/model"
)

// DefaultLimit is how many entries List returns when asked for none
const DefaultLimit = 50

// ErrUnfinished is returned when recording a task that has no outcome yet
var ErrUnfinished = errors.New("task has not finished")

// Entry is one finished download
type Entry struct {
	ID         int64
	TaskID     string
	URL        string
	Title      string
	Kind       string
	Mode       model.Mode
	Dir        string
	State      model.TaskState
	Items      int
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Recorder stores finished tasks
type Recorder interface {
	Record(ctx context.Context, task *model.DownloadTask) error
}

// Store is a Recorder backed by a SQLite database
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	// a single connection serializes writers from concurrent tasks
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initTable(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history table: %w", err)
	}
	return s, nil
}

func (s *Store) initTable() error {
	query := `
	PRAGMA busy_timeout = 5000;

	CREATE TABLE IF NOT EXISTS downloads (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		task_id TEXT NOT NULL,
		url TEXT NOT NULL,
		title TEXT,
		kind TEXT,
		mode TEXT,
		dir TEXT,
		state TEXT NOT NULL,
		items INTEGER,
		error TEXT,
		started_time DATETIME,
		finished_time DATETIME
	);

	CREATE INDEX IF NOT EXISTS idx_downloads_finished ON downloads(finished_time);
	`
	_, err := s.db.Exec(query)
	return err
}

// Record stores the outcome of task
func (s *Store) Record(ctx context.Context, task *model.DownloadTask) error {
	if !task.State.IsFinished() {
		return fmt.Errorf("%w: %s is %s", ErrUnfinished, task.ID, task.State)
	}

	finished := task.FinishedAt
	if finished.IsZero() {
		finished = time.Now()
	}

	query := `INSERT INTO downloads (task_id, url, title, kind, mode, dir, state, items, error, started_time, finished_time)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		task.ID, task.Request.URL, task.Title, task.Kind, task.Request.Mode.String(), task.Request.Dir,
		task.State.String(), task.Progress.Index, task.LastError, task.StartedAt.UTC(), finished.UTC())
	if err != nil {
		return fmt.Errorf("failed to record download %s: %w", task.ID, err)
	}
	return nil
}

// List returns up to limit entries, newest first
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	query := `SELECT id, task_id, url, title, kind, mode, dir, state, items, error, started_time, finished_time
	FROM downloads ORDER BY finished_time DESC, id DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e                     Entry
			title, kind, mode     sql.NullString
			dir, errMsg           sql.NullString
			state                 string
			items                 sql.NullInt64
			startedAt, finishedAt sql.NullTime
		)
		if err := rows.Scan(&e.ID, &e.TaskID, &e.URL, &title, &kind, &mode, &dir, &state,
			&items, &errMsg, &startedAt, &finishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		e.Title = title.String
		e.Kind = kind.String
		e.Mode = model.Mode(mode.String)
		e.Dir = dir.String
		e.State = model.TaskState(state)
		e.Items = int(items.Int64)
		e.Error = errMsg.String
		e.StartedAt = startedAt.Time
		e.FinishedAt = finishedAt.Time
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear removes every entry
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM downloads`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// DisplayTitle returns the title or, when unresolved, the URL
func (e Entry) DisplayTitle() string {
	if e.Title != "" {
		return e.Title
	}
	return e.URL
}
