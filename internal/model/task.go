package model

import (
	"fmt"
	"strings"
	"time"
)

// ProgressState is the live transfer progress of a task. Only the owning task writes it.
type ProgressState struct {
	Index         int     // completed items
	Total         int     // items to download, fixed after metadata resolution
	Percent       float64 // 0 to 100 for the current item
	Speed         string  // human readable speed (e.g., "1.20MiB/s")
	ETASec        int     // ETA in seconds, -1 if unknown
	FragmentIndex int
	FragmentTotal int
}

// DownloadTask represents a single download task
type DownloadTask struct {
	ID         string
	Request    Request
	State      TaskState
	Generation uint64 // session the task belongs to, see download.Service.StopAll
	Title      string
	Kind       string // KindPlaylist or KindVideo
	Progress   ProgressState
	LastError  string
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewDownloadTask creates an idle task for req
func NewDownloadTask(id string, req Request, generation uint64) *DownloadTask {
	return &DownloadTask{
		ID:         id,
		Request:    req,
		State:      TaskStateIdle,
		Generation: generation,
		Progress:   ProgressState{ETASec: -1},
		StartedAt:  time.Now(),
	}
}

// CounterLabel returns completed and total items as "<done>/<total>"
func (dt *DownloadTask) CounterLabel() string {
	return FormatCounter(dt.Progress.Index, dt.Progress.Total)
}

// FormatCounter renders a "<done>/<total>" counter
func FormatCounter(done, total int) string {
	return fmt.Sprintf("%d/%d", done, total)
}

// FormatETA formats seconds as mm:ss, "?" when unknown. Minutes keep
// counting past 59 (e.g. "75:03").
func FormatETA(sec int) string {
	if sec <= 0 {
		return "?"
	}
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}

// GetDisplayTitle returns title or URL in order of preference
func (dt *DownloadTask) GetDisplayTitle() string {
	if dt.Title != "" && !strings.HasPrefix(dt.Title, "http") {
		return dt.Title
	}
	return dt.Request.URL
}

// Elapsed returns how long the task ran, or has been running
func (dt *DownloadTask) Elapsed() time.Duration {
	if dt.FinishedAt.IsZero() {
		return time.Since(dt.StartedAt)
	}
	return dt.FinishedAt.Sub(dt.StartedAt)
}
