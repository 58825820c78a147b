package fetch

import (
	"context"
	"time"

	"github.com/ytget/ytdl-desktop/internal/model"
)

// Service resolves and downloads media.
type Service interface {
	// Resolve returns title and item list for url without transferring media
	Resolve(ctx context.Context, url string) (*model.Metadata, error)

	// Fetch downloads url according to opts. Hooks are called from the
	// calling goroutine, in emission order. A non-nil error returned by
	// Hooks.Progress aborts the transfer and is returned by Fetch.
	Fetch(ctx context.Context, url string, opts Options, hooks Hooks) error
}

// Resolver resolves URL metadata
type Resolver interface {
	Resolve(ctx context.Context, url string) (*model.Metadata, error)
}

// LogSink receives yt-dlp output lines by severity
type LogSink interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}

// Hooks are the callbacks Fetch reports through
type Hooks struct {
	Progress func(Event) error
	Log      LogSink
}

// EventStatus is the status field of a progress event
type EventStatus string

const (
	StatusDownloading EventStatus = "downloading"
	StatusFinished    EventStatus = "finished"
)

// Event is one progress report for the file currently being transferred
type Event struct {
	Status        EventStatus
	Downloaded    int64         // bytes
	Total         int64         // bytes, 0 if unknown
	Speed         float64       // bytes per second, 0 if unknown
	ETA           time.Duration // 0 if unknown
	FragmentIndex int
	FragmentCount int
	Filename      string
}

// Percent returns Downloaded/Total*100, or -1 when the total is unknown
func (e Event) Percent() float64 {
	if e.Total <= 0 {
		return -1
	}
	return float64(e.Downloaded) / float64(e.Total) * 100
}
