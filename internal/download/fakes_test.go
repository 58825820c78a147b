package download

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ytget/ytdl-desktop/internal/fetch"
	"github.com/ytget/ytdl-desktop/internal/model"
)

// fakeFetcher is a fetch.Service driven by test functions
type fakeFetcher struct {
	metadata   *model.Metadata
	resolveErr error
	fetch      func(ctx context.Context, url string, opts fetch.Options, hooks fetch.Hooks) error

	mu   sync.Mutex
	opts []fetch.Options
}

func (f *fakeFetcher) Resolve(ctx context.Context, url string) (*model.Metadata, error) {
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	return f.metadata, nil
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string, opts fetch.Options, hooks fetch.Hooks) error {
	f.mu.Lock()
	f.opts = append(f.opts, opts)
	f.mu.Unlock()
	if f.fetch == nil {
		return nil
	}
	return f.fetch(ctx, url, opts, hooks)
}

// recordingSink records every call as a short string
type recordingSink struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingSink) add(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recordingSink) SetStatus(text string)        { r.add("status:%s", text) }
func (r *recordingSink) SetPercent(percent float64)   { r.add("percent:%.1f", percent) }
func (r *recordingSink) SetCounter(done, total int)   { r.add("counter:%d/%d", done, total) }
func (r *recordingSink) SetStartEnabled(enabled bool) { r.add("start:%t", enabled) }
func (r *recordingSink) AppendLog(level model.LogLevel, line string) {
	r.add("log:%s:%s", level, line)
}

func (r *recordingSink) TaskFinished(task model.DownloadTask) {
	r.add("finished:%s", task.State)
}

func (r *recordingSink) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

// last returns the last event with prefix, or ""
func (r *recordingSink) last(prefix string) string {
	events := r.snapshot()
	for i := len(events) - 1; i >= 0; i-- {
		if strings.HasPrefix(events[i], prefix) {
			return events[i]
		}
	}
	return ""
}

// filter returns all events with prefix, in order
func (r *recordingSink) filter(prefix string) []string {
	var out []string
	for _, e := range r.snapshot() {
		if strings.HasPrefix(e, prefix) {
			out = append(out, e)
		}
	}
	return out
}

// recordingRecorder is a history.Recorder keeping tasks in memory
type recordingRecorder struct {
	mu    sync.Mutex
	tasks []model.DownloadTask
}

func (r *recordingRecorder) Record(ctx context.Context, task *model.DownloadTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append(r.tasks, *task)
	return nil
}

func (r *recordingRecorder) recorded() []model.DownloadTask {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.DownloadTask(nil), r.tasks...)
}
