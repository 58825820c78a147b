package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/ytget/ytdl-desktop/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	if err != nil {
		t.Fatalf("Expected no error opening store, got %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func finishedTask(id, url, title string, state model.TaskState, finished time.Time) *model.DownloadTask {
	task := model.NewDownloadTask(id, model.Request{URL: url, Dir: "/tmp", Mode: model.ModeAudio}, 1)
	task.Title = title
	task.Kind = model.KindPlaylist
	task.State = state
	task.Progress.Index = 3
	task.Progress.Total = 3
	task.StartedAt = finished.Add(-time.Minute)
	task.FinishedAt = finished
	return task
}

func TestRecordAndList(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)

	older := finishedTask("task-1", "https://youtu.be/a", "First", model.TaskStateCompleted, now.Add(-time.Hour))
	newer := finishedTask("task-2", "https://youtu.be/b", "", model.TaskStateFailed, now)
	newer.LastError = "Video unavailable"

	for _, task := range []*model.DownloadTask{older, newer} {
		if err := store.Record(ctx, task); err != nil {
			t.Fatalf("Expected no error recording %s, got %v", task.ID, err)
		}
	}

	entries, err := store.List(ctx, 10)
	if err != nil {
		t.Fatalf("Expected no error listing, got %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.TaskID != "task-2" {
		t.Errorf("Expected newest entry first, got %s", first.TaskID)
	}
	if first.State != model.TaskStateFailed {
		t.Errorf("Expected state Failed, got %s", first.State)
	}
	if first.Error != "Video unavailable" {
		t.Errorf("Expected error 'Video unavailable', got %q", first.Error)
	}
	if first.DisplayTitle() != "https://youtu.be/b" {
		t.Errorf("Expected URL as display title, got %q", first.DisplayTitle())
	}

	second := entries[1]
	if second.Title != "First" || second.Mode != model.ModeAudio || second.Items != 3 {
		t.Errorf("Unexpected entry %+v", second)
	}
	if second.Kind != model.KindPlaylist {
		t.Errorf("Expected kind %s, got %s", model.KindPlaylist, second.Kind)
	}
	if !second.FinishedAt.Equal(now.Add(-time.Hour)) {
		t.Errorf("Expected finished time %v, got %v", now.Add(-time.Hour), second.FinishedAt)
	}
}

func TestListLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	for i := 0; i < 5; i++ {
		task := finishedTask("task", "https://youtu.be/x", "x", model.TaskStateCompleted, now.Add(time.Duration(i)*time.Second))
		if err := store.Record(ctx, task); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	entries, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 entries, got %d", len(entries))
	}

	entries, err = store.List(ctx, 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(entries) != 5 {
		t.Errorf("Expected 5 entries with default limit, got %d", len(entries))
	}
}

func TestClear(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Record(ctx, finishedTask("task-1", "u", "t", model.TaskStateCancelled, time.Now())); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Expected no error clearing, got %v", err)
	}

	entries, err := store.List(ctx, 10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty history, got %d entries", len(entries))
	}
}

func TestRecordWithoutFinishTime(t *testing.T) {
	store := openTestStore(t)
	task := model.NewDownloadTask("task-1", model.Request{URL: "u", Mode: model.ModeVideo}, 0)
	task.State = model.TaskStateFailed

	if err := store.Record(context.Background(), task); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	entries, err := store.List(context.Background(), 1)
	if err != nil || len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d (%v)", len(entries), err)
	}
	if entries[0].FinishedAt.IsZero() {
		t.Error("Expected finish time to default to now")
	}
}

func TestRecordRejectsUnfinishedTask(t *testing.T) {
	store := openTestStore(t)
	task := model.NewDownloadTask("task-1", model.Request{URL: "u"}, 0)
	task.State = model.TaskStateTransferring

	err := store.Record(context.Background(), task)
	if !errors.Is(err, ErrUnfinished) {
		t.Errorf("Expected ErrUnfinished, got %v", err)
	}
	entries, err := store.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected nothing recorded, got %d entries", len(entries))
	}
}
