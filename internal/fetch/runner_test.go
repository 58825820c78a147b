package fetch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/ytget/ytdl-desktop/internal/model"
)

// recordingLog collects log lines with a severity prefix
type recordingLog struct {
	lines []string
}

func (r *recordingLog) Info(msg string)    { r.lines = append(r.lines, "I "+msg) }
func (r *recordingLog) Warning(msg string) { r.lines = append(r.lines, "W "+msg) }
func (r *recordingLog) Error(msg string)   { r.lines = append(r.lines, "E "+msg) }

// fakeYTDLP writes a shell script standing in for yt-dlp
func fakeYTDLP(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "yt-dlp")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("Failed to write fake yt-dlp: %v", err)
	}
	return path
}

const twoItemsOutput = `echo '[youtube] abc: Downloading webpage'
echo 'WARNING: unable to extract uploader'
echo '[ytdl-progress] {"status":"downloading","downloaded_bytes":50,"total_bytes":100}'
echo '[ytdl-progress] {"status":"finished","downloaded_bytes":100,"total_bytes":100}'
echo 'ERROR: [youtube] def: Video unavailable' 1>&2`

func TestRunPreservesLineOrder(t *testing.T) {
	exe := fakeYTDLP(t, twoItemsOutput)

	log := &recordingLog{}
	hooks := Hooks{
		Progress: func(ev Event) error {
			log.lines = append(log.lines, "P "+string(ev.Status))
			return nil
		},
		Log: log,
	}

	res, err := run(context.Background(), exe, nil, hooks)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	expected := []string{
		"I [youtube] abc: Downloading webpage",
		"W unable to extract uploader",
		"P downloading",
		"P finished",
		"E [youtube] def: Video unavailable",
	}
	if strings.Join(log.lines, "\n") != strings.Join(expected, "\n") {
		t.Errorf("Expected lines\n%v\ngot\n%v", expected, log.lines)
	}
	if res.finished != 1 {
		t.Errorf("Expected 1 finished event, got %d", res.finished)
	}
	if res.lastError != "[youtube] def: Video unavailable" {
		t.Errorf("Unexpected last error %q", res.lastError)
	}
}

func TestFetchToleratesSkippedItems(t *testing.T) {
	exe := fakeYTDLP(t, twoItemsOutput+"\nexit 1")
	svc := &YTDLP{executable: exe}

	opts := NewOptions(t.TempDir(), model.ModeVideo, "")
	if err := svc.Fetch(context.Background(), "u", opts, Hooks{}); err != nil {
		t.Errorf("Expected skipped items to be tolerated, got %v", err)
	}

	opts.IgnoreErrors = false
	err := svc.Fetch(context.Background(), "u", opts, Hooks{})
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Expected ExitError, got %v", err)
	}
	if exitErr.Code != 1 {
		t.Errorf("Expected exit code 1, got %d", exitErr.Code)
	}
	if exitErr.Error() != "[youtube] def: Video unavailable" {
		t.Errorf("Expected last error as message, got %q", exitErr.Error())
	}
}

func TestFetchFailsWithoutFinishedItems(t *testing.T) {
	exe := fakeYTDLP(t, "echo 'ERROR: Unsupported URL' 1>&2\nexit 1")
	svc := &YTDLP{executable: exe}

	err := svc.Fetch(context.Background(), "u", NewOptions(t.TempDir(), model.ModeAudio, ""), Hooks{})
	if err == nil || err.Error() != "Unsupported URL" {
		t.Errorf("Expected 'Unsupported URL' error, got %v", err)
	}
}

func TestRunHookErrorAbortsProcess(t *testing.T) {
	exe := fakeYTDLP(t, `echo '[ytdl-progress] {"status":"downloading","downloaded_bytes":1,"total_bytes":100}'
exec sleep 30`)

	stop := errors.New("stopped")
	calls := 0
	hooks := Hooks{Progress: func(Event) error {
		calls++
		return stop
	}}

	start := time.Now()
	_, err := run(context.Background(), exe, nil, hooks)
	if !errors.Is(err, stop) {
		t.Errorf("Expected hook error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected hook to be called once, got %d", calls)
	}
	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Errorf("Expected process to be killed promptly, took %v", elapsed)
	}
}

func TestRunContextCancelled(t *testing.T) {
	exe := fakeYTDLP(t, "exec sleep 30")

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := run(ctx, exe, nil, Hooks{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
}

func TestRunMissingExecutable(t *testing.T) {
	_, err := run(context.Background(), filepath.Join(t.TempDir(), "missing"), nil, Hooks{})
	if err == nil {
		t.Error("Expected error for missing executable, got nil")
	}
}
