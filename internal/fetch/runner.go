package fetch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/ytdl-desktop/internal/logging"
)

// Runner constants
const (
	MaxLineSize      = 1024 * 1024
	ProcessWaitDelay = 5 * time.Second
)

// ExitError is returned when yt-dlp exits unsuccessfully
type ExitError struct {
	Code      int
	LastError string // last ERROR: line printed, if any
}

func (e *ExitError) Error() string {
	if e.LastError != "" {
		return e.LastError
	}
	return fmt.Sprintf("yt-dlp exited with code %d", e.Code)
}

// runResult summarizes one yt-dlp run
type runResult struct {
	finished  int
	lastError string
}

// run executes yt-dlp with args, feeding every output line through hooks.
// stdout and stderr share one pipe so lines keep their emission order.
func run(ctx context.Context, executable string, args []string, hooks Hooks) (runResult, error) {
	log := logging.FromContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cmd := exec.CommandContext(ctx, executable, args...)
	cmd.WaitDelay = ProcessWaitDelay

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	log.Debug("starting yt-dlp", zap.String("executable", executable), zap.Strings("args", args))
	if err := cmd.Start(); err != nil {
		return runResult{}, fmt.Errorf("failed to start %s: %w", executable, err)
	}

	waitErr := make(chan error, 1)
	go func() {
		err := cmd.Wait()
		pw.Close()
		waitErr <- err
	}()

	var (
		res     runResult
		hookErr error
		scanner = bufio.NewScanner(pr)
	)
	scanner.Buffer(make([]byte, 64*1024), MaxLineSize)

	for scanner.Scan() {
		if hookErr != nil {
			// keep draining so the process can exit
			continue
		}
		if err := dispatchLine(scanner.Text(), hooks, &res); err != nil {
			hookErr = err
			cancel()
		}
	}
	if err := scanner.Err(); err != nil {
		// a line longer than MaxLineSize; stop reading and kill the process
		cancel()
		_, _ = io.Copy(io.Discard, pr)
		if hookErr == nil {
			hookErr = fmt.Errorf("failed to read yt-dlp output: %w", err)
		}
	}

	err := <-waitErr
	if hookErr != nil {
		return res, hookErr
	}
	if ctx.Err() != nil {
		return res, ctx.Err()
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return res, &ExitError{Code: exitErr.ExitCode(), LastError: res.lastError}
		}
		return res, fmt.Errorf("yt-dlp failed: %w", err)
	}
	return res, nil
}

// dispatchLine routes one output line to the progress hook or the log sink
func dispatchLine(line string, hooks Hooks, res *runResult) error {
	kind, payload := classifyLine(line)
	switch kind {
	case lineEmpty:
		return nil
	case lineProgress:
		ev, err := parseProgress(payload)
		if err != nil {
			if hooks.Log != nil {
				hooks.Log.Info(line)
			}
			return nil
		}
		if ev.Status == StatusFinished {
			res.finished++
		}
		if hooks.Progress != nil {
			return hooks.Progress(ev)
		}
	case lineWarning:
		if hooks.Log != nil {
			hooks.Log.Warning(payload)
		}
	case lineError:
		res.lastError = payload
		if hooks.Log != nil {
			hooks.Log.Error(payload)
		}
	default:
		if hooks.Log != nil {
			hooks.Log.Info(payload)
		}
	}
	return nil
}
