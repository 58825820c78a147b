package download

import (
	"fmt"
	"strings"

	"github.com/ytget/ytdl-desktop/internal/fetch"
	"github.com/ytget/ytdl-desktop/internal/model"
)

const mib = 1024 * 1024

// Log line prefixes
const (
	downloadLinePrefix = "[download]"
	warningLinePrefix  = "[warning] "
	errorLinePrefix    = "[error] "
)

// FormatSpeed renders bytes per second as MiB/s, "?" when unknown
func FormatSpeed(bytesPerSec float64) string {
	if bytesPerSec <= 0 {
		return "?"
	}
	return fmt.Sprintf("%.2fMiB/s", bytesPerSec/mib)
}

// FormatFragments renders "(frag i/n)" for fragmented streams, "" otherwise
func FormatFragments(index, count int) string {
	if count <= 0 {
		return ""
	}
	return fmt.Sprintf("(frag %d/%d)", index, count)
}

// FormatProgressLine renders a progress event the way yt-dlp prints its own
// progress, e.g. "[download]   42.0% of ~   12.50MiB at 1.20MiB/s ETA 00:07"
func FormatProgressLine(percent float64, totalBytes int64, speed, eta, fragments string) string {
	line := fmt.Sprintf("%s  %5.1f%% of ~ %7.2fMiB at %s ETA %s %s",
		downloadLinePrefix, percent, float64(totalBytes)/mib, speed, eta, fragments)
	return strings.TrimRight(line, " ")
}

// taskLog routes fetch output lines of one task to the Sink
type taskLog struct {
	s *Service
	h *taskHandle
}

var _ fetch.LogSink = taskLog{}

func (l taskLog) Info(msg string) {
	level := model.LogInfo
	if strings.HasPrefix(msg, downloadLinePrefix) {
		level = model.LogProgress
	}
	l.s.appendLog(level, msg)

	// merged output is the only per-item completion signal in video mode;
	// finished events fire once per stream there
	if l.h.task.Request.Mode == model.ModeVideo && strings.HasPrefix(msg, fetch.MergeLinePrefix) {
		l.s.itemDone(l.h)
	}
}

func (l taskLog) Warning(msg string) {
	l.s.appendLog(model.LogWarning, warningLinePrefix+msg)
}

func (l taskLog) Error(msg string) {
	l.s.appendLog(model.LogError, errorLinePrefix+msg)
}
