package fetch

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// yt-dlp severity prefixes
const (
	warningPrefix = "WARNING:"
	errorPrefix   = "ERROR:"
)

// progressJSON mirrors the yt-dlp progress dict. Numeric fields may be
// absent, null, or floats, so they are decoded as optional floats.
type progressJSON struct {
	Status          string   `json:"status"`
	DownloadedBytes *float64 `json:"downloaded_bytes"`
	TotalBytes      *float64 `json:"total_bytes"`
	Speed           *float64 `json:"speed"`
	ETA             *float64 `json:"eta"`
	Filename        string   `json:"filename"`
	FragmentIndex   *float64 `json:"fragment_index"`
	FragmentCount   *float64 `json:"fragment_count"`
}

// lineKind classifies a line of yt-dlp output
type lineKind int

const (
	lineEmpty lineKind = iota
	lineProgress
	lineInfo
	lineWarning
	lineError
)

// classifyLine returns the kind of line and its payload: the JSON text for
// progress lines, the message without severity prefix for warnings/errors.
func classifyLine(line string) (lineKind, string) {
	line = strings.TrimRight(line, "\r\n")
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return lineEmpty, ""
	case strings.HasPrefix(line, ProgressPrefix):
		return lineProgress, strings.TrimPrefix(line, ProgressPrefix)
	case strings.HasPrefix(trimmed, warningPrefix):
		return lineWarning, strings.TrimSpace(strings.TrimPrefix(trimmed, warningPrefix))
	case strings.HasPrefix(trimmed, errorPrefix):
		return lineError, strings.TrimSpace(strings.TrimPrefix(trimmed, errorPrefix))
	default:
		return lineInfo, line
	}
}

// parseProgress decodes a progress template payload into an Event
func parseProgress(payload string) (Event, error) {
	var p progressJSON
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return Event{}, fmt.Errorf("invalid progress payload: %w", err)
	}

	ev := Event{
		Status:        EventStatus(p.Status),
		Downloaded:    int64(value(p.DownloadedBytes)),
		Total:         int64(value(p.TotalBytes)),
		Speed:         value(p.Speed),
		FragmentIndex: int(value(p.FragmentIndex)),
		FragmentCount: int(value(p.FragmentCount)),
		Filename:      p.Filename,
	}
	if eta := value(p.ETA); eta > 0 {
		ev.ETA = time.Duration(eta * float64(time.Second))
	}
	return ev, nil
}

func value(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
