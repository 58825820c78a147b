package model

import (
	"fmt"
	"strings"
)

// Mode selects what a download produces
type Mode string

const (
	// ModeVideo merges best video and audio streams into an mp4 container
	ModeVideo Mode = "video"

	// ModeAudio extracts the best audio stream and transcodes it to mp3
	ModeAudio Mode = "audio"
)

// String returns the string representation of Mode
func (m Mode) String() string {
	return string(m)
}

// ParseMode converts a stored or user supplied value into a Mode
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeVideo:
		return ModeVideo, nil
	case ModeAudio:
		return ModeAudio, nil
	default:
		return "", fmt.Errorf("unknown download mode: %q", s)
	}
}

// Request is a single user download intent. It is not modified after the task starts.
type Request struct {
	URL  string
	Dir  string
	Mode Mode
}

// LogLevel tags a line written to the download log
type LogLevel string

const (
	LogInfo     LogLevel = "info"
	LogWarning  LogLevel = "warning"
	LogError    LogLevel = "error"
	LogProgress LogLevel = "progress"
)
