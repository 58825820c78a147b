package download

import "errors"

var (
	// ErrEmptyURL is returned by Start when no URL was entered
	ErrEmptyURL = errors.New("Please enter a YouTube URL")

	// ErrInvalidURL is returned by Start for URLs that are not YouTube videos or playlists
	ErrInvalidURL = errors.New("Please enter a valid YouTube URL")

	// ErrStoppedByUser ends a task the user cancelled
	ErrStoppedByUser = errors.New("Download stopped by user.")
)
