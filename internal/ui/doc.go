// Package ui contains the Fyne-based desktop user interface. RootUI is the
// single downloader window and implements download.Sink; every update coming
// from a download goroutine is applied through fyne.Do. All UI strings are
// localized via Localization.
package ui
