package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/ytdl-desktop/internal/model"
	"github.com/ytget/ytdl-desktop/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir      = "download_directory"
	KeyMode             = "download_mode"
	KeyLanguage         = "app_language"
	KeyOpenOnComplete   = "open_folder_on_complete"
	KeyLastHistoryLimit = "history_limit"
)

// Default values
const (
	DefaultMode           = model.ModeVideo
	DefaultLanguage       = "system"
	DefaultOpenOnComplete = false
	DefaultHistoryLimit   = 50
	FallbackDownloadDir   = "downloads"
)

// Settings manages user preferences persisted by Fyne
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackDownloadDir
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetMode returns the last selected download mode
func (s *Settings) GetMode() model.Mode {
	mode, err := model.ParseMode(s.app.Preferences().String(KeyMode))
	if err != nil {
		s.SetMode(DefaultMode)
		return DefaultMode
	}
	return mode
}

// SetMode stores the download mode
func (s *Settings) SetMode(mode model.Mode) {
	s.app.Preferences().SetString(KeyMode, mode.String())
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetOpenOnComplete returns whether the destination folder is opened after a successful download
func (s *Settings) GetOpenOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyOpenOnComplete, DefaultOpenOnComplete)
}

// SetOpenOnComplete sets whether to open the destination folder after a successful download
func (s *Settings) SetOpenOnComplete(open bool) {
	s.app.Preferences().SetBool(KeyOpenOnComplete, open)
}

// GetHistoryLimit returns how many history entries the history dialog shows
func (s *Settings) GetHistoryLimit() int {
	value := s.app.Preferences().Int(KeyLastHistoryLimit)
	if value <= 0 {
		return DefaultHistoryLimit
	}
	return value
}

// SetHistoryLimit sets the number of history entries to show, clamped to 1..500
func (s *Settings) SetHistoryLimit(limit int) {
	if limit < 1 {
		limit = 1
	}
	if limit > 500 {
		limit = 500
	}
	s.app.Preferences().SetInt(KeyLastHistoryLimit, limit)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}
