package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyURLLabel          = "url_label"
	KeyFolderLabel       = "folder_label"
	KeyFormatLabel       = "format_label"
	KeyVideoOption       = "video_option"
	KeyAudioOption       = "audio_option"
	KeyProgressFormat    = "progress_format"
	KeyLogLabel          = "log_label"
	KeyClearLog          = "clear_log"
	KeyDownload          = "download"
	KeyStopCurrent       = "stop_current"
	KeyStopAll           = "stop_all"
	KeyOpenFolder        = "open_folder"
	KeySettings          = "settings"
	KeyHistory           = "history"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyDownloadDirectory = "download_directory"
	KeyOpenOnComplete    = "open_on_complete"
	KeyHistoryLimit      = "history_limit"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyClose             = "close"
	KeyClear             = "clear"
	KeyBrowse            = "browse"
	KeyEnterURL          = "enter_url"
	KeySettingsSaved     = "settings_saved"
	KeyDownloadCompleted = "download_completed"
	KeyErrorOpeningDir   = "error_opening_dir"
	KeyHistoryEmpty      = "history_empty"
	KeyHistoryDisabled   = "history_disabled"
	KeyStatusReady       = "status_ready"
	KeyStatusPlaylist    = "status_playlist"
	KeyStatusVideo       = "status_video"
	KeyStatusInvalid     = "status_invalid"
	KeyStatusEmpty       = "status_empty"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "YouTube Playlist & Video Downloader",
		KeyURLLabel:          "YouTube URL:",
		KeyFolderLabel:       "Download Folder:",
		KeyFormatLabel:       "Format:",
		KeyVideoOption:       "Video (mp4)",
		KeyAudioOption:       "Audio (mp3)",
		KeyProgressFormat:    "Progress: %s",
		KeyLogLabel:          "Download Log:",
		KeyClearLog:          "Clear Log",
		KeyDownload:          "Download Content",
		KeyStopCurrent:       "Stop Current",
		KeyStopAll:           "Stop All",
		KeyOpenFolder:        "Open Folder",
		KeySettings:          "Settings",
		KeyHistory:           "History",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyDownloadDirectory: "Default Download Directory:",
		KeyOpenOnComplete:    "Open folder when a download completes",
		KeyHistoryLimit:      "History entries shown:",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyClose:             "Close",
		KeyClear:             "Clear",
		KeyBrowse:            "Browse",
		KeyEnterURL:          "https://www.youtube.com/watch?v=... or playlist?list=...",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyDownloadCompleted: "Download completed",
		KeyErrorOpeningDir:   "Error opening folder",
		KeyHistoryEmpty:      "No downloads yet.",
		KeyHistoryDisabled:   "Download history is not available.",
		KeyStatusReady:       "Ready.",
		KeyStatusPlaylist:    "Ready to download playlist.",
		KeyStatusVideo:       "Ready to download video.",
		KeyStatusInvalid:     "Enter a valid YouTube URL.",
		KeyStatusEmpty:       "Enter a YouTube playlist or video URL.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Загрузчик видео и плейлистов YouTube",
		KeyURLLabel:          "URL YouTube:",
		KeyFolderLabel:       "Папка загрузки:",
		KeyFormatLabel:       "Формат:",
		KeyVideoOption:       "Видео (mp4)",
		KeyAudioOption:       "Аудио (mp3)",
		KeyProgressFormat:    "Прогресс: %s",
		KeyLogLabel:          "Журнал загрузки:",
		KeyClearLog:          "Очистить журнал",
		KeyDownload:          "Скачать",
		KeyStopCurrent:       "Остановить текущую",
		KeyStopAll:           "Остановить все",
		KeyOpenFolder:        "Открыть папку",
		KeySettings:          "Настройки",
		KeyHistory:           "История",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyDownloadDirectory: "Папка загрузки по умолчанию:",
		KeyOpenOnComplete:    "Открывать папку после загрузки",
		KeyHistoryLimit:      "Записей в истории:",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyClose:             "Закрыть",
		KeyClear:             "Очистить",
		KeyBrowse:            "Обзор",
		KeyEnterURL:          "https://www.youtube.com/watch?v=... или playlist?list=...",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyDownloadCompleted: "Загрузка завершена",
		KeyErrorOpeningDir:   "Ошибка открытия папки",
		KeyHistoryEmpty:      "Загрузок пока нет.",
		KeyHistoryDisabled:   "История загрузок недоступна.",
		KeyStatusReady:       "Готово.",
		KeyStatusPlaylist:    "Готово к загрузке плейлиста.",
		KeyStatusVideo:       "Готово к загрузке видео.",
		KeyStatusInvalid:     "Введите корректный URL YouTube.",
		KeyStatusEmpty:       "Введите URL плейлиста или видео YouTube.",
	}
}
