package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/ytdl-desktop/internal/config"
	"github.com/ytget/ytdl-desktop/internal/download"
	"github.com/ytget/ytdl-desktop/internal/logging"
	"github.com/ytget/ytdl-desktop/internal/model"
	"github.com/ytget/ytdl-desktop/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	downloadSvc  download.Downloader
	history      HistoryStore
	settings     *config.Settings
	localization *Localization

	titleLabel   *widget.Label
	urlLabel     *widget.Label
	urlEntry     *widget.Entry
	dirLabel     *widget.Label
	dirEntry     *widget.Entry
	browseBtn    *widget.Button
	formatLabel  *widget.Label
	modeRadio    *widget.RadioGroup
	counterLabel *widget.Label
	logLabel     *widget.Label
	logView      *LogView
	clearLogBtn  *widget.Button
	progressBar  *widget.ProgressBar
	downloadBtn  *widget.Button
	stopBtn      *widget.Button
	stopAllBtn   *widget.Button
	openDirBtn   *widget.Button
	statusLabel  *widget.Label

	// start is allowed by the download service (no download holding it)
	startAllowed bool
	counter      string
}

var _ download.Sink = (*RootUI)(nil)

// NewRootUI creates and initializes the main UI. store may be nil when
// history is unavailable.
func NewRootUI(window fyne.Window, app fyne.App, downloadSvc download.Downloader, store HistoryStore) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		downloadSvc:  downloadSvc,
		history:      store,
		settings:     settings,
		localization: localization,
		startAllowed: true,
		counter:      model.FormatCounter(0, 0),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()

	ui.downloadSvc.SetSink(ui)
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	loc := ui.localization
	ui.createMenu()

	ui.titleLabel = widget.NewLabel(loc.GetText(KeyAppTitle))
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLabel.Alignment = fyne.TextAlignCenter
	ui.titleLabel.SizeName = theme.SizeNameHeadingText

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	historyBtn := widget.NewButton(IconHistory, ui.showHistoryDialog)
	historyBtn.Importance = widget.LowImportance

	// Logo is optional; fall back to the title alone
	var logoObject fyne.CanvasObject
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		logoObject = logoImage
	}
	header := container.NewBorder(nil, nil, logoObject, container.NewHBox(historyBtn, settingsBtn), ui.titleLabel)

	// URL row
	ui.urlLabel = widget.NewLabel(loc.GetText(KeyURLLabel))
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(loc.GetText(KeyEnterURL))
	ui.urlEntry.Validator = ui.validateURL
	ui.urlEntry.OnChanged = func(string) { ui.onURLChanged() }
	ui.urlEntry.OnSubmitted = func(string) { ui.onDownloadClick() }
	urlRow := container.NewBorder(nil, nil, ui.urlLabel, nil, ui.urlEntry)

	// Folder row
	ui.dirLabel = widget.NewLabel(loc.GetText(KeyFolderLabel))
	ui.dirEntry = widget.NewEntry()
	ui.dirEntry.SetText(ui.settings.GetDownloadDirectory())
	ui.browseBtn = widget.NewButton(loc.GetText(KeyBrowse), ui.onBrowseDirectory)
	ui.openDirBtn = widget.NewButton(IconFolder, ui.onOpenFolder)
	ui.openDirBtn.Importance = widget.LowImportance
	dirRow := container.NewBorder(nil, nil, ui.dirLabel, container.NewHBox(ui.browseBtn, ui.openDirBtn), ui.dirEntry)

	// Format row
	ui.formatLabel = widget.NewLabel(loc.GetText(KeyFormatLabel))
	ui.modeRadio = widget.NewRadioGroup(ui.modeOptions(), func(string) {
		ui.settings.SetMode(ui.selectedMode())
	})
	ui.modeRadio.Horizontal = true
	ui.modeRadio.Required = true
	ui.setSelectedMode(ui.settings.GetMode())
	formatRow := container.NewHBox(ui.formatLabel, ui.modeRadio)

	// Progress counter and log
	ui.counterLabel = widget.NewLabel("")
	ui.counterLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.refreshCounter()

	ui.logLabel = widget.NewLabel(loc.GetText(KeyLogLabel))
	ui.logView = NewLogView()
	ui.clearLogBtn = widget.NewButton(loc.GetText(KeyClearLog), ui.onClearLog)
	logHeader := container.NewBorder(nil, nil, ui.logLabel, ui.clearLogBtn)

	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Max = 100

	// Control buttons
	ui.downloadBtn = widget.NewButton(loc.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.SuccessImportance
	ui.downloadBtn.Disable()
	ui.stopBtn = widget.NewButton(loc.GetText(KeyStopCurrent), ui.downloadSvc.StopCurrent)
	ui.stopBtn.Importance = widget.DangerImportance
	ui.stopAllBtn = widget.NewButton(loc.GetText(KeyStopAll), ui.downloadSvc.StopAll)
	ui.stopAllBtn.Importance = widget.DangerImportance
	controls := container.NewVBox(
		container.NewCenter(ui.downloadBtn),
		container.NewCenter(container.NewHBox(ui.stopBtn, ui.stopAllBtn)),
	)

	ui.statusLabel = widget.NewLabel(loc.GetText(KeyStatusReady))
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	top := container.NewVBox(header, urlRow, dirRow, formatRow, ui.counterLabel, logHeader)
	bottom := container.NewVBox(ui.progressBar, controls, widget.NewSeparator(), ui.statusLabel)
	content := container.NewBorder(top, bottom, nil, nil, ui.logView.Object())

	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	historyItem := fyne.NewMenuItem(ui.localization.GetText(KeyHistory), ui.showHistoryDialog)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), historyItem, settingsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	loc := ui.localization
	ui.window.SetTitle(loc.GetText(KeyAppTitle))
	ui.titleLabel.SetText(loc.GetText(KeyAppTitle))
	ui.urlLabel.SetText(loc.GetText(KeyURLLabel))
	ui.urlEntry.SetPlaceHolder(loc.GetText(KeyEnterURL))
	ui.dirLabel.SetText(loc.GetText(KeyFolderLabel))
	ui.browseBtn.SetText(loc.GetText(KeyBrowse))
	ui.formatLabel.SetText(loc.GetText(KeyFormatLabel))
	ui.logLabel.SetText(loc.GetText(KeyLogLabel))
	ui.clearLogBtn.SetText(loc.GetText(KeyClearLog))
	ui.downloadBtn.SetText(loc.GetText(KeyDownload))
	ui.stopBtn.SetText(loc.GetText(KeyStopCurrent))
	ui.stopAllBtn.SetText(loc.GetText(KeyStopAll))

	mode := ui.selectedMode()
	ui.modeRadio.Options = ui.modeOptions()
	ui.setSelectedMode(mode)
	ui.modeRadio.Refresh()
	ui.refreshCounter()
}

// modeOptions returns the radio labels, video first
func (ui *RootUI) modeOptions() []string {
	return []string{
		ui.localization.GetText(KeyVideoOption),
		ui.localization.GetText(KeyAudioOption),
	}
}

// selectedMode maps the radio selection to a mode by position, so it stays
// correct while the option labels are being translated
func (ui *RootUI) selectedMode() model.Mode {
	opts := ui.modeRadio.Options
	if len(opts) > 1 && ui.modeRadio.Selected == opts[1] {
		return model.ModeAudio
	}
	return model.ModeVideo
}

func (ui *RootUI) setSelectedMode(mode model.Mode) {
	if mode == model.ModeAudio {
		ui.modeRadio.SetSelected(ui.localization.GetText(KeyAudioOption))
		return
	}
	ui.modeRadio.SetSelected(ui.localization.GetText(KeyVideoOption))
}

// validateURL validates the entered URL
func (ui *RootUI) validateURL(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil // Empty is allowed
	}
	if !platform.IsValidURL(input) {
		return download.ErrInvalidURL
	}
	return nil
}

// onURLChanged updates the start control and the status hint while typing
func (ui *RootUI) onURLChanged() {
	loc := ui.localization
	url := strings.TrimSpace(ui.urlEntry.Text)

	valid := url != "" && platform.IsValidURL(url)
	switch {
	case valid && platform.IsCollectionURL(url):
		ui.statusLabel.SetText(loc.GetText(KeyStatusPlaylist))
	case valid:
		ui.statusLabel.SetText(loc.GetText(KeyStatusVideo))
	case url != "":
		ui.statusLabel.SetText(loc.GetText(KeyStatusInvalid))
	default:
		ui.statusLabel.SetText(loc.GetText(KeyStatusEmpty))
	}
	ui.refreshDownloadButton()
}

// refreshDownloadButton enables start only for a valid URL while no
// download holds the start control
func (ui *RootUI) refreshDownloadButton() {
	url := strings.TrimSpace(ui.urlEntry.Text)
	if ui.startAllowed && url != "" && platform.IsValidURL(url) {
		ui.downloadBtn.Enable()
	} else {
		ui.downloadBtn.Disable()
	}
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	req := model.Request{
		URL:  strings.TrimSpace(ui.urlEntry.Text),
		Dir:  strings.TrimSpace(ui.dirEntry.Text),
		Mode: ui.selectedMode(),
	}

	task, err := ui.downloadSvc.Start(req)
	if err != nil {
		dialog.ShowError(err, ui.window)
		return
	}

	logging.L().Info("download started", zap.String("task_id", task.ID), zap.String("url", task.Request.URL))
	if req.Dir != "" {
		ui.settings.SetDownloadDirectory(req.Dir)
	}
}

// onBrowseDirectory handles directory browsing
func (ui *RootUI) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.dirEntry.SetText(uri.Path())
	}, ui.window)
}

// onOpenFolder reveals the download folder in the system file manager
func (ui *RootUI) onOpenFolder() {
	dir := strings.TrimSpace(ui.dirEntry.Text)
	if dir == "" {
		dir = download.DefaultDir
	}
	if err := platform.EnsureDir(dir); err != nil {
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningDir), err), ui.window)
		return
	}
	if err := platform.OpenFolder(dir); err != nil {
		logging.L().Warn("failed to open folder", zap.String("dir", dir), zap.Error(err))
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningDir), err), ui.window)
	}
}

// onClearLog empties the log and resets the progress bar
func (ui *RootUI) onClearLog() {
	ui.logView.Clear()
	ui.progressBar.SetValue(0)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		if ui.localization.GetCurrentLanguage() != ui.settings.GetLanguage() {
			ui.onLanguageChange(ui.settings.GetLanguage())
		}
	})
}

func (ui *RootUI) refreshCounter() {
	ui.counterLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyProgressFormat), ui.counter))
}

// SetStatus shows text in the status bar
func (ui *RootUI) SetStatus(text string) {
	fyne.Do(func() {
		ui.statusLabel.SetText(text)
	})
}

// SetPercent sets the progress bar, 0 to 100
func (ui *RootUI) SetPercent(percent float64) {
	fyne.Do(func() {
		ui.progressBar.SetValue(percent)
	})
}

// SetCounter sets the "Progress: done/total" label
func (ui *RootUI) SetCounter(done, total int) {
	fyne.Do(func() {
		ui.counter = model.FormatCounter(done, total)
		ui.refreshCounter()
	})
}

// SetStartEnabled allows or blocks starting a new download
func (ui *RootUI) SetStartEnabled(enabled bool) {
	fyne.Do(func() {
		ui.startAllowed = enabled
		ui.refreshDownloadButton()
	})
}

// AppendLog adds a line to the download log
func (ui *RootUI) AppendLog(level model.LogLevel, line string) {
	fyne.Do(func() {
		ui.logView.Append(level, line)
	})
}

// TaskFinished notifies about completed downloads
func (ui *RootUI) TaskFinished(task model.DownloadTask) {
	if task.State != model.TaskStateCompleted {
		return
	}

	fyne.Do(func() {
		fyne.CurrentApp().SendNotification(&fyne.Notification{
			Title:   ui.localization.GetText(KeyDownloadCompleted),
			Content: task.GetDisplayTitle(),
		})

		if ui.settings.GetOpenOnComplete() {
			if err := platform.OpenFolder(task.Request.Dir); err != nil {
				logging.L().Warn("failed to open folder", zap.String("dir", task.Request.Dir), zap.Error(err))
			}
		}
	})
}
