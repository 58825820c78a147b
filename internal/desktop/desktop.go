// Package desktop wires configuration, logging, history and the download
// service into the Fyne application.
package desktop

import (
	"fmt"

	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/ytdl-desktop/internal/config"
	"github.com/ytget/ytdl-desktop/internal/download"
	"github.com/ytget/ytdl-desktop/internal/fetch"
	"github.com/ytget/ytdl-desktop/internal/history"
	"github.com/ytget/ytdl-desktop/internal/logging"
	"github.com/ytget/ytdl-desktop/internal/platform"
	"github.com/ytget/ytdl-desktop/internal/ui"
)

const (
	AppID   = "com.ytget.ytdl-desktop"
	AppName = "YT Downloader"
)

// Run starts the application and blocks until its window is closed
func Run(version string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogMode, cfg.LogFile)
	if err != nil {
		return err
	}
	logging.SetLogger(logger)
	defer logger.Sync() //nolint:errcheck

	logger.Info("starting",
		zap.String("version", version),
		zap.String("config_file", cfg.File),
		zap.String("ytdlp", cfg.YTDLPPath))

	ffmpeg := platform.FFmpegLocation(cfg.FFmpegLocation)
	if ffmpeg == "" {
		logger.Info("no bundled ffmpeg, relying on PATH")
	}

	fetcher := fetch.NewYTDLP(cfg.YTDLPPath, cfg.ResolveTimeout)
	downloadSvc := download.NewService(fetcher, ffmpeg)

	// history is optional; the app works without it
	var store ui.HistoryStore
	if hs, err := history.Open(cfg.HistoryDB); err != nil {
		logger.Warn("download history disabled", zap.String("path", cfg.HistoryDB), zap.Error(err))
	} else {
		defer hs.Close()
		downloadSvc.SetRecorder(hs)
		store = hs
	}

	fyneApp := app.NewWithID(AppID)
	fyneApp.Settings().SetTheme(ui.NewCompactTheme())

	window := fyneApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	ui.NewRootUI(window, fyneApp, downloadSvc, store)

	window.ShowAndRun()

	// stop whatever is still running so yt-dlp processes do not outlive the window
	downloadSvc.SetSink(nil)
	downloadSvc.StopAll()
	downloadSvc.Wait()
	logger.Info("stopped")
	return nil
}
