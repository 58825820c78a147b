package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ytdl-desktop/internal/history"
	"github.com/ytget/ytdl-desktop/internal/logging"
)

// HistoryStore lists and clears recorded downloads
type HistoryStore interface {
	List(ctx context.Context, limit int) ([]history.Entry, error)
	Clear(ctx context.Context) error
}

// historyLine renders one entry as a list row
func historyLine(e history.Entry) string {
	line := e.FinishedAt.Local().Format(HistoryTimeLayout) + MiddleDotSeparator +
		e.State.String() + MiddleDotSeparator + e.DisplayTitle()
	if e.Kind != "" {
		line += fmt.Sprintf(" (%s, %s, %d)", e.Kind, e.Mode, e.Items)
	}
	if e.Error != "" {
		line += MiddleDotSeparator + e.Error
	}
	return line
}

// showHistoryDialog lists recent downloads with a button to clear them
func (ui *RootUI) showHistoryDialog() {
	loc := ui.localization
	if ui.history == nil {
		dialog.ShowInformation(loc.GetText(KeyHistory), loc.GetText(KeyHistoryDisabled), ui.window)
		return
	}

	entries, err := ui.history.List(context.Background(), ui.settings.GetHistoryLimit())
	if err != nil {
		logging.L().Sugar().Errorw("failed to load history", "error", err)
		dialog.ShowError(err, ui.window)
		return
	}

	list := widget.NewList(
		func() int { return len(entries) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id < len(entries) {
				item.(*widget.Label).SetText(historyLine(entries[id]))
			}
		},
	)

	empty := widget.NewLabel(loc.GetText(KeyHistoryEmpty))
	if len(entries) > 0 {
		empty.Hide()
	}

	clearBtn := widget.NewButton(loc.GetText(KeyClear), func() {
		if err := ui.history.Clear(context.Background()); err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		entries = nil
		list.Refresh()
		empty.Show()
	})
	clearBtn.Importance = widget.DangerImportance

	content := container.NewBorder(empty, clearBtn, nil, nil, list)
	d := dialog.NewCustom(loc.GetText(KeyHistory), loc.GetText(KeyClose), content, ui.window)
	d.Resize(fyne.NewSize(HistoryDialogWidth, HistoryDialogHeight))
	d.Show()
}
