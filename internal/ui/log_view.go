package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ytdl-desktop/internal/model"
)

// LogView is a scrolling, colour-coded download log. Its methods must be
// called on the UI goroutine.
type LogView struct {
	text   *widget.RichText
	scroll *container.Scroll
}

// NewLogView creates an empty log view
func NewLogView() *LogView {
	text := widget.NewRichText()
	text.Wrapping = fyne.TextWrapWord

	scroll := container.NewVScroll(text)
	scroll.SetMinSize(fyne.NewSize(0, LogMinHeight))

	return &LogView{text: text, scroll: scroll}
}

// Object returns the canvas object to place in a layout
func (lv *LogView) Object() fyne.CanvasObject {
	return lv.scroll
}

// Append adds one line and scrolls to it
func (lv *LogView) Append(level model.LogLevel, line string) {
	seg := &widget.TextSegment{Text: line, Style: logStyle(level)}
	lv.text.Segments = append(lv.text.Segments, seg)
	if n := len(lv.text.Segments); n > MaxLogLines {
		lv.text.Segments = lv.text.Segments[n-MaxLogLines:]
	}
	lv.text.Refresh()
	lv.scroll.ScrollToBottom()
}

// Clear removes every line
func (lv *LogView) Clear() {
	lv.text.Segments = nil
	lv.text.Refresh()
}

// Lines returns the text of every line, oldest first
func (lv *LogView) Lines() []string {
	lines := make([]string, 0, len(lv.text.Segments))
	for _, seg := range lv.text.Segments {
		lines = append(lines, seg.Textual())
	}
	return lines
}

// logStyle maps a log level to its colour
func logStyle(level model.LogLevel) widget.RichTextStyle {
	style := widget.RichTextStyle{
		ColorName: theme.ColorNameForeground,
		SizeName:  theme.SizeNameText,
		TextStyle: fyne.TextStyle{Monospace: true},
	}
	switch level {
	case model.LogWarning:
		style.ColorName = theme.ColorNameWarning
	case model.LogError:
		style.ColorName = theme.ColorNameError
	case model.LogProgress:
		style.ColorName = theme.ColorNamePrimary
	}
	return style
}
