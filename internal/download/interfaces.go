package download

import (
	"github.com/ytget/ytdl-desktop/internal/history"
	"github.com/ytget/ytdl-desktop/internal/model"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	SetSink(sink Sink)
	SetRecorder(recorder history.Recorder)
	Start(req model.Request) (*model.DownloadTask, error)
	StopCurrent()
	StopAll()
	ActiveTasks() []*model.DownloadTask
	GetTask(id string) (*model.DownloadTask, bool)
}

// Sink receives display updates and log lines. Methods may be called from
// any goroutine.
type Sink interface {
	SetStatus(text string)
	SetPercent(percent float64)
	SetCounter(done, total int)
	SetStartEnabled(enabled bool)
	AppendLog(level model.LogLevel, line string)
}

// CompletionNotifier is implemented by sinks that want the outcome of each task
type CompletionNotifier interface {
	TaskFinished(task model.DownloadTask)
}

type nopSink struct{}

func (nopSink) SetStatus(string)                 {}
func (nopSink) SetPercent(float64)               {}
func (nopSink) SetCounter(int, int)              {}
func (nopSink) SetStartEnabled(bool)             {}
func (nopSink) AppendLog(model.LogLevel, string) {}
