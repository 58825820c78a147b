package download

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/ytdl-desktop/internal/fetch"
	"github.com/ytget/ytdl-desktop/internal/history"
	"github.com/ytget/ytdl-desktop/internal/logging"
	"github.com/ytget/ytdl-desktop/internal/model"
	"github.com/ytget/ytdl-desktop/internal/platform"
)

// Status messages
const (
	StatusStopping    = "Stopping current download..."
	StatusNothingStop = "No active downloads to stop."
	StatusAllStopped  = "All downloads stopped."
	StatusFinished    = "Status: Finished"
)

// DefaultDir is used when a request has no destination
const DefaultDir = "downloads"

// taskHandle is the registry entry of a running task
type taskHandle struct {
	task   *model.DownloadTask
	stop   atomic.Bool
	cancel context.CancelFunc
}

// Service handles download operations
type Service struct {
	fetcher        fetch.Service
	ffmpegLocation string

	mu         sync.RWMutex
	tasks      map[string]*taskHandle
	order      []string // IDs of registered tasks by start time
	generation uint64
	sink       Sink
	recorder   history.Recorder

	wg sync.WaitGroup
}

var _ Downloader = (*Service)(nil)

// NewService creates a new download service
func NewService(fetcher fetch.Service, ffmpegLocation string) *Service {
	return &Service{
		fetcher:        fetcher,
		ffmpegLocation: ffmpegLocation,
		tasks:          make(map[string]*taskHandle),
		sink:           nopSink{},
	}
}

// SetSink sets where display updates and log lines go
func (s *Service) SetSink(sink Sink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sink == nil {
		sink = nopSink{}
	}
	s.sink = sink
}

// SetRecorder sets where finished tasks are recorded
func (s *Service) SetRecorder(recorder history.Recorder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recorder = recorder
}

// Start validates req, registers a task and runs it in the background
func (s *Service) Start(req model.Request) (*model.DownloadTask, error) {
	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		return nil, ErrEmptyURL
	}
	if !platform.IsValidURL(req.URL) {
		return nil, ErrInvalidURL
	}
	req.Dir = strings.TrimSpace(req.Dir)
	if req.Dir == "" {
		req.Dir = DefaultDir
	}
	if req.Mode == "" {
		req.Mode = model.ModeVideo
	}

	ctx, cancel := context.WithCancel(context.Background())
	h := &taskHandle{cancel: cancel}

	s.mu.Lock()
	h.task = model.NewDownloadTask(generateTaskID(), req, s.generation)
	s.tasks[h.task.ID] = h
	s.order = append(s.order, h.task.ID)
	sink := s.sink
	snapshot := *h.task
	s.mu.Unlock()

	kind := strings.ToLower(model.KindVideo)
	if platform.IsCollectionURL(req.URL) {
		kind = strings.ToLower(model.KindPlaylist)
	}
	sink.SetStartEnabled(false)
	sink.SetPercent(0)
	sink.SetStatus(fmt.Sprintf("Downloading %s...", kind))

	ctx = logging.NewContextS(ctx, "task_id", h.task.ID, "mode", req.Mode.String())
	logging.FromContext(ctx).Info("starting download", zap.String("url", req.URL), zap.String("dir", req.Dir))

	s.wg.Add(1)
	go s.run(ctx, h)

	return &snapshot, nil
}

// StopCurrent stops the most recently started task that is still running.
// It does not wait for it.
func (s *Service) StopCurrent() {
	s.mu.RLock()
	var h *taskHandle
	for i := len(s.order) - 1; i >= 0; i-- {
		if c := s.tasks[s.order[i]]; c.task.State.IsActive() {
			h = c
			break
		}
	}
	sink := s.sink
	s.mu.RUnlock()

	if h == nil {
		sink.SetStatus(StatusNothingStop)
		return
	}

	h.stop.Store(true)
	h.cancel()
	sink.SetStatus(StatusStopping)
	logging.L().Info("stop requested", zap.String("task_id", h.task.ID))
}

// StopAll stops every task and resets the display without waiting for the
// tasks to exit. Display updates from those tasks are ignored from now on.
func (s *Service) StopAll() {
	s.mu.Lock()
	handles := make([]*taskHandle, 0, len(s.tasks))
	for _, id := range s.order {
		handles = append(handles, s.tasks[id])
	}
	s.tasks = make(map[string]*taskHandle)
	s.order = nil
	s.generation++
	sink := s.sink
	s.mu.Unlock()

	for _, h := range handles {
		h.stop.Store(true)
		h.cancel()
	}

	if len(handles) == 0 {
		sink.SetStatus(StatusNothingStop)
		return
	}

	sink.SetStatus(fmt.Sprintf("Stopping %d active download(s)...", len(handles)))
	sink.SetPercent(0)
	sink.SetCounter(0, 0)
	sink.SetStartEnabled(true)
	sink.SetStatus(StatusAllStopped)
	logging.L().Info("stop all requested", zap.Int("tasks", len(handles)))
}

// ActiveTasks returns snapshots of registered tasks that have not reached an
// outcome yet, oldest first
func (s *Service) ActiveTasks() []*model.DownloadTask {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*model.DownloadTask, 0, len(s.order))
	for _, id := range s.order {
		task := s.tasks[id].task
		if !task.State.IsActive() {
			continue
		}
		snapshot := *task
		tasks = append(tasks, &snapshot)
	}
	return tasks
}

// GetTask returns a snapshot of a registered task by ID
func (s *Service) GetTask(id string) (*model.DownloadTask, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, exists := s.tasks[id]
	if !exists {
		return nil, false
	}
	snapshot := *h.task
	return &snapshot, true
}

// Wait blocks until every started task has exited
func (s *Service) Wait() {
	s.wg.Wait()
}

// run is the task goroutine
func (s *Service) run(ctx context.Context, h *taskHandle) {
	defer s.wg.Done()
	defer h.cancel()

	err := s.download(ctx, h)
	if err != nil && (h.stop.Load() || errors.Is(err, context.Canceled)) {
		err = ErrStoppedByUser
	}
	s.finish(ctx, h, err)
}

func (s *Service) download(ctx context.Context, h *taskHandle) error {
	req := h.task.Request

	s.setState(h, model.TaskStateResolving)
	if err := platform.EnsureDir(req.Dir); err != nil {
		return err
	}

	md, err := s.fetcher.Resolve(ctx, req.URL)
	if err != nil {
		return err
	}
	if h.stop.Load() {
		return ErrStoppedByUser
	}

	total := md.ItemCount()
	title := platform.SanitizeFilename(md.Title)
	s.mu.Lock()
	h.task.Title = title
	h.task.Kind = md.Kind()
	h.task.Progress.Total = total
	s.mu.Unlock()

	s.display(h, func(sink Sink) { sink.SetCounter(0, total) })
	if md.Collection {
		s.appendLog(model.LogInfo, "Downloading playlist: "+title)
		s.appendLog(model.LogInfo, fmt.Sprintf("Total videos in playlist: %d", total))
	} else {
		s.appendLog(model.LogInfo, "Downloading video: "+title)
		s.appendLog(model.LogInfo, fmt.Sprintf("Duration: %d seconds", int(md.Duration)))
	}

	s.setState(h, model.TaskStateTransferring)
	opts := fetch.NewOptions(req.Dir, req.Mode, s.ffmpegLocation)
	hooks := fetch.Hooks{
		Progress: func(ev fetch.Event) error { return s.onProgress(h, ev) },
		Log:      taskLog{s: s, h: h},
	}
	return s.fetcher.Fetch(ctx, req.URL, opts, hooks)
}

// onProgress handles one fetch progress event; an error aborts the transfer
func (s *Service) onProgress(h *taskHandle, ev fetch.Event) error {
	if h.stop.Load() {
		return ErrStoppedByUser
	}

	switch ev.Status {
	case fetch.StatusDownloading:
		percent := ev.Percent()
		if percent < 0 {
			return nil
		}
		etaSec := int(ev.ETA.Seconds())
		speed := FormatSpeed(ev.Speed)

		s.mu.Lock()
		p := &h.task.Progress
		p.Percent = percent
		p.Speed = speed
		p.ETASec = etaSec
		p.FragmentIndex = ev.FragmentIndex
		p.FragmentTotal = ev.FragmentCount
		s.mu.Unlock()

		s.display(h, func(sink Sink) { sink.SetPercent(percent) })
		s.appendLog(model.LogProgress, FormatProgressLine(percent, ev.Total, speed,
			model.FormatETA(etaSec), FormatFragments(ev.FragmentIndex, ev.FragmentCount)))

	case fetch.StatusFinished:
		s.mu.Lock()
		h.task.Progress.Percent = 100
		s.mu.Unlock()

		s.display(h, func(sink Sink) { sink.SetPercent(100) })
		s.appendLog(model.LogInfo, StatusFinished)
		if h.task.Request.Mode == model.ModeAudio {
			s.itemDone(h)
		}
	}
	return nil
}

// itemDone counts one finished item and updates the counter label
func (s *Service) itemDone(h *taskHandle) {
	if h.stop.Load() {
		return
	}

	s.mu.Lock()
	p := &h.task.Progress
	if p.Index < p.Total {
		p.Index++
	}
	done, total := p.Index, p.Total
	s.mu.Unlock()

	s.display(h, func(sink Sink) { sink.SetCounter(done, total) })
}

// finish records the outcome, unregisters the task and releases the display
func (s *Service) finish(ctx context.Context, h *taskHandle, err error) {
	log := logging.FromContext(ctx)

	s.mu.Lock()
	task := h.task
	switch {
	case err == nil:
		s.transition(task, model.TaskStateCompleted)
	case errors.Is(err, ErrStoppedByUser):
		s.transition(task, model.TaskStateCancelled)
		task.LastError = err.Error()
	default:
		s.transition(task, model.TaskStateFailed)
		task.LastError = err.Error()
	}
	task.FinishedAt = time.Now()
	final := *task
	s.mu.Unlock()

	done, total := final.Progress.Index, final.Progress.Total
	kind := final.Kind

	if err == nil {
		if kind == "" {
			kind = model.KindVideo
		}
		log.Info("download completed",
			zap.Duration("elapsed", final.Elapsed()),
			zap.String("items", final.CounterLabel()))
		s.display(h, func(sink Sink) {
			sink.SetStatus(kind + " download completed!")
			sink.SetCounter(done, total)
		})
	} else {
		log.Warn("download failed", zap.Error(err), zap.String("items", final.CounterLabel()))
		s.appendLog(model.LogError, "Error: "+err.Error())
		s.display(h, func(sink Sink) { sink.SetStatus("Error: " + err.Error()) })
	}

	s.record(ctx, &final)

	s.mu.Lock()
	s.unregister(task.ID)
	s.transition(task, model.TaskStateCleanedUp)
	s.mu.Unlock()

	s.display(h, func(sink Sink) {
		sink.SetStartEnabled(true)
		sink.SetPercent(0)
		if n, ok := sink.(CompletionNotifier); ok {
			n.TaskFinished(final)
		}
	})
}

func (s *Service) record(ctx context.Context, task *model.DownloadTask) {
	s.mu.RLock()
	recorder := s.recorder
	s.mu.RUnlock()

	if recorder == nil {
		return
	}
	if err := recorder.Record(context.WithoutCancel(ctx), task); err != nil {
		logging.FromContext(ctx).Error("failed to record history", zap.Error(err))
	}
}

func (s *Service) setState(h *taskHandle, state model.TaskState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transition(h.task, state)
}

// transition moves task forward; the caller holds s.mu
func (s *Service) transition(task *model.DownloadTask, state model.TaskState) {
	if task.State.CanTransition(state) {
		task.State = state
	}
}

// unregister removes id from the registry; the caller holds s.mu
func (s *Service) unregister(id string) {
	if _, ok := s.tasks[id]; !ok {
		return
	}
	delete(s.tasks, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// display applies fn to the sink unless h belongs to a generation that
// StopAll has already discarded
func (s *Service) display(h *taskHandle, fn func(Sink)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if h.task.Generation != s.generation {
		return
	}
	fn(s.sink)
}

// appendLog writes a line to the sink regardless of generation
func (s *Service) appendLog(level model.LogLevel, line string) {
	s.mu.RLock()
	sink := s.sink
	s.mu.RUnlock()
	sink.AppendLog(level, line)
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return "task-" + uuid.NewString()
}
