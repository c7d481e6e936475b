package jobs

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/principal"
	"projectforge/internal/domain/service"
	"projectforge/internal/errors"
	"projectforge/internal/infra/metrics"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// Info is a point-in-time view of a job.
type Info struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Area       string     `json:"area"`
	Queue      string     `json:"queue"`
	Strategy   string     `json:"strategy"`
	UserID     *int64     `json:"userId,omitempty"`
	Status     Status     `json:"status"`
	Error      string     `json:"error,omitempty"`
	Message    string     `json:"message,omitempty"`
	Total      int64      `json:"total"`
	Processed  int64      `json:"processed"`
	Created    time.Time  `json:"created"`
	Started    *time.Time `json:"started,omitempty"`
	Terminated *time.Time `json:"terminated,omitempty"`
}

// Handle tracks one submitted job.
type Handle struct {
	id       string
	job      Job
	opts     Options
	userID   *int64
	progress *Progress
	cancel   context.CancelFunc
	done     chan struct{}

	mu         sync.RWMutex
	status     Status
	err        error
	created    time.Time
	started    time.Time
	terminated time.Time
}

// ID identifies the job in the handler.
func (h *Handle) ID() string {
	return h.id
}

// Progress is the progress shared with the running job.
func (h *Handle) Progress() *Progress {
	return h.progress
}

// Status returns the current state.
func (h *Handle) Status() Status {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.status
}

// Err is the error returned by a failed job.
func (h *Handle) Err() error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.err
}

// Done is closed when the job terminated.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the job terminated or ctx is done.
func (h *Handle) Wait(ctx context.Context) (Status, error) {
	select {
	case <-h.done:
		return h.Status(), h.Err()
	case <-ctx.Done():
		return h.Status(), ctx.Err()
	}
}

// Info returns a snapshot of the job.
func (h *Handle) Info() Info {
	h.mu.RLock()
	defer h.mu.RUnlock()

	info := Info{
		ID:        h.id,
		Title:     h.job.Title(),
		Area:      h.job.Area(),
		Queue:     h.opts.Queue,
		Strategy:  h.opts.Strategy.String(),
		UserID:    h.userID,
		Status:    h.status,
		Message:   h.progress.Message(),
		Total:     h.progress.Total(),
		Processed: h.progress.Processed(),
		Created:   h.created,
	}
	if h.err != nil {
		info.Error = h.err.Error()
	}
	if !h.started.IsZero() {
		started := h.started
		info.Started = &started
	}
	if !h.terminated.IsZero() {
		terminated := h.terminated
		info.Terminated = &terminated
	}

	return info
}

func (h *Handle) terminatedAt() (time.Time, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.terminated, h.status.IsTerminated()
}

// blocks reports whether h has to finish before next may start.
func (h *Handle) blocks(next *Handle) bool {
	if h.Status().IsTerminated() || h.opts.Queue != next.opts.Queue {
		return false
	}
	switch next.opts.Strategy {
	case QueuePerQueue:
		return true
	case QueuePerQueueAndUser:
		if h.userID == nil || next.userID == nil {
			return h.userID == next.userID
		}

		return *h.userID == *next.userID
	default:
		return false
	}
}

// HandlerConfig configures a Handler.
type HandlerConfig struct {
	Workers        int
	KeepTerminated time.Duration
	DefaultTimeout time.Duration
}

// Handler registers jobs and runs them on a bounded number of goroutines.
type Handler struct {
	cfg    HandlerConfig
	clock  service.Clock
	logger *slog.Logger
	sem    *semaphore.Weighted

	ctx       context.Context
	cancelAll context.CancelFunc
	wg        sync.WaitGroup

	mu       sync.Mutex
	jobs     map[string]*Handle
	periodic []Periodic
	started  bool
}

// NewHandler creates a handler. Workers below one are raised to one.
func NewHandler(cfg HandlerConfig, clock service.Clock, logger *slog.Logger) *Handler {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &Handler{
		cfg:       cfg,
		clock:     clock,
		logger:    logger.With(slog.String("component", "jobs")),
		sem:       semaphore.NewWeighted(int64(cfg.Workers)),
		ctx:       ctx,
		cancelAll: cancel,
		jobs:      map[string]*Handle{},
	}
}

// Submit registers the job and starts it once no earlier job of its queue
// blocks it. The principal in ctx becomes the owner of the job and is passed
// on to Run; ctx cancellation does not cancel the job.
func (jh *Handler) Submit(ctx context.Context, job Job, opts Options) (*Handle, error) {
	if jh.ctx.Err() != nil {
		return nil, errors.New("job handler is shut down")
	}
	if opts.Queue == "" {
		opts.Queue = job.Area()
	}
	if opts.Timeout == 0 {
		opts.Timeout = jh.cfg.DefaultTimeout
	}

	jobCtx, cancel := context.WithCancel(jh.ctx)
	h := &Handle{
		id:       uuid.NewString(),
		job:      job,
		opts:     opts,
		progress: newProgress(jh.clock, opts.Timeout),
		cancel:   cancel,
		done:     make(chan struct{}),
		status:   StatusWaiting,
		created:  jh.clock.Now(),
	}
	if p, ok := principal.From(ctx); ok {
		userID := p.UserID
		h.userID = &userID
		jobCtx = principal.With(jobCtx, p)
	}

	jh.mu.Lock()
	var blockers []*Handle
	for _, other := range jh.jobs {
		if other.blocks(h) {
			blockers = append(blockers, other)
		}
	}
	jh.jobs[h.id] = h
	jh.mu.Unlock()

	jh.logger.InfoContext(ctx, "Job submitted",
		slog.String("jobID", h.id),
		slog.String("title", job.Title()),
		slog.String("area", job.Area()),
		slog.Int("blockedBy", len(blockers)))

	jh.wg.Add(1)
	go jh.execute(jobCtx, h, blockers)

	return h, nil
}

func (jh *Handler) execute(ctx context.Context, h *Handle, blockers []*Handle) {
	defer jh.wg.Done()
	defer h.cancel()

	for _, b := range blockers {
		select {
		case <-b.done:
		case <-ctx.Done():
			jh.finish(ctx, h, StatusCanceled, nil)

			return
		}
	}
	if err := jh.sem.Acquire(ctx, 1); err != nil {
		jh.finish(ctx, h, StatusCanceled, nil)

		return
	}
	defer jh.sem.Release(1)
	if h.progress.Canceled() {
		jh.finish(ctx, h, StatusCanceled, nil)

		return
	}

	started := jh.clock.Now()
	h.mu.Lock()
	h.status = StatusRunning
	h.started = started
	h.mu.Unlock()
	h.progress.start(started)

	metrics.JobsRunning.Inc()
	err := jh.run(ctx, h)
	metrics.JobsRunning.Dec()

	switch {
	case h.progress.Canceled() || ctx.Err() != nil:
		jh.finish(ctx, h, StatusCanceled, err)
	case err != nil:
		jh.finish(ctx, h, StatusFailed, err)
	default:
		jh.finish(ctx, h, StatusFinished, nil)
	}
}

func (jh *Handler) run(ctx context.Context, h *Handle) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("job panicked: %v", r)
		}
	}()

	return h.job.Run(ctx, h.progress)
}

func (jh *Handler) finish(ctx context.Context, h *Handle, status Status, err error) {
	h.mu.Lock()
	h.status = status
	h.err = err
	h.terminated = jh.clock.Now()
	h.mu.Unlock()
	close(h.done)

	metrics.JobsTotal.WithLabelValues(h.job.Area(), string(status)).Inc()
	attrs := []any{
		slog.String("jobID", h.id),
		slog.String("title", h.job.Title()),
		slog.String("status", string(status)),
	}
	if h.progress.TimeoutReached() {
		attrs = append(attrs, slog.Duration("timeout", h.opts.Timeout))
	}
	if err != nil {
		jh.logger.ErrorContext(ctx, "Job terminated with error", append(attrs, slog.Any("error", err))...)

		return
	}
	jh.logger.InfoContext(ctx, "Job terminated", attrs...)
}

// Cancel asks a job to stop. Waiting jobs never start. Terminated jobs are
// left unchanged.
func (jh *Handler) Cancel(id string) error {
	h, err := jh.handle(id)
	if err != nil {
		return err
	}
	if h.Status().IsTerminated() {
		return nil
	}
	h.progress.Cancel()
	h.cancel()

	return nil
}

// Get returns a snapshot of one job.
func (jh *Handler) Get(id string) (Info, error) {
	h, err := jh.handle(id)
	if err != nil {
		return Info{}, err
	}

	return h.Info(), nil
}

// Handle returns the live handle of a job.
func (jh *Handler) Handle(id string) (*Handle, error) {
	return jh.handle(id)
}

func (jh *Handler) handle(id string) (*Handle, error) {
	jh.mu.Lock()
	defer jh.mu.Unlock()
	h, ok := jh.jobs[id]
	if !ok {
		return nil, domainerrors.ErrJobNotFound.WithDetails(id)
	}

	return h, nil
}

// List returns all registered jobs, oldest first. An empty area lists all.
func (jh *Handler) List(area string) []Info {
	jh.mu.Lock()
	handles := make([]*Handle, 0, len(jh.jobs))
	for _, h := range jh.jobs {
		if area == "" || h.job.Area() == area {
			handles = append(handles, h)
		}
	}
	jh.mu.Unlock()

	infos := make([]Info, 0, len(handles))
	for _, h := range handles {
		infos = append(infos, h.Info())
	}
	slices.SortFunc(infos, func(a, b Info) int {
		if c := a.Created.Compare(b.Created); c != 0 {
			return c
		}

		return strings.Compare(a.ID, b.ID)
	})

	return infos
}

// IsRunning reports whether an unfinished job exists in the area.
func (jh *Handler) IsRunning(area string) bool {
	jh.mu.Lock()
	defer jh.mu.Unlock()
	for _, h := range jh.jobs {
		if h.job.Area() == area && !h.Status().IsTerminated() {
			return true
		}
	}

	return false
}

// TidyUp forgets jobs terminated longer ago than the keep interval and
// returns how many were removed.
func (jh *Handler) TidyUp() int {
	now := jh.clock.Now()
	jh.mu.Lock()
	defer jh.mu.Unlock()

	removed := 0
	for id, h := range jh.jobs {
		terminated, ok := h.terminatedAt()
		if ok && now.Sub(terminated) > jh.cfg.KeepTerminated {
			delete(jh.jobs, id)
			removed++
		}
	}

	return removed
}

// Shutdown cancels all jobs and waits for them until ctx is done.
func (jh *Handler) Shutdown(ctx context.Context) error {
	jh.mu.Lock()
	for _, h := range jh.jobs {
		h.progress.Cancel()
	}
	jh.mu.Unlock()
	jh.cancelAll()

	done := make(chan struct{})
	go func() {
		jh.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "jobs did not stop in time")
	}
}
