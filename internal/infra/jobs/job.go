// Package jobs runs long running work such as re-indexing in the background.
// Jobs are registered in a Handler, report their progress and stop
// cooperatively when canceled or when their timeout is reached.
package jobs

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"projectforge/internal/domain/service"
)

// Status is the lifecycle state of a job.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusRunning  Status = "RUNNING"
	StatusCanceled Status = "CANCELED"
	StatusFinished Status = "FINISHED"
	StatusFailed   Status = "FAILED"
)

// IsTerminated reports whether the job will not change anymore.
func (s Status) IsTerminated() bool {
	return s == StatusCanceled || s == StatusFinished || s == StatusFailed
}

// QueueStrategy decides whether a new job waits for earlier jobs of its queue.
type QueueStrategy int

const (
	// QueueNone runs the job immediately.
	QueueNone QueueStrategy = iota
	// QueuePerQueue waits for all unfinished jobs of the same queue.
	QueuePerQueue
	// QueuePerQueueAndUser waits for unfinished jobs of the same queue and user.
	QueuePerQueueAndUser
)

func (s QueueStrategy) String() string {
	switch s {
	case QueuePerQueue:
		return "PER_QUEUE"
	case QueuePerQueueAndUser:
		return "PER_QUEUE_AND_USER"
	default:
		return "NONE"
	}
}

// Job is a unit of background work.
type Job interface {
	Title() string
	Area() string
	// Run does the work. Long loops check p.Canceled() and return early.
	Run(ctx context.Context, p *Progress) error
}

// Options control how a job is queued.
type Options struct {
	// Queue defaults to the area of the job.
	Queue    string
	Strategy QueueStrategy
	// Timeout defaults to the handler's default timeout. Zero means none.
	Timeout time.Duration
}

// Progress is shared between a running job and the handler.
type Progress struct {
	clock   service.Clock
	timeout time.Duration

	mu        sync.Mutex
	started   time.Time
	total     atomic.Int64
	processed atomic.Int64
	canceled  atomic.Bool
	message   string
}

func newProgress(clock service.Clock, timeout time.Duration) *Progress {
	return &Progress{clock: clock, timeout: timeout}
}

func (p *Progress) start(at time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.started = at
}

// SetTotal sets the number of items to process.
func (p *Progress) SetTotal(n int64) {
	p.total.Store(n)
}

// Add counts processed items.
func (p *Progress) Add(n int64) {
	p.processed.Add(n)
}

// Total is the number of items to process.
func (p *Progress) Total() int64 {
	return p.total.Load()
}

// Processed is the number of items done so far.
func (p *Progress) Processed() int64 {
	return p.processed.Load()
}

// SetMessage stores a short text shown in job listings.
func (p *Progress) SetMessage(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.message = msg
}

// Message returns the text set by SetMessage.
func (p *Progress) Message() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.message
}

// Cancel asks the job to stop.
func (p *Progress) Cancel() {
	p.canceled.Store(true)
}

// TimeoutReached reports whether the job has been running longer than its timeout.
func (p *Progress) TimeoutReached() bool {
	if p.timeout <= 0 {
		return false
	}
	p.mu.Lock()
	started := p.started
	p.mu.Unlock()
	if started.IsZero() {
		return false
	}

	return p.clock.Now().Sub(started) >= p.timeout
}

// Canceled is true after Cancel or once the timeout is reached.
func (p *Progress) Canceled() bool {
	return p.canceled.Load() || p.TimeoutReached()
}
