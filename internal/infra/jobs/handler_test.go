package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/principal"
	"projectforge/internal/testutil"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcJob struct {
	title string
	area  string
	run   func(ctx context.Context, p *Progress) error
}

func (j *funcJob) Title() string { return j.title }
func (j *funcJob) Area() string  { return j.area }
func (j *funcJob) Run(ctx context.Context, p *Progress) error {
	if j.run == nil {
		return nil
	}

	return j.run(ctx, p)
}

// gatedJob runs until release is closed and signals when it started.
func gatedJob(area string, started chan<- string, release <-chan struct{}, name string) *funcJob {
	return &funcJob{title: name, area: area, run: func(ctx context.Context, p *Progress) error {
		started <- name
		select {
		case <-release:
		case <-ctx.Done():
		}

		return nil
	}}
}

type handlerFixtures struct {
	handler *Handler
	clock   *testutil.StubClock
}

func createTestHandler(t *testing.T, workers int) handlerFixtures {
	clock := testutil.FixedClock()
	handler := NewHandler(HandlerConfig{
		Workers:        workers,
		KeepTerminated: time.Minute,
	}, clock, testutil.DiscardLogger())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = handler.Shutdown(ctx)
	})

	return handlerFixtures{handler: handler, clock: clock}
}

func wait(t *testing.T, h *Handle) Status {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	status, err := h.Wait(ctx)
	require.NotErrorIs(t, err, context.DeadlineExceeded)

	return status
}

func TestHandler_StatusTransitions(t *testing.T) {
	fx := createTestHandler(t, 2)
	started := make(chan string, 1)
	release := make(chan struct{})

	h, err := fx.handler.Submit(context.Background(), gatedJob("test", started, release, "job"), Options{})
	require.NoError(t, err)

	<-started
	assert.Equal(t, StatusRunning, h.Status())
	info, err := fx.handler.Get(h.ID())
	require.NoError(t, err)
	assert.NotNil(t, info.Started)
	assert.Nil(t, info.Terminated)

	close(release)
	assert.Equal(t, StatusFinished, wait(t, h))
	info, err = fx.handler.Get(h.ID())
	require.NoError(t, err)
	assert.NotNil(t, info.Terminated)
}

func TestHandler_Failed(t *testing.T) {
	fx := createTestHandler(t, 1)

	h, err := fx.handler.Submit(context.Background(), &funcJob{title: "boom", area: "test",
		run: func(context.Context, *Progress) error { return errors.New("boom") },
	}, Options{})
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, wait(t, h))
	assert.EqualError(t, h.Err(), "boom")
	info, _ := fx.handler.Get(h.ID())
	assert.Equal(t, "boom", info.Error)
}

func TestHandler_PanicFails(t *testing.T) {
	fx := createTestHandler(t, 1)

	h, err := fx.handler.Submit(context.Background(), &funcJob{title: "panic", area: "test",
		run: func(context.Context, *Progress) error { panic("oops") },
	}, Options{})
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, wait(t, h))
	assert.Contains(t, h.Err().Error(), "oops")
}

func TestHandler_Cancel(t *testing.T) {
	fx := createTestHandler(t, 1)
	started := make(chan struct{})

	h, err := fx.handler.Submit(context.Background(), &funcJob{title: "loop", area: "test",
		run: func(ctx context.Context, p *Progress) error {
			close(started)
			for !p.Canceled() {
				time.Sleep(time.Millisecond)
			}

			return nil
		},
	}, Options{})
	require.NoError(t, err)
	<-started

	require.NoError(t, fx.handler.Cancel(h.ID()))
	assert.Equal(t, StatusCanceled, wait(t, h))

	// Canceling a terminated job changes nothing.
	require.NoError(t, fx.handler.Cancel(h.ID()))
	assert.Equal(t, StatusCanceled, h.Status())
}

func TestHandler_CancelUnknown(t *testing.T) {
	fx := createTestHandler(t, 1)

	err := fx.handler.Cancel("missing")
	assert.True(t, errors.Is(err, domainerrors.ErrJobNotFound))
	_, err = fx.handler.Get("missing")
	assert.True(t, errors.Is(err, domainerrors.ErrJobNotFound))
}

func TestHandler_Timeout(t *testing.T) {
	fx := createTestHandler(t, 1)
	started := make(chan struct{})
	var checks atomic.Int64

	h, err := fx.handler.Submit(context.Background(), &funcJob{title: "slow", area: "test",
		run: func(ctx context.Context, p *Progress) error {
			close(started)
			for !p.Canceled() {
				checks.Add(1)
				time.Sleep(time.Millisecond)
			}
			assert.True(t, p.TimeoutReached())

			return nil
		},
	}, Options{Timeout: 10 * time.Second})
	require.NoError(t, err)
	<-started

	assert.False(t, h.Progress().TimeoutReached())
	fx.clock.Advance(10 * time.Second)

	assert.Equal(t, StatusCanceled, wait(t, h))
	assert.Positive(t, checks.Load())
}

func TestProgress_TimeoutReached(t *testing.T) {
	clock := testutil.FixedClock()
	p := newProgress(clock, 10*time.Second)

	assert.False(t, p.TimeoutReached(), "not started")
	p.start(clock.Now())
	assert.False(t, p.TimeoutReached())
	clock.Advance(10*time.Second - time.Millisecond)
	assert.False(t, p.TimeoutReached())
	clock.Advance(time.Millisecond)
	assert.True(t, p.TimeoutReached())
	assert.True(t, p.Canceled())

	unbounded := newProgress(clock, 0)
	unbounded.start(clock.Now())
	clock.Advance(24 * time.Hour)
	assert.False(t, unbounded.TimeoutReached())
}

func TestHandle_Blocks(t *testing.T) {
	user := func(id int64) *int64 { return &id }
	newHandle := func(strategy QueueStrategy, userID *int64) *Handle {
		return &Handle{
			job:    &funcJob{title: "job1", area: "area"},
			opts:   Options{Queue: "area", Strategy: strategy},
			userID: userID,
			status: StatusRunning,
		}
	}

	running := newHandle(QueueNone, nil)
	assert.False(t, running.blocks(newHandle(QueueNone, nil)))
	assert.True(t, running.blocks(newHandle(QueuePerQueue, nil)))
	assert.True(t, running.blocks(newHandle(QueuePerQueue, user(5))))
	assert.True(t, running.blocks(newHandle(QueuePerQueueAndUser, nil)), "both users unset")
	assert.False(t, running.blocks(newHandle(QueuePerQueueAndUser, user(5))))

	running = newHandle(QueueNone, user(5))
	assert.True(t, running.blocks(newHandle(QueuePerQueueAndUser, user(5))))
	assert.False(t, running.blocks(newHandle(QueuePerQueueAndUser, user(6))))

	other := newHandle(QueueNone, nil)
	other.opts.Queue = "other"
	assert.False(t, other.blocks(newHandle(QueuePerQueue, nil)))

	finished := newHandle(QueueNone, nil)
	finished.status = StatusFinished
	assert.False(t, finished.blocks(newHandle(QueuePerQueue, nil)))
}

func TestHandler_QueueBlocking(t *testing.T) {
	fx := createTestHandler(t, 4)
	started := make(chan string, 2)
	release1 := make(chan struct{})
	release2 := make(chan struct{})
	defer close(release2)

	h1, err := fx.handler.Submit(context.Background(), gatedJob("import", started, release1, "first"), Options{})
	require.NoError(t, err)
	assert.Equal(t, "first", <-started)

	h2, err := fx.handler.Submit(context.Background(), gatedJob("import", started, release2, "second"),
		Options{Strategy: QueuePerQueue})
	require.NoError(t, err)

	select {
	case name := <-started:
		t.Fatalf("%s started while the queue was blocked", name)
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, StatusWaiting, h2.Status())

	close(release1)
	assert.Equal(t, StatusFinished, wait(t, h1))
	assert.Equal(t, "second", <-started)
}

func TestHandler_PerUserQueue(t *testing.T) {
	fx := createTestHandler(t, 4)
	started := make(chan string, 2)
	release := make(chan struct{})
	defer close(release)

	ctx5 := principal.With(context.Background(), &principal.Principal{UserID: 5})
	ctx6 := principal.With(context.Background(), &principal.Principal{UserID: 6})

	_, err := fx.handler.Submit(ctx5, gatedJob("export", started, release, "user5"), Options{})
	require.NoError(t, err)
	<-started

	h, err := fx.handler.Submit(ctx6, gatedJob("export", started, release, "user6"),
		Options{Strategy: QueuePerQueueAndUser})
	require.NoError(t, err)
	assert.Equal(t, "user6", <-started, "jobs of other users are not blocked")
	require.NotNil(t, h.Info().UserID)
	assert.Equal(t, int64(6), *h.Info().UserID)
}

func TestHandler_CancelWaiting(t *testing.T) {
	fx := createTestHandler(t, 1)
	started := make(chan string, 2)
	release := make(chan struct{})
	defer close(release)

	_, err := fx.handler.Submit(context.Background(), gatedJob("a", started, release, "first"), Options{})
	require.NoError(t, err)
	<-started

	// One worker only: the second job waits for the semaphore.
	h, err := fx.handler.Submit(context.Background(), gatedJob("b", started, release, "second"), Options{})
	require.NoError(t, err)
	require.NoError(t, fx.handler.Cancel(h.ID()))

	assert.Equal(t, StatusCanceled, wait(t, h))
	info, _ := fx.handler.Get(h.ID())
	assert.Nil(t, info.Started)
}

func TestHandler_TidyUp(t *testing.T) {
	fx := createTestHandler(t, 1)

	h, err := fx.handler.Submit(context.Background(), &funcJob{title: "quick", area: "test"}, Options{})
	require.NoError(t, err)
	wait(t, h)

	assert.Equal(t, 0, fx.handler.TidyUp())
	assert.Len(t, fx.handler.List(""), 1)

	fx.clock.Advance(time.Minute + time.Second)
	assert.Equal(t, 1, fx.handler.TidyUp())
	assert.Empty(t, fx.handler.List(""))
	_, err = fx.handler.Get(h.ID())
	assert.Error(t, err)
}

func TestHandler_ListAndIsRunning(t *testing.T) {
	fx := createTestHandler(t, 2)
	started := make(chan string, 1)
	release := make(chan struct{})

	_, err := fx.handler.Submit(context.Background(), gatedJob("reindex", started, release, "running"), Options{})
	require.NoError(t, err)
	<-started
	fx.clock.Advance(time.Second)
	done, err := fx.handler.Submit(context.Background(), &funcJob{title: "done", area: "other"}, Options{})
	require.NoError(t, err)
	wait(t, done)

	all := fx.handler.List("")
	require.Len(t, all, 2)
	assert.Equal(t, "running", all[0].Title)
	assert.Len(t, fx.handler.List("reindex"), 1)
	assert.True(t, fx.handler.IsRunning("reindex"))
	assert.False(t, fx.handler.IsRunning("other"))

	close(release)
}

func TestHandler_ShutdownCancelsJobs(t *testing.T) {
	fx := createTestHandler(t, 1)
	started := make(chan string, 1)
	release := make(chan struct{})
	defer close(release)

	h, err := fx.handler.Submit(context.Background(), gatedJob("test", started, release, "job"), Options{})
	require.NoError(t, err)
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, fx.handler.Shutdown(ctx))
	assert.Equal(t, StatusCanceled, h.Status())

	_, err = fx.handler.Submit(context.Background(), &funcJob{title: "late", area: "test"}, Options{})
	assert.Error(t, err)
}

func TestHandler_Schedule(t *testing.T) {
	fx := createTestHandler(t, 1)
	var runs atomic.Int64

	fx.handler.Schedule(Periodic{
		Interval: 5 * time.Millisecond,
		NewJob: func() Job {
			return &funcJob{title: "flush", area: "userPrefs", run: func(context.Context, *Progress) error {
				runs.Add(1)

				return nil
			}}
		},
	})
	fx.handler.Start(0)

	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, 5*time.Second, 5*time.Millisecond)
}
