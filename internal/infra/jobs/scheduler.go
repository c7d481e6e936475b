package jobs

import (
	"context"
	"log/slog"
	"time"
)

// Periodic submits a fresh job at a fixed interval. A run is skipped while
// the previous one has not terminated.
type Periodic struct {
	Interval time.Duration
	NewJob   func() Job
	Options  Options
}

// Schedule registers a periodic job. Jobs scheduled after Start begin at once.
func (jh *Handler) Schedule(p Periodic) {
	if p.Interval <= 0 {
		return
	}
	jh.mu.Lock()
	jh.periodic = append(jh.periodic, p)
	started := jh.started
	jh.mu.Unlock()
	if started {
		jh.loop(p)
	}
}

// Start runs the tidy-up ticker and the periodic jobs until Shutdown.
func (jh *Handler) Start(tidyUpInterval time.Duration) {
	jh.mu.Lock()
	if jh.started {
		jh.mu.Unlock()

		return
	}
	jh.started = true
	periodic := append([]Periodic(nil), jh.periodic...)
	jh.mu.Unlock()

	if tidyUpInterval > 0 {
		jh.every(tidyUpInterval, func() {
			if n := jh.TidyUp(); n > 0 {
				jh.logger.Debug("Removed terminated jobs", slog.Int("count", n))
			}
		})
	}
	for _, p := range periodic {
		jh.loop(p)
	}
}

func (jh *Handler) loop(p Periodic) {
	var last *Handle
	jh.every(p.Interval, func() {
		if last != nil && !last.Status().IsTerminated() {
			jh.logger.Debug("Skipping periodic job, previous run unfinished", slog.String("jobID", last.ID()))

			return
		}
		h, err := jh.Submit(context.Background(), p.NewJob(), p.Options)
		if err != nil {
			jh.logger.Warn("Failed to submit periodic job", slog.Any("error", err))

			return
		}
		last = h
	})
}

// every calls fn on each tick until the handler shuts down.
func (jh *Handler) every(interval time.Duration, fn func()) {
	jh.wg.Add(1)
	go func() {
		defer jh.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-jh.ctx.Done():
				return
			}
		}
	}()
}
