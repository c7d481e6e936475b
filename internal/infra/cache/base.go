// Package cache holds in-memory snapshots of data that is read far more often
// than it is written. Each cache serves an immutable snapshot and swaps it
// atomically after a rebuild, so readers never see a half-built generation.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"projectforge/internal/domain/service"
	"projectforge/internal/errors"
	"projectforge/internal/infra/metrics"

	"golang.org/x/sync/singleflight"
)

// RefreshFunc rebuilds the data of a cache.
type RefreshFunc func(ctx context.Context) error

// Base tracks expiry and serializes refreshes of one cache.
type Base struct {
	name    string
	ttl     time.Duration
	clock   service.Clock
	logger  *slog.Logger
	refresh RefreshFunc

	mu          sync.Mutex // held while refreshing or updating
	group       singleflight.Group
	expired     atomic.Bool
	refreshing  atomic.Bool
	loaded      atomic.Bool
	lastRefresh atomic.Int64
}

// NewBase creates the bookkeeping of a cache. The cache starts expired.
func NewBase(name string, ttl time.Duration, clock service.Clock, logger *slog.Logger, refresh RefreshFunc) *Base {
	b := &Base{
		name:    name,
		ttl:     ttl,
		clock:   clock,
		logger:  logger.With(slog.String("cache", name)),
		refresh: refresh,
	}
	b.expired.Store(true)

	return b
}

// Name identifies the cache in logs and metrics.
func (b *Base) Name() string {
	return b.name
}

// SetExpired forces a rebuild on the next access.
func (b *Base) SetExpired() {
	b.expired.Store(true)
}

// IsExpired reports whether the next access rebuilds the cache.
func (b *Base) IsExpired() bool {
	if b.expired.Load() {
		return true
	}

	return b.clock.Now().Sub(b.LastRefresh()) >= b.ttl
}

// LastRefresh is the start time of the last successful refresh.
func (b *Base) LastRefresh() time.Time {
	nanos := b.lastRefresh.Load()
	if nanos == 0 {
		return time.Time{}
	}

	return time.Unix(0, nanos)
}

// CheckRefresh rebuilds the cache when it is expired. While another goroutine
// rebuilds a cache that was loaded before, the caller keeps reading the old
// generation. Concurrent callers of a never loaded cache share one rebuild.
func (b *Base) CheckRefresh(ctx context.Context) error {
	if !b.IsExpired() {
		return nil
	}
	if b.loaded.Load() && b.refreshing.Load() {
		return nil
	}
	_, err, _ := b.group.Do(b.name, func() (any, error) {
		if !b.IsExpired() {
			return nil, nil
		}

		return nil, b.ForceRefresh(ctx)
	})

	return err
}

// ForceRefresh rebuilds the cache regardless of its state.
func (b *Base) ForceRefresh(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refreshing.Store(true)
	defer b.refreshing.Store(false)

	start := b.clock.Now()
	began := time.Now()
	// Cleared first so that SetExpired during the rebuild triggers another one.
	b.expired.Store(false)
	err := b.refresh(ctx)
	metrics.CacheRefreshDuration.WithLabelValues(b.name).Observe(time.Since(began).Seconds())
	if err != nil {
		b.expired.Store(true)
		metrics.CacheRefreshTotal.WithLabelValues(b.name, "error").Inc()
		b.logger.ErrorContext(ctx, "Cache refresh failed", slog.Any("error", err))

		return errors.Wrapf(err, "failed to refresh cache %s", b.name)
	}
	b.lastRefresh.Store(start.UnixNano())
	b.loaded.Store(true)
	metrics.CacheRefreshTotal.WithLabelValues(b.name, "ok").Inc()
	b.logger.DebugContext(ctx, "Cache refreshed", slog.Duration("duration", time.Since(began)))

	return nil
}

// Update runs fn while no refresh is running. Used for partial updates of
// the current snapshot.
func (b *Base) Update(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn()
}

// ensure refreshes if needed and logs a failure. Getters keep serving the
// previous generation on error.
func (b *Base) ensure(ctx context.Context) {
	if err := b.CheckRefresh(ctx); err != nil {
		b.logger.WarnContext(ctx, "Serving stale cache data", slog.Any("error", err))
	}
}

// generation numbers snapshots of all caches.
var generation atomic.Uint64

func nextGeneration(cacheName string) uint64 {
	gen := generation.Add(1)
	metrics.CacheGeneration.WithLabelValues(cacheName).Set(float64(gen))

	return gen
}
