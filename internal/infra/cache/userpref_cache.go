package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"projectforge/internal/domain/entity"
	"projectforge/internal/domain/service"
	"projectforge/internal/errors"
)

const userPrefCacheName = "userPrefs"

// PrefStore persists preferences. Upserts must be serialized per natural key.
type PrefStore interface {
	FindByUser(ctx context.Context, userID int64) ([]*entity.UserPref, error)
	Upsert(ctx context.Context, pref *entity.UserPref) error
	Delete(ctx context.Context, userID int64, area, name string) error
}

// DemoChecker tells demo users apart. Their preferences are never persisted.
type DemoChecker interface {
	IsDemo(ctx context.Context, userID int64) bool
}

type prefKey struct {
	area string
	name string
}

type prefEntry struct {
	value      string
	persistent bool
	modified   bool
	lastUpdate time.Time
}

type userPrefs struct {
	mu      sync.Mutex
	entries map[prefKey]*prefEntry
	removed map[prefKey]struct{}
	// holders counts callers between acquire and release. Guarded by the
	// cache mutex. Held users are never evicted.
	holders int
}

func (u *userPrefs) dirty() bool {
	if len(u.removed) > 0 {
		return true
	}
	for _, e := range u.entries {
		if e.modified && e.persistent {
			return true
		}
	}

	return false
}

// UserPrefCache keeps user preferences in memory and writes modified entries
// back on flush, on refresh and on shutdown.
type UserPrefCache struct {
	*Base
	store PrefStore
	demo  DemoChecker
	clock service.Clock

	mu    sync.Mutex
	users map[int64]*userPrefs
}

// NewUserPrefCache creates a write-back cache flushing at least every ttl.
func NewUserPrefCache(store PrefStore, demo DemoChecker, ttl time.Duration, clock service.Clock, logger *slog.Logger) *UserPrefCache {
	c := &UserPrefCache{store: store, demo: demo, clock: clock, users: map[int64]*userPrefs{}}
	c.Base = NewBase(userPrefCacheName, ttl, clock, logger, c.flushAndEvict)

	return c
}

// acquire returns the preferences of a user, reading them on first access.
// The user stays in the cache until release is called.
func (c *UserPrefCache) acquire(ctx context.Context, userID int64) (*userPrefs, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if data, ok := c.users[userID]; ok {
		data.holders++

		return data, nil
	}

	data := &userPrefs{entries: map[prefKey]*prefEntry{}, removed: map[prefKey]struct{}{}}
	if !c.demo.IsDemo(ctx, userID) {
		prefs, err := c.store.FindByUser(ctx, userID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load user preferences")
		}
		for _, p := range prefs {
			data.entries[prefKey{p.Area, p.Name}] = &prefEntry{value: p.Value, persistent: true, lastUpdate: p.LastUpdate}
		}
	}
	data.holders = 1
	c.users[userID] = data

	return data, nil
}

// release must not be called while holding data.mu.
func (c *UserPrefCache) release(data *userPrefs) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data.holders--
}

// GetEntry returns the value stored under area and name.
func (c *UserPrefCache) GetEntry(ctx context.Context, userID int64, area, name string) (string, bool, error) {
	c.ensure(ctx)
	data, err := c.acquire(ctx, userID)
	if err != nil {
		return "", false, err
	}
	defer c.release(data)
	data.mu.Lock()
	defer data.mu.Unlock()
	e, ok := data.entries[prefKey{area, name}]
	if !ok {
		return "", false, nil
	}

	return e.value, true, nil
}

// PutEntry stores a value. Persistent entries are written on the next flush.
func (c *UserPrefCache) PutEntry(ctx context.Context, userID int64, area, name, value string, persistent bool) error {
	c.ensure(ctx)
	data, err := c.acquire(ctx, userID)
	if err != nil {
		return err
	}
	defer c.release(data)
	key := prefKey{area, name}
	data.mu.Lock()
	defer data.mu.Unlock()
	if e, ok := data.entries[key]; ok && e.value == value && e.persistent == persistent {
		return nil
	}
	data.entries[key] = &prefEntry{value: value, persistent: persistent, modified: true, lastUpdate: c.clock.Now()}
	delete(data.removed, key)

	return nil
}

// RemoveEntry drops a value. Persisted rows are deleted on the next flush.
func (c *UserPrefCache) RemoveEntry(ctx context.Context, userID int64, area, name string) error {
	c.ensure(ctx)
	data, err := c.acquire(ctx, userID)
	if err != nil {
		return err
	}
	defer c.release(data)
	key := prefKey{area, name}
	data.mu.Lock()
	defer data.mu.Unlock()
	e, ok := data.entries[key]
	if !ok {
		return nil
	}
	delete(data.entries, key)
	if e.persistent {
		data.removed[key] = struct{}{}
	}

	return nil
}

// Clear forgets the in-memory state of a user without flushing it.
func (c *UserPrefCache) Clear(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.users, userID)
}

// FlushToDB writes the modified persistent entries of one user.
func (c *UserPrefCache) FlushToDB(ctx context.Context, userID int64) error {
	c.mu.Lock()
	data, ok := c.users[userID]
	c.mu.Unlock()
	if !ok {
		return nil
	}

	return c.flushUser(ctx, userID, data)
}

func (c *UserPrefCache) flushUser(ctx context.Context, userID int64, data *userPrefs) error {
	data.mu.Lock()
	defer data.mu.Unlock()
	if c.demo.IsDemo(ctx, userID) {
		return nil
	}

	var errs []error
	for key := range data.removed {
		if err := c.store.Delete(ctx, userID, key.area, key.name); err != nil {
			errs = append(errs, err)

			continue
		}
		delete(data.removed, key)
	}
	for key, e := range data.entries {
		if !e.modified || !e.persistent {
			continue
		}
		pref := &entity.UserPref{UserID: userID, Area: key.area, Name: key.name, Value: e.value, LastUpdate: e.lastUpdate}
		if err := c.store.Upsert(ctx, pref); err != nil {
			errs = append(errs, err)

			continue
		}
		e.modified = false
	}

	return errors.Join(errs...)
}

// FlushAll writes the modified entries of all users.
func (c *UserPrefCache) FlushAll(ctx context.Context) error {
	c.mu.Lock()
	users := make(map[int64]*userPrefs, len(c.users))
	for id, data := range c.users {
		users[id] = data
	}
	c.mu.Unlock()

	var errs []error
	for userID, data := range users {
		if err := c.flushUser(ctx, userID, data); err != nil {
			c.logger.ErrorContext(ctx, "Failed to flush user preferences",
				slog.Int64("userID", userID), slog.Any("error", err))
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// flushAndEvict is the refresh of this cache: flush everything, then drop
// users without pending changes so they are reloaded on next access. Users
// held by a running call are kept.
func (c *UserPrefCache) flushAndEvict(ctx context.Context) error {
	err := c.FlushAll(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	for userID, data := range c.users {
		data.mu.Lock()
		if data.holders == 0 && !data.dirty() && !c.demo.IsDemo(ctx, userID) {
			delete(c.users, userID)
		}
		data.mu.Unlock()
	}

	return err
}
