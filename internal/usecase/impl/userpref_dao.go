package impl

import (
	"context"
	"sync"

	"projectforge/internal/domain/entity"
	"projectforge/internal/domain/repository"
	"projectforge/internal/errors"
)

// UserPrefDao persists preferences through the transaction manager. Writes
// are serialized so two flushes never race on the same natural key.
type UserPrefDao struct {
	txManager repository.TransactionManager
	prefs     repository.UserPrefRepository

	mu sync.Mutex
}

// NewUserPrefDao is the constructor for UserPrefDao.
func NewUserPrefDao(txManager repository.TransactionManager, prefs repository.UserPrefRepository) *UserPrefDao {
	return &UserPrefDao{txManager: txManager, prefs: prefs}
}

// FindByUser loads all preferences of a user.
func (d *UserPrefDao) FindByUser(ctx context.Context, userID int64) ([]*entity.UserPref, error) {
	prefs, err := d.prefs.FindByUser(ctx, userID)

	return prefs, errors.Wrap(err, "failed to load user preferences")
}

// Upsert inserts or replaces one preference.
func (d *UserPrefDao) Upsert(ctx context.Context, pref *entity.UserPref) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return errors.Wrap(repos.NewUserPrefRepository().Upsert(ctx, pref), "failed to save user preference")
	})
}

// Delete removes one preference.
func (d *UserPrefDao) Delete(ctx context.Context, userID int64, area, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return errors.Wrap(repos.NewUserPrefRepository().Delete(ctx, userID, area, name), "failed to delete user preference")
	})
}
