package repository

import (
	"context"

	"projectforge/internal/domain/entity"
)

// UserPrefRepository persists user preferences keyed by (user, area, name).
type UserPrefRepository interface {
	// FindByUser loads all preferences of a user.
	FindByUser(ctx context.Context, userID int64) ([]*entity.UserPref, error)

	// Upsert inserts or replaces the row with the same natural key.
	Upsert(ctx context.Context, pref *entity.UserPref) error

	// Delete removes one preference. Missing rows are not an error.
	Delete(ctx context.Context, userID int64, area, name string) error
}
