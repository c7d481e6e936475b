package repository

import (
	"context"
	"time"

	"projectforge/internal/domain/entity"
)

// UserRepository persists users.
type UserRepository interface {
	EntityRepository[entity.User]

	// FindByUsername retrieves a user by login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindAll loads every user including deactivated and deleted ones.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByIDs loads the given users in one query. Missing ids are skipped.
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.User, error)

	// UpdateLastLogin touches the login timestamp without writing history.
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
}

// GroupRepository persists groups and their user assignments.
type GroupRepository interface {
	EntityRepository[entity.Group]

	// FindAll loads every group with its assigned user ids.
	FindAll(ctx context.Context) ([]*entity.Group, error)
}

// CustomerRepository persists customers.
type CustomerRepository interface {
	EntityRepository[entity.Customer]
}
