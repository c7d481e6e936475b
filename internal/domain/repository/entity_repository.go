// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"projectforge/internal/domain/query"
)

var (
	// ErrEntityNotFound is returned when no row exists for an id or key.
	ErrEntityNotFound = errors.New("entity not found")
	// ErrDuplicateKey is returned when a unique constraint would be violated.
	ErrDuplicateKey = errors.New("duplicate key")
)

// EntityRepository is the common persistence contract of historized entities.
type EntityRepository[T any] interface {
	// FindByID loads one row including deleted ones. Owned children are loaded
	// too, without the members removed by earlier updates.
	FindByID(ctx context.Context, id int64) (*T, error)

	// FetchBlock returns rows matching the SQL part of the filter, ordered by id.
	FetchBlock(ctx context.Context, filter *query.Filter, offset, limit int) ([]*T, error)

	// Create inserts the object and its owned children and sets the generated ids.
	Create(ctx context.Context, obj *T) error

	// Update writes all columns and reconciles owned children. Members missing
	// from obj are marked as deleted. A member id that does not belong to obj
	// is rejected.
	Update(ctx context.Context, obj *T) error

	// SetDeleted flips the soft-delete flag.
	SetDeleted(ctx context.Context, id int64, deleted bool, lastUpdate time.Time) error
}
