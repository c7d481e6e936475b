package service

import (
	"context"

	domainerrors "projectforge/internal/domain/errors"
)

// AccessChecker decides what the principal in the context may do.
type AccessChecker interface {
	// IsRestricted reports restricted users. They may not read any list.
	IsRestricted(ctx context.Context) bool

	// HasSelectAccess reports whether the entity type may be listed.
	HasSelectAccess(ctx context.Context, entityName string) bool

	// HasItemSelectAccess reports whether a single loaded object may be shown.
	HasItemSelectAccess(ctx context.Context, entityName string, item any) bool

	// CheckSelectAccess returns an AccessError when listing is not allowed.
	CheckSelectAccess(ctx context.Context, entityName string) error

	// CheckWriteAccess returns an AccessError when op is not allowed on the type.
	CheckWriteAccess(ctx context.Context, entityName string, op domainerrors.Operation) error

	// CheckAdmin returns an AccessError unless the principal is an administrator.
	CheckAdmin(ctx context.Context) error
}
