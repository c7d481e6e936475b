package usecase

import (
	"context"

	"projectforge/internal/domain/candh"
	"projectforge/internal/domain/entity"
	"projectforge/internal/domain/query"
)

// Listener is notified after a committed write.
type Listener[T any] func(ctx context.Context, obj *T, op entity.EntityOpType)

// Dao defines the operations shared by all historized entity types.
type Dao[T any] interface {
	GetByID(ctx context.Context, id int64) (*T, error)
	GetList(ctx context.Context, filter query.Filter, preds ...query.Predicate[T]) ([]*T, error)

	// Save inserts obj and writes an Insert master without attributes.
	Save(ctx context.Context, obj *T) (int64, error)

	// Update copies obj onto the persisted object. Nothing is written when
	// nothing changed; history is written for major changes only.
	Update(ctx context.Context, obj *T) (candh.Status, error)

	MarkAsDeleted(ctx context.Context, id int64) error
	Undelete(ctx context.Context, id int64) error

	// ForceDelete is refused for historized types.
	ForceDelete(ctx context.Context, id int64) error

	GetHistory(ctx context.Context, id int64) ([]entity.DisplayHistoryEntry, error)
	ExportHistory(ctx context.Context, id int64) ([]byte, error)

	AddListener(l Listener[T])
}

// UserDao manages users. Passwords are hashed and never historized.
type UserDao interface {
	Dao[entity.User]

	// CreateUser validates and hashes password before saving the user.
	CreateUser(ctx context.Context, user *entity.User, password string) (int64, error)

	// ChangePassword checks the old password of the acting user.
	ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error
}

// GroupDao manages groups and their user assignments.
type GroupDao interface {
	Dao[entity.Group]
}

// CustomerDao manages customers.
type CustomerDao interface {
	Dao[entity.Customer]
}

// OrderDao manages orders with their positions.
type OrderDao interface {
	Dao[entity.Order]
}

// InvoiceDao manages invoices with their positions.
type InvoiceDao interface {
	Dao[entity.Invoice]
}

// CacheExpirer invalidates a whole cache.
type CacheExpirer interface {
	SetExpired()
}

// OrderCacheExpirer invalidates single orders of the order cache.
type OrderCacheExpirer interface {
	SetExpiredOrders(ctx context.Context, orderIDs ...int64)
}
