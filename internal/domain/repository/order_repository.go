package repository

import (
	"context"

	"projectforge/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// OrderRepository persists orders with their positions.
type OrderRepository interface {
	EntityRepository[entity.Order]

	// FindAll loads all orders that are not deleted, with positions.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// FindOrderIDsByPositionIDs maps order position ids to their order ids.
	FindOrderIDsByPositionIDs(ctx context.Context, positionIDs []int64) ([]int64, error)

	// FindPositionIDs lists the position ids of an order including removed ones.
	FindPositionIDs(ctx context.Context, id int64) ([]int64, error)
}

// InvoiceRepository persists invoices with their positions.
type InvoiceRepository interface {
	EntityRepository[entity.Invoice]

	// SumNetByOrderPosition returns the invoiced net sum per order position
	// over all invoices that are not deleted. Restricted to orderIDs when given.
	SumNetByOrderPosition(ctx context.Context, orderIDs ...int64) (map[int64]decimal.Decimal, error)

	// FindPositionIDs lists the position ids of an invoice including removed ones.
	FindPositionIDs(ctx context.Context, id int64) ([]int64, error)
}
