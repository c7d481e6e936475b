package cache

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"projectforge/internal/domain/entity"
	"projectforge/internal/domain/repository"
	"projectforge/internal/domain/service"
	"projectforge/internal/errors"

	"github.com/shopspring/decimal"
)

const orderCacheName = "orders"

// OrderPositionInfo is the cached view of one order position.
type OrderPositionInfo struct {
	ID           int64
	OrderID      int64
	Number       int
	Title        string
	Status       entity.OrderPositionStatus
	NetSum       decimal.Decimal
	InvoicedSum  decimal.Decimal
	ToBeInvoiced bool // Completed but not fully invoiced.
}

// OrderInfo is the cached view of one order with its invoicing state.
type OrderInfo struct {
	ID                int64
	Number            int
	Title             string
	Status            entity.OrderStatus
	NetSum            decimal.Decimal
	InvoicedSum       decimal.Decimal
	NotYetInvoicedSum decimal.Decimal
	ToBeInvoiced      bool
	Positions         []*OrderPositionInfo
}

type orderSnapshot struct {
	generation uint64
	orders     map[int64]*OrderInfo
	positions  map[int64]*OrderPositionInfo

	countOnce         sync.Once
	toBeInvoicedCount int
}

func (s *orderSnapshot) clone() *orderSnapshot {
	c := &orderSnapshot{
		orders:    make(map[int64]*OrderInfo, len(s.orders)),
		positions: make(map[int64]*OrderPositionInfo, len(s.positions)),
	}
	for id, info := range s.orders {
		c.orders[id] = info
	}
	for id, info := range s.positions {
		c.positions[id] = info
	}

	return c
}

func (s *orderSnapshot) put(info *OrderInfo) {
	s.orders[info.ID] = info
	for _, p := range info.Positions {
		s.positions[p.ID] = p
	}
}

func (s *orderSnapshot) remove(orderID int64) {
	info, ok := s.orders[orderID]
	if !ok {
		return
	}
	for _, p := range info.Positions {
		delete(s.positions, p.ID)
	}
	delete(s.orders, orderID)
}

// OrderCache serves order infos including invoiced sums.
type OrderCache struct {
	*Base
	orders   repository.OrderRepository
	invoices repository.InvoiceRepository
	snapshot atomic.Pointer[orderSnapshot]
}

// NewOrderCache creates an order cache expiring after ttl.
func NewOrderCache(orders repository.OrderRepository, invoices repository.InvoiceRepository,
	ttl time.Duration, clock service.Clock, logger *slog.Logger,
) *OrderCache {
	c := &OrderCache{orders: orders, invoices: invoices}
	c.Base = NewBase(orderCacheName, ttl, clock, logger, c.rebuild)
	c.snapshot.Store(&orderSnapshot{
		orders:    map[int64]*OrderInfo{},
		positions: map[int64]*OrderPositionInfo{},
	})

	return c
}

func (c *OrderCache) rebuild(ctx context.Context) error {
	orders, err := c.orders.FindAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load orders")
	}
	sums, err := c.invoices.SumNetByOrderPosition(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load invoiced sums")
	}

	snap := &orderSnapshot{
		orders:    make(map[int64]*OrderInfo, len(orders)),
		positions: make(map[int64]*OrderPositionInfo),
	}
	for _, order := range orders {
		snap.put(buildOrderInfo(order, sums))
	}
	snap.generation = nextGeneration(orderCacheName)
	c.snapshot.Store(snap)

	return nil
}

func (c *OrderCache) current(ctx context.Context) *orderSnapshot {
	c.ensure(ctx)

	return c.snapshot.Load()
}

// GetOrderInfo returns the info of an order that is not deleted.
func (c *OrderCache) GetOrderInfo(ctx context.Context, orderID int64) (*OrderInfo, bool) {
	info, ok := c.current(ctx).orders[orderID]

	return info, ok
}

// GetOrderPositionInfo returns the info of an order position.
func (c *OrderCache) GetOrderPositionInfo(ctx context.Context, positionID int64) (*OrderPositionInfo, bool) {
	info, ok := c.current(ctx).positions[positionID]

	return info, ok
}

// ToBeInvoicedCount counts the orders waiting for an invoice. The count is
// computed once per generation.
func (c *OrderCache) ToBeInvoicedCount(ctx context.Context) int {
	snap := c.current(ctx)
	snap.countOnce.Do(func() {
		for _, info := range snap.orders {
			if info.ToBeInvoiced {
				snap.toBeInvoicedCount++
			}
		}
	})

	return snap.toBeInvoicedCount
}

// Generation numbers the snapshot currently served.
func (c *OrderCache) Generation() uint64 {
	return c.snapshot.Load().generation
}

// SetExpiredOrder rebuilds the info of a single order into a new generation.
// When the order cannot be loaded the whole cache expires.
func (c *OrderCache) SetExpiredOrder(ctx context.Context, orderID int64) {
	c.SetExpiredOrders(ctx, orderID)
}

// SetExpiredOrders rebuilds the infos of the given orders into a new generation.
func (c *OrderCache) SetExpiredOrders(ctx context.Context, orderIDs ...int64) {
	if len(orderIDs) == 0 {
		return
	}
	c.Update(func() {
		sums, err := c.invoices.SumNetByOrderPosition(ctx, orderIDs...)
		if err != nil {
			c.logger.WarnContext(ctx, "Failed to reload invoiced sums, expiring cache", slog.Any("error", err))
			c.SetExpired()

			return
		}
		snap := c.snapshot.Load().clone()
		for _, id := range orderIDs {
			order, err := c.orders.FindByID(ctx, id)
			switch {
			case errors.Is(err, repository.ErrEntityNotFound):
				snap.remove(id)
			case err != nil:
				c.logger.WarnContext(ctx, "Failed to reload order, expiring cache",
					slog.Int64("orderID", id), slog.Any("error", err))
				c.SetExpired()

				return
			case order.Deleted:
				snap.remove(id)
			default:
				snap.remove(id)
				snap.put(buildOrderInfo(order, sums))
			}
		}
		snap.generation = nextGeneration(orderCacheName)
		c.snapshot.Store(snap)
	})
}

func buildOrderInfo(order *entity.Order, invoiced map[int64]decimal.Decimal) *OrderInfo {
	info := &OrderInfo{
		ID:     order.ID,
		Number: order.Number,
		Title:  order.Title,
		Status: order.Status,
		NetSum: order.NetSum(),
	}
	anyCompleted := order.Status == entity.OrderStatusCompleted
	for _, p := range order.Positions {
		if p.Deleted {
			continue
		}
		pos := &OrderPositionInfo{
			ID:          p.ID,
			OrderID:     order.ID,
			Number:      p.Number,
			Title:       p.Title,
			Status:      p.Status,
			NetSum:      p.NetSum,
			InvoicedSum: invoiced[p.ID],
		}
		completed := p.Status == entity.OrderPositionStatusCompleted || order.Status == entity.OrderStatusCompleted
		if p.Status == entity.OrderPositionStatusCompleted {
			anyCompleted = true
		}
		pos.ToBeInvoiced = completed && p.Status != entity.OrderPositionStatusRejected &&
			pos.InvoicedSum.LessThan(pos.NetSum)
		info.InvoicedSum = info.InvoicedSum.Add(pos.InvoicedSum)
		info.Positions = append(info.Positions, pos)
	}
	info.NotYetInvoicedSum = decimal.Max(info.NetSum.Sub(info.InvoicedSum), decimal.Zero)
	if anyCompleted {
		for _, p := range info.Positions {
			if p.ToBeInvoiced {
				info.ToBeInvoiced = true

				break
			}
		}
	}

	return info
}
