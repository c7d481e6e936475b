package entity

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPotential  OrderStatus = "POTENTIAL"
	OrderStatusOffered    OrderStatus = "OFFERED"
	OrderStatusCommitted  OrderStatus = "COMMITTED"
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusRejected   OrderStatus = "REJECTED"
)

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPotential, OrderStatusOffered, OrderStatusCommitted,
		OrderStatusInProgress, OrderStatusCompleted, OrderStatusRejected:
		return true
	default:
		return false
	}
}

// IsClosed reports whether no further invoices are expected.
func (s OrderStatus) IsClosed() bool {
	return s == OrderStatusCompleted || s == OrderStatusRejected
}

// OrderPositionStatus is the state of one order position.
type OrderPositionStatus string

const (
	OrderPositionStatusOpen      OrderPositionStatus = "OPEN"
	OrderPositionStatusCommitted OrderPositionStatus = "COMMITTED"
	OrderPositionStatusCompleted OrderPositionStatus = "COMPLETED"
	OrderPositionStatusRejected  OrderPositionStatus = "REJECTED"
)

// IsValid checks if the status is a known value.
func (s OrderPositionStatus) IsValid() bool {
	switch s {
	case OrderPositionStatusOpen, OrderPositionStatusCommitted,
		OrderPositionStatusCompleted, OrderPositionStatusRejected:
		return true
	default:
		return false
	}
}

// PaymentType tells how a position is billed.
type PaymentType string

const (
	PaymentTypeFixedPrice       PaymentType = "FIXED_PRICE"
	PaymentTypeTimeAndMaterials PaymentType = "TIME_AND_MATERIALS"
	PaymentTypePauschale        PaymentType = "PAUSCHALE"
)

// Order is a customer order with its positions.
type Order struct {
	Base
	Number                   int
	Title                    string
	Status                   OrderStatus
	OrderDate                time.Time
	PeriodOfPerformanceBegin *time.Time
	PeriodOfPerformanceEnd   *time.Time
	ContactPersonID          *int64
	CustomerID               *int64
	Remark                   *string
	Positions                []*OrderPosition
}

// Position finds a position by its number.
func (o *Order) Position(number int) *OrderPosition {
	for _, p := range o.Positions {
		if p.Number == number {
			return p
		}
	}

	return nil
}

// NetSum adds up the net sums of all positions that are not rejected.
func (o *Order) NetSum() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range o.Positions {
		if p.Deleted || p.Status == OrderPositionStatusRejected {
			continue
		}
		sum = sum.Add(p.NetSum)
	}

	return sum
}

// OrderPosition is one line of an order.
type OrderPosition struct {
	Base
	OrderID     int64
	Number      int
	Title       string
	Status      OrderPositionStatus
	NetSum      decimal.Decimal
	PersonDays  *decimal.Decimal
	PaymentType PaymentType
}

// PositionKey matches positions across copies by their number.
func PositionKey(number int) string {
	return strconv.Itoa(number)
}
