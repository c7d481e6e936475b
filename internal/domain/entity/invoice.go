package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusGestellt  InvoiceStatus = "GESTELLT"
	InvoiceStatusGemahnt   InvoiceStatus = "GEMAHNT"
	InvoiceStatusBezahlt   InvoiceStatus = "BEZAHLT"
	InvoiceStatusStorniert InvoiceStatus = "STORNIERT"
)

// IsValid checks if the status is a known value.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusGestellt, InvoiceStatusGemahnt, InvoiceStatusBezahlt, InvoiceStatusStorniert:
		return true
	default:
		return false
	}
}

// Invoice is an outgoing invoice.
type Invoice struct {
	Base
	Number      *int
	Subject     string
	Status      InvoiceStatus
	Date        time.Time
	DueDate     *time.Time
	PaymentDate *time.Time
	PaidAmount  *decimal.Decimal
	CustomerID  *int64
	Remark      *string
	Positions   []*InvoicePosition
}

// NetSum adds up quantity times unit price of all positions.
func (i *Invoice) NetSum() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range i.Positions {
		sum = sum.Add(p.NetSum())
	}

	return sum
}

// GrossSum adds VAT to the net sum of every position.
func (i *Invoice) GrossSum() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range i.Positions {
		net := p.NetSum()
		sum = sum.Add(net.Add(net.Mul(p.VAT)))
	}

	return sum.Round(2)
}

// InvoicePosition is one line of an invoice. It may point to the order
// position it bills.
type InvoicePosition struct {
	Base
	InvoiceID       int64
	Number          int
	Text            string
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	VAT             decimal.Decimal
	OrderPositionID *int64
}

// NetSum is quantity times unit price.
func (p *InvoicePosition) NetSum() decimal.Decimal {
	return p.Quantity.Mul(p.UnitPrice)
}
