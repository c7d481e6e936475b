package entity

import (
	"time"

	"projectforge/internal/domain/candh"

	"github.com/shopspring/decimal"
)

// Entity names as written to history masters.
const (
	EntityUser            = "User"
	EntityGroup           = "Group"
	EntityCustomer        = "Customer"
	EntityOrder           = "Order"
	EntityOrderPosition   = "OrderPosition"
	EntityInvoice         = "Invoice"
	EntityInvoicePosition = "InvoicePosition"
)

var UserDescriptor = candh.NewDescriptor(EntityUser, func(u *User) int64 { return u.ID },
	candh.String("username", func(u *User) string { return u.Username }, func(u *User, v string) { u.Username = v }),
	candh.OptString("firstname", func(u *User) *string { return u.Firstname }, func(u *User, v *string) { u.Firstname = v }),
	candh.OptString("lastname", func(u *User) *string { return u.Lastname }, func(u *User, v *string) { u.Lastname = v }),
	candh.OptString("email", func(u *User) *string { return u.Email }, func(u *User, v *string) { u.Email = v }),
	candh.OptString("locale", func(u *User) *string { return u.Locale }, func(u *User, v *string) { u.Locale = v }),
	candh.OptString("timeZoneString", func(u *User) *string { return u.TimeZone }, func(u *User, v *string) { u.TimeZone = v }),
	candh.OptString("description", func(u *User) *string { return u.Description }, func(u *User, v *string) { u.Description = v }),
	candh.Scalar("deactivated", "boolean", func(u *User) bool { return u.Deactivated }, func(u *User, v bool) { u.Deactivated = v }),
	candh.String("password", func(u *User) string { return u.PasswordHash }, func(u *User, v string) { u.PasswordHash = v }, candh.NoHistory()),
	candh.OptTimestamp("lastLogin", func(u *User) *time.Time { return u.LastLogin }, func(u *User, v *time.Time) { u.LastLogin = v }, candh.NoHistory()),
	candh.OptTimestamp("lastPasswordChange", func(u *User) *time.Time { return u.LastPasswordChange }, func(u *User, v *time.Time) { u.LastPasswordChange = v }),
	candh.Scalar("restrictedUser", "boolean", func(u *User) bool { return u.Restricted }, func(u *User, v bool) { u.Restricted = v }),
	candh.Scalar("demo", "boolean", func(u *User) bool { return u.Demo }, func(u *User, v bool) { u.Demo = v }),
)

var GroupDescriptor = candh.NewDescriptor(EntityGroup, func(g *Group) int64 { return g.ID },
	candh.String("name", func(g *Group) string { return g.Name }, func(g *Group, v string) { g.Name = v }),
	candh.OptString("description", func(g *Group) *string { return g.Description }, func(g *Group, v *string) { g.Description = v }),
	candh.Refs("assignedUsers", EntityUser, func(g *Group) []int64 { return g.AssignedUserIDs }, func(g *Group, v []int64) { g.AssignedUserIDs = v }),
)

var CustomerDescriptor = candh.NewDescriptor(EntityCustomer, func(c *Customer) int64 { return c.ID },
	candh.String("name", func(c *Customer) string { return c.Name }, func(c *Customer, v string) { c.Name = v }),
	candh.OptString("identifier", func(c *Customer) *string { return c.Identifier }, func(c *Customer, v *string) { c.Identifier = v }),
	candh.Enum("status", "CustomerStatus", func(c *Customer) CustomerStatus { return c.Status }, func(c *Customer, v CustomerStatus) { c.Status = v }),
)

var OrderPositionDescriptor = candh.NewDescriptor(EntityOrderPosition, func(p *OrderPosition) int64 { return p.ID },
	candh.String("titel", func(p *OrderPosition) string { return p.Title }, func(p *OrderPosition, v string) { p.Title = v }),
	candh.Enum("status", "OrderPositionStatus", func(p *OrderPosition) OrderPositionStatus { return p.Status }, func(p *OrderPosition, v OrderPositionStatus) { p.Status = v }),
	candh.Decimal("nettoSumme", func(p *OrderPosition) decimal.Decimal { return p.NetSum }, func(p *OrderPosition, v decimal.Decimal) { p.NetSum = v }),
	candh.OptDecimal("personDays", func(p *OrderPosition) *decimal.Decimal { return p.PersonDays }, func(p *OrderPosition, v *decimal.Decimal) { p.PersonDays = v }),
	candh.Enum("paymentType", "PaymentType", func(p *OrderPosition) PaymentType { return p.PaymentType }, func(p *OrderPosition, v PaymentType) { p.PaymentType = v }),
	candh.Scalar("deleted", "boolean", func(p *OrderPosition) bool { return p.Deleted }, func(p *OrderPosition, v bool) { p.Deleted = v }),
)

var OrderDescriptor = candh.NewDescriptor(EntityOrder, func(o *Order) int64 { return o.ID },
	candh.Scalar("nummer", "int", func(o *Order) int { return o.Number }, func(o *Order, v int) { o.Number = v }),
	candh.String("titel", func(o *Order) string { return o.Title }, func(o *Order, v string) { o.Title = v }),
	candh.Enum("auftragsStatus", "OrderStatus", func(o *Order) OrderStatus { return o.Status }, func(o *Order, v OrderStatus) { o.Status = v }),
	candh.Date("angebotsDatum", func(o *Order) time.Time { return o.OrderDate }, func(o *Order, v time.Time) { o.OrderDate = v }),
	candh.OptDate("periodOfPerformanceBegin", func(o *Order) *time.Time { return o.PeriodOfPerformanceBegin }, func(o *Order, v *time.Time) { o.PeriodOfPerformanceBegin = v }),
	candh.OptDate("periodOfPerformanceEnd", func(o *Order) *time.Time { return o.PeriodOfPerformanceEnd }, func(o *Order, v *time.Time) { o.PeriodOfPerformanceEnd = v }),
	candh.Ref("contactPerson", EntityUser, func(o *Order) *int64 { return o.ContactPersonID }, func(o *Order, v *int64) { o.ContactPersonID = v }),
	candh.Ref("kunde", EntityCustomer, func(o *Order) *int64 { return o.CustomerID }, func(o *Order, v *int64) { o.CustomerID = v }),
	candh.OptString("bemerkung", func(o *Order) *string { return o.Remark }, func(o *Order, v *string) { o.Remark = v }),
	candh.Children("positionen", EntityOrderPosition,
		func(o *Order) []*OrderPosition { return o.Positions },
		func(o *Order, v []*OrderPosition) { o.Positions = v },
		func(p *OrderPosition) string { return PositionKey(p.Number) },
		OrderPositionDescriptor, candh.AutoUpdate(), candh.Detach(func(p *OrderPosition) { p.Base = Base{} })),
)

var InvoicePositionDescriptor = candh.NewDescriptor(EntityInvoicePosition, func(p *InvoicePosition) int64 { return p.ID },
	candh.String("text", func(p *InvoicePosition) string { return p.Text }, func(p *InvoicePosition, v string) { p.Text = v }),
	candh.Decimal("menge", func(p *InvoicePosition) decimal.Decimal { return p.Quantity }, func(p *InvoicePosition, v decimal.Decimal) { p.Quantity = v }),
	candh.Decimal("einzelNetto", func(p *InvoicePosition) decimal.Decimal { return p.UnitPrice }, func(p *InvoicePosition, v decimal.Decimal) { p.UnitPrice = v }),
	candh.Decimal("vat", func(p *InvoicePosition) decimal.Decimal { return p.VAT }, func(p *InvoicePosition, v decimal.Decimal) { p.VAT = v }),
	candh.Ref("auftragsPosition", EntityOrderPosition, func(p *InvoicePosition) *int64 { return p.OrderPositionID }, func(p *InvoicePosition, v *int64) { p.OrderPositionID = v }),
)

var InvoiceDescriptor = candh.NewDescriptor(EntityInvoice, func(i *Invoice) int64 { return i.ID },
	candh.OptScalar("nummer", "int", func(i *Invoice) *int { return i.Number }, func(i *Invoice, v *int) { i.Number = v }),
	candh.String("betreff", func(i *Invoice) string { return i.Subject }, func(i *Invoice, v string) { i.Subject = v }),
	candh.Enum("status", "InvoiceStatus", func(i *Invoice) InvoiceStatus { return i.Status }, func(i *Invoice, v InvoiceStatus) { i.Status = v }),
	candh.Date("datum", func(i *Invoice) time.Time { return i.Date }, func(i *Invoice, v time.Time) { i.Date = v }),
	candh.OptDate("faelligkeit", func(i *Invoice) *time.Time { return i.DueDate }, func(i *Invoice, v *time.Time) { i.DueDate = v }),
	candh.OptDate("bezahlDatum", func(i *Invoice) *time.Time { return i.PaymentDate }, func(i *Invoice, v *time.Time) { i.PaymentDate = v }),
	candh.OptDecimal("zahlBetrag", func(i *Invoice) *decimal.Decimal { return i.PaidAmount }, func(i *Invoice, v *decimal.Decimal) { i.PaidAmount = v }),
	candh.Ref("kunde", EntityCustomer, func(i *Invoice) *int64 { return i.CustomerID }, func(i *Invoice, v *int64) { i.CustomerID = v }),
	candh.OptString("bemerkung", func(i *Invoice) *string { return i.Remark }, func(i *Invoice, v *string) { i.Remark = v }),
	candh.Children("positionen", EntityInvoicePosition,
		func(i *Invoice) []*InvoicePosition { return i.Positions },
		func(i *Invoice, v []*InvoicePosition) { i.Positions = v },
		func(p *InvoicePosition) string { return PositionKey(p.Number) },
		InvoicePositionDescriptor, candh.AutoUpdate(), candh.Detach(func(p *InvoicePosition) { p.Base = Base{} })),
)

var descriptors = map[string]*candh.Descriptor{
	EntityUser:            UserDescriptor,
	EntityGroup:           GroupDescriptor,
	EntityCustomer:        CustomerDescriptor,
	EntityOrder:           OrderDescriptor,
	EntityOrderPosition:   OrderPositionDescriptor,
	EntityInvoice:         InvoiceDescriptor,
	EntityInvoicePosition: InvoicePositionDescriptor,
}

// DescriptorFor looks up the property table of a historized entity.
func DescriptorFor(entityName string) (*candh.Descriptor, bool) {
	d, ok := descriptors[entityName]

	return d, ok
}

// EntityNames lists all historized entity names.
func EntityNames() []string {
	return []string{EntityUser, EntityGroup, EntityCustomer, EntityOrder, EntityOrderPosition, EntityInvoice, EntityInvoicePosition}
}
