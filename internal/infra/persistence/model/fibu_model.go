package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerModel mirrors the 't_fibu_kunde' table.
type CustomerModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Deleted    bool      `gorm:"not null;default:false;index"`
	Created    time.Time `gorm:"not null"`
	LastUpdate time.Time `gorm:"not null"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Identifier *string   `gorm:"type:varchar(20)"`
	Status     string    `gorm:"type:varchar(30)"`
	SearchText string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "t_fibu_kunde"
}

// OrderModel mirrors the 't_fibu_auftrag' table.
type OrderModel struct {
	ID                       int64                `gorm:"primaryKey;autoIncrement"`
	Deleted                  bool                 `gorm:"not null;default:false;index"`
	Created                  time.Time            `gorm:"not null"`
	LastUpdate               time.Time            `gorm:"not null"`
	Number                   int                  `gorm:"column:nummer;not null;uniqueIndex"`
	Title                    string               `gorm:"column:titel;type:varchar(1000)"`
	Status                   string               `gorm:"column:status;type:varchar(30)"`
	OrderDate                time.Time            `gorm:"column:angebots_datum;type:date"`
	PeriodOfPerformanceBegin *time.Time           `gorm:"type:date"`
	PeriodOfPerformanceEnd   *time.Time           `gorm:"type:date"`
	ContactPersonID          *int64               `gorm:"column:contact_person_fk;index"`
	CustomerID               *int64               `gorm:"column:kunde_fk;index"`
	Remark                   *string              `gorm:"column:bemerkung;type:varchar(4000)"`
	SearchText               string               `gorm:"type:text"`
	Positions                []OrderPositionModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "t_fibu_auftrag"
}

// OrderPositionModel mirrors the 't_fibu_auftrag_position' table.
type OrderPositionModel struct {
	ID          int64            `gorm:"primaryKey;autoIncrement"`
	Deleted     bool             `gorm:"not null;default:false"`
	Created     time.Time        `gorm:"not null"`
	LastUpdate  time.Time        `gorm:"not null"`
	OrderID     int64            `gorm:"column:auftrag_fk;not null;uniqueIndex:uq_order_position,where:deleted = false"`
	Number      int              `gorm:"column:number;not null;uniqueIndex:uq_order_position,where:deleted = false"`
	Title       string           `gorm:"column:titel;type:varchar(255)"`
	Status      string           `gorm:"type:varchar(30)"`
	NetSum      decimal.Decimal  `gorm:"column:netto_summe;type:numeric(18,2)"`
	PersonDays  *decimal.Decimal `gorm:"column:person_days;type:numeric(10,2)"`
	PaymentType string           `gorm:"type:varchar(30)"`
}

// TableName explicitly sets the table name for GORM.
func (OrderPositionModel) TableName() string {
	return "t_fibu_auftrag_position"
}

// InvoiceModel mirrors the 't_fibu_rechnung' table.
type InvoiceModel struct {
	ID          int64                  `gorm:"primaryKey;autoIncrement"`
	Deleted     bool                   `gorm:"not null;default:false;index"`
	Created     time.Time              `gorm:"not null"`
	LastUpdate  time.Time              `gorm:"not null"`
	Number      *int                   `gorm:"column:nummer;uniqueIndex"`
	Subject     string                 `gorm:"column:betreff;type:varchar(4000)"`
	Status      string                 `gorm:"type:varchar(30)"`
	Date        time.Time              `gorm:"column:datum;type:date"`
	DueDate     *time.Time             `gorm:"column:faelligkeit;type:date"`
	PaymentDate *time.Time             `gorm:"column:bezahl_datum;type:date"`
	PaidAmount  *decimal.Decimal       `gorm:"column:zahl_betrag;type:numeric(12,2)"`
	CustomerID  *int64                 `gorm:"column:kunde_fk;index"`
	Remark      *string                `gorm:"column:bemerkung;type:varchar(4000)"`
	SearchText  string                 `gorm:"type:text"`
	Positions   []InvoicePositionModel `gorm:"foreignKey:InvoiceID"`
}

// TableName explicitly sets the table name for GORM.
func (InvoiceModel) TableName() string {
	return "t_fibu_rechnung"
}

// InvoicePositionModel mirrors the 't_fibu_rechnung_position' table.
type InvoicePositionModel struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	Deleted         bool            `gorm:"not null;default:false"`
	Created         time.Time       `gorm:"not null"`
	LastUpdate      time.Time       `gorm:"not null"`
	InvoiceID       int64           `gorm:"column:rechnung_fk;not null;uniqueIndex:uq_invoice_position,where:deleted = false"`
	Number          int             `gorm:"column:number;not null;uniqueIndex:uq_invoice_position,where:deleted = false"`
	Text            string          `gorm:"type:varchar(1000)"`
	Quantity        decimal.Decimal `gorm:"column:menge;type:numeric(18,5)"`
	UnitPrice       decimal.Decimal `gorm:"column:einzel_netto;type:numeric(18,2)"`
	VAT             decimal.Decimal `gorm:"column:vat;type:numeric(10,5)"`
	OrderPositionID *int64          `gorm:"column:auftrags_position_fk;index"`
}

// TableName explicitly sets the table name for GORM.
func (InvoicePositionModel) TableName() string {
	return "t_fibu_rechnung_position"
}
