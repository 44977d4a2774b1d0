package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/compasshq/erp-api/internal/domain/enum"
)

// Invoice represents an invoice issued to a customer
type Invoice struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNumber string             `gorm:"size:50;unique;not null" json:"invoice_number"`
	CustomerID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	Status        enum.InvoiceStatus `gorm:"size:20;default:'draft';index" json:"status"`
	IssueDate     time.Time          `gorm:"type:date;not null" json:"issue_date"`
	DueDate       time.Time          `gorm:"type:date;not null" json:"due_date"`
	Subtotal      decimal.Decimal    `gorm:"type:numeric(15,2);not null" json:"subtotal"`
	TaxTotal      decimal.Decimal    `gorm:"type:numeric(15,2);not null" json:"tax_total"`
	Total         decimal.Decimal    `gorm:"type:numeric(15,2);not null" json:"total"`
	Notes         *string            `gorm:"type:text" json:"notes,omitempty"`
	Terms         *string            `gorm:"type:text" json:"terms,omitempty"`
	CreatedBy     *uuid.UUID         `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	// Relationships
	Customer Customer      `gorm:"foreignKey:CustomerID" json:"-"`
	Items    []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
	Payments []Payment     `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem represents a single line on an invoice.
// Amount is quantity times unit price; TaxAmount is amount times tax rate.
type InvoiceItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Description string          `gorm:"size:500;not null" json:"description"`
	Quantity    decimal.Decimal `gorm:"type:numeric(15,4);not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"unit_price"`
	TaxRate     decimal.Decimal `gorm:"type:numeric(6,4);not null" json:"tax_rate"`
	Amount      decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"amount"`
	TaxAmount   decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"tax_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// InvoiceSequence holds the last allocated invoice number per year.
// The row is incremented under a row-level lock inside the invoice
// transaction so concurrent creates never allocate the same number.
type InvoiceSequence struct {
	Year      int       `gorm:"primary_key;autoIncrement:false" json:"year"`
	LastValue int64     `gorm:"not null;default:0" json:"last_value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the InvoiceSequence model
func (InvoiceSequence) TableName() string {
	return "invoice_sequences"
}
