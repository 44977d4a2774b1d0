package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/compasshq/erp-api/internal/domain/enum"
)

// Payment represents money received against an invoice
type Payment struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID   uuid.UUID          `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Amount      decimal.Decimal    `gorm:"type:numeric(15,2);not null" json:"amount"`
	PaymentDate time.Time          `gorm:"not null;index" json:"payment_date"`
	Method      enum.PaymentMethod `gorm:"size:20;not null" json:"method"`
	Status      enum.PaymentStatus `gorm:"size:20;default:'completed'" json:"status"`
	ReferenceNo *string            `gorm:"size:100" json:"reference_no,omitempty"`
	Notes       *string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy   *uuid.UUID         `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

// CountsTowardReconciliation reports whether the payment contributes to
// the completed sum used when flipping an invoice to paid.
func (p *Payment) CountsTowardReconciliation() bool {
	return p.Status == enum.PaymentStatusCompleted
}
