package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/compasshq/erp-api/internal/domain/enum"
)

// Transaction represents a standalone income or expense entry
type Transaction struct {
	ID            uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Type          enum.TransactionType `gorm:"size:10;not null;index" json:"type"`
	Amount        decimal.Decimal      `gorm:"type:numeric(15,2);not null" json:"amount"`
	Category      string               `gorm:"size:100;not null;index" json:"category"`
	Description   *string              `gorm:"type:text" json:"description,omitempty"`
	Date          time.Time            `gorm:"type:date;not null;index" json:"date"`
	ReferenceNo   *string              `gorm:"size:100" json:"reference_no,omitempty"`
	AttachmentURL *string              `gorm:"size:500" json:"attachment_url,omitempty"`
	CreatedBy     *uuid.UUID           `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}
