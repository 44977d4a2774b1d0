package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/compasshq/erp-api/internal/domain/enum"
)

// Customer represents a customer of the business
type Customer struct {
	ID            uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	Name          string              `gorm:"size:255;not null" json:"name"`
	Email         *string             `gorm:"size:255;index" json:"email,omitempty"`
	Phone         *string             `gorm:"size:50" json:"phone,omitempty"`
	AddressLine1  *string             `gorm:"size:255" json:"address_line1,omitempty"`
	AddressLine2  *string             `gorm:"size:255" json:"address_line2,omitempty"`
	City          *string             `gorm:"size:100" json:"city,omitempty"`
	State         *string             `gorm:"size:100" json:"state,omitempty"`
	PostalCode    *string             `gorm:"size:20" json:"postal_code,omitempty"`
	Country       *string             `gorm:"size:100" json:"country,omitempty"`
	CompanyName   *string             `gorm:"size:255" json:"company_name,omitempty"`
	Industry      *string             `gorm:"size:100" json:"industry,omitempty"`
	AnnualRevenue *decimal.Decimal    `gorm:"type:numeric(15,2)" json:"annual_revenue,omitempty"`
	EmployeeCount *int                `json:"employee_count,omitempty"`
	Type          enum.CustomerType   `gorm:"size:20;default:'individual'" json:"type"`
	Status        enum.CustomerStatus `gorm:"size:20;default:'active';index" json:"status"`
	Notes         *string             `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy     *uuid.UUID          `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	DeletedAt     gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Interactions []CustomerInteraction `gorm:"foreignKey:CustomerID" json:"-"`
	Invoices     []Invoice             `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// CustomerInteraction represents a logged touchpoint with a customer
type CustomerInteraction struct {
	ID               uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID       uuid.UUID            `gorm:"type:uuid;not null;index" json:"customer_id"`
	Type             enum.InteractionType `gorm:"size:20;not null" json:"type"`
	Summary          string               `gorm:"size:255;not null" json:"summary"`
	Details          *string              `gorm:"type:text" json:"details,omitempty"`
	InteractionDate  time.Time            `gorm:"not null;index" json:"interaction_date"`
	NextFollowUpDate *time.Time           `json:"next_follow_up_date,omitempty"`
	CreatedBy        *uuid.UUID           `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new interaction
func (i *CustomerInteraction) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CustomerInteraction model
func (CustomerInteraction) TableName() string {
	return "customer_interactions"
}

// CustomerSegment represents a named grouping of customers
type CustomerSegment struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name        string     `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description *string    `gorm:"type:text" json:"description,omitempty"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relationships
	Members []SegmentMember `gorm:"foreignKey:SegmentID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new segment
func (s *CustomerSegment) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CustomerSegment model
func (CustomerSegment) TableName() string {
	return "customer_segments"
}

// SegmentMember links a customer to a segment
type SegmentMember struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SegmentID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_segment_customer" json:"segment_id"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_segment_customer" json:"customer_id"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Segment  CustomerSegment `gorm:"foreignKey:SegmentID" json:"-"`
	Customer Customer        `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new membership row
func (m *SegmentMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SegmentMember model
func (SegmentMember) TableName() string {
	return "segment_members"
}
