package request

import "github.com/shopspring/decimal"

// CreateCustomerRequest represents a create customer request
type CreateCustomerRequest struct {
	Name          string           `json:"name" binding:"required,max=255"`
	Email         *string          `json:"email" binding:"omitempty,email"`
	Phone         *string          `json:"phone"`
	AddressLine1  *string          `json:"address_line1"`
	AddressLine2  *string          `json:"address_line2"`
	City          *string          `json:"city"`
	State         *string          `json:"state"`
	PostalCode    *string          `json:"postal_code"`
	Country       *string          `json:"country"`
	CompanyName   *string          `json:"company_name"`
	Industry      *string          `json:"industry"`
	AnnualRevenue *decimal.Decimal `json:"annual_revenue"`
	EmployeeCount *int             `json:"employee_count"`
	Type          string           `json:"type"`
	Status        string           `json:"status"`
	Notes         *string          `json:"notes"`
}

// UpdateCustomerRequest represents an update customer request. Only the
// provided fields are changed.
type UpdateCustomerRequest struct {
	Name          *string          `json:"name"`
	Email         *string          `json:"email" binding:"omitempty,email"`
	Phone         *string          `json:"phone"`
	AddressLine1  *string          `json:"address_line1"`
	AddressLine2  *string          `json:"address_line2"`
	City          *string          `json:"city"`
	State         *string          `json:"state"`
	PostalCode    *string          `json:"postal_code"`
	Country       *string          `json:"country"`
	CompanyName   *string          `json:"company_name"`
	Industry      *string          `json:"industry"`
	AnnualRevenue *decimal.Decimal `json:"annual_revenue"`
	EmployeeCount *int             `json:"employee_count"`
	Type          *string          `json:"type"`
	Status        *string          `json:"status"`
	Notes         *string          `json:"notes"`
}

// CreateInteractionRequest represents a create interaction request
type CreateInteractionRequest struct {
	Type             string  `json:"type" binding:"required"`
	Summary          string  `json:"summary" binding:"required,max=500"`
	Details          *string `json:"details"`
	InteractionDate  *string `json:"interaction_date"`
	NextFollowUpDate *string `json:"next_follow_up_date"`
}

// CreateSegmentRequest represents a create segment request
type CreateSegmentRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description"`
}
