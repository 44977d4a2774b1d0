package request

import "github.com/shopspring/decimal"

// InvoiceItemRequest represents one line of a create invoice request
type InvoiceItemRequest struct {
	Description string          `json:"description" binding:"required,max=500"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

// CreateInvoiceRequest represents a create invoice request
type CreateInvoiceRequest struct {
	CustomerID string               `json:"customer_id" binding:"required,uuid"`
	IssueDate  string               `json:"issue_date" binding:"required"`
	DueDate    string               `json:"due_date" binding:"required"`
	Notes      *string              `json:"notes"`
	Terms      *string              `json:"terms"`
	Items      []InvoiceItemRequest `json:"items" binding:"required"`
}

// UpdateInvoiceStatusRequest represents an invoice status change request
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreatePaymentRequest represents a create payment request
type CreatePaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate *string         `json:"payment_date"`
	Method      string          `json:"method" binding:"required"`
	Status      *string         `json:"status"`
	ReferenceNo *string         `json:"reference_no"`
	Notes       *string         `json:"notes"`
}

// CreateTransactionRequest represents a create transaction request
type CreateTransactionRequest struct {
	Type          string          `json:"type" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Category      string          `json:"category" binding:"required,max=100"`
	Description   *string         `json:"description"`
	Date          *string         `json:"date"`
	ReferenceNo   *string         `json:"reference_no"`
	AttachmentURL *string         `json:"attachment_url"`
}

// UpdateTransactionRequest represents an update transaction request
type UpdateTransactionRequest struct {
	Type          *string          `json:"type"`
	Amount        *decimal.Decimal `json:"amount"`
	Category      *string          `json:"category"`
	Description   *string          `json:"description"`
	Date          *string          `json:"date"`
	ReferenceNo   *string          `json:"reference_no"`
	AttachmentURL *string          `json:"attachment_url"`
}
