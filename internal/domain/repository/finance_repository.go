package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/compasshq/erp-api/internal/domain/entity"
	"github.com/compasshq/erp-api/internal/domain/enum"
	"github.com/compasshq/erp-api/pkg/pagination"
)

// InvoiceFilterParams contains filtering parameters for invoice queries
type InvoiceFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.InvoiceStatus
	CustomerID *uuid.UUID
}

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	// GetForUpdate loads an invoice under a row-level lock; only
	// meaningful inside a ledger transaction.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error
	// NextNumber allocates the next invoice number for the given year by
	// incrementing the year's sequence row under a row-level lock.
	NextNumber(ctx context.Context, year int) (string, error)
}

// InvoiceItemRepository defines the interface for invoice line item operations
type InvoiceItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.InvoiceItem) error
	GetByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoiceItem, error)
}

// PaymentRepository defines the interface for payment data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]entity.Payment, error)
	// SumCompleted returns the sum of completed payment amounts for an invoice
	SumCompleted(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error)
}

// TransactionFilterParams contains filtering parameters for transaction queries
type TransactionFilterParams struct {
	Pagination *pagination.PaginationParams
	Type       *enum.TransactionType
	Category   string
	StartDate  *time.Time
	EndDate    *time.Time
}

// TransactionRepository defines the interface for finance transaction operations
type TransactionRepository interface {
	Create(ctx context.Context, txn *entity.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	Update(ctx context.Context, txn *entity.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *TransactionFilterParams) ([]entity.Transaction, int64, error)
	// SumByType returns the total amount across transactions of the given type
	SumByType(ctx context.Context, txnType enum.TransactionType) (decimal.Decimal, error)
	ListRecent(ctx context.Context, limit int) ([]entity.Transaction, error)
}

// LedgerTx exposes the repositories bound to one running ledger transaction
type LedgerTx interface {
	Invoices() InvoiceRepository
	Items() InvoiceItemRepository
	Payments() PaymentRepository
}

// LedgerUnitOfWork runs a function inside a single database transaction.
// The function receives repositories bound to that transaction; if it
// returns an error everything written through them is rolled back.
type LedgerUnitOfWork interface {
	Do(ctx context.Context, fn func(tx LedgerTx) error) error
}
