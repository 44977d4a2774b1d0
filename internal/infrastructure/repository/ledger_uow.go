package repository

import (
	"context"

	"gorm.io/gorm"

	domainRepo "github.com/compasshq/erp-api/internal/domain/repository"
)

// ledgerTx bundles repositories bound to one running transaction
type ledgerTx struct {
	invoices domainRepo.InvoiceRepository
	items    domainRepo.InvoiceItemRepository
	payments domainRepo.PaymentRepository
}

func (t *ledgerTx) Invoices() domainRepo.InvoiceRepository  { return t.invoices }
func (t *ledgerTx) Items() domainRepo.InvoiceItemRepository { return t.items }
func (t *ledgerTx) Payments() domainRepo.PaymentRepository  { return t.payments }

type ledgerUnitOfWork struct {
	db *gorm.DB
}

// NewLedgerUnitOfWork creates a unit of work over the given database handle
func NewLedgerUnitOfWork(db *gorm.DB) domainRepo.LedgerUnitOfWork {
	return &ledgerUnitOfWork{db: db}
}

// Do runs fn inside one database transaction. The repositories handed to
// fn are rebound to the transaction handle, so every write they perform
// commits or rolls back together.
func (u *ledgerUnitOfWork) Do(ctx context.Context, fn func(tx domainRepo.LedgerTx) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ledgerTx{
			invoices: NewInvoiceRepository(tx),
			items:    NewInvoiceItemRepository(tx),
			payments: NewPaymentRepository(tx),
		})
	})
}
