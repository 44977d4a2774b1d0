package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/compasshq/erp-api/internal/domain/entity"
	"github.com/compasshq/erp-api/internal/domain/enum"
	"github.com/compasshq/erp-api/internal/domain/repository"
	"github.com/compasshq/erp-api/pkg/apperror"
	"github.com/compasshq/erp-api/pkg/pagination"
	"github.com/compasshq/erp-api/pkg/utils"
)

// FinanceService handles invoices, payments and finance transactions
type FinanceService struct {
	uow          repository.LedgerUnitOfWork
	invoiceRepo  repository.InvoiceRepository
	paymentRepo  repository.PaymentRepository
	txnRepo      repository.TransactionRepository
	customerRepo repository.CustomerRepository
}

// NewFinanceService creates a new finance service
func NewFinanceService(
	uow repository.LedgerUnitOfWork,
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	txnRepo repository.TransactionRepository,
	customerRepo repository.CustomerRepository,
) *FinanceService {
	return &FinanceService{
		uow:          uow,
		invoiceRepo:  invoiceRepo,
		paymentRepo:  paymentRepo,
		txnRepo:      txnRepo,
		customerRepo: customerRepo,
	}
}

// InvoiceItemInput represents one line of a new invoice
type InvoiceItemInput struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal
}

// CreateInvoiceInput represents the create invoice input
type CreateInvoiceInput struct {
	CustomerID uuid.UUID
	IssueDate  time.Time
	DueDate    time.Time
	Notes      *string
	Terms      *string
	CreatedBy  *uuid.UUID
	Items      []InvoiceItemInput
}

func validateInvoiceItems(items []InvoiceItemInput) []apperror.FieldError {
	var fieldErrors []apperror.FieldError

	if len(items) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "items",
			Message: "invoice must have at least one item",
		})
		return fieldErrors
	}

	one := decimal.NewFromInt(1)
	for i, item := range items {
		if item.Description == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].description", i),
				Message: "description is required",
			})
		}
		if !item.Quantity.IsPositive() {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "quantity must be greater than zero",
			})
		}
		if item.UnitPrice.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].unit_price", i),
				Message: "unit price must not be negative",
			})
		}
		if item.TaxRate.IsNegative() || item.TaxRate.GreaterThan(one) {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].tax_rate", i),
				Message: "tax rate must be between 0 and 1",
			})
		}
	}

	return fieldErrors
}

// CreateInvoice validates the input, allocates the next invoice number and
// writes the invoice together with all of its items in one transaction.
func (s *FinanceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	if fieldErrors := validateInvoiceItems(input.Items); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	// Compute line amounts and totals with exact decimal arithmetic
	subtotal := decimal.Zero
	taxTotal := decimal.Zero
	items := make([]entity.InvoiceItem, 0, len(input.Items))
	for _, in := range input.Items {
		amount := in.Quantity.Mul(in.UnitPrice).Round(2)
		taxAmount := amount.Mul(in.TaxRate).Round(2)
		subtotal = subtotal.Add(amount)
		taxTotal = taxTotal.Add(taxAmount)

		items = append(items, entity.InvoiceItem{
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			TaxRate:     in.TaxRate,
			Amount:      amount,
			TaxAmount:   taxAmount,
		})
	}

	invoice := &entity.Invoice{
		CustomerID: input.CustomerID,
		Status:     enum.InvoiceStatusDraft,
		IssueDate:  input.IssueDate,
		DueDate:    input.DueDate,
		Subtotal:   subtotal,
		TaxTotal:   taxTotal,
		Total:      subtotal.Add(taxTotal),
		Notes:      input.Notes,
		Terms:      input.Terms,
		CreatedBy:  input.CreatedBy,
	}

	err = s.uow.Do(ctx, func(tx repository.LedgerTx) error {
		number, err := tx.Invoices().NextNumber(ctx, time.Now().Year())
		if err != nil {
			return err
		}
		invoice.InvoiceNumber = number

		if err := tx.Invoices().Create(ctx, invoice); err != nil {
			return err
		}

		for i := range items {
			items[i].InvoiceID = invoice.ID
		}
		return tx.Items().CreateBatch(ctx, items)
	})
	if err != nil {
		return nil, err
	}

	return s.invoiceRepo.GetWithItems(ctx, invoice.ID)
}

// GetInvoice retrieves an invoice with its items
func (s *FinanceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices lists invoices with filtering
func (s *FinanceService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) (*pagination.PaginatedResult[entity.Invoice], error) {
	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}

// UpdateInvoiceStatus applies an externally requested status transition.
// The paid status is owned by payment reconciliation and cannot be set here.
func (s *FinanceService) UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error {
	if !status.Valid() {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "status", Message: "unknown invoice status"},
		})
	}
	if status == enum.InvoiceStatusPaid {
		return apperror.NewUnprocessableError("invoice status paid is set by payment reconciliation only")
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}

	return s.invoiceRepo.UpdateStatus(ctx, id, status)
}

// CreatePaymentInput represents the create payment input
type CreatePaymentInput struct {
	InvoiceID   uuid.UUID
	Amount      decimal.Decimal
	PaymentDate time.Time
	Method      enum.PaymentMethod
	Status      *enum.PaymentStatus
	ReferenceNo *string
	Notes       *string
	CreatedBy   *uuid.UUID
}

// CreatePayment records a payment against an invoice and reconciles the
// invoice status, all inside one transaction. The invoice row is locked
// so concurrent payments see each other's completed sums.
func (s *FinanceService) CreatePayment(ctx context.Context, input *CreatePaymentInput) (*entity.Payment, error) {
	var fieldErrors []apperror.FieldError
	if !input.Amount.IsPositive() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}
	if !input.Method.Valid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "method",
			Message: "unknown payment method",
		})
	}
	if input.Status != nil && !input.Status.Valid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "status",
			Message: "unknown payment status",
		})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	status := enum.PaymentStatusCompleted
	if input.Status != nil {
		status = *input.Status
	}

	paymentDate := input.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}

	referenceNo := input.ReferenceNo
	if referenceNo == nil || *referenceNo == "" {
		ref := utils.GenerateReferenceNo("PAY")
		referenceNo = &ref
	}

	payment := &entity.Payment{
		InvoiceID:   input.InvoiceID,
		Amount:      input.Amount,
		PaymentDate: paymentDate,
		Method:      input.Method,
		Status:      status,
		ReferenceNo: referenceNo,
		Notes:       input.Notes,
		CreatedBy:   input.CreatedBy,
	}

	err := s.uow.Do(ctx, func(tx repository.LedgerTx) error {
		invoice, err := tx.Invoices().GetForUpdate(ctx, input.InvoiceID)
		if err != nil {
			return err
		}
		if invoice == nil {
			return apperror.NewNotFoundError("Invoice")
		}

		// The ceiling is the invoice total, not the outstanding balance
		if input.Amount.GreaterThan(invoice.Total) {
			return apperror.NewUnprocessableError("payment amount exceeds invoice total")
		}

		if err := tx.Payments().Create(ctx, payment); err != nil {
			return err
		}

		completed, err := tx.Payments().SumCompleted(ctx, input.InvoiceID)
		if err != nil {
			return err
		}

		if completed.GreaterThanOrEqual(invoice.Total) && invoice.Status != enum.InvoiceStatusPaid {
			return tx.Invoices().UpdateStatus(ctx, input.InvoiceID, enum.InvoiceStatusPaid)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

// ListInvoicePayments lists the payments recorded against an invoice,
// most recent payment date first
func (s *FinanceService) ListInvoicePayments(ctx context.Context, invoiceID uuid.UUID) ([]entity.Payment, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	return s.paymentRepo.ListByInvoice(ctx, invoiceID)
}

// CreateTransactionInput represents the create transaction input
type CreateTransactionInput struct {
	Type          enum.TransactionType
	Amount        decimal.Decimal
	Category      string
	Description   *string
	Date          time.Time
	ReferenceNo   *string
	AttachmentURL *string
	CreatedBy     *uuid.UUID
}

// CreateTransaction records a standalone income or expense entry
func (s *FinanceService) CreateTransaction(ctx context.Context, input *CreateTransactionInput) (*entity.Transaction, error) {
	var fieldErrors []apperror.FieldError
	if !input.Type.Valid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "type",
			Message: "type must be income or expense",
		})
	}
	if !input.Amount.IsPositive() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}
	if input.Category == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "category",
			Message: "category is required",
		})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	txn := &entity.Transaction{
		Type:          input.Type,
		Amount:        input.Amount,
		Category:      input.Category,
		Description:   input.Description,
		Date:          date,
		ReferenceNo:   input.ReferenceNo,
		AttachmentURL: input.AttachmentURL,
		CreatedBy:     input.CreatedBy,
	}

	if err := s.txnRepo.Create(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// GetTransaction retrieves a transaction by ID
func (s *FinanceService) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	txn, err := s.txnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return txn, nil
}

// UpdateTransactionInput represents the update transaction input
type UpdateTransactionInput struct {
	ID            uuid.UUID
	Type          *enum.TransactionType
	Amount        *decimal.Decimal
	Category      *string
	Description   *string
	Date          *time.Time
	ReferenceNo   *string
	AttachmentURL *string
}

// UpdateTransaction updates a transaction
func (s *FinanceService) UpdateTransaction(ctx context.Context, input *UpdateTransactionInput) (*entity.Transaction, error) {
	txn, err := s.txnRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}

	if input.Type != nil {
		if !input.Type.Valid() {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "type", Message: "type must be income or expense"},
			})
		}
		txn.Type = *input.Type
	}
	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "amount", Message: "amount must be greater than zero"},
			})
		}
		txn.Amount = *input.Amount
	}
	if input.Category != nil {
		if *input.Category == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "category", Message: "category is required"},
			})
		}
		txn.Category = *input.Category
	}
	if input.Description != nil {
		txn.Description = input.Description
	}
	if input.Date != nil {
		txn.Date = *input.Date
	}
	if input.ReferenceNo != nil {
		txn.ReferenceNo = input.ReferenceNo
	}
	if input.AttachmentURL != nil {
		txn.AttachmentURL = input.AttachmentURL
	}

	if err := s.txnRepo.Update(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// DeleteTransaction removes a transaction
func (s *FinanceService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	txn, err := s.txnRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if txn == nil {
		return apperror.NewNotFoundError("Transaction")
	}
	return s.txnRepo.Delete(ctx, id)
}

// ListTransactions lists transactions with filtering, most recent date first
func (s *FinanceService) ListTransactions(ctx context.Context, params *repository.TransactionFilterParams) (*pagination.PaginatedResult[entity.Transaction], error) {
	txns, total, err := s.txnRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(txns, pag), nil
}
