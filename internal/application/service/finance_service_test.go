package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compasshq/erp-api/internal/domain/entity"
	"github.com/compasshq/erp-api/internal/domain/enum"
	"github.com/compasshq/erp-api/internal/domain/repository"
	"github.com/compasshq/erp-api/pkg/apperror"
	"github.com/compasshq/erp-api/pkg/pagination"
)

// ledgerStore is an in-memory stand-in for the invoice, item and payment
// tables plus the per-year number sequence. The mutex serializes fake
// transactions against reads from outside them, the way row locks do.
type ledgerStore struct {
	mu        sync.Mutex
	invoices  map[uuid.UUID]entity.Invoice
	items     map[uuid.UUID][]entity.InvoiceItem
	payments  map[uuid.UUID][]entity.Payment
	sequences map[int]int64

	failItemBatch bool
}

// lockIf locks mu when set. Repos handed out by the fake unit of work
// carry a nil mutex because the transaction already holds it.
func lockIf(mu *sync.Mutex) func() {
	if mu == nil {
		return func() {}
	}
	mu.Lock()
	return mu.Unlock
}

func newLedgerStore() *ledgerStore {
	return &ledgerStore{
		invoices:  make(map[uuid.UUID]entity.Invoice),
		items:     make(map[uuid.UUID][]entity.InvoiceItem),
		payments:  make(map[uuid.UUID][]entity.Payment),
		sequences: make(map[int]int64),
	}
}

func (s *ledgerStore) snapshot() *ledgerStore {
	cp := newLedgerStore()
	for k, v := range s.invoices {
		cp.invoices[k] = v
	}
	for k, v := range s.items {
		cp.items[k] = append([]entity.InvoiceItem(nil), v...)
	}
	for k, v := range s.payments {
		cp.payments[k] = append([]entity.Payment(nil), v...)
	}
	for k, v := range s.sequences {
		cp.sequences[k] = v
	}
	cp.failItemBatch = s.failItemBatch
	return cp
}

func (s *ledgerStore) restore(snap *ledgerStore) {
	s.invoices = snap.invoices
	s.items = snap.items
	s.payments = snap.payments
	s.sequences = snap.sequences
}

type fakeInvoiceRepo struct {
	store *ledgerStore
	mu    *sync.Mutex
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	defer lockIf(r.mu)()
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	r.store.invoices[invoice.ID] = *invoice
	return nil
}

func (r *fakeInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	defer lockIf(r.mu)()
	inv, ok := r.store.invoices[id]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (r *fakeInvoiceRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	defer lockIf(r.mu)()
	inv, ok := r.store.invoices[id]
	if !ok {
		return nil, nil
	}
	inv.Items = append([]entity.InvoiceItem(nil), r.store.items[id]...)
	return &inv, nil
}

func (r *fakeInvoiceRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeInvoiceRepo) List(ctx context.Context, params *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	defer lockIf(r.mu)()
	var out []entity.Invoice
	for _, inv := range r.store.invoices {
		if params.Status != nil && inv.Status != *params.Status {
			continue
		}
		if params.CustomerID != nil && inv.CustomerID != *params.CustomerID {
			continue
		}
		out = append(out, inv)
	}
	return out, int64(len(out)), nil
}

func (r *fakeInvoiceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error {
	defer lockIf(r.mu)()
	inv, ok := r.store.invoices[id]
	if !ok {
		return nil
	}
	inv.Status = status
	r.store.invoices[id] = inv
	return nil
}

func (r *fakeInvoiceRepo) NextNumber(ctx context.Context, year int) (string, error) {
	defer lockIf(r.mu)()
	r.store.sequences[year]++
	return fmt.Sprintf("INV%d%04d", year, r.store.sequences[year]), nil
}

type fakeItemRepo struct {
	store *ledgerStore
	mu    *sync.Mutex
}

func (r *fakeItemRepo) CreateBatch(ctx context.Context, items []entity.InvoiceItem) error {
	defer lockIf(r.mu)()
	if r.store.failItemBatch {
		return errors.New("insert failed")
	}
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		r.store.items[items[i].InvoiceID] = append(r.store.items[items[i].InvoiceID], items[i])
	}
	return nil
}

func (r *fakeItemRepo) GetByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoiceItem, error) {
	defer lockIf(r.mu)()
	return r.store.items[invoiceID], nil
}

type fakePaymentRepo struct {
	store *ledgerStore
	mu    *sync.Mutex
}

func (r *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	defer lockIf(r.mu)()
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	r.store.payments[payment.InvoiceID] = append(r.store.payments[payment.InvoiceID], *payment)
	return nil
}

func (r *fakePaymentRepo) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]entity.Payment, error) {
	defer lockIf(r.mu)()
	return r.store.payments[invoiceID], nil
}

func (r *fakePaymentRepo) SumCompleted(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error) {
	defer lockIf(r.mu)()
	sum := decimal.Zero
	for _, p := range r.store.payments[invoiceID] {
		if p.CountsTowardReconciliation() {
			sum = sum.Add(p.Amount)
		}
	}
	return sum, nil
}

// fakeUnitOfWork snapshots the store before running the function and
// restores it when the function fails, mimicking a rollback. It holds
// the store mutex for the whole function, serializing transactions.
type fakeUnitOfWork struct{ store *ledgerStore }

func (u *fakeUnitOfWork) Do(ctx context.Context, fn func(tx repository.LedgerTx) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	snap := u.store.snapshot()
	if err := fn(&fakeLedgerTx{store: u.store}); err != nil {
		u.store.restore(snap)
		return err
	}
	return nil
}

type fakeLedgerTx struct{ store *ledgerStore }

func (t *fakeLedgerTx) Invoices() repository.InvoiceRepository { return &fakeInvoiceRepo{store: t.store} }
func (t *fakeLedgerTx) Items() repository.InvoiceItemRepository {
	return &fakeItemRepo{store: t.store}
}
func (t *fakeLedgerTx) Payments() repository.PaymentRepository { return &fakePaymentRepo{store: t.store} }

type fakeCustomerRepo struct{ customers map[uuid.UUID]entity.Customer }

func (r *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	r.customers[customer.ID] = *customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeCustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Email != nil && *c.Email == email {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = *customer
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) List(ctx context.Context, params *repository.CustomerFilterParams) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeCustomerRepo) ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Customer, error) {
	var out []entity.Customer
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}

type fakeTransactionRepo struct{ txns map[uuid.UUID]entity.Transaction }

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{txns: make(map[uuid.UUID]entity.Transaction)}
}

func (r *fakeTransactionRepo) Create(ctx context.Context, txn *entity.Transaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	r.txns[txn.ID] = *txn
	return nil
}

func (r *fakeTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	t, ok := r.txns[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *fakeTransactionRepo) Update(ctx context.Context, txn *entity.Transaction) error {
	r.txns[txn.ID] = *txn
	return nil
}

func (r *fakeTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.txns, id)
	return nil
}

func (r *fakeTransactionRepo) List(ctx context.Context, params *repository.TransactionFilterParams) ([]entity.Transaction, int64, error) {
	var out []entity.Transaction
	for _, t := range r.txns {
		out = append(out, t)
	}
	return out, int64(len(out)), nil
}

func (r *fakeTransactionRepo) SumByType(ctx context.Context, txnType enum.TransactionType) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, t := range r.txns {
		if t.Type == txnType {
			sum = sum.Add(t.Amount)
		}
	}
	return sum, nil
}

func (r *fakeTransactionRepo) ListRecent(ctx context.Context, limit int) ([]entity.Transaction, error) {
	var out []entity.Transaction
	for _, t := range r.txns {
		out = append(out, t)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type financeFixture struct {
	svc      *FinanceService
	store    *ledgerStore
	customer *entity.Customer
}

func newFinanceFixture(t *testing.T) *financeFixture {
	t.Helper()

	store := newLedgerStore()
	customerRepo := &fakeCustomerRepo{customers: make(map[uuid.UUID]entity.Customer)}
	customer := &entity.Customer{Name: "Acme Ltd", Type: enum.CustomerTypeBusiness, Status: enum.CustomerStatusActive}
	require.NoError(t, customerRepo.Create(context.Background(), customer))

	svc := NewFinanceService(
		&fakeUnitOfWork{store: store},
		&fakeInvoiceRepo{store: store, mu: &store.mu},
		&fakePaymentRepo{store: store, mu: &store.mu},
		newFakeTransactionRepo(),
		customerRepo,
	)

	return &financeFixture{svc: svc, store: store, customer: customer}
}

func (f *financeFixture) createInvoice(t *testing.T, items []InvoiceItemInput) *entity.Invoice {
	t.Helper()
	invoice, err := f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		CustomerID: f.customer.ID,
		IssueDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:    time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Items:      items,
	})
	require.NoError(t, err)
	return invoice
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCreateInvoice_TotalsAndNumbering(t *testing.T) {
	f := newFinanceFixture(t)

	invoice := f.createInvoice(t, []InvoiceItemInput{
		{Description: "Consulting", Quantity: dec("3"), UnitPrice: dec("150.00"), TaxRate: dec("0.10")},
		{Description: "Licence", Quantity: dec("1.5"), UnitPrice: dec("99.99"), TaxRate: dec("0.05")},
	})

	// 3 * 150.00 = 450.00, tax 45.00; 1.5 * 99.99 = 149.985 -> 149.99, tax 7.50
	assert.True(t, invoice.Subtotal.Equal(dec("599.99")), "subtotal was %s", invoice.Subtotal)
	assert.True(t, invoice.TaxTotal.Equal(dec("52.50")), "tax total was %s", invoice.TaxTotal)
	assert.True(t, invoice.Total.Equal(dec("652.49")), "total was %s", invoice.Total)
	assert.Equal(t, enum.InvoiceStatusDraft, invoice.Status)
	assert.Len(t, invoice.Items, 2)

	year := time.Now().Year()
	assert.Equal(t, fmt.Sprintf("INV%d0001", year), invoice.InvoiceNumber)

	second := f.createInvoice(t, []InvoiceItemInput{
		{Description: "Support", Quantity: dec("1"), UnitPrice: dec("10.00"), TaxRate: dec("0")},
	})
	assert.Equal(t, fmt.Sprintf("INV%d0002", year), second.InvoiceNumber)
}

func TestCreateInvoice_NotesAndTerms(t *testing.T) {
	f := newFinanceFixture(t)

	notes := "Thanks for your business"
	terms := "Net 30"
	invoice, err := f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		CustomerID: f.customer.ID,
		IssueDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:    time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Notes:      &notes,
		Terms:      &terms,
		Items: []InvoiceItemInput{
			{Description: "X", Quantity: dec("1"), UnitPrice: dec("10.00"), TaxRate: dec("0")},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, invoice.Notes)
	assert.Equal(t, notes, *invoice.Notes)
	require.NotNil(t, invoice.Terms)
	assert.Equal(t, terms, *invoice.Terms)
}

func TestCreateInvoice_Validation(t *testing.T) {
	f := newFinanceFixture(t)

	_, err := f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		CustomerID: f.customer.ID,
		Items:      nil,
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)

	_, err = f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		CustomerID: f.customer.ID,
		Items: []InvoiceItemInput{
			{Description: "", Quantity: dec("0"), UnitPrice: dec("-1"), TaxRate: dec("1.5")},
		},
	})
	require.Error(t, err)
	appErr = apperror.GetAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	assert.Len(t, appErr.Errors, 4)
}

func TestCreateInvoice_UnknownCustomer(t *testing.T) {
	f := newFinanceFixture(t)

	_, err := f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		CustomerID: uuid.New(),
		Items: []InvoiceItemInput{
			{Description: "X", Quantity: dec("1"), UnitPrice: dec("1"), TaxRate: dec("0")},
		},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestCreateInvoice_RollsBackOnItemFailure(t *testing.T) {
	f := newFinanceFixture(t)
	f.store.failItemBatch = true

	_, err := f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		CustomerID: f.customer.ID,
		Items: []InvoiceItemInput{
			{Description: "X", Quantity: dec("1"), UnitPrice: dec("1"), TaxRate: dec("0")},
		},
	})
	require.Error(t, err)

	// Neither the invoice nor the allocated number survive the rollback
	assert.Empty(t, f.store.invoices)
	assert.Zero(t, f.store.sequences[time.Now().Year()])
}

func TestCreateInvoice_ConcurrentNumbering(t *testing.T) {
	f := newFinanceFixture(t)

	const workers = 25
	numbers := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			invoice, err := f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
				CustomerID: f.customer.ID,
				IssueDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				DueDate:    time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
				Items: []InvoiceItemInput{
					{Description: "X", Quantity: dec("1"), UnitPrice: dec("10.00"), TaxRate: dec("0")},
				},
			})
			if err != nil {
				t.Error(err)
				return
			}
			numbers <- invoice.InvoiceNumber
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[string]bool)
	for number := range numbers {
		assert.False(t, seen[number], "invoice number %s allocated twice", number)
		seen[number] = true
	}
	assert.Len(t, seen, workers)
}

func TestCreatePayment_ReconcilesToPaid(t *testing.T) {
	f := newFinanceFixture(t)
	invoice := f.createInvoice(t, []InvoiceItemInput{
		{Description: "X", Quantity: dec("1"), UnitPrice: dec("100.00"), TaxRate: dec("0")},
	})

	_, err := f.svc.CreatePayment(context.Background(), &CreatePaymentInput{
		InvoiceID: invoice.ID,
		Amount:    dec("60.00"),
		Method:    enum.PaymentMethodBankTransfer,
	})
	require.NoError(t, err)

	after, err := f.svc.GetInvoice(context.Background(), invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusDraft, after.Status)

	_, err = f.svc.CreatePayment(context.Background(), &CreatePaymentInput{
		InvoiceID: invoice.ID,
		Amount:    dec("40.00"),
		Method:    enum.PaymentMethodCash,
	})
	require.NoError(t, err)

	after, err = f.svc.GetInvoice(context.Background(), invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusPaid, after.Status)
}

func TestCreatePayment_PendingDoesNotReconcile(t *testing.T) {
	f := newFinanceFixture(t)
	invoice := f.createInvoice(t, []InvoiceItemInput{
		{Description: "X", Quantity: dec("1"), UnitPrice: dec("100.00"), TaxRate: dec("0")},
	})

	pending := enum.PaymentStatusPending
	_, err := f.svc.CreatePayment(context.Background(), &CreatePaymentInput{
		InvoiceID: invoice.ID,
		Amount:    dec("100.00"),
		Method:    enum.PaymentMethodWechat,
		Status:    &pending,
	})
	require.NoError(t, err)

	after, err := f.svc.GetInvoice(context.Background(), invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusDraft, after.Status)
}

func TestCreatePayment_SinglePaymentCappedAtTotal(t *testing.T) {
	f := newFinanceFixture(t)
	invoice := f.createInvoice(t, []InvoiceItemInput{
		{Description: "X", Quantity: dec("1"), UnitPrice: dec("100.00"), TaxRate: dec("0")},
	})

	_, err := f.svc.CreatePayment(context.Background(), &CreatePaymentInput{
		InvoiceID: invoice.ID,
		Amount:    dec("100.01"),
		Method:    enum.PaymentMethodCash,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
	assert.Empty(t, f.store.payments[invoice.ID])
}

func TestCreatePayment_CumulativeOverpaymentAllowed(t *testing.T) {
	f := newFinanceFixture(t)
	invoice := f.createInvoice(t, []InvoiceItemInput{
		{Description: "X", Quantity: dec("1"), UnitPrice: dec("100.00"), TaxRate: dec("0")},
	})

	// Each payment is within the total, so the combined 160.00 is accepted
	for _, amount := range []string{"80.00", "80.00"} {
		_, err := f.svc.CreatePayment(context.Background(), &CreatePaymentInput{
			InvoiceID: invoice.ID,
			Amount:    dec(amount),
			Method:    enum.PaymentMethodCreditCard,
		})
		require.NoError(t, err)
	}

	after, err := f.svc.GetInvoice(context.Background(), invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusPaid, after.Status)
	assert.Len(t, f.store.payments[invoice.ID], 2)
}

func TestCreatePayment_ReferenceNoDefaulted(t *testing.T) {
	f := newFinanceFixture(t)
	invoice := f.createInvoice(t, []InvoiceItemInput{
		{Description: "X", Quantity: dec("1"), UnitPrice: dec("100.00"), TaxRate: dec("0")},
	})

	payment, err := f.svc.CreatePayment(context.Background(), &CreatePaymentInput{
		InvoiceID: invoice.ID,
		Amount:    dec("50.00"),
		Method:    enum.PaymentMethodCash,
	})
	require.NoError(t, err)
	require.NotNil(t, payment.ReferenceNo)
	assert.True(t, strings.HasPrefix(*payment.ReferenceNo, "PAY-"), "got %s", *payment.ReferenceNo)

	ref := "WIRE-20260301"
	payment, err = f.svc.CreatePayment(context.Background(), &CreatePaymentInput{
		InvoiceID:   invoice.ID,
		Amount:      dec("25.00"),
		Method:      enum.PaymentMethodBankTransfer,
		ReferenceNo: &ref,
	})
	require.NoError(t, err)
	require.NotNil(t, payment.ReferenceNo)
	assert.Equal(t, ref, *payment.ReferenceNo)
}

func TestCreatePayment_UnknownInvoice(t *testing.T) {
	f := newFinanceFixture(t)

	_, err := f.svc.CreatePayment(context.Background(), &CreatePaymentInput{
		InvoiceID: uuid.New(),
		Amount:    dec("10.00"),
		Method:    enum.PaymentMethodCash,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestUpdateInvoiceStatus(t *testing.T) {
	f := newFinanceFixture(t)
	invoice := f.createInvoice(t, []InvoiceItemInput{
		{Description: "X", Quantity: dec("1"), UnitPrice: dec("50.00"), TaxRate: dec("0")},
	})

	err := f.svc.UpdateInvoiceStatus(context.Background(), invoice.ID, enum.InvoiceStatusSent)
	require.NoError(t, err)

	after, err := f.svc.GetInvoice(context.Background(), invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusSent, after.Status)

	// paid is reserved for reconciliation
	err = f.svc.UpdateInvoiceStatus(context.Background(), invoice.ID, enum.InvoiceStatusPaid)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)

	err = f.svc.UpdateInvoiceStatus(context.Background(), invoice.ID, enum.InvoiceStatus("bogus"))
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
}

func TestCreateTransaction(t *testing.T) {
	f := newFinanceFixture(t)

	txn, err := f.svc.CreateTransaction(context.Background(), &CreateTransactionInput{
		Type:     enum.TransactionTypeExpense,
		Amount:   dec("42.50"),
		Category: "office",
	})
	require.NoError(t, err)
	assert.Equal(t, enum.TransactionTypeExpense, txn.Type)
	assert.False(t, txn.Date.IsZero(), "date should default to now")

	_, err = f.svc.CreateTransaction(context.Background(), &CreateTransactionInput{
		Type:     enum.TransactionType("transfer"),
		Amount:   dec("-1"),
		Category: "",
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	assert.Len(t, appErr.Errors, 3)
}
