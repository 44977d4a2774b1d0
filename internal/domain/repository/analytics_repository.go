package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/compasshq/erp-api/internal/domain/enum"
)

// InvoiceStatusCount represents the number of invoices in one status
type InvoiceStatusCount struct {
	Status enum.InvoiceStatus
	Count  int64
}

// AnalyticsRepository defines interface for dashboard aggregation queries
type AnalyticsRepository interface {
	// CountCustomers returns the number of non-deleted customers
	CountCustomers(ctx context.Context) (int64, error)

	// CountInvoicesByStatus returns invoice counts grouped by status
	CountInvoicesByStatus(ctx context.Context) ([]InvoiceStatusCount, error)

	// GetOutstandingReceivables returns the total of invoices that are
	// sent or overdue, minus their completed payments
	GetOutstandingReceivables(ctx context.Context) (decimal.Decimal, error)

	// GetMonthlyIncome returns income transaction totals for the current month
	GetMonthlyIncome(ctx context.Context) (decimal.Decimal, error)

	// GetMonthlyExpenses returns expense transaction totals for the current month
	GetMonthlyExpenses(ctx context.Context) (decimal.Decimal, error)
}
