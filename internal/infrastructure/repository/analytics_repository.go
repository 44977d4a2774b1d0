package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/compasshq/erp-api/internal/domain/entity"
	"github.com/compasshq/erp-api/internal/domain/enum"
	domainRepo "github.com/compasshq/erp-api/internal/domain/repository"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Customer{}).Count(&count).Error
	return count, err
}

func (r *analyticsRepository) CountInvoicesByStatus(ctx context.Context) ([]domainRepo.InvoiceStatusCount, error) {
	var results []domainRepo.InvoiceStatusCount

	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&results).Error

	return results, err
}

func (r *analyticsRepository) GetOutstandingReceivables(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := r.db.WithContext(ctx).Raw(`
		SELECT SUM(i.total - COALESCE(p.paid, 0))
		FROM invoices i
		LEFT JOIN (
			SELECT invoice_id, SUM(amount) AS paid
			FROM payments
			WHERE status = ?
			GROUP BY invoice_id
		) p ON p.invoice_id = i.id
		WHERE i.status IN (?, ?)
	`, enum.PaymentStatusCompleted, enum.InvoiceStatusSent, enum.InvoiceStatusOverdue).
		Scan(&sum).Error

	if err != nil || !sum.Valid {
		return decimal.Zero, err
	}
	return sum.Decimal, nil
}

func (r *analyticsRepository) GetMonthlyIncome(ctx context.Context) (decimal.Decimal, error) {
	return r.sumMonthlyByType(ctx, enum.TransactionTypeIncome)
}

func (r *analyticsRepository) GetMonthlyExpenses(ctx context.Context) (decimal.Decimal, error) {
	return r.sumMonthlyByType(ctx, enum.TransactionTypeExpense)
}

func (r *analyticsRepository) sumMonthlyByType(ctx context.Context, txnType enum.TransactionType) (decimal.Decimal, error) {
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var sum decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&entity.Transaction{}).
		Select("SUM(amount)").
		Where("type = ? AND date >= ?", txnType, startOfMonth).
		Scan(&sum).Error

	if err != nil || !sum.Valid {
		return decimal.Zero, err
	}
	return sum.Decimal, nil
}
