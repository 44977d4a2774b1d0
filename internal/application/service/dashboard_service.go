package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/compasshq/erp-api/internal/domain/entity"
	"github.com/compasshq/erp-api/internal/domain/enum"
	"github.com/compasshq/erp-api/internal/domain/repository"
)

// DashboardService provides dashboard statistics
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	txnRepo       repository.TransactionRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	analyticsRepo repository.AnalyticsRepository,
	txnRepo repository.TransactionRepository,
) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		txnRepo:       txnRepo,
	}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalCustomers         int64                `json:"total_customers"`
	InvoicesByStatus       map[string]int64     `json:"invoices_by_status"`
	OutstandingReceivables decimal.Decimal      `json:"outstanding_receivables"`
	MonthlyIncome          decimal.Decimal      `json:"monthly_income"`
	MonthlyExpenses        decimal.Decimal      `json:"monthly_expenses"`
	MonthlyNet             decimal.Decimal      `json:"monthly_net"`
	RecentTransactions     []entity.Transaction `json:"recent_transactions"`
}

// recentTransactionLimit caps the recent activity list on the dashboard
const recentTransactionLimit = 10

// GetDashboardStats returns dashboard statistics
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	customerCount, err := s.analyticsRepo.CountCustomers(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalCustomers = customerCount

	// Every status appears in the map, even with zero invoices
	stats.InvoicesByStatus = map[string]int64{
		enum.InvoiceStatusDraft.String():     0,
		enum.InvoiceStatusSent.String():      0,
		enum.InvoiceStatusPaid.String():      0,
		enum.InvoiceStatusOverdue.String():   0,
		enum.InvoiceStatusCancelled.String(): 0,
	}
	statusCounts, err := s.analyticsRepo.CountInvoicesByStatus(ctx)
	if err != nil {
		return nil, err
	}
	for _, sc := range statusCounts {
		stats.InvoicesByStatus[sc.Status.String()] = sc.Count
	}

	receivables, err := s.analyticsRepo.GetOutstandingReceivables(ctx)
	if err != nil {
		return nil, err
	}
	stats.OutstandingReceivables = receivables

	income, err := s.analyticsRepo.GetMonthlyIncome(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.analyticsRepo.GetMonthlyExpenses(ctx)
	if err != nil {
		return nil, err
	}
	stats.MonthlyIncome = income
	stats.MonthlyExpenses = expenses
	stats.MonthlyNet = income.Sub(expenses)

	recent, err := s.txnRepo.ListRecent(ctx, recentTransactionLimit)
	if err != nil {
		return nil, err
	}
	stats.RecentTransactions = recent

	return stats, nil
}
