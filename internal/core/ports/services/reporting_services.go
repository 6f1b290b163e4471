package services

import (
	"context"
	"time"

	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// GetBalanceSheet uses live balances when asOf is nil and replays posted
	// journal lines up to asOf otherwise.
	GetBalanceSheet(ctx context.Context, asOf *time.Time) (*domain.BalanceSheetReport, error)

	// GetIncomeStatement reports posted activity inside the inclusive window.
	GetIncomeStatement(ctx context.Context, startDate, endDate *time.Time) (*domain.IncomeStatementReport, error)

	// GetSummary aggregates confirmed financial records.
	GetSummary(ctx context.Context, startDate, endDate *time.Time) (*domain.FinancialSummary, error)

	// ReconcileBalances lists accounts whose cached balance differs from the journal history.
	ReconcileBalances(ctx context.Context) ([]domain.BalanceDiscrepancy, error)
}
