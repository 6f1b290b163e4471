package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
)

// ReportingRepository defines operations for retrieving financial report data
type ReportingRepository interface {
	// GetAccountActivity sums posted debits and credits per active account of
	// the given types with entry dates inside [from, to]. Either bound may be
	// nil. Accounts without activity are returned with zero totals.
	GetAccountActivity(ctx context.Context, types []domain.AccountType, from, to *time.Time) ([]domain.AccountActivity, error)

	// GetInventoryValuation values active, non-negative stock at average cost.
	GetInventoryValuation(ctx context.Context) (domain.InventoryValuation, error)
}
