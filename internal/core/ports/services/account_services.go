package services

import (
	"context"

	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
)

// AccountReaderSvc defines read operations for the chart of accounts
type AccountReaderSvc interface {
	// GetAccountByCode returns a *apperrors.NotFoundError for unknown codes.
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// GetChartOfAccounts lists active accounts ordered by code.
	GetChartOfAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for accounts
type AccountWriterSvc interface {
	DeactivateAccount(ctx context.Context, code string, userID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
