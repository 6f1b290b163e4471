package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AccountReader defines read operations for the chart of accounts
type AccountReader interface {
	// FindAccountByCode returns apperrors.ErrNotFound when no account has the code.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// ListActiveAccounts returns active accounts ordered by code.
	ListActiveAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account metadata. Balances are
// not writable here.
type AccountWriter interface {
	DeactivateAccount(ctx context.Context, code string, userID string, now time.Time) error
}

// AccountTransactionSupport is used by journal posting inside its transaction.
type AccountTransactionSupport interface {
	// FindActiveAccountsByCodesInTx returns the active accounts keyed by code.
	// Codes without an active account are simply absent from the map.
	FindActiveAccountsByCodesInTx(ctx context.Context, tx pgx.Tx, codes []string) (map[string]domain.Account, error)

	// ApplyBalanceChangesInTx increments each account's balance by its delta
	// using a store-side expression.
	ApplyBalanceChangesInTx(ctx context.Context, tx pgx.Tx, changes []domain.AccountBalanceChange, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
