package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/pos_finance_manager/internal/apperrors"
	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_finance_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_finance_manager/internal/core/ports/services"
)

type AccountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

func NewAccountService(repo portsrepo.AccountRepositoryFacade) *AccountService {
	return &AccountService{BaseService: newBaseService(), accountRepo: repo}
}

var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

func (s *AccountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Account not found", slog.String("account_code", code))
			return nil, apperrors.NewNotFoundError("account", code)
		}
		s.LogError(ctx, err, "Failed to get account from repository", slog.String("account_code", code))
		return nil, fmt.Errorf("failed to get account %s: %w", code, err)
	}
	return account, nil
}

func (s *AccountService) GetChartOfAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListActiveAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts from repository")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

// DeactivateAccount hides an account from new postings. Existing journal
// lines and the cached balance are left untouched.
func (s *AccountService) DeactivateAccount(ctx context.Context, code string, userID string) error {
	account, err := s.GetAccountByCode(ctx, code)
	if err != nil {
		return err
	}
	if !account.IsActive {
		return apperrors.NewValidationError("account %s is already inactive", code)
	}

	if err := s.accountRepo.DeactivateAccount(ctx, code, userID, s.Now()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("account", code)
		}
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_code", code))
		return fmt.Errorf("failed to deactivate account %s: %w", code, err)
	}
	s.LogInfo(ctx, "Account deactivated", slog.String("account_code", code), slog.String("user_id", userID))
	return nil
}
