package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/pos_finance_manager/internal/apperrors"
	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_finance_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_finance_manager/internal/core/ports/services"
	"github.com/SscSPs/pos_finance_manager/internal/dto"
	"github.com/SscSPs/pos_finance_manager/internal/utils/accounting"
)

// JournalNumberer hands out human-readable, unique journal numbers.
type JournalNumberer interface {
	JournalNumber(date time.Time) string
}

// journalService posts balanced entries and keeps account balances in step.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryWithTx
	accountRepo portsrepo.AccountTransactionSupport
	numbers     JournalNumberer
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithJournalClock overrides the clock used for entry dates and audit stamps.
func WithJournalClock(now func() time.Time) JournalServiceOption {
	return func(s *journalService) {
		s.now = now
	}
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryWithTx, accountRepo portsrepo.AccountTransactionSupport, numbers JournalNumberer, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		BaseService: newBaseService(),
		journalRepo: journalRepo,
		accountRepo: accountRepo,
		numbers:     numbers,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateJournalEntry validates the lines, then inside one database
// transaction resolves the account codes, writes the entry and applies the
// balance deltas. Nothing is written when any step fails.
func (s *journalService) CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	now := s.Now()

	entryDate := domain.TruncateToDate(now)
	if req.Date != "" {
		parsed, err := time.Parse(domain.DateLayout, req.Date)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid journal date %q, expected YYYY-MM-DD", req.Date)
		}
		entryDate = parsed
	}

	entryID := uuid.NewString()
	lines := make([]domain.JournalEntryLine, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = domain.JournalEntryLine{
			LineID:         uuid.NewString(),
			JournalEntryID: entryID,
			AccountCode:    l.AccountCode,
			Description:    l.Description,
			DebitAmount:    l.DebitAmount,
			CreditAmount:   l.CreditAmount,
		}
	}

	total, err := accounting.ValidateJournalLines(lines)
	if err != nil {
		s.LogDebug(ctx, "Journal entry rejected", slog.String("reason", err.Error()))
		return nil, err
	}

	entry := domain.JournalEntry{
		JournalEntryID: entryID,
		JournalNumber:  s.numbers.JournalNumber(entryDate),
		Date:           entryDate,
		Description:    req.Description,
		Reference:      req.Reference,
		ReferenceType:  req.ReferenceType,
		TotalAmount:    total,
		Status:         domain.Posted,
		CreatedBy:      userID,
		CreatedAt:      now,
	}

	err = s.journalRepo.WithTransaction(ctx, func(tx pgx.Tx) error {
		codes := uniqueAccountCodes(lines)
		accounts, err := s.accountRepo.FindActiveAccountsByCodesInTx(ctx, tx, codes)
		if err != nil {
			return fmt.Errorf("failed to load accounts: %w", err)
		}
		for _, code := range codes {
			if _, ok := accounts[code]; !ok {
				return apperrors.NewNotFoundError("account", code)
			}
		}
		for i := range lines {
			lines[i].AccountID = accounts[lines[i].AccountCode].AccountID
		}

		if err := s.journalRepo.InsertJournalEntryInTx(ctx, tx, entry, lines); err != nil {
			return fmt.Errorf("failed to insert journal entry: %w", err)
		}
		if err := s.accountRepo.ApplyBalanceChangesInTx(ctx, tx, accounting.BalanceChanges(lines, accounts), now); err != nil {
			return fmt.Errorf("failed to apply balance changes: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) {
			s.LogWarn(ctx, err, "Journal entry rejected by chart of accounts", slog.String("journal_number", entry.JournalNumber))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to post journal entry", slog.String("journal_number", entry.JournalNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry posted",
		slog.String("journal_entry_id", entry.JournalEntryID),
		slog.String("journal_number", entry.JournalNumber),
		slog.String("total_amount", entry.TotalAmount.String()))
	return &entry, nil
}

func (s *journalService) GetJournalEntry(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindJournalEntryByID(ctx, journalEntryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("journal entry", journalEntryID)
		}
		s.LogError(ctx, err, "Failed to find journal entry", slog.String("journal_entry_id", journalEntryID))
		return nil, fmt.Errorf("failed to get journal entry: %w", err)
	}
	return entry, nil
}

func (s *journalService) ListJournalEntriesByReference(ctx context.Context, referenceType, reference string) ([]domain.JournalEntry, error) {
	entries, err := s.journalRepo.ListJournalEntriesByReference(ctx, referenceType, reference)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries by reference",
			slog.String("reference_type", referenceType), slog.String("reference", reference))
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	if entries == nil {
		entries = []domain.JournalEntry{}
	}
	return entries, nil
}

func uniqueAccountCodes(lines []domain.JournalEntryLine) []string {
	seen := make(map[string]struct{}, len(lines))
	codes := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.AccountCode]; ok {
			continue
		}
		seen[l.AccountCode] = struct{}{}
		codes = append(codes, l.AccountCode)
	}
	return codes
}
