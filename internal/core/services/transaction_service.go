package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/pos_finance_manager/internal/apperrors"
	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
	"github.com/SscSPs/pos_finance_manager/internal/core/ports"
	portsrepo "github.com/SscSPs/pos_finance_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_finance_manager/internal/core/ports/services"
	"github.com/SscSPs/pos_finance_manager/internal/dto"
	"github.com/SscSPs/pos_finance_manager/internal/platform/accountmap"
)

// referenceTypeRecord tags journals booked for records that carry no
// business reference of their own.
const referenceTypeRecord = "financial_record"

// AccountMapper picks the debit and credit accounts for a financial record.
type AccountMapper interface {
	Resolve(recordType domain.RecordType, category string, paymentMethod, sourceCode, destinationCode *string) (accountmap.Posting, error)
}

type transactionService struct {
	BaseService
	recordRepo portsrepo.FinancialRecordRepositoryFacade
	journalSvc portssvc.JournalWriterSvc
	mapper     AccountMapper
	publisher  ports.EventPublisher
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithEventPublisher sends record lifecycle events to publisher.
func WithEventPublisher(publisher ports.EventPublisher) TransactionServiceOption {
	return func(s *transactionService) {
		s.publisher = publisher
	}
}

// WithTransactionClock overrides the clock used for record timestamps.
func WithTransactionClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

func NewTransactionService(recordRepo portsrepo.FinancialRecordRepositoryFacade, journalSvc portssvc.JournalWriterSvc, mapper AccountMapper, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		BaseService: newBaseService(),
		recordRepo:  recordRepo,
		journalSvc:  journalSvc,
		mapper:      mapper,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction stores a confirmed record and books it. The record is
// the source of truth for the business event: when the journal cannot be
// posted the record is kept unlinked, a warning is logged and an unlinked
// event is published so an operator can repost it later.
//
// A record whose idempotency key already exists is not written and
// apperrors.ErrDuplicate is returned.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.FinancialRecord, error) {
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("invalid record type %q", req.Type)
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, apperrors.NewValidationError("category is required")
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be greater than zero")
	}

	posting, err := s.mapper.Resolve(req.Type, req.Category, req.PaymentMethod, req.SourceAccountCode, req.DestinationAccountCode)
	if err != nil {
		s.LogWarn(ctx, err, "No account mapping for record", slog.String("type", string(req.Type)), slog.String("category", req.Category))
		return nil, err
	}

	record := domain.FinancialRecord{
		RecordID:               uuid.NewString(),
		Type:                   req.Type,
		Category:               req.Category,
		Subcategory:            req.Subcategory,
		Amount:                 req.Amount,
		Description:            req.Description,
		Reference:              req.Reference,
		ReferenceType:          req.ReferenceType,
		PaymentMethod:          req.PaymentMethod,
		Tags:                   req.Tags,
		SourceAccountCode:      req.SourceAccountCode,
		DestinationAccountCode: req.DestinationAccountCode,
		Status:                 domain.RecordConfirmed,
		IdempotencyKey:         req.IdempotencyKey,
		CreatedBy:              userID,
		CreatedAt:              s.Now(),
	}

	inserted, err := s.recordRepo.InsertRecord(ctx, record)
	if err != nil {
		s.LogError(ctx, err, "Failed to insert financial record", slog.String("category", record.Category))
		return nil, fmt.Errorf("failed to create financial record: %w", err)
	}
	if !inserted {
		s.LogDebug(ctx, "Financial record already exists for idempotency key", slog.String("idempotency_key", deref(record.IdempotencyKey)))
		return nil, fmt.Errorf("%w: financial record %s", apperrors.ErrDuplicate, deref(record.IdempotencyKey))
	}

	journalID, err := s.postJournal(ctx, &record, posting, userID)
	if err != nil {
		s.LogWarn(ctx, err, "Financial record saved without journal entry",
			slog.String("record_id", record.RecordID),
			slog.String("category", record.Category),
			slog.String("amount", record.Amount.String()))
		s.publish(ctx, ports.EventJournalUnlinked, &record, err)
		return &record, nil
	}

	record.JournalEntryID = &journalID
	s.LogInfo(ctx, "Financial record created",
		slog.String("record_id", record.RecordID),
		slog.String("journal_entry_id", journalID))
	s.publish(ctx, ports.EventRecordCreated, &record, nil)
	return &record, nil
}

// RepostJournal books a record left unlinked by a failed posting. Unlike
// CreateTransaction it surfaces posting errors to the caller.
func (s *transactionService) RepostJournal(ctx context.Context, recordID string, userID string) (*domain.FinancialRecord, error) {
	record, err := s.GetTransaction(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record.IsJournaled() {
		return nil, fmt.Errorf("%w: financial record %s is already linked to journal entry %s", apperrors.ErrConflict, recordID, *record.JournalEntryID)
	}

	posting, err := s.mapper.Resolve(record.Type, record.Category, record.PaymentMethod, record.SourceAccountCode, record.DestinationAccountCode)
	if err != nil {
		return nil, err
	}
	journalID, err := s.postJournal(ctx, record, posting, userID)
	if err != nil {
		s.LogWarn(ctx, err, "Repost of journal entry failed", slog.String("record_id", recordID))
		return nil, err
	}

	record.JournalEntryID = &journalID
	s.LogInfo(ctx, "Financial record relinked", slog.String("record_id", recordID), slog.String("journal_entry_id", journalID))
	s.publish(ctx, ports.EventJournalRelinked, record, nil)
	return record, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, recordID string) (*domain.FinancialRecord, error) {
	record, err := s.recordRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("financial record", recordID)
		}
		s.LogError(ctx, err, "Failed to find financial record", slog.String("record_id", recordID))
		return nil, fmt.Errorf("failed to get financial record: %w", err)
	}
	return record, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.FinancialRecord, *string, error) {
	filter := domain.TransactionFilter{
		UnlinkedOnly: params.UnlinkedOnly,
		Limit:        params.Limit,
		NextToken:    params.NextToken,
	}
	if params.Type != "" {
		t := domain.RecordType(params.Type)
		filter.Type = &t
	}
	if params.Category != "" {
		filter.Category = &params.Category
	}
	if params.ReferenceType != "" {
		filter.ReferenceType = &params.ReferenceType
	}
	var err error
	if filter.StartDate, err = dto.ParseOptionalDate(params.StartDate); err != nil {
		return nil, nil, apperrors.NewValidationError("invalid startDate: %v", err)
	}
	if filter.EndDate, err = dto.ParseOptionalDate(params.EndDate); err != nil {
		return nil, nil, apperrors.NewValidationError("invalid endDate: %v", err)
	}

	records, next, err := s.recordRepo.ListRecords(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list financial records")
		return nil, nil, fmt.Errorf("failed to list financial records: %w", err)
	}
	if records == nil {
		records = []domain.FinancialRecord{}
	}
	return records, next, nil
}

// postJournal books the two-line entry for record and links it back.
func (s *transactionService) postJournal(ctx context.Context, record *domain.FinancialRecord, posting accountmap.Posting, userID string) (string, error) {
	reference, referenceType := record.Reference, record.ReferenceType
	if reference == nil || referenceType == nil {
		rt := referenceTypeRecord
		reference, referenceType = &record.RecordID, &rt
	}

	entry, err := s.journalSvc.CreateJournalEntry(ctx, dto.CreateJournalEntryRequest{
		Date:          record.CreatedAt.Format(domain.DateLayout),
		Description:   record.Description,
		Reference:     reference,
		ReferenceType: referenceType,
		Lines: []dto.CreateJournalLineRequest{
			{AccountCode: posting.DebitAccountCode, Description: record.Description, DebitAmount: record.Amount},
			{AccountCode: posting.CreditAccountCode, Description: record.Description, CreditAmount: record.Amount},
		},
	}, userID)
	if err != nil {
		return "", err
	}

	if err := s.recordRepo.LinkJournalEntry(ctx, record.RecordID, entry.JournalEntryID); err != nil {
		// The entry is posted but the record does not point at it; a repost
		// would book it twice, so this needs a human.
		s.LogError(ctx, err, "Journal entry posted but record link failed",
			slog.String("record_id", record.RecordID),
			slog.String("journal_entry_id", entry.JournalEntryID))
		return "", fmt.Errorf("failed to link journal entry %s: %w", entry.JournalEntryID, err)
	}
	return entry.JournalEntryID, nil
}

func (s *transactionService) publish(ctx context.Context, eventType string, record *domain.FinancialRecord, cause error) {
	if s.publisher == nil {
		return
	}
	event := ports.FinanceEvent{
		Type:           eventType,
		RecordID:       record.RecordID,
		JournalEntryID: deref(record.JournalEntryID),
		RecordType:     string(record.Type),
		Category:       record.Category,
		Amount:         record.Amount.String(),
		ReferenceType:  deref(record.ReferenceType),
		Reference:      deref(record.Reference),
		OccurredAt:     s.Now().Format(time.RFC3339),
	}
	if cause != nil {
		event.Error = cause.Error()
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.LogWarn(ctx, err, "Failed to publish finance event", slog.String("event_type", eventType), slog.String("record_id", record.RecordID))
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
