package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
)

// FinancialRecordReader defines read operations for financial records
type FinancialRecordReader interface {
	FindRecordByID(ctx context.Context, recordID string) (*domain.FinancialRecord, error)
	FindRecordByIdempotencyKey(ctx context.Context, key string) (*domain.FinancialRecord, error)

	// ListRecords returns a page of records, newest first, and the token of the next page.
	ListRecords(ctx context.Context, filter domain.TransactionFilter) ([]domain.FinancialRecord, *string, error)

	// ListConfirmedRecords returns every confirmed record created within the
	// inclusive date window. Either bound may be nil.
	ListConfirmedRecords(ctx context.Context, startDate, endDate *time.Time) ([]domain.FinancialRecord, error)
}

// FinancialRecordWriter defines write operations for financial records
type FinancialRecordWriter interface {
	// InsertRecord stores the record. When the record carries an idempotency
	// key that already exists nothing is written and inserted is false.
	InsertRecord(ctx context.Context, record domain.FinancialRecord) (inserted bool, err error)

	// LinkJournalEntry sets journal_entry_id on a record that has none.
	// Returns apperrors.ErrConflict when the record is already linked.
	LinkJournalEntry(ctx context.Context, recordID, journalEntryID string) error
}

type FinancialRecordRepositoryFacade interface {
	FinancialRecordReader
	FinancialRecordWriter
}
