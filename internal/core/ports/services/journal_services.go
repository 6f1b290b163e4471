package services

import (
	"context"

	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
	"github.com/SscSPs/pos_finance_manager/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	GetJournalEntry(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error)
	ListJournalEntriesByReference(ctx context.Context, referenceType, reference string) ([]domain.JournalEntry, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// CreateJournalEntry validates, posts and applies a balanced entry in one
	// transaction. The returned header has no lines.
	CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
