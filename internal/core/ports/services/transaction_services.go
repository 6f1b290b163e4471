package services

import (
	"context"

	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
	"github.com/SscSPs/pos_finance_manager/internal/dto"
)

// TransactionReaderSvc defines read operations for financial records
type TransactionReaderSvc interface {
	GetTransaction(ctx context.Context, recordID string) (*domain.FinancialRecord, error)
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.FinancialRecord, *string, error)
}

// TransactionWriterSvc defines write operations for financial records
type TransactionWriterSvc interface {
	// CreateTransaction stores the record and books its journal. A journal
	// failure is logged and leaves the record unlinked; it is not returned.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.FinancialRecord, error)

	// RepostJournal books the journal of a record whose original posting failed.
	RepostJournal(ctx context.Context, recordID string, userID string) (*domain.FinancialRecord, error)
}

// TransactionSvcFacade combines all financial record service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
