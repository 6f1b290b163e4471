package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/pos_finance_manager/internal/apperrors"
	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
	"github.com/SscSPs/pos_finance_manager/internal/core/ports"
	portssvc "github.com/SscSPs/pos_finance_manager/internal/core/ports/services"
	"github.com/SscSPs/pos_finance_manager/internal/core/services"
	"github.com/SscSPs/pos_finance_manager/internal/dto"
	"github.com/SscSPs/pos_finance_manager/internal/platform/accountmap"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRecordRepo *MockRecordRepository
	mockJournalSvc *MockJournalService
	mockPublisher  *MockPublisher
	service        portssvc.TransactionSvcFacade
	ctx            context.Context
	now            time.Time
}

func (s *TransactionServiceTestSuite) SetupTest() {
	mapper, err := accountmap.New(accountmap.DefaultConfig())
	s.Require().NoError(err)

	s.mockRecordRepo = new(MockRecordRepository)
	s.mockJournalSvc = new(MockJournalService)
	s.mockPublisher = new(MockPublisher)
	s.now = time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)
	s.service = services.NewTransactionService(s.mockRecordRepo, s.mockJournalSvc, mapper,
		services.WithEventPublisher(s.mockPublisher),
		services.WithTransactionClock(func() time.Time { return s.now }))
	s.ctx = context.Background()
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func cashSale(amount string) dto.CreateTransactionRequest {
	cash := "cash"
	return dto.CreateTransactionRequest{
		Type:          domain.RecordIncome,
		Category:      "Sales Revenue",
		Amount:        decimal.RequireFromString(amount),
		Description:   "Penjualan POS #42",
		PaymentMethod: &cash,
	}
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_PostsAndLinksJournal() {
	s.mockRecordRepo.On("InsertRecord", s.ctx, mock.MatchedBy(func(r domain.FinancialRecord) bool {
		return r.Status == domain.RecordConfirmed && r.JournalEntryID == nil && r.CreatedAt.Equal(s.now)
	})).Return(true, nil).Once()
	s.mockJournalSvc.On("CreateJournalEntry", s.ctx, mock.MatchedBy(func(req dto.CreateJournalEntryRequest) bool {
		return len(req.Lines) == 2 &&
			req.Lines[0].AccountCode == "1111" && req.Lines[0].DebitAmount.Equal(decimal.NewFromInt(75000)) &&
			req.Lines[1].AccountCode == "4110" && req.Lines[1].CreditAmount.Equal(decimal.NewFromInt(75000)) &&
			*req.ReferenceType == "financial_record" && req.Date == "2024-05-02"
	}), "user-1").Return(&domain.JournalEntry{JournalEntryID: "je-1"}, nil).Once()
	s.mockRecordRepo.On("LinkJournalEntry", s.ctx, mock.Anything, "je-1").Return(nil).Once()
	s.mockPublisher.On("Publish", s.ctx, mock.MatchedBy(func(e ports.FinanceEvent) bool {
		return e.Type == ports.EventRecordCreated && e.JournalEntryID == "je-1" && e.Amount == "75000"
	})).Return(nil).Once()

	record, err := s.service.CreateTransaction(s.ctx, cashSale("75000"), "user-1")

	s.Require().NoError(err)
	s.Require().NotNil(record.JournalEntryID)
	s.Equal("je-1", *record.JournalEntryID)
	s.mockRecordRepo.AssertExpectations(s.T())
	s.mockJournalSvc.AssertExpectations(s.T())
	s.mockPublisher.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_JournalFailureKeepsRecordUnlinked() {
	s.mockRecordRepo.On("InsertRecord", s.ctx, mock.Anything).Return(true, nil).Once()
	s.mockJournalSvc.On("CreateJournalEntry", s.ctx, mock.Anything, "user-1").
		Return(nil, apperrors.NewNotFoundError("account", "4110")).Once()
	s.mockPublisher.On("Publish", s.ctx, mock.MatchedBy(func(e ports.FinanceEvent) bool {
		return e.Type == ports.EventJournalUnlinked && e.Error == "account not found: 4110"
	})).Return(nil).Once()

	record, err := s.service.CreateTransaction(s.ctx, cashSale("10000"), "user-1")

	s.Require().NoError(err)
	s.Nil(record.JournalEntryID)
	s.mockRecordRepo.AssertNotCalled(s.T(), "LinkJournalEntry", mock.Anything, mock.Anything, mock.Anything)
	s.mockPublisher.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_PublishFailureIsNotFatal() {
	s.mockRecordRepo.On("InsertRecord", s.ctx, mock.Anything).Return(true, nil).Once()
	s.mockJournalSvc.On("CreateJournalEntry", s.ctx, mock.Anything, "user-1").Return(&domain.JournalEntry{JournalEntryID: "je-2"}, nil).Once()
	s.mockRecordRepo.On("LinkJournalEntry", s.ctx, mock.Anything, "je-2").Return(nil).Once()
	s.mockPublisher.On("Publish", s.ctx, mock.Anything).Return(errors.New("broker down")).Once()

	record, err := s.service.CreateTransaction(s.ctx, cashSale("10000"), "user-1")
	s.Require().NoError(err)
	s.Equal("je-2", *record.JournalEntryID)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_InsertFailureIsReturned() {
	s.mockRecordRepo.On("InsertRecord", s.ctx, mock.Anything).Return(false, errors.New("connection reset")).Once()

	record, err := s.service.CreateTransaction(s.ctx, cashSale("10000"), "user-1")
	s.Nil(record)
	s.Error(err)
	s.mockJournalSvc.AssertNotCalled(s.T(), "CreateJournalEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_DuplicateKey() {
	key := "service:svc-1:income"
	req := cashSale("10000")
	req.IdempotencyKey = &key
	s.mockRecordRepo.On("InsertRecord", s.ctx, mock.Anything).Return(false, nil).Once()

	_, err := s.service.CreateTransaction(s.ctx, req, "user-1")
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_UnmappedCategoryWritesNothing() {
	req := cashSale("10000")
	req.Type = domain.RecordExpense
	req.Category = "Marketing"

	_, err := s.service.CreateTransaction(s.ctx, req, "user-1")

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRecordRepo.AssertNotCalled(s.T(), "InsertRecord", mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_TransferNeedsAccounts() {
	req := cashSale("10000")
	req.Type = domain.RecordTransfer
	req.Category = "Setor Bank"

	_, err := s.service.CreateTransaction(s.ctx, req, "user-1")
	s.ErrorIs(err, apperrors.ErrValidation)

	src, dst := "1111", "1112"
	req.SourceAccountCode, req.DestinationAccountCode = &src, &dst
	s.mockRecordRepo.On("InsertRecord", s.ctx, mock.Anything).Return(true, nil).Once()
	s.mockJournalSvc.On("CreateJournalEntry", s.ctx, mock.MatchedBy(func(r dto.CreateJournalEntryRequest) bool {
		return r.Lines[0].AccountCode == "1112" && r.Lines[1].AccountCode == "1111"
	}), "user-1").Return(&domain.JournalEntry{JournalEntryID: "je-3"}, nil).Once()
	s.mockRecordRepo.On("LinkJournalEntry", s.ctx, mock.Anything, "je-3").Return(nil).Once()
	s.mockPublisher.On("Publish", s.ctx, mock.Anything).Return(nil).Once()

	_, err = s.service.CreateTransaction(s.ctx, req, "user-1")
	s.NoError(err)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_RejectsNonPositiveAmount() {
	_, err := s.service.CreateTransaction(s.ctx, cashSale("0"), "user-1")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) TestRepostJournal_LinksUnlinkedRecord() {
	record := &domain.FinancialRecord{
		RecordID:    "rec-1",
		Type:        domain.RecordExpense,
		Category:    "Utilities",
		Amount:      decimal.NewFromInt(250000),
		Description: "Listrik April",
		Status:      domain.RecordConfirmed,
		CreatedAt:   s.now,
	}
	s.mockRecordRepo.On("FindRecordByID", s.ctx, "rec-1").Return(record, nil).Once()
	s.mockJournalSvc.On("CreateJournalEntry", s.ctx, mock.MatchedBy(func(r dto.CreateJournalEntryRequest) bool {
		return r.Lines[0].AccountCode == "6190" && r.Lines[1].AccountCode == "1112"
	}), "ops").Return(&domain.JournalEntry{JournalEntryID: "je-9"}, nil).Once()
	s.mockRecordRepo.On("LinkJournalEntry", s.ctx, "rec-1", "je-9").Return(nil).Once()
	s.mockPublisher.On("Publish", s.ctx, mock.MatchedBy(func(e ports.FinanceEvent) bool {
		return e.Type == ports.EventJournalRelinked
	})).Return(nil).Once()

	got, err := s.service.RepostJournal(s.ctx, "rec-1", "ops")

	s.Require().NoError(err)
	s.Equal("je-9", *got.JournalEntryID)
}

func (s *TransactionServiceTestSuite) TestRepostJournal_AlreadyLinked() {
	je := "je-1"
	s.mockRecordRepo.On("FindRecordByID", s.ctx, "rec-1").Return(&domain.FinancialRecord{RecordID: "rec-1", JournalEntryID: &je}, nil).Once()

	_, err := s.service.RepostJournal(s.ctx, "rec-1", "ops")
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *TransactionServiceTestSuite) TestRepostJournal_SurfacesPostingError() {
	s.mockRecordRepo.On("FindRecordByID", s.ctx, "rec-2").Return(&domain.FinancialRecord{
		RecordID: "rec-2", Type: domain.RecordIncome, Category: "Sales Revenue", Amount: decimal.NewFromInt(1), CreatedAt: s.now,
	}, nil).Once()
	s.mockJournalSvc.On("CreateJournalEntry", s.ctx, mock.Anything, "ops").Return(nil, apperrors.NewNotFoundError("account", "4110")).Once()

	_, err := s.service.RepostJournal(s.ctx, "rec-2", "ops")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *TransactionServiceTestSuite) TestListTransactions_BuildsFilter() {
	next := "cursor"
	s.mockRecordRepo.On("ListRecords", s.ctx, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.Type != nil && *f.Type == domain.RecordExpense &&
			f.StartDate != nil && f.StartDate.Format(domain.DateLayout) == "2024-01-01" &&
			f.EndDate == nil && f.UnlinkedOnly && f.Limit == 10
	})).Return([]domain.FinancialRecord{{RecordID: "rec-1"}}, &next, nil).Once()

	records, token, err := s.service.ListTransactions(s.ctx, dto.ListTransactionsParams{
		Type: "expense", StartDate: "2024-01-01", UnlinkedOnly: true, Limit: 10,
	})

	s.Require().NoError(err)
	s.Len(records, 1)
	s.Equal("cursor", *token)
}

func (s *TransactionServiceTestSuite) TestGetTransaction_NotFound() {
	s.mockRecordRepo.On("FindRecordByID", s.ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.GetTransaction(s.ctx, "nope")
	s.ErrorIs(err, apperrors.ErrNotFound)
}
