package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
	"github.com/SscSPs/pos_finance_manager/internal/core/ports"
	portsrepo "github.com/SscSPs/pos_finance_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_finance_manager/internal/core/ports/services"
	"github.com/SscSPs/pos_finance_manager/internal/dto"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade type
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListActiveAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, code string, userID string, now time.Time) error {
	args := m.Called(ctx, code, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) FindActiveAccountsByCodesInTx(ctx context.Context, tx pgx.Tx, codes []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ApplyBalanceChangesInTx(ctx context.Context, tx pgx.Tx, changes []domain.AccountBalanceChange, now time.Time) error {
	args := m.Called(ctx, tx, changes, now)
	return args.Error(0)
}

// MockJournalRepository is a mock type for the JournalRepositoryWithTx type.
// WithTransaction runs fn with a nil transaction unless an error is stubbed.
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryWithTx = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, journalEntryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListJournalEntriesByReference(ctx context.Context, referenceType, reference string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, referenceType, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) InsertJournalEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry, lines []domain.JournalEntryLine) error {
	args := m.Called(ctx, tx, entry, lines)
	return args.Error(0)
}

func (m *MockJournalRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockJournalRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockJournalRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockJournalRepository) WithTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(nil)
}

// MockRecordRepository is a mock type for the FinancialRecordRepositoryFacade type
type MockRecordRepository struct {
	mock.Mock
}

var _ portsrepo.FinancialRecordRepositoryFacade = (*MockRecordRepository)(nil)

func (m *MockRecordRepository) FindRecordByID(ctx context.Context, recordID string) (*domain.FinancialRecord, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialRecord), args.Error(1)
}

func (m *MockRecordRepository) FindRecordByIdempotencyKey(ctx context.Context, key string) (*domain.FinancialRecord, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialRecord), args.Error(1)
}

func (m *MockRecordRepository) ListRecords(ctx context.Context, filter domain.TransactionFilter) ([]domain.FinancialRecord, *string, error) {
	args := m.Called(ctx, filter)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.FinancialRecord), next, args.Error(2)
}

func (m *MockRecordRepository) ListConfirmedRecords(ctx context.Context, startDate, endDate *time.Time) ([]domain.FinancialRecord, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialRecord), args.Error(1)
}

func (m *MockRecordRepository) InsertRecord(ctx context.Context, record domain.FinancialRecord) (bool, error) {
	args := m.Called(ctx, record)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecordRepository) LinkJournalEntry(ctx context.Context, recordID, journalEntryID string) error {
	return m.Called(ctx, recordID, journalEntryID).Error(0)
}

// MockPayrollRepository is a mock type for the PayrollRepositoryFacade type
type MockPayrollRepository struct {
	mock.Mock
}

var _ portsrepo.PayrollRepositoryFacade = (*MockPayrollRepository)(nil)

func (m *MockPayrollRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockPayrollRepository) FindPayrollByID(ctx context.Context, payrollID string) (*domain.PayrollRecord, error) {
	args := m.Called(ctx, payrollID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRecord), args.Error(1)
}

func (m *MockPayrollRepository) SavePayroll(ctx context.Context, payroll domain.PayrollRecord) error {
	return m.Called(ctx, payroll).Error(0)
}

func (m *MockPayrollRepository) UpdatePayrollStatus(ctx context.Context, payrollID string, from, to domain.PayrollStatus, paidAt *time.Time, userID string, now time.Time) error {
	return m.Called(ctx, payrollID, from, to, paidAt, userID, now).Error(0)
}

func (m *MockPayrollRepository) SetPayrollFinancialRecord(ctx context.Context, payrollID, recordID string) error {
	return m.Called(ctx, payrollID, recordID).Error(0)
}

// MockReportingRepository is a mock type for the ReportingRepository type
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetAccountActivity(ctx context.Context, types []domain.AccountType, from, to *time.Time) ([]domain.AccountActivity, error) {
	args := m.Called(ctx, types, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountActivity), args.Error(1)
}

func (m *MockReportingRepository) GetInventoryValuation(ctx context.Context) (domain.InventoryValuation, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.InventoryValuation), args.Error(1)
}

// MockJournalService is a mock type for the JournalWriterSvc type
type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalWriterSvc = (*MockJournalService)(nil)

func (m *MockJournalService) CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

// MockTransactionService is a mock type for the TransactionWriterSvc type
type MockTransactionService struct {
	mock.Mock
}

var _ portssvc.TransactionWriterSvc = (*MockTransactionService)(nil)

// CreateTransaction accepts either a record or a func building one from the request.
func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.FinancialRecord, error) {
	args := m.Called(ctx, req, userID)
	switch v := args.Get(0).(type) {
	case nil:
		return nil, args.Error(1)
	case func(context.Context, dto.CreateTransactionRequest, string) *domain.FinancialRecord:
		return v(ctx, req, userID), args.Error(1)
	}
	return args.Get(0).(*domain.FinancialRecord), args.Error(1)
}

func (m *MockTransactionService) RepostJournal(ctx context.Context, recordID string, userID string) (*domain.FinancialRecord, error) {
	args := m.Called(ctx, recordID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialRecord), args.Error(1)
}

// MockPublisher is a mock type for the EventPublisher type
type MockPublisher struct {
	mock.Mock
}

var _ ports.EventPublisher = (*MockPublisher)(nil)

func (m *MockPublisher) Publish(ctx context.Context, event ports.FinanceEvent) error {
	return m.Called(ctx, event).Error(0)
}

// fixedNumberer hands out a constant journal number.
type fixedNumberer string

func (f fixedNumberer) JournalNumber(time.Time) string { return string(f) }
