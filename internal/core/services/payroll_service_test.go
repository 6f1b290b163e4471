package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/pos_finance_manager/internal/apperrors"
	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
	portssvc "github.com/SscSPs/pos_finance_manager/internal/core/ports/services"
	"github.com/SscSPs/pos_finance_manager/internal/core/services"
	"github.com/SscSPs/pos_finance_manager/internal/dto"
)

type PayrollServiceTestSuite struct {
	suite.Suite
	mockPayrollRepo *MockPayrollRepository
	mockRecordRepo  *MockRecordRepository
	mockTxnSvc      *MockTransactionService
	service         portssvc.PayrollSvc
	ctx             context.Context
}

func (s *PayrollServiceTestSuite) SetupTest() {
	s.mockPayrollRepo = new(MockPayrollRepository)
	s.mockRecordRepo = new(MockRecordRepository)
	s.mockTxnSvc = new(MockTransactionService)
	s.service = services.NewPayrollService(s.mockPayrollRepo, s.mockRecordRepo, s.mockTxnSvc, nil)
	s.ctx = context.Background()
}

func TestPayrollServiceSuite(t *testing.T) {
	suite.Run(t, new(PayrollServiceTestSuite))
}

func approvedPayroll() *domain.PayrollRecord {
	p := &domain.PayrollRecord{
		PayrollID:       "pay-1",
		EmployeeID:      "emp-1",
		EmployeeName:    "Budi",
		BaseSalary:      decimal.NewFromInt(5000000),
		Overtime:        decimal.NewFromInt(500000),
		Allowances:      decimal.NewFromInt(500000),
		TaxDeduction:    decimal.NewFromInt(250000),
		OtherDeductions: decimal.NewFromInt(200000),
		Status:          domain.PayrollApproved,
	}
	p.ComputeTotals()
	return p
}

func (s *PayrollServiceTestSuite) TestCreatePayroll_ComputesTotals() {
	s.mockPayrollRepo.On("FindEmployeeByID", s.ctx, "emp-1").Return(&domain.Employee{
		EmployeeID: "emp-1", Name: "Budi", BaseSalary: decimal.NewFromInt(5000000), IsActive: true,
	}, nil).Once()
	s.mockPayrollRepo.On("SavePayroll", s.ctx, mock.MatchedBy(func(p domain.PayrollRecord) bool {
		return p.Status == domain.PayrollDraft && p.NetPay.Equal(decimal.NewFromInt(5300000))
	})).Return(nil).Once()

	payroll, err := s.service.CreatePayroll(s.ctx, dto.CreatePayrollRequest{
		EmployeeID:   "emp-1",
		PeriodStart:  "2024-04-01",
		PeriodEnd:    "2024-04-30",
		Bonus:        decimal.NewFromInt(500000),
		TaxDeduction: decimal.NewFromInt(200000),
	}, "hr-1")

	s.Require().NoError(err)
	s.True(payroll.BaseSalary.Equal(decimal.NewFromInt(5000000)))
	s.True(payroll.GrossPay.Equal(decimal.NewFromInt(5500000)))
	s.mockPayrollRepo.AssertExpectations(s.T())
}

func (s *PayrollServiceTestSuite) TestCreatePayroll_RejectsInvertedPeriod() {
	s.mockPayrollRepo.On("FindEmployeeByID", s.ctx, "emp-1").Return(&domain.Employee{EmployeeID: "emp-1", IsActive: true}, nil).Once()

	_, err := s.service.CreatePayroll(s.ctx, dto.CreatePayrollRequest{
		EmployeeID: "emp-1", PeriodStart: "2024-04-30", PeriodEnd: "2024-04-01",
	}, "hr-1")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *PayrollServiceTestSuite) TestUpdatePayrollStatus_PaidBooksNetPayOnce() {
	payroll := approvedPayroll()
	key := "payroll:pay-1:expense"
	s.mockPayrollRepo.On("FindPayrollByID", s.ctx, "pay-1").Return(payroll, nil).Once()
	s.mockPayrollRepo.On("UpdatePayrollStatus", s.ctx, "pay-1", domain.PayrollApproved, domain.PayrollPaid,
		mock.AnythingOfType("*time.Time"), "hr-1", mock.Anything).Return(nil).Once()
	s.mockRecordRepo.On("FindRecordByIdempotencyKey", s.ctx, key).Return(nil, apperrors.ErrNotFound).Once()
	s.mockTxnSvc.On("CreateTransaction", s.ctx, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.Type == domain.RecordExpense && req.Category == "Payroll" &&
			req.Amount.Equal(decimal.NewFromInt(5550000)) && *req.ReferenceType == "payroll" && *req.Reference == "pay-1"
	}), "hr-1").Return(&domain.FinancialRecord{RecordID: "rec-pay"}, nil).Once()
	s.mockPayrollRepo.On("SetPayrollFinancialRecord", s.ctx, "pay-1", "rec-pay").Return(nil).Once()

	updated, err := s.service.UpdatePayrollStatus(s.ctx, "pay-1", domain.PayrollPaid, "hr-1")

	s.Require().NoError(err)
	s.Equal(domain.PayrollPaid, updated.Status)
	s.NotNil(updated.PaidAt)
	s.Equal("rec-pay", *updated.FinancialRecordID)

	// A second call finds the payroll paid and linked and books nothing.
	linked := *updated
	s.mockPayrollRepo.On("FindPayrollByID", s.ctx, "pay-1").Return(&linked, nil).Once()

	_, err = s.service.UpdatePayrollStatus(s.ctx, "pay-1", domain.PayrollPaid, "hr-1")
	s.Require().NoError(err)
	s.mockTxnSvc.AssertNumberOfCalls(s.T(), "CreateTransaction", 1)
	s.mockPayrollRepo.AssertNumberOfCalls(s.T(), "UpdatePayrollStatus", 1)
}

func (s *PayrollServiceTestSuite) TestUpdatePayrollStatus_PaidWithoutRecordIsCompleted() {
	payroll := approvedPayroll()
	payroll.Status = domain.PayrollPaid
	key := "payroll:pay-1:expense"
	s.mockPayrollRepo.On("FindPayrollByID", s.ctx, "pay-1").Return(payroll, nil).Once()
	s.mockRecordRepo.On("FindRecordByIdempotencyKey", s.ctx, key).Return(&domain.FinancialRecord{RecordID: "rec-pay"}, nil).Once()
	s.mockPayrollRepo.On("SetPayrollFinancialRecord", s.ctx, "pay-1", "rec-pay").Return(nil).Once()

	updated, err := s.service.UpdatePayrollStatus(s.ctx, "pay-1", domain.PayrollPaid, "hr-1")

	s.Require().NoError(err)
	s.Equal("rec-pay", *updated.FinancialRecordID)
	s.mockTxnSvc.AssertNotCalled(s.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (s *PayrollServiceTestSuite) TestUpdatePayrollStatus_SkippingApprovalRejected() {
	payroll := approvedPayroll()
	payroll.Status = domain.PayrollDraft
	s.mockPayrollRepo.On("FindPayrollByID", s.ctx, "pay-1").Return(payroll, nil).Once()

	_, err := s.service.UpdatePayrollStatus(s.ctx, "pay-1", domain.PayrollPaid, "hr-1")

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockPayrollRepo.AssertNotCalled(s.T(), "UpdatePayrollStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *PayrollServiceTestSuite) TestUpdatePayrollStatus_ConcurrentChange() {
	payroll := approvedPayroll()
	s.mockPayrollRepo.On("FindPayrollByID", s.ctx, "pay-1").Return(payroll, nil).Once()
	s.mockPayrollRepo.On("UpdatePayrollStatus", s.ctx, "pay-1", domain.PayrollApproved, domain.PayrollPaid,
		mock.Anything, "hr-1", mock.Anything).Return(apperrors.ErrConflict).Once()

	_, err := s.service.UpdatePayrollStatus(s.ctx, "pay-1", domain.PayrollPaid, "hr-1")

	s.ErrorIs(err, apperrors.ErrConflict)
	s.mockTxnSvc.AssertNotCalled(s.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (s *PayrollServiceTestSuite) TestGetPayroll_NotFound() {
	s.mockPayrollRepo.On("FindPayrollByID", s.ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.GetPayroll(s.ctx, "nope")
	s.ErrorIs(err, apperrors.ErrNotFound)
}
