package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/pos_finance_manager/internal/apperrors"
	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
	"github.com/SscSPs/pos_finance_manager/internal/core/ports"
	portsrepo "github.com/SscSPs/pos_finance_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_finance_manager/internal/core/ports/services"
	"github.com/SscSPs/pos_finance_manager/internal/dto"
)

type payrollService struct {
	BaseService
	payrollRepo portsrepo.PayrollRepositoryFacade
	recorder    *eventRecorder
}

// NewPayrollService books paid payrolls through txnSvc, keyed per payroll so
// a payroll is expensed at most once.
func NewPayrollService(payrollRepo portsrepo.PayrollRepositoryFacade, recordRepo portsrepo.FinancialRecordReader, txnSvc portssvc.TransactionWriterSvc, locker ports.IdempotencyLocker) portssvc.PayrollSvc {
	return &payrollService{
		BaseService: newBaseService(),
		payrollRepo: payrollRepo,
		recorder:    newEventRecorder(recordRepo, txnSvc, locker),
	}
}

var _ portssvc.PayrollSvc = (*payrollService)(nil)

// CreatePayroll stores a draft payroll with its totals computed.
func (s *payrollService) CreatePayroll(ctx context.Context, req dto.CreatePayrollRequest, userID string) (*domain.PayrollRecord, error) {
	employee, err := s.payrollRepo.FindEmployeeByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("employee", req.EmployeeID)
		}
		s.LogError(ctx, err, "Failed to find employee", slog.String("employee_id", req.EmployeeID))
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	if !employee.IsActive {
		return nil, apperrors.NewValidationError("employee %s is not active", req.EmployeeID)
	}

	start, err := time.Parse(domain.DateLayout, req.PeriodStart)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid periodStart %q", req.PeriodStart)
	}
	end, err := time.Parse(domain.DateLayout, req.PeriodEnd)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid periodEnd %q", req.PeriodEnd)
	}
	if end.Before(start) {
		return nil, apperrors.NewValidationError("periodEnd must not be before periodStart")
	}

	now := s.Now()
	payroll := domain.PayrollRecord{
		PayrollID:       uuid.NewString(),
		EmployeeID:      employee.EmployeeID,
		EmployeeName:    employee.Name,
		PeriodStart:     start,
		PeriodEnd:       end,
		BaseSalary:      req.BaseSalaryOrDefault(*employee),
		Overtime:        req.Overtime,
		Bonus:           req.Bonus,
		Allowances:      req.Allowances,
		TaxDeduction:    req.TaxDeduction,
		SocialSecurity:  req.SocialSecurity,
		HealthInsurance: req.HealthInsurance,
		OtherDeductions: req.OtherDeductions,
		Status:          domain.PayrollDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	payroll.ComputeTotals()
	if payroll.NetPay.IsNegative() {
		return nil, apperrors.NewValidationError("deductions %s exceed gross pay %s", payroll.TotalDeductions, payroll.GrossPay)
	}

	if err := s.payrollRepo.SavePayroll(ctx, payroll); err != nil {
		s.LogError(ctx, err, "Failed to save payroll", slog.String("employee_id", payroll.EmployeeID))
		return nil, fmt.Errorf("failed to create payroll: %w", err)
	}
	s.LogInfo(ctx, "Payroll created", slog.String("payroll_id", payroll.PayrollID), slog.String("net_pay", payroll.NetPay.String()))
	return &payroll, nil
}

func (s *payrollService) GetPayroll(ctx context.Context, payrollID string) (*domain.PayrollRecord, error) {
	payroll, err := s.payrollRepo.FindPayrollByID(ctx, payrollID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("payroll", payrollID)
		}
		s.LogError(ctx, err, "Failed to find payroll", slog.String("payroll_id", payrollID))
		return nil, fmt.Errorf("failed to get payroll: %w", err)
	}
	return payroll, nil
}

// UpdatePayrollStatus moves the payroll one step forward. Repeating the move
// to paid is accepted and finishes the expense booking if an earlier call
// stopped short of it.
func (s *payrollService) UpdatePayrollStatus(ctx context.Context, payrollID string, status domain.PayrollStatus, userID string) (*domain.PayrollRecord, error) {
	payroll, err := s.GetPayroll(ctx, payrollID)
	if err != nil {
		return nil, err
	}

	if payroll.Status != status {
		if !payroll.Status.CanTransitionTo(status) {
			return nil, apperrors.NewValidationError("payroll cannot move from %s to %s", payroll.Status, status)
		}
		now := s.Now()
		var paidAt *time.Time
		if status == domain.PayrollPaid {
			paidAt = &now
		}
		if err := s.payrollRepo.UpdatePayrollStatus(ctx, payrollID, payroll.Status, status, paidAt, userID, now); err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				s.LogWarn(ctx, err, "Payroll status changed concurrently", slog.String("payroll_id", payrollID))
			} else {
				s.LogError(ctx, err, "Failed to update payroll status", slog.String("payroll_id", payrollID))
			}
			return nil, fmt.Errorf("failed to update payroll status: %w", err)
		}
		payroll.Status = status
		payroll.PaidAt = paidAt
		payroll.LastUpdatedAt = now
		payroll.LastUpdatedBy = userID
		s.LogInfo(ctx, "Payroll status updated", slog.String("payroll_id", payrollID), slog.String("status", string(status)))
	}

	if payroll.Status == domain.PayrollPaid && payroll.FinancialRecordID == nil {
		if err := s.recordPayrollExpense(ctx, payroll, userID); err != nil {
			return nil, err
		}
	}
	return payroll, nil
}

func (s *payrollService) recordPayrollExpense(ctx context.Context, payroll *domain.PayrollRecord, userID string) error {
	if !payroll.NetPay.IsPositive() {
		s.LogWarn(ctx, nil, "Paid payroll has no net pay to book", slog.String("payroll_id", payroll.PayrollID))
		return nil
	}

	refType := domain.RefPayroll
	paymentMethod := "transfer"
	result, err := s.recorder.record(ctx, IdempotencyKey(refType, payroll.PayrollID, string(domain.RecordExpense)), dto.CreateTransactionRequest{
		Type:          domain.RecordExpense,
		Category:      categoryPayroll,
		Subcategory:   strPtr(subcategorySalary),
		Amount:        payroll.NetPay,
		Description:   fmt.Sprintf("Gaji %s periode %s - %s", payroll.EmployeeName, payroll.PeriodStart.Format(domain.DateLayout), payroll.PeriodEnd.Format(domain.DateLayout)),
		ReferenceType: &refType,
		Reference:     &payroll.PayrollID,
		PaymentMethod: &paymentMethod,
	}, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to record payroll expense", slog.String("payroll_id", payroll.PayrollID))
		return fmt.Errorf("failed to record payroll expense: %w", err)
	}

	if err := s.payrollRepo.SetPayrollFinancialRecord(ctx, payroll.PayrollID, result.Record.RecordID); err != nil {
		s.LogError(ctx, err, "Failed to link payroll to financial record",
			slog.String("payroll_id", payroll.PayrollID), slog.String("record_id", result.Record.RecordID))
		return fmt.Errorf("failed to link payroll expense: %w", err)
	}
	payroll.FinancialRecordID = &result.Record.RecordID
	return nil
}
