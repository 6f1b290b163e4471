package services

import (
	"context"

	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
	"github.com/SscSPs/pos_finance_manager/internal/dto"
)

type PayrollSvc interface {
	CreatePayroll(ctx context.Context, req dto.CreatePayrollRequest, userID string) (*domain.PayrollRecord, error)
	GetPayroll(ctx context.Context, payrollID string) (*domain.PayrollRecord, error)

	// UpdatePayrollStatus records the payroll expense exactly once on the move to paid.
	UpdatePayrollStatus(ctx context.Context, payrollID string, status domain.PayrollStatus, userID string) (*domain.PayrollRecord, error)
}
