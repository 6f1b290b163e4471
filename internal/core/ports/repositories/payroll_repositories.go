package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
)

type PayrollReader interface {
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	FindPayrollByID(ctx context.Context, payrollID string) (*domain.PayrollRecord, error)
}

type PayrollWriter interface {
	SavePayroll(ctx context.Context, payroll domain.PayrollRecord) error

	// UpdatePayrollStatus moves the payroll from one status to the next only
	// if it is still in from. Returns apperrors.ErrConflict otherwise.
	UpdatePayrollStatus(ctx context.Context, payrollID string, from, to domain.PayrollStatus, paidAt *time.Time, userID string, now time.Time) error

	SetPayrollFinancialRecord(ctx context.Context, payrollID, recordID string) error
}

type PayrollRepositoryFacade interface {
	PayrollReader
	PayrollWriter
}
