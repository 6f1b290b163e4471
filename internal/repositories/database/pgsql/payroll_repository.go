package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/pos_finance_manager/internal/apperrors"
	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_finance_manager/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPayrollRepository struct {
	BaseRepository
}

func newPgxPayrollRepository(pool *pgxpool.Pool) *PgxPayrollRepository {
	return &PgxPayrollRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PayrollRepositoryFacade = (*PgxPayrollRepository)(nil)

func (r *PgxPayrollRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT employee_id, name, position, base_salary, is_active FROM employees WHERE employee_id = $1;`

	var e domain.Employee
	err := r.Pool.QueryRow(ctx, query, employeeID).Scan(&e.EmployeeID, &e.Name, &e.Position, &e.BaseSalary, &e.IsActive)
	if err != nil {
		return nil, notFoundOr(err, "failed to find employee %s", employeeID)
	}
	return &e, nil
}

func (r *PgxPayrollRepository) FindPayrollByID(ctx context.Context, payrollID string) (*domain.PayrollRecord, error) {
	query := `
		SELECT p.payroll_id, p.employee_id, e.name, p.period_start, p.period_end,
			p.base_salary, p.overtime, p.bonus, p.allowances, p.gross_pay,
			p.tax_deduction, p.social_security, p.health_insurance, p.other_deductions, p.total_deductions,
			p.net_pay, p.status, p.paid_at, p.financial_record_id,
			p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
		FROM payroll_records p
		JOIN employees e ON e.employee_id = p.employee_id
		WHERE p.payroll_id = $1;
	`
	var p domain.PayrollRecord
	err := r.Pool.QueryRow(ctx, query, payrollID).Scan(
		&p.PayrollID, &p.EmployeeID, &p.EmployeeName, &p.PeriodStart, &p.PeriodEnd,
		&p.BaseSalary, &p.Overtime, &p.Bonus, &p.Allowances, &p.GrossPay,
		&p.TaxDeduction, &p.SocialSecurity, &p.HealthInsurance, &p.OtherDeductions, &p.TotalDeductions,
		&p.NetPay, &p.Status, &p.PaidAt, &p.FinancialRecordID,
		&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
	)
	if err != nil {
		return nil, notFoundOr(err, "failed to find payroll %s", payrollID)
	}
	return &p, nil
}

func (r *PgxPayrollRepository) SavePayroll(ctx context.Context, p domain.PayrollRecord) error {
	query := `
		INSERT INTO payroll_records (
			payroll_id, employee_id, period_start, period_end,
			base_salary, overtime, bonus, allowances, gross_pay,
			tax_deduction, social_security, health_insurance, other_deductions, total_deductions,
			net_pay, status, created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err := r.Pool.Exec(ctx, query,
		p.PayrollID, p.EmployeeID, p.PeriodStart, p.PeriodEnd,
		p.BaseSalary, p.Overtime, p.Bonus, p.Allowances, p.GrossPay,
		p.TaxDeduction, p.SocialSecurity, p.HealthInsurance, p.OtherDeductions, p.TotalDeductions,
		p.NetPay, p.Status, p.CreatedAt, p.CreatedBy, p.LastUpdatedAt, p.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: payroll %s", apperrors.ErrDuplicate, p.PayrollID)
		}
		return fmt.Errorf("failed to save payroll %s: %w", p.PayrollID, err)
	}
	return nil
}

// UpdatePayrollStatus is a compare-and-set on status so two concurrent
// "mark paid" calls cannot both succeed.
func (r *PgxPayrollRepository) UpdatePayrollStatus(ctx context.Context, payrollID string, from, to domain.PayrollStatus, paidAt *time.Time, userID string, now time.Time) error {
	query := `
		UPDATE payroll_records
		SET status = $3, paid_at = COALESCE($4, paid_at), last_updated_at = $5, last_updated_by = $6
		WHERE payroll_id = $1 AND status = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, payrollID, from, to, paidAt, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update payroll %s status: %w", payrollID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: payroll %s is no longer %s", apperrors.ErrConflict, payrollID, from)
	}
	return nil
}

func (r *PgxPayrollRepository) SetPayrollFinancialRecord(ctx context.Context, payrollID, recordID string) error {
	query := `UPDATE payroll_records SET financial_record_id = $2 WHERE payroll_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, payrollID, recordID)
	if err != nil {
		return fmt.Errorf("failed to link payroll %s to record %s: %w", payrollID, recordID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
