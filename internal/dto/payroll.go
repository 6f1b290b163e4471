package dto

import (
	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePayrollRequest defines the components of a new draft payroll.
type CreatePayrollRequest struct {
	EmployeeID      string          `json:"employeeId" binding:"required"`
	PeriodStart     string          `json:"periodStart" binding:"required,datetime=2006-01-02"`
	PeriodEnd       string          `json:"periodEnd" binding:"required,datetime=2006-01-02"`
	BaseSalary      decimal.Decimal `json:"baseSalary" binding:"decimal_gte0"`
	Overtime        decimal.Decimal `json:"overtime" binding:"decimal_gte0"`
	Bonus           decimal.Decimal `json:"bonus" binding:"decimal_gte0"`
	Allowances      decimal.Decimal `json:"allowances" binding:"decimal_gte0"`
	TaxDeduction    decimal.Decimal `json:"taxDeduction" binding:"decimal_gte0"`
	SocialSecurity  decimal.Decimal `json:"socialSecurity" binding:"decimal_gte0"`
	HealthInsurance decimal.Decimal `json:"healthInsurance" binding:"decimal_gte0"`
	OtherDeductions decimal.Decimal `json:"otherDeductions" binding:"decimal_gte0"`
}

// UpdatePayrollStatusRequest moves a payroll through its lifecycle.
type UpdatePayrollStatusRequest struct {
	Status domain.PayrollStatus `json:"status" binding:"required,oneof=approved paid"`
}

// PayrollResponse is the payroll record as returned by the API.
type PayrollResponse struct {
	domain.PayrollRecord
	PeriodStart string `json:"periodStart"`
	PeriodEnd   string `json:"periodEnd"`
}

func ToPayrollResponse(p *domain.PayrollRecord) PayrollResponse {
	return PayrollResponse{
		PayrollRecord: *p,
		PeriodStart:   p.PeriodStart.Format(domain.DateLayout),
		PeriodEnd:     p.PeriodEnd.Format(domain.DateLayout),
	}
}

// BaseSalaryOrDefault falls back to the employee's contractual salary when
// the request leaves the base salary at zero.
func (r CreatePayrollRequest) BaseSalaryOrDefault(employee domain.Employee) decimal.Decimal {
	if r.BaseSalary.IsZero() {
		return employee.BaseSalary
	}
	return r.BaseSalary
}
