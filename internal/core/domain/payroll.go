package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus is the lifecycle state of a payroll record.
type PayrollStatus string

const (
	PayrollDraft    PayrollStatus = "draft"
	PayrollApproved PayrollStatus = "approved"
	PayrollPaid     PayrollStatus = "paid"
)

// CanTransitionTo reports whether moving from s to next is allowed.
// Payroll only moves forward: draft -> approved -> paid.
func (s PayrollStatus) CanTransitionTo(next PayrollStatus) bool {
	switch s {
	case PayrollDraft:
		return next == PayrollApproved
	case PayrollApproved:
		return next == PayrollPaid
	}
	return false
}

type Employee struct {
	EmployeeID string          `json:"id"`
	Name       string          `json:"name"`
	Position   string          `json:"position"`
	BaseSalary decimal.Decimal `json:"baseSalary"`
	IsActive   bool            `json:"isActive"`
}

// PayrollRecord is one employee's pay for a period.
type PayrollRecord struct {
	PayrollID         string          `json:"id"`
	EmployeeID        string          `json:"employeeId"`
	EmployeeName      string          `json:"employeeName"`
	PeriodStart       time.Time       `json:"periodStart"`
	PeriodEnd         time.Time       `json:"periodEnd"`
	BaseSalary        decimal.Decimal `json:"baseSalary"`
	Overtime          decimal.Decimal `json:"overtime"`
	Bonus             decimal.Decimal `json:"bonus"`
	Allowances        decimal.Decimal `json:"allowances"`
	GrossPay          decimal.Decimal `json:"grossPay"`
	TaxDeduction      decimal.Decimal `json:"taxDeduction"`
	SocialSecurity    decimal.Decimal `json:"socialSecurity"`
	HealthInsurance   decimal.Decimal `json:"healthInsurance"`
	OtherDeductions   decimal.Decimal `json:"otherDeductions"`
	TotalDeductions   decimal.Decimal `json:"totalDeductions"`
	NetPay            decimal.Decimal `json:"netPay"`
	Status            PayrollStatus   `json:"status"`
	PaidAt            *time.Time      `json:"paidAt,omitempty"`
	FinancialRecordID *string         `json:"financialRecordId,omitempty"`
	AuditFields
}

// ComputeTotals fills GrossPay, TotalDeductions and NetPay from the components.
func (p *PayrollRecord) ComputeTotals() {
	p.GrossPay = p.BaseSalary.Add(p.Overtime).Add(p.Bonus).Add(p.Allowances)
	p.TotalDeductions = p.TaxDeduction.Add(p.SocialSecurity).Add(p.HealthInsurance).Add(p.OtherDeductions)
	p.NetPay = p.GrossPay.Sub(p.TotalDeductions)
}
