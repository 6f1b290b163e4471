package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountActivity is the posted debit/credit volume of one account over a window.
type AccountActivity struct {
	Account
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
}

// Net returns the activity signed by the account's normal balance.
func (a AccountActivity) Net() decimal.Decimal {
	return a.BalanceDelta(a.DebitTotal, a.CreditTotal)
}

// AccountAmount represents an account with its amount for financial reports
type AccountAmount struct {
	AccountID string          `json:"accountId"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// ReportGroup collects the accounts of one subtype.
type ReportGroup struct {
	Subtype  string          `json:"subtype"`
	Accounts []AccountAmount `json:"accounts"`
	Total    decimal.Decimal `json:"total"`
}

// BalanceSheetReport represents a balance sheet report
type BalanceSheetReport struct {
	AsOf             *time.Time      `json:"asOf,omitempty"`
	Assets           []ReportGroup   `json:"assets"`
	Liabilities      []ReportGroup   `json:"liabilities"`
	Equity           []ReportGroup   `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	BalanceCheck     bool            `json:"balanceCheck"`
}

// IncomeStatementReport represents a profit and loss report
type IncomeStatementReport struct {
	StartDate       *time.Time      `json:"startDate,omitempty"`
	EndDate         *time.Time      `json:"endDate,omitempty"`
	Revenue         []ReportGroup   `json:"revenue"`
	Expenses        []ReportGroup   `json:"expenses"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	CostOfGoodsSold decimal.Decimal `json:"costOfGoodsSold"`
	GrossProfit     decimal.Decimal `json:"grossProfit"`
	NetIncome       decimal.Decimal `json:"netIncome"`
}

// BreakdownEntry aggregates records sharing one key.
type BreakdownEntry struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Count   int             `json:"count"`
}

// FinancialSummary is the dashboard view built from financial records.
type FinancialSummary struct {
	StartDate       *time.Time                `json:"startDate,omitempty"`
	EndDate         *time.Time                `json:"endDate,omitempty"`
	TotalIncome     decimal.Decimal           `json:"totalIncome"`
	TotalExpense    decimal.Decimal           `json:"totalExpense"`
	NetProfit       decimal.Decimal           `json:"netProfit"`
	ByCategory      map[string]BreakdownEntry `json:"byCategory"`
	BySubcategory   map[string]BreakdownEntry `json:"bySubcategory"`
	ByPaymentMethod map[string]BreakdownEntry `json:"byPaymentMethod"`
	BySource        map[string]BreakdownEntry `json:"bySource"`
	RecordCount     int                       `json:"recordCount"`
	InventoryValue  decimal.Decimal           `json:"inventoryValue"`
	InventoryCount  int64                     `json:"inventoryCount"`
}

// BalanceDiscrepancy is an account whose cached balance disagrees with its journal history.
type BalanceDiscrepancy struct {
	AccountID       string          `json:"accountId"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	CachedBalance   decimal.Decimal `json:"cachedBalance"`
	ReplayedBalance decimal.Decimal `json:"replayedBalance"`
	Difference      decimal.Decimal `json:"difference"`
}
