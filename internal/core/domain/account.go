package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the five account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// NormalBalance is the side on which an account increases.
type NormalBalance string

const (
	NormalDebit  NormalBalance = "DEBIT"
	NormalCredit NormalBalance = "CREDIT"
)

// Well-known subtypes used by the reports.
const (
	SubtypeCostOfGoodsSold = "cost_of_goods_sold"
	SubtypeCurrentEarnings = "current_earnings"
)

// Account is a ledger bucket in the chart of accounts. Balance is a running
// cache maintained by journal posting and must never be written directly.
type Account struct {
	AccountID     string          `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	AccountType   AccountType     `json:"type"`
	Subtype       string          `json:"subtype"`
	NormalBalance NormalBalance   `json:"normalBalance"`
	Balance       decimal.Decimal `json:"balance"`
	IsActive      bool            `json:"isActive"`
	AuditFields
}

// BalanceDelta returns how much a line with the given debit and credit
// amounts moves this account's balance.
func (a Account) BalanceDelta(debit, credit decimal.Decimal) decimal.Decimal {
	if a.NormalBalance == NormalDebit {
		return debit.Sub(credit)
	}
	return credit.Sub(debit)
}
