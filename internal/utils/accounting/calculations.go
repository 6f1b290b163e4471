// Package accounting holds the double-entry arithmetic shared by journal
// posting and the reports.
package accounting

import (
	"sort"

	"github.com/SscSPs/pos_finance_manager/internal/apperrors"
	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the largest debit/credit difference treated as balanced.
var BalanceTolerance = decimal.New(1, -2)

// MinJournalLines is the fewest lines a journal entry may carry.
const MinJournalLines = 2

// WithinTolerance reports whether |a-b| <= BalanceTolerance.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(BalanceTolerance)
}

// ValidateJournalLines checks the shape of every line and that the entry
// balances. It returns the debit total, which is the entry's total amount.
func ValidateJournalLines(lines []domain.JournalEntryLine) (decimal.Decimal, error) {
	if len(lines) < MinJournalLines {
		return decimal.Zero, apperrors.NewValidationError("journal entry must have at least %d lines", MinJournalLines)
	}

	debits, credits := decimal.Zero, decimal.Zero
	for i, line := range lines {
		if line.AccountCode == "" {
			return decimal.Zero, apperrors.NewValidationError("line %d: account code is required", i+1)
		}
		if line.DebitAmount.IsNegative() || line.CreditAmount.IsNegative() {
			return decimal.Zero, apperrors.NewValidationError("line %d: amounts must not be negative", i+1)
		}
		if line.DebitAmount.IsPositive() == line.CreditAmount.IsPositive() {
			return decimal.Zero, apperrors.NewValidationError("line %d: exactly one of debitAmount or creditAmount must be positive", i+1)
		}
		debits = debits.Add(line.DebitAmount)
		credits = credits.Add(line.CreditAmount)
	}

	if !WithinTolerance(debits, credits) {
		return decimal.Zero, apperrors.NewUnbalancedError(debits, credits)
	}
	return debits, nil
}

// BalanceChanges folds the lines into one delta per account, signed by each
// account's normal balance. accounts is keyed by account code and must
// contain every code used in lines. Changes are ordered by account ID so
// concurrent postings touch rows in the same order.
func BalanceChanges(lines []domain.JournalEntryLine, accounts map[string]domain.Account) []domain.AccountBalanceChange {
	deltas := make(map[string]decimal.Decimal, len(accounts))
	order := make([]string, 0, len(accounts))
	for _, line := range lines {
		acc := accounts[line.AccountCode]
		if _, seen := deltas[acc.AccountID]; !seen {
			order = append(order, acc.AccountID)
		}
		deltas[acc.AccountID] = deltas[acc.AccountID].Add(acc.BalanceDelta(line.DebitAmount, line.CreditAmount))
	}
	sort.Strings(order)

	changes := make([]domain.AccountBalanceChange, 0, len(order))
	for _, id := range order {
		changes = append(changes, domain.AccountBalanceChange{AccountID: id, Delta: deltas[id]})
	}
	return changes
}
