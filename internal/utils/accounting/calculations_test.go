package accounting

import (
	"testing"

	"github.com/SscSPs/pos_finance_manager/internal/apperrors"
	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func line(code, debit, credit string) domain.JournalEntryLine {
	return domain.JournalEntryLine{AccountCode: code, DebitAmount: d(debit), CreditAmount: d(credit)}
}

func TestValidateJournalLines(t *testing.T) {
	tests := []struct {
		name      string
		lines     []domain.JournalEntryLine
		wantTotal string
		wantErr   bool
	}{
		{"balanced", []domain.JournalEntryLine{line("1111", "100000", "0"), line("4110", "0", "100000")}, "100000", false},
		{"within a cent", []domain.JournalEntryLine{line("1111", "100.00", "0"), line("4110", "0", "99.99")}, "100.00", false},
		{"split credit", []domain.JournalEntryLine{line("1111", "300", "0"), line("4110", "0", "100"), line("4120", "0", "200")}, "300", false},
		{"unbalanced", []domain.JournalEntryLine{line("1111", "100", "0"), line("4110", "0", "80")}, "", true},
		{"single line", []domain.JournalEntryLine{line("1111", "100", "0")}, "", true},
		{"both sides on one line", []domain.JournalEntryLine{line("1111", "100", "100"), line("4110", "0", "0")}, "", true},
		{"negative amount", []domain.JournalEntryLine{line("1111", "-100", "0"), line("4110", "0", "-100")}, "", true},
		{"missing code", []domain.JournalEntryLine{line("", "100", "0"), line("4110", "0", "100")}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := ValidateJournalLines(tt.lines)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.True(t, d(tt.wantTotal).Equal(total), "total %s", total)
		})
	}
}

func TestValidateJournalLinesReportsTotals(t *testing.T) {
	_, err := ValidateJournalLines([]domain.JournalEntryLine{line("1111", "100", "0"), line("4110", "0", "80")})

	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.True(t, vErr.DebitTotal.Equal(d("100")))
	assert.True(t, vErr.CreditTotal.Equal(d("80")))
}

func TestBalanceChanges(t *testing.T) {
	accounts := map[string]domain.Account{
		"1111": {AccountID: "cash", Code: "1111", NormalBalance: domain.NormalDebit},
		"4110": {AccountID: "sales", Code: "4110", NormalBalance: domain.NormalCredit},
		"5110": {AccountID: "cogs", Code: "5110", NormalBalance: domain.NormalDebit},
	}
	lines := []domain.JournalEntryLine{
		line("1111", "500", "0"),
		line("4110", "0", "500"),
		line("5110", "300", "0"),
		line("1111", "0", "300"),
	}

	changes := BalanceChanges(lines, accounts)
	require.Len(t, changes, 3)
	assert.Equal(t, "cash", changes[0].AccountID)
	assert.True(t, changes[0].Delta.Equal(d("200")))
	assert.Equal(t, "cogs", changes[1].AccountID)
	assert.True(t, changes[1].Delta.Equal(d("300")))
	assert.Equal(t, "sales", changes[2].AccountID)
	assert.True(t, changes[2].Delta.Equal(d("500")))
}

func TestBalanceChangesOrderIgnoresLineOrder(t *testing.T) {
	accounts := map[string]domain.Account{
		"1111": {AccountID: "a-1111", Code: "1111", NormalBalance: domain.NormalDebit},
		"1112": {AccountID: "a-1112", Code: "1112", NormalBalance: domain.NormalDebit},
	}
	toBank := []domain.JournalEntryLine{line("1112", "250000", "0"), line("1111", "0", "250000")}
	toCash := []domain.JournalEntryLine{line("1111", "250000", "0"), line("1112", "0", "250000")}

	first := BalanceChanges(toBank, accounts)
	second := BalanceChanges(toCash, accounts)

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	for i := range first {
		assert.Equal(t, first[i].AccountID, second[i].AccountID)
	}
	assert.Equal(t, "a-1111", first[0].AccountID)
	assert.True(t, first[0].Delta.Equal(d("-250000")))
	assert.True(t, second[0].Delta.Equal(d("250000")))
}
