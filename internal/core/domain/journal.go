package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Posted JournalStatus = "POSTED"
)

// JournalEntry is the header of a balanced, immutable double-entry event.
type JournalEntry struct {
	JournalEntryID string             `json:"id"`
	JournalNumber  string             `json:"journalNumber"`
	Date           time.Time          `json:"date"`
	Description    string             `json:"description"`
	Reference      *string            `json:"reference,omitempty"`
	ReferenceType  *string            `json:"referenceType,omitempty"`
	TotalAmount    decimal.Decimal    `json:"totalAmount"`
	Status         JournalStatus      `json:"status"`
	Lines          []JournalEntryLine `json:"lines,omitempty"`
	CreatedBy      string             `json:"userId"`
	CreatedAt      time.Time          `json:"createdAt"`
}

// JournalEntryLine is one debit or credit against a single account.
type JournalEntryLine struct {
	LineID         string          `json:"id"`
	JournalEntryID string          `json:"journalEntryId"`
	AccountID      string          `json:"accountId"`
	AccountCode    string          `json:"accountCode"`
	Description    string          `json:"description"`
	DebitAmount    decimal.Decimal `json:"debitAmount"`
	CreditAmount   decimal.Decimal `json:"creditAmount"`
}

// AccountBalanceChange is a delta to apply to one account's running balance.
type AccountBalanceChange struct {
	AccountID string
	Delta     decimal.Decimal
}
