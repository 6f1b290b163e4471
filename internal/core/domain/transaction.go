package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordType classifies a financial record.
type RecordType string

const (
	RecordIncome   RecordType = "income"
	RecordExpense  RecordType = "expense"
	RecordTransfer RecordType = "transfer"
)

func (t RecordType) IsValid() bool {
	switch t {
	case RecordIncome, RecordExpense, RecordTransfer:
		return true
	}
	return false
}

// RecordStatus of a financial record. Only confirmed records are produced today.
type RecordStatus string

const (
	RecordConfirmed RecordStatus = "confirmed"
)

// Reference types produced by the domain event recorders.
const (
	RefService             = "service"
	RefServicePartsCost    = "service_parts_cost"
	RefServicePartsRevenue = "service_parts_revenue"
	RefServiceLabor        = "service_labor"
	RefPayroll             = "payroll"
)

// FinancialRecord is the business-facing income/expense/transfer row. It
// points at the journal entry that booked it; JournalEntryID stays nil
// when posting failed and the record awaits a repost.
type FinancialRecord struct {
	RecordID               string          `json:"id"`
	Type                   RecordType      `json:"type"`
	Category               string          `json:"category"`
	Subcategory            *string         `json:"subcategory,omitempty"`
	Amount                 decimal.Decimal `json:"amount"`
	Description            string          `json:"description"`
	Reference              *string         `json:"reference,omitempty"`
	ReferenceType          *string         `json:"referenceType,omitempty"`
	PaymentMethod          *string         `json:"paymentMethod,omitempty"`
	Tags                   []string        `json:"tags"`
	SourceAccountCode      *string         `json:"sourceAccountCode,omitempty"`
	DestinationAccountCode *string         `json:"destinationAccountCode,omitempty"`
	Status                 RecordStatus    `json:"status"`
	JournalEntryID         *string         `json:"journalEntryId"`
	IdempotencyKey         *string         `json:"-"`
	CreatedBy              string          `json:"userId"`
	CreatedAt              time.Time       `json:"createdAt"`
}

// IsJournaled reports whether the record has been booked to the ledger.
func (r FinancialRecord) IsJournaled() bool {
	return r.JournalEntryID != nil && *r.JournalEntryID != ""
}

// TransactionFilter narrows ListTransactions.
type TransactionFilter struct {
	Type          *RecordType
	Category      *string
	ReferenceType *string
	StartDate     *time.Time
	EndDate       *time.Time
	UnlinkedOnly  bool
	Limit         int
	NextToken     *string
}
