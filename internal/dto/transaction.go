package dto

import (
	"time"

	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest records a business-level income, expense or transfer.
type CreateTransactionRequest struct {
	Type                   domain.RecordType `json:"type" binding:"required,oneof=income expense transfer"`
	Category               string            `json:"category" binding:"required"`
	Subcategory            *string           `json:"subcategory"`
	Amount                 decimal.Decimal   `json:"amount" binding:"decimal_gt0"`
	Description            string            `json:"description" binding:"required"`
	ReferenceType          *string           `json:"referenceType"`
	Reference              *string           `json:"reference"`
	PaymentMethod          *string           `json:"paymentMethod"`
	Tags                   []string          `json:"tags"`
	SourceAccountCode      *string           `json:"sourceAccountCode"`
	DestinationAccountCode *string           `json:"destinationAccountCode"`

	// IdempotencyKey is set by the domain recorders, never by API callers.
	IdempotencyKey *string `json:"-"`
}

// ListTransactionsParams defines query parameters for listing financial records.
type ListTransactionsParams struct {
	Type          string  `form:"type" binding:"omitempty,oneof=income expense transfer"`
	Category      string  `form:"category"`
	ReferenceType string  `form:"referenceType"`
	StartDate     string  `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate       string  `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	UnlinkedOnly  bool    `form:"unlinkedOnly"`
	Limit         int     `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken     *string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a financial record.
type TransactionResponse struct {
	RecordID               string          `json:"id"`
	Type                   string          `json:"type"`
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
	Status                 string          `json:"status"`
	JournalEntryID         *string         `json:"journalEntryId"`
	UserID                 string          `json:"userId"`
	CreatedAt              time.Time       `json:"createdAt"`
}

// ListTransactionsResponse wraps a page of financial records.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

func ToTransactionResponse(r *domain.FinancialRecord) TransactionResponse {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return TransactionResponse{
		RecordID:               r.RecordID,
		Type:                   string(r.Type),
		Category:               r.Category,
		Subcategory:            r.Subcategory,
		Amount:                 r.Amount,
		Description:            r.Description,
		Reference:              r.Reference,
		ReferenceType:          r.ReferenceType,
		PaymentMethod:          r.PaymentMethod,
		Tags:                   tags,
		SourceAccountCode:      r.SourceAccountCode,
		DestinationAccountCode: r.DestinationAccountCode,
		Status:                 string(r.Status),
		JournalEntryID:         r.JournalEntryID,
		UserID:                 r.CreatedBy,
		CreatedAt:              r.CreatedAt,
	}
}

func ToListTransactionsResponse(records []domain.FinancialRecord, nextToken *string) ListTransactionsResponse {
	list := make([]TransactionResponse, len(records))
	for i := range records {
		list[i] = ToTransactionResponse(&records[i])
	}
	return ListTransactionsResponse{Transactions: list, NextToken: nextToken}
}
