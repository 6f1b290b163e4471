package dto

import (
	"time"

	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalLineRequest is one debit or credit line of a new journal entry.
type CreateJournalLineRequest struct {
	AccountCode  string          `json:"accountCode" binding:"required"`
	Description  string          `json:"description"`
	DebitAmount  decimal.Decimal `json:"debitAmount" binding:"decimal_gte0"`
	CreditAmount decimal.Decimal `json:"creditAmount" binding:"decimal_gte0"`
}

// CreateJournalEntryRequest defines the data needed to post a journal entry.
type CreateJournalEntryRequest struct {
	Date          string                     `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description   string                     `json:"description" binding:"required"`
	Reference     *string                    `json:"reference"`
	ReferenceType *string                    `json:"referenceType"`
	Lines         []CreateJournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID       string          `json:"id"`
	AccountID    string          `json:"accountId"`
	AccountCode  string          `json:"accountCode"`
	Description  string          `json:"description"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	JournalEntryID string                `json:"id"`
	JournalNumber  string                `json:"journalNumber"`
	Date           string                `json:"date"`
	Description    string                `json:"description"`
	Reference      *string               `json:"reference,omitempty"`
	ReferenceType  *string               `json:"referenceType,omitempty"`
	TotalAmount    decimal.Decimal       `json:"totalAmount"`
	Status         string                `json:"status"`
	UserID         string                `json:"userId"`
	CreatedAt      time.Time             `json:"createdAt"`
	Lines          []JournalLineResponse `json:"lines,omitempty"`
}

func ToJournalEntryResponse(je *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		JournalEntryID: je.JournalEntryID,
		JournalNumber:  je.JournalNumber,
		Date:           je.Date.Format(domain.DateLayout),
		Description:    je.Description,
		Reference:      je.Reference,
		ReferenceType:  je.ReferenceType,
		TotalAmount:    je.TotalAmount,
		Status:         string(je.Status),
		UserID:         je.CreatedBy,
		CreatedAt:      je.CreatedAt,
	}
	for _, l := range je.Lines {
		resp.Lines = append(resp.Lines, JournalLineResponse{
			LineID:       l.LineID,
			AccountID:    l.AccountID,
			AccountCode:  l.AccountCode,
			Description:  l.Description,
			DebitAmount:  l.DebitAmount,
			CreditAmount: l.CreditAmount,
		})
	}
	return resp
}

// JournalReferenceParams selects the journals booked for one business reference.
type JournalReferenceParams struct {
	ReferenceType string `form:"referenceType" binding:"required"`
	Reference     string `form:"reference" binding:"required"`
}
