package dto

import (
	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordServiceIncomeRequest books the payment of a service ticket.
type RecordServiceIncomeRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"decimal_gt0"`
	Description string          `json:"description"`
}

// RecordPartsCostRequest books a spare part used on a service ticket.
type RecordPartsCostRequest struct {
	PartName     string          `json:"partName" binding:"required"`
	Quantity     int             `json:"quantity" binding:"required,min=1"`
	ModalPrice   decimal.Decimal `json:"modalPrice" binding:"decimal_gte0"`
	SellingPrice decimal.Decimal `json:"sellingPrice" binding:"decimal_gte0"`
}

// RecordLaborCostRequest books the labor charge of a service ticket.
type RecordLaborCostRequest struct {
	LaborCost   decimal.Decimal `json:"laborCost" binding:"decimal_gte0"`
	Description string          `json:"description"`
}

// RecordResult is the outcome of an idempotent recorder call. Created is
// false when the event had already been recorded.
type RecordResult struct {
	Record  *domain.FinancialRecord
	Created bool
}

// PartsCostResult holds both sides of a parts usage.
type PartsCostResult struct {
	Expense RecordResult
	Income  RecordResult
}

// RecordResponse is the wire form of RecordResult.
type RecordResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Created     bool                `json:"created"`
}

type PartsCostResponse struct {
	Expense *RecordResponse `json:"expense,omitempty"`
	Income  *RecordResponse `json:"income,omitempty"`
}

func ToRecordResponse(r RecordResult) *RecordResponse {
	if r.Record == nil {
		return nil
	}
	return &RecordResponse{Transaction: ToTransactionResponse(r.Record), Created: r.Created}
}
