package dto

import "github.com/SscSPs/pos_finance_manager/internal/core/domain"

// BalanceSheetParams defines query parameters for the balance sheet.
type BalanceSheetParams struct {
	AsOf string `form:"asOf" binding:"omitempty,datetime=2006-01-02"`
}

// PeriodParams defines the inclusive date window for period reports.
type PeriodParams struct {
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// ReconciliationResponse lists accounts whose cached balance drifted.
type ReconciliationResponse struct {
	Consistent    bool                        `json:"consistent"`
	Discrepancies []domain.BalanceDiscrepancy `json:"discrepancies"`
}
