package services

import (
	"context"

	"github.com/SscSPs/pos_finance_manager/internal/dto"
	"github.com/shopspring/decimal"
)

// RecorderSvc turns service ticket events into financial records. Every
// method is idempotent per event.
type RecorderSvc interface {
	RecordServiceIncome(ctx context.Context, serviceID string, amount decimal.Decimal, description string, userID string) (dto.RecordResult, error)
	RecordPartsCost(ctx context.Context, serviceID string, req dto.RecordPartsCostRequest, userID string) (dto.PartsCostResult, error)

	// RecordLaborCost records nothing and returns a zero result when laborCost is not positive.
	RecordLaborCost(ctx context.Context, serviceID string, laborCost decimal.Decimal, description string, userID string) (dto.RecordResult, error)
}
