package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_finance_manager/internal/apperrors"
	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
	"github.com/SscSPs/pos_finance_manager/internal/core/ports"
	portsrepo "github.com/SscSPs/pos_finance_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_finance_manager/internal/core/ports/services"
	"github.com/SscSPs/pos_finance_manager/internal/dto"
)

const (
	categoryServiceRevenue  = "Service Revenue"
	categoryCostOfGoodsSold = "Cost of Goods Sold"
	categoryPayroll         = "Payroll"

	subcategoryRepairService = "Repair Service"
	subcategoryLaborCharge   = "Labor Charge"
	subcategoryPartsSale     = "Parts Sale"
	subcategoryParts         = "Spare Parts"
	subcategorySalary        = "Salary"

	// paymentMethodInventory credits stock rather than the till.
	paymentMethodInventory = "inventory"
)

// IdempotencyKey builds the natural key of a domain event.
func IdempotencyKey(referenceType, reference, discriminator string) string {
	return referenceType + ":" + reference + ":" + discriminator
}

// eventRecorder records a financial record at most once per idempotency key.
// The unique key column is the guarantee; the lock only keeps concurrent
// duplicates from both reaching the journal engine, so an unreachable lock
// store degrades to the key alone.
type eventRecorder struct {
	BaseService
	recordRepo portsrepo.FinancialRecordReader
	txnSvc     portssvc.TransactionWriterSvc
	locker     ports.IdempotencyLocker
}

func (r *eventRecorder) record(ctx context.Context, key string, req dto.CreateTransactionRequest, userID string) (dto.RecordResult, error) {
	if r.locker != nil {
		release, err := r.locker.Acquire(ctx, key)
		if err != nil {
			if errors.Is(err, ports.ErrLockHeld) {
				return dto.RecordResult{}, fmt.Errorf("%w: event %s is being recorded by another request", apperrors.ErrConflict, key)
			}
			// Lock store down: the unique key still rejects duplicates.
			r.LogWarn(ctx, err, "Idempotency lock unavailable, relying on unique key", slog.String("idempotency_key", key))
		} else {
			defer release()
		}
	}

	existing, err := r.recordRepo.FindRecordByIdempotencyKey(ctx, key)
	switch {
	case err == nil:
		r.LogDebug(ctx, "Domain event already recorded", slog.String("idempotency_key", key), slog.String("record_id", existing.RecordID))
		return dto.RecordResult{Record: existing, Created: false}, nil
	case !errors.Is(err, apperrors.ErrNotFound):
		r.LogError(ctx, err, "Failed to check for existing record", slog.String("idempotency_key", key))
		return dto.RecordResult{}, fmt.Errorf("failed to check idempotency key: %w", err)
	}

	req.IdempotencyKey = &key
	created, err := r.txnSvc.CreateTransaction(ctx, req, userID)
	if errors.Is(err, apperrors.ErrDuplicate) {
		existing, findErr := r.recordRepo.FindRecordByIdempotencyKey(ctx, key)
		if findErr != nil {
			return dto.RecordResult{}, fmt.Errorf("failed to load concurrently recorded event: %w", findErr)
		}
		return dto.RecordResult{Record: existing, Created: false}, nil
	}
	if err != nil {
		return dto.RecordResult{}, err
	}
	return dto.RecordResult{Record: created, Created: true}, nil
}

type recorderService struct {
	*eventRecorder
}

func NewRecorderService(recordRepo portsrepo.FinancialRecordReader, txnSvc portssvc.TransactionWriterSvc, locker ports.IdempotencyLocker) portssvc.RecorderSvc {
	return &recorderService{eventRecorder: newEventRecorder(recordRepo, txnSvc, locker)}
}

func newEventRecorder(recordRepo portsrepo.FinancialRecordReader, txnSvc portssvc.TransactionWriterSvc, locker ports.IdempotencyLocker) *eventRecorder {
	return &eventRecorder{
		BaseService: newBaseService(),
		recordRepo:  recordRepo,
		txnSvc:      txnSvc,
		locker:      locker,
	}
}

var _ portssvc.RecorderSvc = (*recorderService)(nil)

func (s *recorderService) RecordServiceIncome(ctx context.Context, serviceID string, amount decimal.Decimal, description string, userID string) (dto.RecordResult, error) {
	if !amount.IsPositive() {
		return dto.RecordResult{}, apperrors.NewValidationError("service income amount must be greater than zero")
	}
	if description == "" {
		description = fmt.Sprintf("Pembayaran service %s", serviceID)
	}
	refType := domain.RefService
	return s.record(ctx, IdempotencyKey(refType, serviceID, string(domain.RecordIncome)), dto.CreateTransactionRequest{
		Type:          domain.RecordIncome,
		Category:      categoryServiceRevenue,
		Subcategory:   strPtr(subcategoryRepairService),
		Amount:        amount,
		Description:   description,
		ReferenceType: &refType,
		Reference:     &serviceID,
	}, userID)
}

// RecordPartsCost books the stock cost and the sale of a part used on a
// ticket. The description carries the quantity, so the same part booked
// again with a different quantity is a separate event. A side whose amount
// is zero is skipped.
func (s *recorderService) RecordPartsCost(ctx context.Context, serviceID string, req dto.RecordPartsCostRequest, userID string) (dto.PartsCostResult, error) {
	if req.PartName == "" {
		return dto.PartsCostResult{}, apperrors.NewValidationError("part name is required")
	}
	if req.Quantity < 1 {
		return dto.PartsCostResult{}, apperrors.NewValidationError("quantity must be at least 1")
	}
	if req.ModalPrice.IsNegative() || req.SellingPrice.IsNegative() {
		return dto.PartsCostResult{}, apperrors.NewValidationError("part prices must not be negative")
	}

	qty := decimal.NewFromInt(int64(req.Quantity))
	var result dto.PartsCostResult

	if cost := req.ModalPrice.Mul(qty); cost.IsPositive() {
		refType := domain.RefServicePartsCost
		description := fmt.Sprintf("Biaya modal %s (%dx)", req.PartName, req.Quantity)
		expense, err := s.record(ctx, IdempotencyKey(refType, serviceID, description), dto.CreateTransactionRequest{
			Type:          domain.RecordExpense,
			Category:      categoryCostOfGoodsSold,
			Subcategory:   strPtr(subcategoryParts),
			Amount:        cost,
			Description:   description,
			ReferenceType: &refType,
			Reference:     &serviceID,
			PaymentMethod: strPtr(paymentMethodInventory),
		}, userID)
		if err != nil {
			return dto.PartsCostResult{}, err
		}
		result.Expense = expense
	}

	if revenue := req.SellingPrice.Mul(qty); revenue.IsPositive() {
		refType := domain.RefServicePartsRevenue
		description := fmt.Sprintf("Penjualan %s (%dx)", req.PartName, req.Quantity)
		income, err := s.record(ctx, IdempotencyKey(refType, serviceID, description), dto.CreateTransactionRequest{
			Type:          domain.RecordIncome,
			Category:      categoryServiceRevenue,
			Subcategory:   strPtr(subcategoryPartsSale),
			Amount:        revenue,
			Description:   description,
			ReferenceType: &refType,
			Reference:     &serviceID,
		}, userID)
		if err != nil {
			return result, err
		}
		result.Income = income
	}
	return result, nil
}

func (s *recorderService) RecordLaborCost(ctx context.Context, serviceID string, laborCost decimal.Decimal, description string, userID string) (dto.RecordResult, error) {
	if !laborCost.IsPositive() {
		return dto.RecordResult{}, nil
	}
	if description == "" {
		description = fmt.Sprintf("Biaya jasa service %s", serviceID)
	}
	refType := domain.RefServiceLabor
	return s.record(ctx, IdempotencyKey(refType, serviceID, string(domain.RecordIncome)), dto.CreateTransactionRequest{
		Type:          domain.RecordIncome,
		Category:      categoryServiceRevenue,
		Subcategory:   strPtr(subcategoryLaborCharge),
		Amount:        laborCost,
		Description:   description,
		ReferenceType: &refType,
		Reference:     &serviceID,
	}, userID)
}

func strPtr(s string) *string {
	return &s
}
