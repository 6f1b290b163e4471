package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_finance_manager/internal/apperrors"
	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_finance_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_finance_manager/internal/core/ports/services"
	"github.com/SscSPs/pos_finance_manager/internal/utils/accounting"
)

const (
	unspecifiedKey     = "unspecified"
	manualSourceKey    = "manual"
	currentEarningsKey = "Current Earnings"
)

var allAccountTypes = []domain.AccountType{domain.Asset, domain.Liability, domain.Equity, domain.Revenue, domain.Expense}

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountReader
	recordRepo    portsrepo.FinancialRecordReader
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingClock overrides the clock used to stamp reports.
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, accountRepo portsrepo.AccountReader, recordRepo portsrepo.FinancialRecordReader, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		BaseService:   newBaseService(),
		reportingRepo: repo,
		accountRepo:   accountRepo,
		recordRepo:    recordRepo,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// GetBalanceSheet groups asset, liability and equity accounts by subtype.
// Revenue less expense not yet closed to retained earnings is shown as a
// current earnings line under equity so the sheet balances between closings.
func (s *reportingService) GetBalanceSheet(ctx context.Context, asOf *time.Time) (*domain.BalanceSheetReport, error) {
	var (
		amounts []accountAmount
		err     error
	)
	if asOf == nil {
		amounts, err = s.liveBalances(ctx)
	} else {
		amounts, err = s.replayedBalances(ctx, nil, asOf)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve balance sheet data")
		return nil, fmt.Errorf("failed to retrieve balance sheet data: %w", err)
	}

	byType := splitByType(amounts)
	report := &domain.BalanceSheetReport{AsOf: asOf}
	report.Assets, report.TotalAssets = groupBySubtype(byType[domain.Asset], domain.Asset)
	report.Liabilities, report.TotalLiabilities = groupBySubtype(byType[domain.Liability], domain.Liability)
	report.Equity, report.TotalEquity = groupBySubtype(byType[domain.Equity], domain.Equity)

	earnings := sumAmounts(byType[domain.Revenue]).Sub(sumAmounts(byType[domain.Expense]))
	if !earnings.IsZero() {
		report.Equity = append(report.Equity, domain.ReportGroup{
			Subtype:  domain.SubtypeCurrentEarnings,
			Accounts: []domain.AccountAmount{{Name: currentEarningsKey, Amount: earnings}},
			Total:    earnings,
		})
		report.TotalEquity = report.TotalEquity.Add(earnings)
	}

	diff := report.TotalAssets.Sub(report.TotalLiabilities.Add(report.TotalEquity)).Abs()
	report.BalanceCheck = diff.LessThan(accounting.BalanceTolerance)
	if !report.BalanceCheck {
		s.LogWarn(ctx, nil, "Balance sheet does not balance",
			slog.String("total_assets", report.TotalAssets.String()),
			slog.String("total_liabilities", report.TotalLiabilities.String()),
			slog.String("total_equity", report.TotalEquity.String()))
	}

	s.LogInfo(ctx, "Balance sheet report generated successfully",
		slog.Bool("historical", asOf != nil),
		slog.Int("asset_groups", len(report.Assets)),
		slog.Int("liability_groups", len(report.Liabilities)),
		slog.Int("equity_groups", len(report.Equity)))
	return report, nil
}

// GetIncomeStatement sums posted activity of revenue and expense accounts
// within the inclusive window, omitting accounts with no net activity.
func (s *reportingService) GetIncomeStatement(ctx context.Context, startDate, endDate *time.Time) (*domain.IncomeStatementReport, error) {
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, apperrors.NewValidationError("endDate must not be before startDate")
	}

	amounts, err := s.replayedBalances(ctx, startDate, endDate, domain.Revenue, domain.Expense)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve income statement data")
		return nil, fmt.Errorf("failed to retrieve income statement data: %w", err)
	}

	active := amounts[:0]
	for _, a := range amounts {
		if !a.Amount.IsZero() {
			active = append(active, a)
		}
	}
	byType := splitByType(active)

	report := &domain.IncomeStatementReport{StartDate: startDate, EndDate: endDate}
	report.Revenue, report.TotalRevenue = groupBySubtype(byType[domain.Revenue], domain.Revenue)
	report.Expenses, report.TotalExpenses = groupBySubtype(byType[domain.Expense], domain.Expense)
	report.CostOfGoodsSold = decimal.Zero
	for _, g := range report.Expenses {
		if g.Subtype == domain.SubtypeCostOfGoodsSold {
			report.CostOfGoodsSold = report.CostOfGoodsSold.Add(g.Total)
		}
	}
	report.GrossProfit = report.TotalRevenue.Sub(report.CostOfGoodsSold)
	report.NetIncome = report.TotalRevenue.Sub(report.TotalExpenses)

	s.LogInfo(ctx, "Income statement generated successfully",
		slog.String("total_revenue", report.TotalRevenue.String()),
		slog.String("total_expenses", report.TotalExpenses.String()),
		slog.String("net_income", report.NetIncome.String()))
	return report, nil
}

// GetSummary builds the dashboard totals from confirmed records. Capitalized
// spending (inventory and asset purchases) is left out of the expense total
// but still appears in the breakdowns.
func (s *reportingService) GetSummary(ctx context.Context, startDate, endDate *time.Time) (*domain.FinancialSummary, error) {
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, apperrors.NewValidationError("endDate must not be before startDate")
	}

	records, err := s.recordRepo.ListConfirmedRecords(ctx, startDate, endDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to list records for summary")
		return nil, fmt.Errorf("failed to retrieve summary data: %w", err)
	}
	inventory, err := s.reportingRepo.GetInventoryValuation(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute inventory valuation")
		return nil, fmt.Errorf("failed to retrieve inventory valuation: %w", err)
	}

	summary := &domain.FinancialSummary{
		StartDate:       startDate,
		EndDate:         endDate,
		ByCategory:      map[string]domain.BreakdownEntry{},
		BySubcategory:   map[string]domain.BreakdownEntry{},
		ByPaymentMethod: map[string]domain.BreakdownEntry{},
		BySource:        map[string]domain.BreakdownEntry{},
		RecordCount:     len(records),
		InventoryValue:  inventory.Value,
		InventoryCount:  inventory.Count,
	}
	for _, r := range records {
		switch r.Type {
		case domain.RecordIncome:
			summary.TotalIncome = summary.TotalIncome.Add(r.Amount)
		case domain.RecordExpense:
			if !IsCapitalizedCategory(r.Category) {
				summary.TotalExpense = summary.TotalExpense.Add(r.Amount)
			}
		}
		addBreakdown(summary.ByCategory, r.Category, r)
		if r.Subcategory != nil && *r.Subcategory != "" {
			addBreakdown(summary.BySubcategory, *r.Subcategory, r)
		}
		addBreakdown(summary.ByPaymentMethod, orDefault(r.PaymentMethod, unspecifiedKey), r)
		addBreakdown(summary.BySource, orDefault(r.ReferenceType, manualSourceKey), r)
	}
	summary.NetProfit = summary.TotalIncome.Sub(summary.TotalExpense)

	s.LogInfo(ctx, "Financial summary generated successfully", slog.Int("record_count", summary.RecordCount))
	return summary, nil
}

// ReconcileBalances replays every posted line and reports accounts whose
// cached balance has drifted from the replay.
func (s *reportingService) ReconcileBalances(ctx context.Context) ([]domain.BalanceDiscrepancy, error) {
	activity, err := s.reportingRepo.GetAccountActivity(ctx, allAccountTypes, nil, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to replay journal lines for reconciliation")
		return nil, fmt.Errorf("failed to reconcile balances: %w", err)
	}

	discrepancies := []domain.BalanceDiscrepancy{}
	for _, a := range activity {
		replayed := a.Net()
		if replayed.Equal(a.Balance) {
			continue
		}
		discrepancies = append(discrepancies, domain.BalanceDiscrepancy{
			AccountID:       a.AccountID,
			Code:            a.Code,
			Name:            a.Name,
			CachedBalance:   a.Balance,
			ReplayedBalance: replayed,
			Difference:      a.Balance.Sub(replayed),
		})
	}
	if len(discrepancies) > 0 {
		s.LogWarn(ctx, nil, "Cached account balances differ from journal history", slog.Int("accounts", len(discrepancies)))
	}
	return discrepancies, nil
}

// IsCapitalizedCategory reports whether spending in category is treated as
// an inventory or asset purchase rather than an expense.
func IsCapitalizedCategory(category string) bool {
	c := strings.ToLower(strings.TrimSpace(category))
	return c == "inventory purchase" || strings.Contains(c, "purchase") || strings.Contains(c, "asset")
}

type accountAmount struct {
	domain.Account
	Amount decimal.Decimal
}

func (s *reportingService) liveBalances(ctx context.Context) ([]accountAmount, error) {
	accounts, err := s.accountRepo.ListActiveAccounts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]accountAmount, len(accounts))
	for i, a := range accounts {
		out[i] = accountAmount{Account: a, Amount: a.Balance}
	}
	return out, nil
}

func (s *reportingService) replayedBalances(ctx context.Context, from, to *time.Time, types ...domain.AccountType) ([]accountAmount, error) {
	if len(types) == 0 {
		types = allAccountTypes
	}
	activity, err := s.reportingRepo.GetAccountActivity(ctx, types, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]accountAmount, len(activity))
	for i, a := range activity {
		out[i] = accountAmount{Account: a.Account, Amount: a.Net()}
	}
	return out, nil
}

func splitByType(amounts []accountAmount) map[domain.AccountType][]accountAmount {
	out := make(map[domain.AccountType][]accountAmount)
	for _, a := range amounts {
		out[a.AccountType] = append(out[a.AccountType], a)
	}
	return out
}

// groupBySubtype keeps groups in order of first appearance, which follows
// the account code order of the input.
func groupBySubtype(amounts []accountAmount, accountType domain.AccountType) ([]domain.ReportGroup, decimal.Decimal) {
	groups := []domain.ReportGroup{}
	index := map[string]int{}
	total := decimal.Zero
	for _, a := range amounts {
		subtype := a.Subtype
		if subtype == "" {
			subtype = defaultSubtype(accountType)
		}
		i, ok := index[subtype]
		if !ok {
			i = len(groups)
			index[subtype] = i
			groups = append(groups, domain.ReportGroup{Subtype: subtype, Total: decimal.Zero})
		}
		groups[i].Accounts = append(groups[i].Accounts, domain.AccountAmount{
			AccountID: a.AccountID,
			Code:      a.Code,
			Name:      a.Name,
			Amount:    a.Amount,
		})
		groups[i].Total = groups[i].Total.Add(a.Amount)
		total = total.Add(a.Amount)
	}
	return groups, total
}

func defaultSubtype(accountType domain.AccountType) string {
	return "other_" + strings.ToLower(string(accountType))
}

func sumAmounts(amounts []accountAmount) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a.Amount)
	}
	return total
}

func addBreakdown(m map[string]domain.BreakdownEntry, key string, r domain.FinancialRecord) {
	e := m[key]
	switch r.Type {
	case domain.RecordIncome:
		e.Income = e.Income.Add(r.Amount)
	case domain.RecordExpense:
		e.Expense = e.Expense.Add(r.Amount)
	}
	e.Count++
	m[key] = e
}

func orDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}
