package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/pos_finance_manager/internal/apperrors"
	portssvc "github.com/SscSPs/pos_finance_manager/internal/core/ports/services"
	"github.com/SscSPs/pos_finance_manager/internal/dto"
	"github.com/SscSPs/pos_finance_manager/internal/middleware"
)

// BalanceCheckHeader is set to "failed" when a balance sheet does not balance.
const BalanceCheckHeader = "X-Balance-Check"

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/income-statement", h.getIncomeStatement)
		reports.GET("/summary", h.getSummary)
		reports.GET("/reconciliation", h.getReconciliation)
	}
}

// getBalanceSheet godoc
// @Summary Get the balance sheet
// @Description Live balances, or balances replayed from the journal when asOf is given. A failed balance check is flagged with the X-Balance-Check header.
// @Tags reports
// @Produce  json
// @Param   asOf query string false "YYYY-MM-DD"
// @Success 200 {object} domain.BalanceSheetReport
// @Failure 400 {object} map[string]string "Invalid date"
// @Security BearerAuth
// @Router /finance/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	var params dto.BalanceSheetParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	asOf, err := dto.ParseOptionalDate(params.AsOf)
	if err != nil {
		respondWithError(c, apperrors.NewValidationError("%v", err), "Invalid asOf")
		return
	}

	report, err := h.reportingService.GetBalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		respondWithError(c, err, "Failed to generate balance sheet")
		return
	}
	if !report.BalanceCheck {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Serving balance sheet that does not balance",
			slog.String("total_assets", report.TotalAssets.String()),
			slog.String("total_liabilities", report.TotalLiabilities.String()),
			slog.String("total_equity", report.TotalEquity.String()))
		c.Header(BalanceCheckHeader, "failed")
	}
	c.JSON(http.StatusOK, report)
}

// getIncomeStatement godoc
// @Summary Get the income statement
// @Description Posted activity of revenue and expense accounts within the inclusive window
// @Tags reports
// @Produce  json
// @Param   startDate query string false "YYYY-MM-DD"
// @Param   endDate query string false "YYYY-MM-DD"
// @Success 200 {object} domain.IncomeStatementReport
// @Security BearerAuth
// @Router /finance/reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	var params dto.PeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	start, end, err := parsePeriod(params)
	if err != nil {
		respondWithError(c, err, "Invalid period")
		return
	}

	report, err := h.reportingService.GetIncomeStatement(c.Request.Context(), start, end)
	if err != nil {
		respondWithError(c, err, "Failed to generate income statement")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getSummary godoc
// @Summary Get the dashboard summary
// @Description Totals and breakdowns built from financial records
// @Tags reports
// @Produce  json
// @Param   startDate query string false "YYYY-MM-DD"
// @Param   endDate query string false "YYYY-MM-DD"
// @Success 200 {object} domain.FinancialSummary
// @Security BearerAuth
// @Router /finance/reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	var params dto.PeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	start, end, err := parsePeriod(params)
	if err != nil {
		respondWithError(c, err, "Invalid period")
		return
	}

	summary, err := h.reportingService.GetSummary(c.Request.Context(), start, end)
	if err != nil {
		respondWithError(c, err, "Failed to generate summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getReconciliation godoc
// @Summary Compare cached balances with the journal
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.ReconciliationResponse
// @Security BearerAuth
// @Router /finance/reports/reconciliation [get]
func (h *reportingHandler) getReconciliation(c *gin.Context) {
	discrepancies, err := h.reportingService.ReconcileBalances(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to reconcile balances")
		return
	}
	c.JSON(http.StatusOK, dto.ReconciliationResponse{
		Consistent:    len(discrepancies) == 0,
		Discrepancies: discrepancies,
	})
}

func parsePeriod(params dto.PeriodParams) (start, end *time.Time, err error) {
	if start, err = dto.ParseOptionalDate(params.StartDate); err != nil {
		return nil, nil, apperrors.NewValidationError("invalid startDate: %v", err)
	}
	if end, err = dto.ParseOptionalDate(params.EndDate); err != nil {
		return nil, nil, apperrors.NewValidationError("invalid endDate: %v", err)
	}
	return start, end, nil
}
