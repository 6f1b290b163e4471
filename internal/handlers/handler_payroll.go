package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/pos_finance_manager/internal/core/ports/services"
	"github.com/SscSPs/pos_finance_manager/internal/dto"
)

type payrollHandler struct {
	payrollService portssvc.PayrollSvc
}

func newPayrollHandler(ps portssvc.PayrollSvc) *payrollHandler {
	return &payrollHandler{payrollService: ps}
}

func registerPayrollRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvc) {
	h := newPayrollHandler(payrollService)

	payrolls := rg.Group("/payrolls")
	{
		payrolls.POST("", h.createPayroll)
		payrolls.GET("/:payrollID", h.getPayroll)
		payrolls.PATCH("/:payrollID/status", h.updatePayrollStatus)
	}
}

// createPayroll godoc
// @Summary Create a draft payroll
// @Description A zero baseSalary falls back to the employee's contractual salary
// @Tags payrolls
// @Accept  json
// @Produce  json
// @Param   payroll body dto.CreatePayrollRequest true "Payroll components"
// @Success 201 {object} dto.PayrollResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Employee not found"
// @Security BearerAuth
// @Router /finance/payrolls [post]
func (h *payrollHandler) createPayroll(c *gin.Context) {
	var req dto.CreatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	payroll, err := h.payrollService.CreatePayroll(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create payroll")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPayrollResponse(payroll))
}

// getPayroll godoc
// @Summary Get a payroll
// @Tags payrolls
// @Produce  json
// @Param   payrollID path string true "Payroll ID"
// @Success 200 {object} dto.PayrollResponse
// @Failure 404 {object} map[string]string "Payroll not found"
// @Security BearerAuth
// @Router /finance/payrolls/{payrollID} [get]
func (h *payrollHandler) getPayroll(c *gin.Context) {
	payroll, err := h.payrollService.GetPayroll(c.Request.Context(), c.Param("payrollID"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve payroll")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayrollResponse(payroll))
}

// updatePayrollStatus godoc
// @Summary Approve or pay a payroll
// @Description Moving to paid books the net pay as a payroll expense, once
// @Tags payrolls
// @Accept  json
// @Produce  json
// @Param   payrollID path string true "Payroll ID"
// @Param   status body dto.UpdatePayrollStatusRequest true "Target status"
// @Success 200 {object} dto.PayrollResponse
// @Failure 400 {object} map[string]string "Transition not allowed"
// @Failure 409 {object} map[string]string "Status changed concurrently"
// @Security BearerAuth
// @Router /finance/payrolls/{payrollID}/status [patch]
func (h *payrollHandler) updatePayrollStatus(c *gin.Context) {
	var req dto.UpdatePayrollStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	payroll, err := h.payrollService.UpdatePayrollStatus(c.Request.Context(), c.Param("payrollID"), req.Status, userID)
	if err != nil {
		respondWithError(c, err, "Failed to update payroll status")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayrollResponse(payroll))
}
