package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/pos_finance_manager/internal/core/ports/services"
	"github.com/SscSPs/pos_finance_manager/internal/dto"
)

// recorderHandler exposes the service ticket events. Each call is
// idempotent: a repeat answers 200 with created=false instead of 201.
type recorderHandler struct {
	recorder portssvc.RecorderSvc
}

func newRecorderHandler(rs portssvc.RecorderSvc) *recorderHandler {
	return &recorderHandler{recorder: rs}
}

func registerRecorderRoutes(rg *gin.RouterGroup, recorder portssvc.RecorderSvc) {
	h := newRecorderHandler(recorder)

	svc := rg.Group("/services/:serviceID")
	{
		svc.POST("/income", h.recordServiceIncome)
		svc.POST("/parts", h.recordPartsCost)
		svc.POST("/labor", h.recordLaborCost)
	}
}

func createdStatus(created bool) int {
	if created {
		return http.StatusCreated
	}
	return http.StatusOK
}

// recordServiceIncome godoc
// @Summary Record the payment of a service ticket
// @Tags services
// @Accept  json
// @Produce  json
// @Param   serviceID path string true "Service ticket ID"
// @Param   income body dto.RecordServiceIncomeRequest true "Amount and description"
// @Success 201 {object} dto.RecordResponse
// @Success 200 {object} dto.RecordResponse "Already recorded"
// @Security BearerAuth
// @Router /finance/services/{serviceID}/income [post]
func (h *recorderHandler) recordServiceIncome(c *gin.Context) {
	var req dto.RecordServiceIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.recorder.RecordServiceIncome(c.Request.Context(), c.Param("serviceID"), req.Amount, req.Description, userID)
	if err != nil {
		respondWithError(c, err, "Failed to record service income")
		return
	}
	c.JSON(createdStatus(result.Created), dto.ToRecordResponse(result))
}

// recordPartsCost godoc
// @Summary Record a spare part used on a service ticket
// @Description Books the stock cost as an expense and the sale as income
// @Tags services
// @Accept  json
// @Produce  json
// @Param   serviceID path string true "Service ticket ID"
// @Param   part body dto.RecordPartsCostRequest true "Part usage"
// @Success 200 {object} dto.PartsCostResponse
// @Security BearerAuth
// @Router /finance/services/{serviceID}/parts [post]
func (h *recorderHandler) recordPartsCost(c *gin.Context) {
	var req dto.RecordPartsCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.recorder.RecordPartsCost(c.Request.Context(), c.Param("serviceID"), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to record parts cost")
		return
	}
	c.JSON(createdStatus(result.Expense.Created || result.Income.Created), dto.PartsCostResponse{
		Expense: dto.ToRecordResponse(result.Expense),
		Income:  dto.ToRecordResponse(result.Income),
	})
}

// recordLaborCost godoc
// @Summary Record the labor charge of a service ticket
// @Description A zero labor cost records nothing and answers 204
// @Tags services
// @Accept  json
// @Produce  json
// @Param   serviceID path string true "Service ticket ID"
// @Param   labor body dto.RecordLaborCostRequest true "Labor cost"
// @Success 201 {object} dto.RecordResponse
// @Success 204 "Nothing to record"
// @Security BearerAuth
// @Router /finance/services/{serviceID}/labor [post]
func (h *recorderHandler) recordLaborCost(c *gin.Context) {
	var req dto.RecordLaborCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.recorder.RecordLaborCost(c.Request.Context(), c.Param("serviceID"), req.LaborCost, req.Description, userID)
	if err != nil {
		respondWithError(c, err, "Failed to record labor cost")
		return
	}
	if result.Record == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(createdStatus(result.Created), dto.ToRecordResponse(result))
}
