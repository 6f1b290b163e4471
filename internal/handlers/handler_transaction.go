package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/pos_finance_manager/internal/core/ports/services"
	"github.com/SscSPs/pos_finance_manager/internal/dto"
)

type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:recordID", h.getTransaction)
		transactions.POST("/:recordID/repost", h.repostJournal)
	}
}

// createTransaction godoc
// @Summary Record an income, expense or transfer
// @Description Stores a financial record and books its journal. The record is returned even if the journal could not be posted; journalEntryId is then null.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Financial record"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input or unmapped category"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Security BearerAuth
// @Router /finance/transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	record, err := h.transactionService.CreateTransaction(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(record))
}

// listTransactions godoc
// @Summary List financial records
// @Description Newest first, keyset paginated via nextToken
// @Tags transactions
// @Produce  json
// @Param   type query string false "income, expense or transfer"
// @Param   category query string false "Category"
// @Param   referenceType query string false "Reference type"
// @Param   startDate query string false "YYYY-MM-DD"
// @Param   endDate query string false "YYYY-MM-DD"
// @Param   unlinkedOnly query bool false "Only records without a journal entry"
// @Param   limit query int false "Page size (default 50, max 200)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Security BearerAuth
// @Router /finance/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	records, next, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(records, next))
}

// getTransaction godoc
// @Summary Get a financial record
// @Tags transactions
// @Produce  json
// @Param   recordID path string true "Record ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Record not found"
// @Security BearerAuth
// @Router /finance/transactions/{recordID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	record, err := h.transactionService.GetTransaction(c.Request.Context(), c.Param("recordID"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(record))
}

// repostJournal godoc
// @Summary Book the journal of an unlinked record
// @Tags transactions
// @Produce  json
// @Param   recordID path string true "Record ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Record or account not found"
// @Failure 409 {object} map[string]string "Record already has a journal entry"
// @Security BearerAuth
// @Router /finance/transactions/{recordID}/repost [post]
func (h *transactionHandler) repostJournal(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	record, err := h.transactionService.RepostJournal(c.Request.Context(), c.Param("recordID"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to repost journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(record))
}
