package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/pos_finance_manager/internal/core/ports/services"
	"github.com/SscSPs/pos_finance_manager/internal/dto"
	"github.com/SscSPs/pos_finance_manager/internal/middleware"
)

type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.createJournalEntry)
		journals.GET("", h.listJournalEntriesByReference)
		journals.GET("/:journalID", h.getJournalEntry)
	}
}

// createJournalEntry godoc
// @Summary Post a journal entry
// @Description Posts a balanced double-entry journal and updates account balances atomically
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   journal body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Unbalanced or malformed entry"
// @Failure 404 {object} map[string]string "Unknown account code"
// @Failure 500 {object} map[string]string "Failed to post journal entry"
// @Security BearerAuth
// @Router /finance/journals [post]
func (h *journalHandler) createJournalEntry(c *gin.Context) {
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.journalService.CreateJournalEntry(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to post journal entry")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Journal entry posted", slog.String("journal_entry_id", entry.JournalEntryID))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// getJournalEntry godoc
// @Summary Get a journal entry with its lines
// @Tags journals
// @Produce  json
// @Param   journalID path string true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Security BearerAuth
// @Router /finance/journals/{journalID} [get]
func (h *journalHandler) getJournalEntry(c *gin.Context) {
	entry, err := h.journalService.GetJournalEntry(c.Request.Context(), c.Param("journalID"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listJournalEntriesByReference godoc
// @Summary List journal entries booked for a business reference
// @Tags journals
// @Produce  json
// @Param   referenceType query string true "Reference type, e.g. service"
// @Param   reference query string true "Reference, e.g. a service ticket id"
// @Success 200 {array} dto.JournalEntryResponse
// @Security BearerAuth
// @Router /finance/journals [get]
func (h *journalHandler) listJournalEntriesByReference(c *gin.Context) {
	var params dto.JournalReferenceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	entries, err := h.journalService.ListJournalEntriesByReference(c.Request.Context(), params.ReferenceType, params.Reference)
	if err != nil {
		respondWithError(c, err, "Failed to list journal entries")
		return
	}
	resp := make([]dto.JournalEntryResponse, len(entries))
	for i := range entries {
		resp[i] = dto.ToJournalEntryResponse(&entries[i])
	}
	c.JSON(http.StatusOK, resp)
}
