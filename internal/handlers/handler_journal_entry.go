package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/andinosoft/contabilidad-api/internal/core/ports/services"
	"github.com/andinosoft/contabilidad-api/internal/dto"
	"github.com/andinosoft/contabilidad-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalEntryHandler handles HTTP requests for asientos contables.
type journalEntryHandler struct {
	entryService portssvc.JournalEntrySvcFacade
}

func newJournalEntryHandler(es portssvc.JournalEntrySvcFacade) *journalEntryHandler {
	return &journalEntryHandler{entryService: es}
}

// RegisterJournalEntryRoutes registers the asiento contable routes.
func RegisterJournalEntryRoutes(rg *gin.RouterGroup, entryService portssvc.JournalEntrySvcFacade) {
	registerCustomValidators()
	h := newJournalEntryHandler(entryService)

	entries := rg.Group("/asiento-contable")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entry_id", h.getEntry)
		entries.PUT("/:entry_id", h.updateEntry)
		entries.DELETE("/:entry_id", h.deleteEntry)
		entries.POST("/:entry_id/aprobar", h.approveEntry)
		entries.POST("/:entry_id/anular", h.annulEntry)
	}
}

func entryIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("entry_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID"})
		return 0, false
	}
	return id, true
}

// createEntry godoc
// @Summary Create a journal entry
// @Description Creates an asiento contable in PENDING status. The target period must be OPEN and the lines must balance.
// @Tags asientos
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateJournalEntryRequest true "Entry details"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid input or unbalanced entry"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Company, period, currency or account not found"
// @Failure 500 {object} map[string]string "Failed to create entry"
// @Security BearerAuth
// @Router /contabilidad/asiento-contable [post]
func (h *journalEntryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create journal entry")
		return
	}

	logger.Info("Journal entry created",
		slog.Int64("entry_id", entry.ID),
		slog.Int64("entry_number", entry.EntryNumber))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Retrieves a paginated list of entries for a company, optionally filtered by period.
// @Tags asientos
// @Produce  json
// @Param   empresaId query int true "Company ID"
// @Param   periodoId query int false "Period ID filter"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination cursor"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Security BearerAuth
// @Router /contabilidad/asiento-contable [get]
func (h *journalEntryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.entryService.ListEntries(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, page)
}

// getEntry godoc
// @Summary Get a journal entry
// @Description Retrieves an entry with its lines and allowed actions.
// @Tags asientos
// @Produce  json
// @Param   entry_id path int true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to get entry"
// @Security BearerAuth
// @Router /contabilidad/asiento-contable/{entry_id} [get]
func (h *journalEntryHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, ok := entryIDParam(c)
	if !ok {
		return
	}

	entry, err := h.entryService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// updateEntry godoc
// @Summary Update a journal entry
// @Description Replaces the header and lines of a PENDING entry. Company, period and book are immutable.
// @Tags asientos
// @Accept  json
// @Produce  json
// @Param   entry_id path int true "Entry ID"
// @Param   entry body dto.UpdateJournalEntryRequest true "Entry details"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid input or unbalanced entry"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry is not pending"
// @Failure 500 {object} map[string]string "Failed to update entry"
// @Security BearerAuth
// @Router /contabilidad/asiento-contable/{entry_id} [put]
func (h *journalEntryHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, ok := entryIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.entryService.UpdateEntry(c.Request.Context(), entryID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update journal entry")
		return
	}

	logger.Info("Journal entry updated", slog.Int64("entry_id", entry.ID))
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a journal entry
// @Description Hard-deletes a PENDING entry and its lines.
// @Tags asientos
// @Param   entry_id path int true "Entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry is not pending"
// @Failure 500 {object} map[string]string "Failed to delete entry"
// @Security BearerAuth
// @Router /contabilidad/asiento-contable/{entry_id} [delete]
func (h *journalEntryHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, ok := entryIDParam(c)
	if !ok {
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.entryService.DeleteEntry(c.Request.Context(), entryID, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete journal entry")
		return
	}

	logger.Info("Journal entry deleted", slog.Int64("entry_id", entryID))
	c.Status(http.StatusNoContent)
}

// approveEntry godoc
// @Summary Approve a journal entry
// @Description Transitions a balanced PENDING entry to APPROVED.
// @Tags asientos
// @Accept  json
// @Produce  json
// @Param   entry_id path int true "Entry ID"
// @Param   approval body dto.ApproveEntryRequest true "Approver"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry is not pending or not balanced"
// @Failure 500 {object} map[string]string "Failed to approve entry"
// @Security BearerAuth
// @Router /contabilidad/asiento-contable/{entry_id}/aprobar [post]
func (h *journalEntryHandler) approveEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, ok := entryIDParam(c)
	if !ok {
		return
	}
	var req dto.ApproveEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ApproveEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.entryService.ApproveEntry(c.Request.Context(), entryID, req.AprobadoPorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to approve journal entry")
		return
	}

	logger.Info("Journal entry approved",
		slog.Int64("entry_id", entry.ID),
		slog.Int64("approver_id", req.AprobadoPorID))
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// annulEntry godoc
// @Summary Annul a journal entry
// @Description Transitions an APPROVED entry to ANNULLED. The entry is kept for audit.
// @Tags asientos
// @Produce  json
// @Param   entry_id path int true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry is not approved"
// @Failure 500 {object} map[string]string "Failed to annul entry"
// @Security BearerAuth
// @Router /contabilidad/asiento-contable/{entry_id}/anular [post]
func (h *journalEntryHandler) annulEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, ok := entryIDParam(c)
	if !ok {
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.entryService.AnnulEntry(c.Request.Context(), entryID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to annul journal entry")
		return
	}

	logger.Info("Journal entry annulled", slog.Int64("entry_id", entry.ID))
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}
