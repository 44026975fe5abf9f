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

// periodHandler handles HTTP requests for periodos contables.
type periodHandler struct {
	periodService portssvc.PeriodSvcFacade
}

func newPeriodHandler(ps portssvc.PeriodSvcFacade) *periodHandler {
	return &periodHandler{periodService: ps}
}

// registerPeriodRoutes registers the periodo contable routes.
func registerPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.PeriodSvcFacade) {
	h := newPeriodHandler(periodService)

	periods := rg.Group("/periodo-contable")
	{
		periods.POST("", h.createPeriod)
		periods.GET("", h.listPeriods)
		periods.GET("/:period_id", h.getPeriod)
		periods.PUT("/:period_id", h.updatePeriod)
		periods.POST("/:period_id/cerrar", h.closePeriod)
		periods.POST("/:period_id/reabrir", h.reopenPeriod)
		periods.POST("/:period_id/bloquear", h.blockPeriod)
	}
}

func periodIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("period_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period ID"})
		return 0, false
	}
	return id, true
}

// createPeriod godoc
// @Summary Create an accounting period
// @Description Creates the period for a company month; name and date range are derived from year/month. The period starts OPEN.
// @Tags periodos
// @Accept  json
// @Produce  json
// @Param   period body dto.CreatePeriodRequest true "Period details"
// @Success 201 {object} dto.PeriodResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 409 {object} map[string]string "Period already exists for that month"
// @Failure 500 {object} map[string]string "Failed to create period"
// @Security BearerAuth
// @Router /contabilidad/periodo-contable [post]
func (h *periodHandler) createPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	period, err := h.periodService.CreatePeriod(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create accounting period")
		return
	}

	logger.Info("Accounting period created",
		slog.Int64("period_id", period.ID),
		slog.String("period_name", period.Name))
	c.JSON(http.StatusCreated, dto.ToPeriodResponse(period))
}

// listPeriods godoc
// @Summary List accounting periods
// @Description Retrieves all periods of a company, most recent first.
// @Tags periodos
// @Produce  json
// @Param   empresaId query int true "Company ID"
// @Success 200 {array} dto.PeriodResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Failed to list periods"
// @Security BearerAuth
// @Router /contabilidad/periodo-contable [get]
func (h *periodHandler) listPeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, err := strconv.ParseInt(c.Query("empresaId"), 10, 64)
	if err != nil || companyID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing empresaId"})
		return
	}

	periods, err := h.periodService.ListPeriods(c.Request.Context(), companyID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list accounting periods")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponses(periods))
}

// getPeriod godoc
// @Summary Get an accounting period
// @Description Retrieves a period with its lifecycle metadata and allowed actions.
// @Tags periodos
// @Produce  json
// @Param   period_id path int true "Period ID"
// @Success 200 {object} dto.PeriodResponse
// @Failure 404 {object} map[string]string "Period not found"
// @Failure 500 {object} map[string]string "Failed to get period"
// @Security BearerAuth
// @Router /contabilidad/periodo-contable/{period_id} [get]
func (h *periodHandler) getPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID, ok := periodIDParam(c)
	if !ok {
		return
	}

	period, err := h.periodService.GetPeriodByID(c.Request.Context(), periodID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get accounting period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// updatePeriod godoc
// @Summary Update an accounting period
// @Description Redefines an OPEN period's month; name and date range are re-derived. Frozen once the period has been closed.
// @Tags periodos
// @Accept  json
// @Produce  json
// @Param   period_id path int true "Period ID"
// @Param   period body dto.UpdatePeriodRequest true "New month"
// @Success 200 {object} dto.PeriodResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Period not found"
// @Failure 409 {object} map[string]string "Period is not open or month already taken"
// @Failure 500 {object} map[string]string "Failed to update period"
// @Security BearerAuth
// @Router /contabilidad/periodo-contable/{period_id} [put]
func (h *periodHandler) updatePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID, ok := periodIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	period, err := h.periodService.UpdatePeriod(c.Request.Context(), periodID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update accounting period")
		return
	}

	logger.Info("Accounting period updated", slog.Int64("period_id", period.ID))
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// closePeriod godoc
// @Summary Close an accounting period
// @Description Transitions an OPEN period to CLOSED. Closed periods reject new entries.
// @Tags periodos
// @Accept  json
// @Produce  json
// @Param   period_id path int true "Period ID"
// @Param   action body dto.ClosePeriodRequest true "Actor"
// @Success 200 {object} dto.PeriodResponse
// @Failure 404 {object} map[string]string "Period not found"
// @Failure 409 {object} map[string]string "Period is not open"
// @Failure 500 {object} map[string]string "Failed to close period"
// @Security BearerAuth
// @Router /contabilidad/periodo-contable/{period_id}/cerrar [post]
func (h *periodHandler) closePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID, ok := periodIDParam(c)
	if !ok {
		return
	}
	var req dto.ClosePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ClosePeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	period, err := h.periodService.ClosePeriod(c.Request.Context(), periodID, req.CerradoPor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to close accounting period")
		return
	}

	logger.Info("Accounting period closed", slog.Int64("period_id", period.ID))
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// reopenPeriod godoc
// @Summary Reopen an accounting period
// @Description Transitions a CLOSED period back to OPEN. A reason is mandatory and kept for audit.
// @Tags periodos
// @Accept  json
// @Produce  json
// @Param   period_id path int true "Period ID"
// @Param   action body dto.ReopenPeriodRequest true "Actor and reason"
// @Success 200 {object} dto.PeriodResponse
// @Failure 400 {object} map[string]string "Missing reason"
// @Failure 404 {object} map[string]string "Period not found"
// @Failure 409 {object} map[string]string "Period is not closed"
// @Failure 500 {object} map[string]string "Failed to reopen period"
// @Security BearerAuth
// @Router /contabilidad/periodo-contable/{period_id}/reabrir [post]
func (h *periodHandler) reopenPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID, ok := periodIDParam(c)
	if !ok {
		return
	}
	var req dto.ReopenPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReopenPeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	period, err := h.periodService.ReopenPeriod(c.Request.Context(), periodID, req.ReabiertoPor, req.MotivoReapertura)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reopen accounting period")
		return
	}

	logger.Info("Accounting period reopened", slog.Int64("period_id", period.ID))
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// blockPeriod godoc
// @Summary Block an accounting period
// @Description Transitions a CLOSED period to BLOCKED. Blocked periods are terminal; there is no unblock.
// @Tags periodos
// @Accept  json
// @Produce  json
// @Param   period_id path int true "Period ID"
// @Param   action body dto.BlockPeriodRequest true "Actor and reason"
// @Success 200 {object} dto.PeriodResponse
// @Failure 400 {object} map[string]string "Missing reason"
// @Failure 404 {object} map[string]string "Period not found"
// @Failure 409 {object} map[string]string "Period is not closed"
// @Failure 500 {object} map[string]string "Failed to block period"
// @Security BearerAuth
// @Router /contabilidad/periodo-contable/{period_id}/bloquear [post]
func (h *periodHandler) blockPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID, ok := periodIDParam(c)
	if !ok {
		return
	}
	var req dto.BlockPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for BlockPeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	period, err := h.periodService.BlockPeriod(c.Request.Context(), periodID, req.BloqueadoPor, req.MotivoBloqueo)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to block accounting period")
		return
	}

	logger.Info("Accounting period blocked", slog.Int64("period_id", period.ID))
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}
