package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/andinosoft/contabilidad-api/internal/core/ports/services"
	"github.com/andinosoft/contabilidad-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler exposes accounting reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// registerReportingRoutes registers the report routes.
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: rs}

	reports := rg.Group("/reportes")
	{
		reports.GET("/balance-comprobacion/:period_id", h.trialBalance)
	}
}

// trialBalance godoc
// @Summary Trial balance for a period
// @Description Sums debits and credits per account over the period's APPROVED entries.
// @Tags reportes
// @Produce  json
// @Param   period_id path int true "Period ID"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 404 {object} map[string]string "Period not found"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Security BearerAuth
// @Router /contabilidad/reportes/balance-comprobacion/{period_id} [get]
func (h *reportingHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID, err := strconv.ParseInt(c.Param("period_id"), 10, 64)
	if err != nil || periodID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period ID"})
		return
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), periodID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build trial balance")
		return
	}
	c.JSON(http.StatusOK, report)
}
