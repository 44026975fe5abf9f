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

// accountHandler exposes the chart of accounts (plan de cuentas) read API.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

// registerAccountRoutes registers the plan de cuentas routes.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/plan-cuentas-contable")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:account_id", h.getAccount)
	}
}

// listAccounts godoc
// @Summary List chart of accounts
// @Description Retrieves a company's chart of accounts ordered by code. With soloImputables=true only postable active accounts are returned.
// @Tags plan-cuentas
// @Produce  json
// @Param   empresaId query int true "Company ID"
// @Param   soloImputables query bool false "Only postable active accounts"
// @Success 200 {array} dto.ChartAccountResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /contabilidad/plan-cuentas-contable [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListAccounts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list chart of accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToChartAccountResponses(accounts))
}

// getAccount godoc
// @Summary Get a chart account
// @Description Retrieves a single chart-of-accounts node.
// @Tags plan-cuentas
// @Produce  json
// @Param   account_id path int true "Account ID"
// @Success 200 {object} dto.ChartAccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to get account"
// @Security BearerAuth
// @Router /contabilidad/plan-cuentas-contable/{account_id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, err := strconv.ParseInt(c.Param("account_id"), 10, 64)
	if err != nil || accountID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account ID"})
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get chart account")
		return
	}
	acc := dto.ToChartAccountResponse(account)
	c.JSON(http.StatusOK, acc)
}
