package handlers

import (
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/andinosoft/contabilidad-api/internal/core/ports/services"
	"github.com/andinosoft/contabilidad-api/internal/dto"
	"github.com/andinosoft/contabilidad-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// catalogHandler exposes the reference catalogs: empresas, monedas and
// tipos de cambio. All read-only; these are maintained by other ERP modules.
type catalogHandler struct {
	companyService  portssvc.CompanySvcFacade
	currencyService portssvc.CurrencySvcFacade
	rateService     portssvc.ExchangeRateSvcFacade
}

// registerCatalogRoutes registers the reference catalog routes.
func registerCatalogRoutes(rg *gin.RouterGroup, cs portssvc.CompanySvcFacade, cur portssvc.CurrencySvcFacade, rs portssvc.ExchangeRateSvcFacade) {
	h := &catalogHandler{companyService: cs, currencyService: cur, rateService: rs}

	rg.GET("/empresa", h.listCompanies)
	rg.GET("/empresa/:company_id", h.getCompany)
	rg.GET("/moneda", h.listCurrencies)
	rg.GET("/tipo-cambio", h.getExchangeRate)
}

// listCompanies godoc
// @Summary List companies
// @Tags catalogos
// @Produce  json
// @Success 200 {array} dto.CompanyResponse
// @Failure 500 {object} map[string]string "Failed to list companies"
// @Security BearerAuth
// @Router /contabilidad/empresa [get]
func (h *catalogHandler) listCompanies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companies, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list companies")
		return
	}
	res := make([]dto.CompanyResponse, len(companies))
	for i := range companies {
		res[i] = dto.ToCompanyResponse(&companies[i])
	}
	c.JSON(http.StatusOK, res)
}

// getCompany godoc
// @Summary Get a company
// @Tags catalogos
// @Produce  json
// @Param   company_id path int true "Company ID"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Security BearerAuth
// @Router /contabilidad/empresa/{company_id} [get]
func (h *catalogHandler) getCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, err := strconv.ParseInt(c.Param("company_id"), 10, 64)
	if err != nil || companyID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid company ID"})
		return
	}

	company, err := h.companyService.GetCompanyByID(c.Request.Context(), companyID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get company")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// listCurrencies godoc
// @Summary List currencies
// @Tags catalogos
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Security BearerAuth
// @Router /contabilidad/moneda [get]
func (h *catalogHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list currencies")
		return
	}
	res := make([]dto.CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = dto.ToCurrencyResponse(&currencies[i])
	}
	c.JSON(http.StatusOK, res)
}

// getExchangeRate godoc
// @Summary Get the exchange rate for a currency and date
// @Description Retrieves the published rate used to prefill an entry's tipo de cambio.
// @Tags catalogos
// @Produce  json
// @Param   moneda query string true "Currency code (ISO 4217)"
// @Param   fecha query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 404 {object} map[string]string "No rate published for that date"
// @Security BearerAuth
// @Router /contabilidad/tipo-cambio [get]
func (h *catalogHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Query("moneda")
	if len(code) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing moneda"})
		return
	}
	date, err := time.Parse("2006-01-02", c.Query("fecha"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing fecha, expected YYYY-MM-DD"})
		return
	}

	rate, err := h.rateService.GetRate(c.Request.Context(), code, date)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get exchange rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}
