package handlers

import (
	"github.com/andinosoft/contabilidad-api/cmd/docs"
	portssvc "github.com/andinosoft/contabilidad-api/internal/core/ports/services"
	"github.com/andinosoft/contabilidad-api/internal/middleware"
	"github.com/andinosoft/contabilidad-api/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupContabilidadRoutes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupContabilidadRoutes configures the /contabilidad group and delegates
// to the per-entity registrations.
func setupContabilidadRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	contabilidad := r.Group("/contabilidad", middleware.AuthMiddleware(cfg.JWTSecret))

	RegisterJournalEntryRoutes(contabilidad, services.JournalEntry)
	registerPeriodRoutes(contabilidad, services.Period)
	registerAccountRoutes(contabilidad, services.Account)
	registerCatalogRoutes(contabilidad, services.Company, services.Currency, services.ExchangeRate)
	registerReportingRoutes(contabilidad, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
