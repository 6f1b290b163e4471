package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/SscSPs/pos_finance_manager/cmd/docs"
	portssvc "github.com/SscSPs/pos_finance_manager/internal/core/ports/services"
	"github.com/SscSPs/pos_finance_manager/internal/middleware"
	"github.com/SscSPs/pos_finance_manager/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	RegisterFinanceRoutes(v1, services)

	setupSwaggerRoutes(r, cfg)
}

// RegisterFinanceRoutes mounts the finance API under rg/finance. Callers
// are expected to have authenticated the group already.
func RegisterFinanceRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	registerValidators()

	finance := rg.Group("/finance")
	registerAccountRoutes(finance, services.Account)
	registerJournalRoutes(finance, services.Journal)
	registerTransactionRoutes(finance, services.Transaction)
	registerRecorderRoutes(finance, services.Recorder)
	registerPayrollRoutes(finance, services.Payroll)
	registerReportingRoutes(finance, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
