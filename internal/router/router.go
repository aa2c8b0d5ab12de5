package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gstbook/internal/config"
	"gstbook/internal/handler"
	"gstbook/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	returnH *handler.ReturnHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	if cfg.Server.Environment != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")

	// All return routes require a registration-scoped token.
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWT))

	returns := protected.Group("/returns")
	returns.POST("", returnH.Open)
	returns.GET("", returnH.List)
	returns.GET("/:period", returnH.Get)
	returns.PATCH("/:period", returnH.Update)
	returns.GET("/:period/totals", returnH.Totals)
	returns.GET("/:period/validation", returnH.Validation)
	returns.POST("/:period/preview", returnH.Preview)
	returns.POST("/:period/submit", returnH.Submit)
	returns.POST("/:period/draft", returnH.SaveDraft)
	returns.GET("/:period/draft", returnH.PeekDraft)
	returns.POST("/:period/draft/restore", returnH.RestoreDraft)
	returns.GET("/:period/export", returnH.Export)

	return r
}
