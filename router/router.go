package router

import (
	"github.com/NomadCrew/nomad-checklist-backend/config"
	_ "github.com/NomadCrew/nomad-checklist-backend/docs" // registers the swagger document
	"github.com/NomadCrew/nomad-checklist-backend/handlers"
	"github.com/NomadCrew/nomad-checklist-backend/internal/metrics"
	"github.com/NomadCrew/nomad-checklist-backend/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config               *config.Config
	Metrics              *metrics.Metrics
	Gatherer             prometheus.Gatherer
	ChecklistHandler     *handlers.ChecklistHandler
	ChecklistItemHandler *handlers.ChecklistItemHandler
	ItemStatusHandler    *handlers.ItemStatusHandler
	HealthHandler        *handlers.HealthHandler
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()

	// Global Middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.MetricsMiddleware(deps.Metrics))
	r.Use(middleware.Recovery())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config))
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))
	r.Use(middleware.ErrorHandler())

	r.NoRoute(middleware.NotFoundHandler())

	// Health and Metrics Routes
	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// Swagger documentation (only in non-production)
	if !deps.Config.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api/" + deps.Config.Server.APIVersion)
	{
		internal := api.Group("/internal")
		{
			checklistRoutes := internal.Group("/checklist")
			{
				checklistRoutes.GET("", deps.ChecklistHandler.ListChecklistsHandler)
				checklistRoutes.POST("", deps.ChecklistHandler.CreateChecklistHandler)
				checklistRoutes.GET("/:id", deps.ChecklistHandler.GetChecklistHandler)
				checklistRoutes.PUT("/:id", deps.ChecklistHandler.UpdateChecklistHandler)
				checklistRoutes.DELETE("/:id", deps.ChecklistHandler.DeleteChecklistHandler)
			}

			itemRoutes := internal.Group("/checklist-item")
			{
				itemRoutes.POST("", deps.ChecklistItemHandler.CreateItemHandler)
				itemRoutes.PUT("/:id", deps.ChecklistItemHandler.UpdateItemHandler)
				itemRoutes.DELETE("/:id", deps.ChecklistItemHandler.DeleteItemHandler)
			}

			internal.PATCH("/checklist-item-status/:id", deps.ItemStatusHandler.ToggleStatusHandler)
		}

		// Reserved for integrations with external systems; no routes yet.
		api.Group("/external")
	}

	return r
}
