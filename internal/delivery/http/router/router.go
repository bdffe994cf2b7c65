// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"intellieats/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler   *handler.HealthHandler
	UserHandler     *handler.UserHandler
	FoodHandler     *handler.FoodHandler
	EntryHandler    *handler.EntryHandler
	AnalysisHandler *handler.AnalysisHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler   *handler.HealthHandler
	userHandler     *handler.UserHandler
	foodHandler     *handler.FoodHandler
	entryHandler    *handler.EntryHandler
	analysisHandler *handler.AnalysisHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:   params.HealthHandler,
		userHandler:     params.UserHandler,
		foodHandler:     params.FoodHandler,
		entryHandler:    params.EntryHandler,
		analysisHandler: params.AnalysisHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.HealthCheck)

	// Food catalog routes
	foodGroup := e.Group("/foods")
	{
		foodGroup.GET("/search", r.foodHandler.Search)
		foodGroup.GET("/barcode/:code", r.foodHandler.LookupBarcode)
		foodGroup.POST("", r.foodHandler.CreateFood)
	}

	// User routes
	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.userHandler.Register)
		userGroup.GET("/:id", r.userHandler.GetProfile)
		userGroup.PUT("/:id/goals", r.userHandler.UpdateGoals)

		userGroup.POST("/:id/entries", r.entryHandler.LogEntry)
		userGroup.DELETE("/:id/entries/:entryId", r.entryHandler.DeleteEntry)
		userGroup.GET("/:id/summary/daily", r.entryHandler.DailySummary)

		userGroup.GET("/:id/analysis/context", r.analysisHandler.AnalysisContext)
		userGroup.POST("/:id/analyses", r.analysisHandler.SaveAnalysis)
		userGroup.GET("/:id/analyses", r.analysisHandler.ListAnalyses)
	}
}
