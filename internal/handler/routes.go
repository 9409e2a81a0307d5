package handler

import (
	"github.com/finwise/finwise-backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, chatLimiter *middleware.RateLimiter, uploadHandler *UploadHandler, insightHandler *InsightHandler, planHandler *PlanHandler, chatHandler *ChatHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Transaction ingestion
	transactions := api.Group("/transactions")
	transactions.POST("/upload", uploadHandler.Upload)

	// Insight routes
	insights := api.Group("/insights")
	insights.POST("/analyze", insightHandler.Analyze)
	insights.POST("/monthly", insightHandler.Monthly)
	insights.POST("/forecast", insightHandler.Forecast)
	insights.POST("/alerts", insightHandler.Alerts)

	// Planning routes
	plans := api.Group("/plans")
	plans.POST("/budget", planHandler.SuggestBudget)
	plans.POST("/goal", planHandler.GenerateGoalPlan)

	// Advisor chat (rate limited: every turn hits the metered AI service)
	chat := api.Group("/chat")
	chat.Use(middleware.RateLimitMiddleware(chatLimiter))
	chat.POST("", chatHandler.Chat)

	// Session memory
	sessions := api.Group("/sessions")
	sessions.GET("/:id/memory", chatHandler.GetMemory)
	sessions.POST("/:id/notes", chatHandler.AddNote)
	sessions.DELETE("/:id/memory", chatHandler.ClearMemory)
}
