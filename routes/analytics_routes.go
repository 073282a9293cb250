package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/heritagegrand/banquet_manager/handlers"
	"github.com/heritagegrand/banquet_manager/middleware"
)

func AnalyticsRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/dashboard", middleware.Protected(), handlers.GetDashboard)

	analytics := api.Group("/analytics", middleware.Protected())
	analytics.Get("", handlers.GetAnalytics)
	analytics.Get("/export", handlers.ExportAnalytics)
}
