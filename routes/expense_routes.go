package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/heritagegrand/banquet_manager/handlers"
	"github.com/heritagegrand/banquet_manager/middleware"
)

func ExpenseRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	expense := api.Group("/expenses", middleware.Protected())
	expense.Get("", handlers.ListExpenses)
	expense.Post("", handlers.AddExpense)
	expense.Post("/revert", handlers.RevertExpense)
}
