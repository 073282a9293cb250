package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/heritagegrand/banquet_manager/handlers"
	"github.com/heritagegrand/banquet_manager/middleware"
)

func AccountsRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	accounts := api.Group("/accounts", middleware.Protected())
	accounts.Get("/daybook", handlers.GetDaybook)
	accounts.Get("/cashbook", handlers.GetCashbook)
	accounts.Get("/bankbook", handlers.GetBankbook)
	accounts.Get("/ledger", handlers.GetSubLedger)
	accounts.Get("/ledger/export", handlers.ExportSubLedger)
	accounts.Get("/:book/export", handlers.ExportLedger)
}
