package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/heritagegrand/banquet_manager/handlers"
	"github.com/heritagegrand/banquet_manager/middleware"
)

// AdminRoutes covers the control center: expense categories, vendors,
// packages and the service catalog.
func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	categories := api.Group("/expense-categories", middleware.Protected())
	categories.Get("", handlers.ListExpenseCategories)
	categories.Post("", middleware.AdminRequired(), handlers.CreateExpenseCategory)
	categories.Put("/:categoryId", middleware.AdminRequired(), handlers.UpdateExpenseCategory)
	categories.Delete("/:categoryId", middleware.AdminRequired(), handlers.DeleteExpenseCategory)

	vendors := api.Group("/vendors", middleware.Protected())
	vendors.Get("", handlers.ListVendors)
	vendors.Post("", middleware.AdminRequired(), handlers.CreateVendor)
	vendors.Put("/:vendorId", middleware.AdminRequired(), handlers.UpdateVendor)
	vendors.Delete("/:vendorId", middleware.AdminRequired(), handlers.DeleteVendor)

	packages := api.Group("/packages", middleware.Protected())
	packages.Get("", handlers.ListPackages)
	packages.Post("", middleware.AdminRequired(), handlers.CreatePackage)
	packages.Put("/:packageId", middleware.AdminRequired(), handlers.UpdatePackage)
	packages.Delete("/:packageId", middleware.AdminRequired(), handlers.DeletePackage)

	servicesGroup := api.Group("/service-config", middleware.Protected())
	servicesGroup.Get("", handlers.GetServiceConfig)
	servicesGroup.Post("/services", middleware.AdminRequired(), handlers.CreateService)
	servicesGroup.Put("/services/:serviceId", middleware.AdminRequired(), handlers.UpdateService)
	servicesGroup.Delete("/services/:serviceId", middleware.AdminRequired(), handlers.DeleteService)
}
