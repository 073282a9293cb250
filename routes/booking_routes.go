package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/heritagegrand/banquet_manager/handlers"
	"github.com/heritagegrand/banquet_manager/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected())
	booking.Get("", handlers.ListBookings)
	booking.Post("", handlers.CreateBooking)
	booking.Get("/export", handlers.ExportBookings)
	booking.Get("/:bookingId", handlers.GetBooking)
	booking.Put("/:bookingId", handlers.UpdateBooking)
	booking.Post("/:bookingId/cancel", handlers.CancelBooking)

	booking.Post("/:bookingId/payments", handlers.AddPayment)
	booking.Post("/:bookingId/payments/revert", handlers.RevertPayment)
}
