package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pureaura/clinic-backend/handlers"
)

func BookingRoutes(app *fiber.App, h *handlers.BookingHandler) {
	api := app.Group("/api")

	booking := api.Group("/bookings")
	booking.Post("", h.Create)
	booking.Get("", h.List)
}
