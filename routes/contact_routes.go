package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pureaura/clinic-backend/handlers"
)

func ContactRoutes(app *fiber.App, h *handlers.ContactHandler) {
	api := app.Group("/api")

	contact := api.Group("/contact")
	contact.Post("", h.Contact)
	contact.Post("/newsletter", h.Newsletter)
}
