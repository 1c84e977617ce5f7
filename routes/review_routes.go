package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pureaura/clinic-backend/handlers"
)

func ReviewRoutes(app *fiber.App, h *handlers.ReviewHandler) {
	api := app.Group("/api")

	review := api.Group("/reviews")
	review.Get("", h.List)
	review.Get("/featured", h.Featured)
	review.Get("/stats", h.Stats)
	review.Post("", h.Create)
}
