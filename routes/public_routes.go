package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Pure Aura Clinic Backend API",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"health":   "/api/health",
				"bookings": "/api/bookings",
				"reviews":  "/api/reviews",
				"contact":  "/api/contact",
			},
		})
	})

	api := app.Group("/api")
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "OK",
			"message":   "Pure Aura Clinic Backend API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
}
