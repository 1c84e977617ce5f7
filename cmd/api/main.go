package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"

	config "github.com/pureaura/clinic-backend/configs"
	"github.com/pureaura/clinic-backend/database"
	"github.com/pureaura/clinic-backend/handlers"
	"github.com/pureaura/clinic-backend/jobs"
	"github.com/pureaura/clinic-backend/notifications"
	"github.com/pureaura/clinic-backend/routes"
	"github.com/pureaura/clinic-backend/store"
)

func main() {
	db := database.Connect(config.Config("DATABASE_URL"))
	database.Migrate(db)
	if err := database.Seed(db); err != nil {
		log.Fatalf("🔥 Failed to seed database: %v", err)
	}

	ctx := context.Background()
	settings := store.NewSettingStore(db)
	clinic := notifications.ClinicInfo{
		Name:    settings.GetOr(ctx, "clinic_name", "Pure Aura Clinic"),
		Address: settings.GetOr(ctx, "clinic_address", "Schoutstraat 29, 1315EV Almere Stad, Netherlands"),
		Phone:   settings.GetOr(ctx, "clinic_phone", "+31 6 84664822"),
		Hours:   settings.GetOr(ctx, "opening_hours", "Mon-Fri: 9:00-18:00, Sat: 10:00-16:00, Sun: Closed"),
	}
	operatorEmail := config.ConfigOr("CLINIC_EMAIL", settings.GetOr(ctx, "clinic_email", "info@pureaura.clinic"))

	mailer := notifications.NewMailerFromEnv()
	dispatcher := notifications.NewDispatcher(mailer, operatorEmail, clinic)

	bookings := store.NewBookingStore(db)
	reviews := store.NewReviewStore(db)

	bookingHandler := handlers.NewBookingHandler(bookings, dispatcher)
	reviewHandler := handlers.NewReviewHandler(reviews)
	contactHandler := handlers.NewContactHandler(dispatcher)

	digest := &jobs.PendingDigestJob{Bookings: bookings, Mail: dispatcher}
	c := cron.New()
	c.AddFunc("0 8 * * *", digest.Run)
	go c.Start()
	log.Println("✅ Cron job for pending booking digest scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "Pure Aura Clinic Backend",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			message := "Internal server error"
			if config.Config("APP_ENV") != "production" {
				message = err.Error()
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   "Something went wrong!",
				"message": message,
			})
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 15 * time.Minute,
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.ConfigOr("ALLOWED_ORIGINS",
			"https://pureaura.clinic, https://www.pureaura.clinic, http://localhost:3000"),
		AllowCredentials: true,
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowHeaders:     "Content-Type, Authorization",
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Europe/Amsterdam",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.PublicRoutes(app)
	routes.BookingRoutes(app, bookingHandler)
	routes.ReviewRoutes(app, reviewHandler)
	routes.ContactRoutes(app, contactHandler)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Route not found",
			"message": fmt.Sprintf("%s %s not found", c.Method(), c.OriginalURL()),
		})
	})

	port := config.ConfigOr("PORT", "5000")
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
