package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pureaura/clinic-backend/models"
	"github.com/pureaura/clinic-backend/notifications"
	"github.com/pureaura/clinic-backend/store"
)

type BookingHandler struct {
	Bookings *store.BookingStore
	Mail     *notifications.Dispatcher
}

func NewBookingHandler(bookings *store.BookingStore, mail *notifications.Dispatcher) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Mail: mail}
}

type CreateBookingRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Service string `json:"service" validate:"required"`
	Date    string `json:"date" validate:"required"`
	Time    string `json:"time" validate:"required"`
	Message string `json:"message"`
}

func parseAppointmentDate(s string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}

func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return missingFieldsResponse(c, missingFields(err))
	}

	date, err := parseAppointmentDate(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid appointment date"})
	}

	// Status is server-assigned; a booking always starts out PENDING.
	booking := models.Booking{
		CustomerName:    req.Name,
		CustomerEmail:   req.Email,
		CustomerPhone:   req.Phone,
		ServiceName:     req.Service,
		AppointmentDate: date,
		AppointmentTime: req.Time,
		Message:         req.Message,
		Status:          models.BookingStatusPending,
	}
	if err := h.Bookings.Create(c.Context(), &booking); err != nil {
		return storageError(c, "Failed to create booking", err)
	}

	go h.Mail.BookingCreated(&booking)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Booking created successfully",
		"booking": fiber.Map{
			"id":              booking.ID,
			"customerName":    booking.CustomerName,
			"serviceName":     booking.ServiceName,
			"appointmentDate": booking.AppointmentDate,
			"appointmentTime": booking.AppointmentTime,
			"status":          booking.Status,
		},
	})
}

// List returns all bookings newest first. Admin-facing; authentication is
// still future work, matching the deployed behavior.
func (h *BookingHandler) List(c *fiber.Ctx) error {
	bookings, err := h.Bookings.ListNewestFirst(c.Context())
	if err != nil {
		return storageError(c, "Failed to fetch bookings", err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"bookings": bookings,
	})
}
