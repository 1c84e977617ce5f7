package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pureaura/clinic-backend/notifications"
)

// ContactHandler has no persistence: contact and newsletter submissions are
// dispatched (or logged in degraded mode), not stored.
type ContactHandler struct {
	Mail *notifications.Dispatcher
}

func NewContactHandler(mail *notifications.Dispatcher) *ContactHandler {
	return &ContactHandler{Mail: mail}
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

func (h *ContactHandler) Contact(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		if fields := missingFields(err); len(fields) > 0 {
			return missingFieldsResponse(c, fields)
		}
		if failedTag(err, "email") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid email format"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	go h.Mail.ContactMessage(notifications.ContactPayload{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Message sent successfully! We will contact you within 24 hours.",
	})
}

type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

func (h *ContactHandler) Newsletter(c *fiber.Ctx) error {
	var req NewsletterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		if fields := missingFields(err); len(fields) > 0 {
			return missingFieldsResponse(c, fields)
		}
		if failedTag(err, "email") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid email format"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	go h.Mail.NewsletterSignup(req.Email, req.Name)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Successfully subscribed to newsletter!",
	})
}
