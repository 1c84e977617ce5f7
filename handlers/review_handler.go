package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pureaura/clinic-backend/models"
	"github.com/pureaura/clinic-backend/store"
)

type ReviewHandler struct {
	Reviews *store.ReviewStore
}

func NewReviewHandler(reviews *store.ReviewStore) *ReviewHandler {
	return &ReviewHandler{Reviews: reviews}
}

type CreateReviewRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Service string `json:"service"`
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		if fields := missingFields(err); len(fields) > 0 {
			return missingFieldsResponse(c, fields)
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Rating must be between 1 and 5"})
	}

	// Approval is never taken from the request; publishing requires a
	// manual moderation step.
	review := models.Review{
		Name:       req.Name,
		Email:      req.Email,
		Rating:     req.Rating,
		Title:      req.Title,
		Content:    req.Content,
		IsApproved: false,
		Language:   "en",
	}
	if req.Service != "" {
		review.ServiceID = &req.Service
	}
	if err := h.Reviews.Create(c.Context(), &review); err != nil {
		return storageError(c, "Failed to submit review", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Review submitted successfully. It will be published after approval.",
		"review": fiber.Map{
			"id":      review.ID,
			"name":    review.Name,
			"rating":  review.Rating,
			"title":   review.Title,
			"content": review.Content,
		},
	})
}

func (h *ReviewHandler) List(c *fiber.Ctx) error {
	reviews, err := h.Reviews.ListApproved(c.Context())
	if err != nil {
		return storageError(c, "Failed to fetch reviews", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"reviews": reviews,
	})
}

func (h *ReviewHandler) Featured(c *fiber.Ctx) error {
	reviews, err := h.Reviews.ListFeatured(c.Context())
	if err != nil {
		return storageError(c, "Failed to fetch featured reviews", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"reviews": reviews,
	})
}

func (h *ReviewHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.Reviews.Stats(c.Context())
	if err != nil {
		return storageError(c, "Failed to fetch review statistics", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"stats":   stats,
	})
}
