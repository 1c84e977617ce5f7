package handlers_test

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pureaura/clinic-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBookingBody() map[string]any {
	return map[string]any{
		"name":    "Lisa de Wit",
		"email":   "lisa@example.com",
		"phone":   "+31 6 1111 2222",
		"service": "HydraFacial",
		"date":    "2026-09-15",
		"time":    "10:00 - 11:00",
		"message": "First visit",
	}
}

func TestCreateBookingStatusAlwaysPending(t *testing.T) {
	app, db := newTestApp(t, &fakeMailer{})

	body := validBookingBody()
	body["status"] = "CONFIRMED" // ignored, status is server-assigned

	resp := doJSON(t, app, fiber.MethodPost, "/api/bookings", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	out := decodeBody(t, resp)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "Booking created successfully", out["message"])

	booking, ok := out["booking"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, models.BookingStatusPending, booking["status"])
	assert.NotEmpty(t, booking["id"])
	assert.Equal(t, "Lisa de Wit", booking["customerName"])
	assert.Equal(t, "HydraFacial", booking["serviceName"])
	assert.Equal(t, "10:00 - 11:00", booking["appointmentTime"])

	var stored models.Booking
	require.NoError(t, db.First(&stored, "id = ?", booking["id"]).Error)
	assert.Equal(t, models.BookingStatusPending, stored.Status)
	assert.Equal(t, "lisa@example.com", stored.CustomerEmail)
}

func TestCreateBookingMissingTime(t *testing.T) {
	app, db := newTestApp(t, &fakeMailer{})

	body := validBookingBody()
	delete(body, "time")

	resp := doJSON(t, app, fiber.MethodPost, "/api/bookings", body)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	out := decodeBody(t, resp)
	assert.Equal(t, "Missing required fields", out["error"])
	assert.Contains(t, out["required"], "time")

	// Validation short-circuits before any write.
	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateBookingMissingEverythingListsAllFields(t *testing.T) {
	app, _ := newTestApp(t, &fakeMailer{})

	resp := doJSON(t, app, fiber.MethodPost, "/api/bookings", map[string]any{})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	out := decodeBody(t, resp)
	for _, field := range []string{"name", "email", "phone", "service", "date", "time"} {
		assert.Contains(t, out["required"], field)
	}
}

func TestCreateBookingInvalidDate(t *testing.T) {
	app, _ := newTestApp(t, &fakeMailer{})

	body := validBookingBody()
	body["date"] = "next tuesday"

	resp := doJSON(t, app, fiber.MethodPost, "/api/bookings", body)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid appointment date", decodeBody(t, resp)["error"])
}

func TestListBookingsNewestFirst(t *testing.T) {
	app, db := newTestApp(t, &fakeMailer{})

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	for i, name := range []string{"oldest", "middle", "newest"} {
		b := models.Booking{
			CustomerName:    name,
			CustomerEmail:   name + "@example.com",
			CustomerPhone:   "+31 6 0000",
			ServiceName:     "Acne Treatment",
			AppointmentDate: base,
			AppointmentTime: "09:00",
			Status:          models.BookingStatusPending,
			CreatedAt:       base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, db.Create(&b).Error)
	}

	resp := doJSON(t, app, fiber.MethodGet, "/api/bookings", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decodeBody(t, resp)
	bookings, ok := out["bookings"].([]any)
	require.True(t, ok)
	require.Len(t, bookings, 3)

	names := make([]string, 0, len(bookings))
	for _, raw := range bookings {
		names = append(names, raw.(map[string]any)["customerName"].(string))
	}
	assert.Equal(t, []string{"newest", "middle", "oldest"}, names)
}
