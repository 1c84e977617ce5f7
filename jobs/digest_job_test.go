package jobs_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pureaura/clinic-backend/jobs"
	"github.com/pureaura/clinic-backend/models"
	"github.com/pureaura/clinic-backend/notifications"
	"github.com/pureaura/clinic-backend/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingMailer struct {
	mu       sync.Mutex
	subjects []string
	bodies   []string
}

func (m *recordingMailer) Send(toName, toEmail, subject, htmlContent string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subjects = append(m.subjects, subject)
	m.bodies = append(m.bodies, htmlContent)
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Booking{}))
	return db
}

func seedBooking(t *testing.T, db *gorm.DB, name, status string, createdAt time.Time) {
	t.Helper()
	b := models.Booking{
		CustomerName:    name,
		CustomerEmail:   "customer@example.com",
		CustomerPhone:   "+31 6 0000",
		ServiceName:     "Chemical Peel",
		AppointmentDate: createdAt.AddDate(0, 0, 7),
		AppointmentTime: "14:00",
		Status:          status,
		CreatedAt:       createdAt,
	}
	require.NoError(t, db.Create(&b).Error)
}

func TestDigestMailsPendingBookingsFromLastDay(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	seedBooking(t, db, "recent pending", models.BookingStatusPending, now.Add(-2*time.Hour))
	seedBooking(t, db, "confirmed", models.BookingStatusConfirmed, now.Add(-3*time.Hour))
	seedBooking(t, db, "stale pending", models.BookingStatusPending, now.Add(-48*time.Hour))

	mailer := &recordingMailer{}
	job := &jobs.PendingDigestJob{
		Bookings: store.NewBookingStore(db),
		Mail:     notifications.NewDispatcher(mailer, "clinic@test.local", notifications.ClinicInfo{Name: "Test Clinic"}),
	}
	job.Run()

	require.Len(t, mailer.subjects, 1)
	assert.Contains(t, mailer.subjects[0], "1 Pending")
	assert.Contains(t, mailer.bodies[0], "recent pending")
	assert.NotContains(t, mailer.bodies[0], "stale pending")
	assert.NotContains(t, mailer.bodies[0], "confirmed")
}

func TestDigestSkipsMailWhenNothingPending(t *testing.T) {
	db := newTestDB(t)
	seedBooking(t, db, "confirmed", models.BookingStatusConfirmed, time.Now().Add(-time.Hour))

	mailer := &recordingMailer{}
	job := &jobs.PendingDigestJob{
		Bookings: store.NewBookingStore(db),
		Mail:     notifications.NewDispatcher(mailer, "clinic@test.local", notifications.ClinicInfo{Name: "Test Clinic"}),
	}
	job.Run()

	assert.Empty(t, mailer.subjects)
}
