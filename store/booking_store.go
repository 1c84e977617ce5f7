package store

import (
	"context"
	"time"

	"github.com/pureaura/clinic-backend/models"
	"gorm.io/gorm"
)

type BookingStore struct {
	db *gorm.DB
}

func NewBookingStore(db *gorm.DB) *BookingStore {
	return &BookingStore{db: db}
}

func (s *BookingStore) Create(ctx context.Context, b *models.Booking) error {
	return s.db.WithContext(ctx).Create(b).Error
}

func (s *BookingStore) ListNewestFirst(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Order("created_at desc").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListPendingSince returns bookings still awaiting confirmation that were
// created after the given time, oldest first.
func (s *BookingStore) ListPendingSince(ctx context.Context, since time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Where("status = ? AND created_at >= ?", models.BookingStatusPending, since).
		Order("created_at asc").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
