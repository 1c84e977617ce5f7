package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"
)

type Booking struct {
	ID              string    `gorm:"size:36;primaryKey" json:"id"`
	CustomerName    string    `gorm:"size:120;not null" json:"customerName"`
	CustomerEmail   string    `gorm:"size:120;not null" json:"customerEmail"`
	CustomerPhone   string    `gorm:"size:40;not null" json:"customerPhone"`
	ServiceName     string    `gorm:"size:120;not null" json:"serviceName"`
	AppointmentDate time.Time `gorm:"not null" json:"appointmentDate"`
	AppointmentTime string    `gorm:"size:40;not null" json:"appointmentTime"`
	Message         string    `gorm:"type:text" json:"message"`
	Status          string    `gorm:"size:20;not null;default:'PENDING'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
