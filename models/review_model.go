package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is gated behind manual approval before it shows up anywhere.
// Email is kept for moderation contact only and is never serialized.
type Review struct {
	ID         string  `gorm:"size:36;primaryKey" json:"id"`
	Name       string  `gorm:"size:120;not null" json:"name"`
	Email      string  `gorm:"size:120;not null" json:"-"`
	Rating     int     `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Title      string  `gorm:"size:200;not null" json:"title"`
	Content    string  `gorm:"type:text;not null" json:"content"`
	ServiceID  *string `gorm:"size:64;index" json:"serviceId,omitempty"`
	IsApproved bool    `gorm:"not null;default:false" json:"isApproved"`
	IsFeature  bool    `gorm:"not null;default:false" json:"isFeature"`
	Language   string  `gorm:"size:8;not null;default:'en'" json:"language"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
