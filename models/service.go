package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is a bookable salon service. Duration and price are copied onto
// appointments at booking time, so edits here never touch existing bookings.
type Service struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	Description     string    `json:"description,omitempty"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	Price           float64   `gorm:"type:decimal(10,2);not null" json:"price"`

	CreatedAt time.Time `json:"created_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
