package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusScheduled = "scheduled"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ActiveStatuses are the statuses that occupy a stylist's slot. Completed and
// cancelled appointments never block a new booking.
func ActiveStatuses() []string {
	return []string{StatusScheduled, StatusConfirmed}
}

// Appointment occupies the half-open slot [StartTime, EndTime) for one
// stylist. DurationMinutes is a snapshot of the service duration at booking
// time.
type Appointment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`
	ServiceID  uuid.UUID `gorm:"type:uuid;index;not null" json:"service_id"`
	StylistID  uuid.UUID `gorm:"type:uuid;index;not null" json:"stylist_id"`

	StartTime       time.Time `gorm:"not null" json:"start_time"`
	EndTime         time.Time `gorm:"not null" json:"end_time"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	Notes           string    `json:"notes,omitempty"`
	Status          string    `gorm:"type:varchar(20);not null;default:'scheduled'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
