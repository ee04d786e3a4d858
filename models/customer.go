package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is created lazily the first time a phone number books. Phone is
// the natural dedup key; the stored name/email keep their first-seen values.
type Customer struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name  string    `gorm:"not null" json:"name"`
	Phone string    `gorm:"not null;uniqueIndex" json:"phone"`
	Email string    `json:"email,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
