package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Stylist struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Specialties StringList `gorm:"type:jsonb;default:'[]'" json:"specialties"`
	Bio         string     `json:"bio,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (s *Stylist) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Specialties == nil {
		s.Specialties = StringList{}
	}
	return
}

// StringList stores an ordered list of labels as a JSONB column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, l)
}
