package services

import "errors"

// ErrSlotUnavailable means the stylist already has an active appointment
// overlapping the requested slot.
var ErrSlotUnavailable = errors.New("time slot not available for this stylist")

// NotFoundError reports which referenced entity was missing.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}
