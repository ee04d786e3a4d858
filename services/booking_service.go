package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"salon-booking-api/models"
	"salon-booking-api/repository"
)

// BookingRequest carries the fields of one booking attempt across the HTTP
// boundary. Identifiers stay opaque strings; the store decides whether they
// are well-formed.
type BookingRequest struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	ServiceID     string
	StylistID     string
	StartTime     time.Time
	Notes         string
}

type BookingService struct {
	store  *repository.Store
	logger zerolog.Logger
}

func NewBookingService(store *repository.Store, logger zerolog.Logger) *BookingService {
	return &BookingService{store: store, logger: logger}
}

// BookAppointment runs the booking gates in order, each fail-fast:
// resolve service, resolve stylist, resolve-or-create customer, conflict
// check, insert. Steps before the insert perform no appointment writes, so a
// failed attempt never leaves a partial appointment behind. The customer
// created in the resolve step is intentionally not rolled back when a later
// gate fails (first contact is kept either way).
func (s *BookingService) BookAppointment(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	service, err := s.store.Services.FindByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Entity: "service"}
		}
		return nil, err
	}

	stylist, err := s.store.Stylists.FindByID(ctx, req.StylistID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Entity: "stylist"}
		}
		return nil, err
	}

	customer, err := s.resolveCustomer(ctx, req.CustomerName, req.CustomerPhone, req.CustomerEmail)
	if err != nil {
		return nil, err
	}

	// Duration is snapshotted from the service at booking time.
	duration := service.DurationMinutes
	start := req.StartTime
	end := start.Add(time.Duration(duration) * time.Minute)

	conflict, err := s.hasConflict(ctx, stylist.ID, start, end)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrSlotUnavailable
	}

	appointment := &models.Appointment{
		CustomerID:      customer.ID,
		ServiceID:       service.ID,
		StylistID:       stylist.ID,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: duration,
		Notes:           req.Notes,
		Status:          models.StatusScheduled,
	}
	if err := s.store.Appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("appointment_id", appointment.ID.String()).
		Str("stylist_id", stylist.ID.String()).
		Time("start_time", start).
		Time("end_time", end).
		Msg("appointment booked")

	return appointment, nil
}

// resolveCustomer looks the customer up by phone and creates one on first
// contact. First write wins: an existing record is returned unchanged even
// when the request carries a different name or email.
func (s *BookingService) resolveCustomer(ctx context.Context, name, phone, email string) (*models.Customer, error) {
	existing, err := s.store.Customers.FindByPhone(ctx, phone)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	customer := &models.Customer{
		Name:  name,
		Phone: phone,
		Email: email,
	}
	if err := s.store.Customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *BookingService) hasConflict(ctx context.Context, stylistID uuid.UUID, start, end time.Time) (bool, error) {
	overlapping, err := s.store.Appointments.FindOverlappingActive(ctx, stylistID, start, end)
	if err != nil {
		return false, err
	}
	return len(overlapping) > 0, nil
}
