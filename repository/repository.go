package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"salon-booking-api/models"
)

var (
	// ErrMalformedID means the supplied identifier is not a well-formed ID
	// for this store. Distinct from ErrNotFound: no lookup was attempted.
	ErrMalformedID = errors.New("malformed id")
	ErrNotFound    = errors.New("record not found")
)

type ServiceRepository interface {
	Create(ctx context.Context, service *models.Service) error
	FindByID(ctx context.Context, id string) (*models.Service, error)
	Update(ctx context.Context, service *models.Service) error
	List(ctx context.Context) ([]models.Service, error)
	Count(ctx context.Context) (int64, error)
}

type StylistRepository interface {
	Create(ctx context.Context, stylist *models.Stylist) error
	FindByID(ctx context.Context, id string) (*models.Stylist, error)
	List(ctx context.Context) ([]models.Stylist, error)
	Count(ctx context.Context) (int64, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	FindByPhone(ctx context.Context, phone string) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
	Count(ctx context.Context) (int64, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	// FindOverlappingActive returns the stylist's active appointments whose
	// slot overlaps the half-open interval [start, end).
	FindOverlappingActive(ctx context.Context, stylistID uuid.UUID, start, end time.Time) ([]models.Appointment, error)
	// ListOrdered returns appointments ordered by start_time ascending,
	// capped at limit when limit > 0.
	ListOrdered(ctx context.Context, limit int) ([]models.Appointment, error)
	// MarkCompletedBefore flips active appointments whose end_time is at or
	// before cutoff to completed and reports how many changed.
	MarkCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// Store bundles the per-entity repositories so the handle can be passed
// around as one dependency.
type Store struct {
	Services     ServiceRepository
	Stylists     StylistRepository
	Customers    CustomerRepository
	Appointments AppointmentRepository
	Users        UserRepository
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, ErrMalformedID
	}
	return parsed, nil
}
