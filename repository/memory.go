package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"salon-booking-api/models"
	"salon-booking-api/utils"
)

// NewMemoryStore returns a Store backed by process memory. It serves the unit
// tests and the DB-less development mode; unlike the GORM store it enforces
// no uniqueness constraints, matching the document store's best-effort model.
func NewMemoryStore() *Store {
	data := &memoryData{
		services:     make(map[uuid.UUID]models.Service),
		stylists:     make(map[uuid.UUID]models.Stylist),
		customers:    make(map[uuid.UUID]models.Customer),
		appointments: make(map[uuid.UUID]models.Appointment),
		users:        make(map[uuid.UUID]models.User),
	}
	return &Store{
		Services:     &memServices{data},
		Stylists:     &memStylists{data},
		Customers:    &memCustomers{data},
		Appointments: &memAppointments{data},
		Users:        &memUsers{data},
	}
}

type memoryData struct {
	mu           sync.RWMutex
	services     map[uuid.UUID]models.Service
	stylists     map[uuid.UUID]models.Stylist
	customers    map[uuid.UUID]models.Customer
	appointments map[uuid.UUID]models.Appointment
	users        map[uuid.UUID]models.User
}

type memServices struct {
	data *memoryData
}

func (r *memServices) Create(ctx context.Context, service *models.Service) error {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}
	if service.CreatedAt.IsZero() {
		service.CreatedAt = time.Now().UTC()
	}
	r.data.services[service.ID] = *service
	return nil
}

func (r *memServices) FindByID(ctx context.Context, id string) (*models.Service, error) {
	serviceID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()
	service, ok := r.data.services[serviceID]
	if !ok {
		return nil, ErrNotFound
	}
	return &service, nil
}

func (r *memServices) Update(ctx context.Context, service *models.Service) error {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	if _, ok := r.data.services[service.ID]; !ok {
		return ErrNotFound
	}
	r.data.services[service.ID] = *service
	return nil
}

func (r *memServices) List(ctx context.Context) ([]models.Service, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()
	services := make([]models.Service, 0, len(r.data.services))
	for _, service := range r.data.services {
		services = append(services, service)
	}
	sort.Slice(services, func(i, j int) bool { return services[i].Name < services[j].Name })
	return services, nil
}

func (r *memServices) Count(ctx context.Context) (int64, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()
	return int64(len(r.data.services)), nil
}

type memStylists struct {
	data *memoryData
}

func (r *memStylists) Create(ctx context.Context, stylist *models.Stylist) error {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	if stylist.ID == uuid.Nil {
		stylist.ID = uuid.New()
	}
	if stylist.Specialties == nil {
		stylist.Specialties = models.StringList{}
	}
	if stylist.CreatedAt.IsZero() {
		stylist.CreatedAt = time.Now().UTC()
	}
	r.data.stylists[stylist.ID] = *stylist
	return nil
}

func (r *memStylists) FindByID(ctx context.Context, id string) (*models.Stylist, error) {
	stylistID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()
	stylist, ok := r.data.stylists[stylistID]
	if !ok {
		return nil, ErrNotFound
	}
	return &stylist, nil
}

func (r *memStylists) List(ctx context.Context) ([]models.Stylist, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()
	stylists := make([]models.Stylist, 0, len(r.data.stylists))
	for _, stylist := range r.data.stylists {
		stylists = append(stylists, stylist)
	}
	sort.Slice(stylists, func(i, j int) bool { return stylists[i].Name < stylists[j].Name })
	return stylists, nil
}

func (r *memStylists) Count(ctx context.Context) (int64, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()
	return int64(len(r.data.stylists)), nil
}

type memCustomers struct {
	data *memoryData
}

func (r *memCustomers) Create(ctx context.Context, customer *models.Customer) error {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = time.Now().UTC()
	}
	r.data.customers[customer.ID] = *customer
	return nil
}

func (r *memCustomers) FindByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()
	for _, customer := range r.data.customers {
		if customer.Phone == phone {
			found := customer
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memCustomers) List(ctx context.Context) ([]models.Customer, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()
	customers := make([]models.Customer, 0, len(r.data.customers))
	for _, customer := range r.data.customers {
		customers = append(customers, customer)
	}
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].CreatedAt.Before(customers[j].CreatedAt)
	})
	return customers, nil
}

func (r *memCustomers) Count(ctx context.Context) (int64, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()
	return int64(len(r.data.customers)), nil
}

type memAppointments struct {
	data *memoryData
}

func (r *memAppointments) Create(ctx context.Context, appointment *models.Appointment) error {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	if appointment.CreatedAt.IsZero() {
		appointment.CreatedAt = time.Now().UTC()
	}
	r.data.appointments[appointment.ID] = *appointment
	return nil
}

func (r *memAppointments) FindOverlappingActive(ctx context.Context, stylistID uuid.UUID, start, end time.Time) ([]models.Appointment, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()
	var overlapping []models.Appointment
	for _, appointment := range r.data.appointments {
		if appointment.StylistID != stylistID {
			continue
		}
		if !isActive(appointment.Status) {
			continue
		}
		// Half-open overlap: touching endpoints do not conflict.
		if appointment.StartTime.Before(end) && appointment.EndTime.After(start) {
			overlapping = append(overlapping, appointment)
		}
	}
	return overlapping, nil
}

func (r *memAppointments) ListOrdered(ctx context.Context, limit int) ([]models.Appointment, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()
	appointments := make([]models.Appointment, 0, len(r.data.appointments))
	for _, appointment := range r.data.appointments {
		appointments = append(appointments, appointment)
	}
	sort.Slice(appointments, func(i, j int) bool {
		return appointments[i].StartTime.Before(appointments[j].StartTime)
	})
	if limit > 0 && len(appointments) > limit {
		appointments = appointments[:limit]
	}
	return appointments, nil
}

func (r *memAppointments) MarkCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	var changed int64
	for id, appointment := range r.data.appointments {
		if !isActive(appointment.Status) {
			continue
		}
		if appointment.EndTime.After(cutoff) {
			continue
		}
		appointment.Status = models.StatusCompleted
		r.data.appointments[id] = appointment
		changed++
	}
	return changed, nil
}

func isActive(status string) bool {
	for _, active := range models.ActiveStatuses() {
		if status == active {
			return true
		}
	}
	return false
}

type memUsers struct {
	data *memoryData
}

func (r *memUsers) Create(ctx context.Context, user *models.User) error {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	// The GORM store hashes in the model's BeforeCreate hook; mirror it here.
	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hashed
	r.data.users[user.ID] = *user
	return nil
}

func (r *memUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()
	for _, user := range r.data.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	userID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()
	user, ok := r.data.users[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}
