package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"salon-booking-api/models"
)

// NewGormStore wires the GORM-backed repositories around one database handle.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Services:     &gormServices{db: db},
		Stylists:     &gormStylists{db: db},
		Customers:    &gormCustomers{db: db},
		Appointments: &gormAppointments{db: db},
		Users:        &gormUsers{db: db},
	}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

type gormServices struct {
	db *gorm.DB
}

func (r *gormServices) Create(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *gormServices) FindByID(ctx context.Context, id string) (*models.Service, error) {
	serviceID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, "id = ?", serviceID).Error; err != nil {
		return nil, translate(err)
	}
	return &service, nil
}

func (r *gormServices) Update(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Save(service).Error
}

func (r *gormServices) List(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).Order("name asc").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *gormServices) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Service{}).Count(&count).Error
	return count, err
}

type gormStylists struct {
	db *gorm.DB
}

func (r *gormStylists) Create(ctx context.Context, stylist *models.Stylist) error {
	return r.db.WithContext(ctx).Create(stylist).Error
}

func (r *gormStylists) FindByID(ctx context.Context, id string) (*models.Stylist, error) {
	stylistID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var stylist models.Stylist
	if err := r.db.WithContext(ctx).First(&stylist, "id = ?", stylistID).Error; err != nil {
		return nil, translate(err)
	}
	return &stylist, nil
}

func (r *gormStylists) List(ctx context.Context) ([]models.Stylist, error) {
	var stylists []models.Stylist
	if err := r.db.WithContext(ctx).Order("name asc").Find(&stylists).Error; err != nil {
		return nil, err
	}
	return stylists, nil
}

func (r *gormStylists) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Stylist{}).Count(&count).Error
	return count, err
}

type gormCustomers struct {
	db *gorm.DB
}

func (r *gormCustomers) Create(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *gormCustomers) FindByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, "phone = ?", phone).Error; err != nil {
		return nil, translate(err)
	}
	return &customer, nil
}

func (r *gormCustomers) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *gormCustomers) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Customer{}).Count(&count).Error
	return count, err
}

type gormAppointments struct {
	db *gorm.DB
}

func (r *gormAppointments) Create(ctx context.Context, appointment *models.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *gormAppointments) FindOverlappingActive(ctx context.Context, stylistID uuid.UUID, start, end time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Where("stylist_id = ? AND start_time < ? AND end_time > ? AND status IN ?",
			stylistID, end, start, models.ActiveStatuses()).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *gormAppointments) ListOrdered(ctx context.Context, limit int) ([]models.Appointment, error) {
	query := r.db.WithContext(ctx).Order("start_time asc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *gormAppointments) MarkCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("end_time <= ? AND status IN ?", cutoff, models.ActiveStatuses()).
		Update("status", models.StatusCompleted)
	return result.RowsAffected, result.Error
}

type gormUsers struct {
	db *gorm.DB
}

func (r *gormUsers) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *gormUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *gormUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	userID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
