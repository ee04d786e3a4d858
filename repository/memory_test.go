package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-booking-api/models"
)

func seedAppointment(t *testing.T, store *Store, stylistID uuid.UUID, start, end time.Time, status string) *models.Appointment {
	t.Helper()
	appointment := &models.Appointment{
		CustomerID:      uuid.New(),
		ServiceID:       uuid.New(),
		StylistID:       stylistID,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: int(end.Sub(start) / time.Minute),
		Status:          status,
	}
	require.NoError(t, store.Appointments.Create(context.Background(), appointment))
	return appointment
}

func TestFindOverlappingActive_Predicate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	stylistID := uuid.New()

	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	// Existing slot 09:00-09:45.
	seedAppointment(t, store, stylistID, at(9, 0), at(9, 45), models.StatusScheduled)

	cases := []struct {
		name       string
		start, end time.Time
		overlaps   bool
	}{
		{"entirely before", at(8, 0), at(9, 0), false},
		{"touching previous end", at(9, 45), at(10, 30), false},
		{"entirely after", at(11, 0), at(12, 0), false},
		{"straddles start", at(8, 30), at(9, 15), true},
		{"straddles end", at(9, 30), at(10, 15), true},
		{"identical interval", at(9, 0), at(9, 45), true},
		{"contained inside", at(9, 10), at(9, 20), true},
		{"covers entirely", at(8, 0), at(11, 0), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			overlapping, err := store.Appointments.FindOverlappingActive(ctx, stylistID, tc.start, tc.end)
			require.NoError(t, err)
			assert.Equal(t, tc.overlaps, len(overlapping) > 0)
		})
	}
}

func TestFindOverlappingActive_IgnoresInactiveAndOtherStylists(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	stylistID := uuid.New()

	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(45 * time.Minute)

	seedAppointment(t, store, stylistID, start, end, models.StatusCancelled)
	seedAppointment(t, store, stylistID, start, end, models.StatusCompleted)
	seedAppointment(t, store, uuid.New(), start, end, models.StatusScheduled)

	overlapping, err := store.Appointments.FindOverlappingActive(ctx, stylistID, start, end)
	require.NoError(t, err)
	assert.Empty(t, overlapping)

	seedAppointment(t, store, stylistID, start, end, models.StatusConfirmed)
	overlapping, err = store.Appointments.FindOverlappingActive(ctx, stylistID, start, end)
	require.NoError(t, err)
	assert.Len(t, overlapping, 1)
}

func TestListOrdered(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	stylistID := uuid.New()

	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	third := seedAppointment(t, store, stylistID, base.Add(2*time.Hour), base.Add(3*time.Hour), models.StatusScheduled)
	first := seedAppointment(t, store, stylistID, base, base.Add(time.Hour), models.StatusScheduled)
	second := seedAppointment(t, store, stylistID, base.Add(time.Hour), base.Add(2*time.Hour), models.StatusScheduled)

	all, err := store.Appointments.ListOrdered(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, third.ID, all[2].ID)

	capped, err := store.Appointments.ListOrdered(ctx, 2)
	require.NoError(t, err)
	require.Len(t, capped, 2)
	assert.Equal(t, first.ID, capped[0].ID)
}

func TestMarkCompletedBefore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	stylistID := uuid.New()
	now := time.Now().UTC()

	past := seedAppointment(t, store, stylistID, now.Add(-2*time.Hour), now.Add(-time.Hour), models.StatusScheduled)
	ending := seedAppointment(t, store, stylistID, now.Add(-time.Hour), now, models.StatusConfirmed)
	future := seedAppointment(t, store, stylistID, now.Add(time.Hour), now.Add(2*time.Hour), models.StatusScheduled)
	cancelled := seedAppointment(t, store, stylistID, now.Add(-4*time.Hour), now.Add(-3*time.Hour), models.StatusCancelled)

	changed, err := store.Appointments.MarkCompletedBefore(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), changed)

	all, err := store.Appointments.ListOrdered(ctx, 0)
	require.NoError(t, err)
	statuses := map[uuid.UUID]string{}
	for _, appointment := range all {
		statuses[appointment.ID] = appointment.Status
	}
	assert.Equal(t, models.StatusCompleted, statuses[past.ID])
	assert.Equal(t, models.StatusCompleted, statuses[ending.ID])
	assert.Equal(t, models.StatusScheduled, statuses[future.ID])
	assert.Equal(t, models.StatusCancelled, statuses[cancelled.ID])
}

func TestServiceFindByID_Errors(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Services.FindByID(ctx, "definitely-not-a-uuid")
	assert.ErrorIs(t, err, ErrMalformedID)

	_, err = store.Services.FindByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerFindByPhone(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Customers.FindByPhone(ctx, "+15550001111")
	assert.ErrorIs(t, err, ErrNotFound)

	customer := &models.Customer{Name: "Dana Smith", Phone: "+15550001111"}
	require.NoError(t, store.Customers.Create(ctx, customer))
	assert.NotEqual(t, uuid.Nil, customer.ID)

	found, err := store.Customers.FindByPhone(ctx, "+15550001111")
	require.NoError(t, err)
	assert.Equal(t, customer.ID, found.ID)
}

func TestServiceUpdate_UnknownService(t *testing.T) {
	store := NewMemoryStore()
	err := store.Services.Update(context.Background(), &models.Service{ID: uuid.New(), Name: "Haircut", DurationMinutes: 45})
	assert.ErrorIs(t, err, ErrNotFound)
}
