package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-booking-api/config"
	"salon-booking-api/models"
	"salon-booking-api/repository"
	"salon-booking-api/routes"
)

func setupTestServer(t *testing.T) (*gin.Engine, *repository.Store, *models.Service, *models.Stylist) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	ctx := context.Background()

	service := &models.Service{Name: "Haircut", Description: "Classic haircut", DurationMinutes: 45, Price: 35}
	require.NoError(t, store.Services.Create(ctx, service))
	stylist := &models.Stylist{Name: "Alex Morgan", Specialties: models.StringList{"Haircut"}}
	require.NoError(t, store.Stylists.Create(ctx, stylist))

	router := routes.SetupRouter(config.Config{}, store, nil, zerolog.Nop())
	return router, store, service, stylist
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getJSON(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func bookBody(service *models.Service, stylist *models.Stylist, start string) map[string]interface{} {
	return map[string]interface{}{
		"customer_name":  "Dana Smith",
		"customer_phone": "+15550001111",
		"service_id":     service.ID.String(),
		"stylist_id":     stylist.ID.String(),
		"start_time":     start,
	}
}

func TestBookEndToEnd(t *testing.T) {
	router, _, service, stylist := setupTestServer(t)

	// First booking at 09:00 succeeds.
	w := postJSON(t, router, "/book", bookBody(service, stylist, "2024-01-01T09:00:00Z"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var booked models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booked))
	assert.Equal(t, time.Date(2024, 1, 1, 9, 45, 0, 0, time.UTC), booked.EndTime.UTC())
	assert.Equal(t, 45, booked.DurationMinutes)
	assert.Equal(t, models.StatusScheduled, booked.Status)

	// Overlapping booking for the same stylist is rejected.
	w = postJSON(t, router, "/book", bookBody(service, stylist, "2024-01-01T09:30:00Z"))
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// Booking that starts exactly at the previous end succeeds.
	w = postJSON(t, router, "/book", bookBody(service, stylist, "2024-01-01T09:45:00Z"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestBookErrorStatuses(t *testing.T) {
	router, store, service, stylist := setupTestServer(t)

	body := bookBody(service, stylist, "2024-01-01T09:00:00Z")
	body["service_id"] = "not-a-uuid"
	w := postJSON(t, router, "/book", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = bookBody(service, stylist, "2024-01-01T09:00:00Z")
	body["service_id"] = "b3c87d56-7b5b-4f19-a5ba-29a2563a4e32"
	w = postJSON(t, router, "/book", body)
	assert.Equal(t, http.StatusNotFound, w.Code)

	body = bookBody(service, stylist, "2024-01-01T09:00:00Z")
	body["customer_phone"] = "not a phone"
	w = postJSON(t, router, "/book", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = bookBody(service, stylist, "2024-01-01T09:00:00Z")
	delete(body, "start_time")
	w = postJSON(t, router, "/book", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// None of the failed attempts created a customer.
	count, err := store.Customers.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestListAppointmentsOrdered(t *testing.T) {
	router, _, service, stylist := setupTestServer(t)

	for _, start := range []string{"2024-01-01T13:00:00Z", "2024-01-01T09:00:00Z", "2024-01-01T11:00:00Z"} {
		w := postJSON(t, router, "/book", bookBody(service, stylist, start))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := getJSON(t, router, "/appointments")
	require.Equal(t, http.StatusOK, w.Code)

	var appointments []models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &appointments))
	require.Len(t, appointments, 3)
	assert.True(t, appointments[0].StartTime.Before(appointments[1].StartTime))
	assert.True(t, appointments[1].StartTime.Before(appointments[2].StartTime))

	w = getJSON(t, router, "/appointments?limit=2")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &appointments))
	assert.Len(t, appointments, 2)

	w = getJSON(t, router, "/appointments?limit=zero")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSeedBasicIsIdempotent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := repository.NewMemoryStore()
	router := routes.SetupRouter(config.Config{}, store, nil, zerolog.Nop())

	for i := 0; i < 2; i++ {
		w := postJSON(t, router, "/seed/basic", map[string]interface{}{})
		require.Equal(t, http.StatusOK, w.Code)
	}

	services, err := store.Services.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), services)

	stylists, err := store.Stylists.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stylists)
}

func TestDiagnosticsAndSchema(t *testing.T) {
	router, _, _, _ := setupTestServer(t)

	w := getJSON(t, router, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Salon Booking API is running")

	w = getJSON(t, router, "/test")
	require.Equal(t, http.StatusOK, w.Code)
	var report map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "memory", report["store"])
	assert.Equal(t, true, report["connected"])

	w = getJSON(t, router, "/schema")
	require.Equal(t, http.StatusOK, w.Code)
	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &schema))
	for _, entity := range []string{"service", "stylist", "customer", "appointment"} {
		assert.Contains(t, schema, entity)
	}

	w = getJSON(t, router, "/services")
	require.Equal(t, http.StatusOK, w.Code)

	w = getJSON(t, router, "/stylists")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	router, _, _, _ := setupTestServer(t)

	w := postJSON(t, router, "/admin/services", map[string]interface{}{
		"name": "Beard Trim", "duration_minutes": 30, "price": 15,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = getJSON(t, router, "/admin/customers")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
