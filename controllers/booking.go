package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"salon-booking-api/repository"
	"salon-booking-api/services"
	"salon-booking-api/utils"
)

// BookInput defines the expected JSON structure for booking an appointment
type BookInput struct {
	CustomerName  string    `json:"customer_name" binding:"required"`
	CustomerPhone string    `json:"customer_phone" binding:"required"`
	CustomerEmail string    `json:"customer_email"`
	ServiceID     string    `json:"service_id" binding:"required"`
	StylistID     string    `json:"stylist_id" binding:"required"`
	StartTime     time.Time `json:"start_time" binding:"required"`
	Notes         string    `json:"notes"`
}

type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

// Book creates an appointment, guaranteeing the stylist is not double-booked
func (bc *BookingController) Book(c *gin.Context) {
	var input BookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.CustomerPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	appointment, err := bc.bookings.BookAppointment(c.Request.Context(), services.BookingRequest{
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		CustomerEmail: input.CustomerEmail,
		ServiceID:     input.ServiceID,
		StylistID:     input.StylistID,
		StartTime:     input.StartTime,
		Notes:         input.Notes,
	})
	if err != nil {
		var notFound *services.NotFoundError
		switch {
		case errors.Is(err, repository.ErrMalformedID):
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid ID format")
		case errors.As(err, &notFound):
			utils.RespondWithError(c, http.StatusNotFound, capitalize(notFound.Entity)+" not found")
		case errors.Is(err, services.ErrSlotUnavailable):
			utils.RespondWithError(c, http.StatusConflict, "Time slot not available for this stylist")
		default:
			utils.RespondWithError(c, http.StatusServiceUnavailable, "Database error")
		}
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
