package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salon-booking-api/repository"
	"salon-booking-api/utils"
)

const defaultAppointmentLimit = 50

type AppointmentController struct {
	appointments repository.AppointmentRepository
}

func NewAppointmentController(appointments repository.AppointmentRepository) *AppointmentController {
	return &AppointmentController{appointments: appointments}
}

// GetAppointments lists appointments ordered by start time ascending
func (ac *AppointmentController) GetAppointments(c *gin.Context) {
	limit := defaultAppointmentLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	appointments, err := ac.appointments.ListOrdered(c.Request.Context(), limit)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}
