// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"salon-booking-api/models"
	"salon-booking-api/repository"
	"salon-booking-api/utils"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,min=10,max=600"`
	Price           float64 `json:"price" binding:"min=0"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	DurationMinutes *int     `json:"duration_minutes" binding:"omitempty,min=10,max=600"`
	Price           *float64 `json:"price" binding:"omitempty,min=0"`
}

type ServiceController struct {
	services repository.ServiceRepository
}

func NewServiceController(services repository.ServiceRepository) *ServiceController {
	return &ServiceController{services: services}
}

// GetServices retrieves all services offered by the salon
func (sc *ServiceController) GetServices(c *gin.Context) {
	services, err := sc.services.List(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetService retrieves a specific service by ID
func (sc *ServiceController) GetService(c *gin.Context) {
	service, err := sc.services.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrMalformedID):
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		case errors.Is(err, repository.ErrNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// CreateService creates a new service (admin flow)
func (sc *ServiceController) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := models.Service{
		Name:            input.Name,
		Description:     input.Description,
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
	}

	if err := sc.services.Create(c.Request.Context(), &service); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// UpdateService updates an existing service. Existing appointments keep the
// duration snapshotted at booking time.
func (sc *ServiceController) UpdateService(c *gin.Context) {
	service, err := sc.services.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrMalformedID):
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		case errors.Is(err, repository.ErrNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Update fields if provided
	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.DurationMinutes != nil {
		service.DurationMinutes = *input.DurationMinutes
	}
	if input.Price != nil {
		service.Price = *input.Price
	}

	if err := sc.services.Update(c.Request.Context(), service); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, service)
}
