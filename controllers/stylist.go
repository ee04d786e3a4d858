package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"salon-booking-api/models"
	"salon-booking-api/repository"
	"salon-booking-api/utils"
)

// CreateStylistInput defines the expected JSON structure for creating a stylist
type CreateStylistInput struct {
	Name        string   `json:"name" binding:"required"`
	Specialties []string `json:"specialties"`
	Bio         string   `json:"bio"`
}

type StylistController struct {
	stylists repository.StylistRepository
}

func NewStylistController(stylists repository.StylistRepository) *StylistController {
	return &StylistController{stylists: stylists}
}

// GetStylists retrieves all stylists
func (sc *StylistController) GetStylists(c *gin.Context) {
	stylists, err := sc.stylists.List(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve stylists")
		return
	}

	c.JSON(http.StatusOK, stylists)
}

// GetStylist retrieves a specific stylist by ID
func (sc *StylistController) GetStylist(c *gin.Context) {
	stylist, err := sc.stylists.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrMalformedID):
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid stylist ID format")
		case errors.Is(err, repository.ErrNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Stylist not found")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, stylist)
}

// CreateStylist creates a new stylist (admin flow)
func (sc *StylistController) CreateStylist(c *gin.Context) {
	var input CreateStylistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	stylist := models.Stylist{
		Name:        input.Name,
		Specialties: models.StringList(input.Specialties),
		Bio:         input.Bio,
	}

	if err := sc.stylists.Create(c.Request.Context(), &stylist); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create stylist")
		return
	}

	c.JSON(http.StatusCreated, stylist)
}
