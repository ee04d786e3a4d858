package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salon-booking-api/models"
	"salon-booking-api/repository"
	"salon-booking-api/utils"
)

type SeedController struct {
	store *repository.Store
}

func NewSeedController(store *repository.Store) *SeedController {
	return &SeedController{store: store}
}

// SeedBasic creates a couple of services and stylists if none exist yet
func (sc *SeedController) SeedBasic(c *gin.Context) {
	ctx := c.Request.Context()

	serviceCount, err := sc.store.Services.Count(ctx)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if serviceCount == 0 {
		seedServices := []models.Service{
			{Name: "Haircut", Description: "Classic haircut", DurationMinutes: 45, Price: 35},
			{Name: "Hair Color", Description: "Full color", DurationMinutes: 120, Price: 120},
		}
		for i := range seedServices {
			if err := sc.store.Services.Create(ctx, &seedServices[i]); err != nil {
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to seed services")
				return
			}
		}
	}

	stylistCount, err := sc.store.Stylists.Count(ctx)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if stylistCount == 0 {
		seedStylists := []models.Stylist{
			{Name: "Alex Morgan", Specialties: models.StringList{"Haircut", "Beard Trim"}, Bio: "5 years experience"},
			{Name: "Jamie Lee", Specialties: models.StringList{"Hair Color", "Highlights"}, Bio: "Color specialist"},
		}
		for i := range seedStylists {
			if err := sc.store.Stylists.Create(ctx, &seedStylists[i]); err != nil {
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to seed stylists")
				return
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
