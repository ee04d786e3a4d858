package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"salon-booking-api/models"
)

// HealthController serves the liveness, diagnostic and schema endpoints. db
// is nil when the app runs on the in-memory store.
type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Root confirms the API is up
func (hc *HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Salon Booking API is running"})
}

// Schema exposes the entity shapes for the admin viewer
func (hc *HealthController) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, models.Schema())
}

// Test reports store connectivity for debugging deployments
func (hc *HealthController) Test(c *gin.Context) {
	report := gin.H{
		"backend":   "running",
		"store":     "memory",
		"connected": true,
		"tables":    []string{},
	}

	if hc.db == nil {
		c.JSON(http.StatusOK, report)
		return
	}

	report["store"] = "postgres"
	report["connected"] = false

	sqlDB, err := hc.db.DB()
	if err != nil {
		report["error"] = err.Error()
		c.JSON(http.StatusOK, report)
		return
	}
	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		report["error"] = err.Error()
		c.JSON(http.StatusOK, report)
		return
	}
	report["connected"] = true

	tables, err := hc.db.Migrator().GetTables()
	if err == nil {
		if len(tables) > 10 {
			tables = tables[:10]
		}
		report["tables"] = tables
	}

	c.JSON(http.StatusOK, report)
}
