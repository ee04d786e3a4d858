package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"salon-booking-api/config"
	"salon-booking-api/logging"
	"salon-booking-api/models"
	"salon-booking-api/repository"
	"salon-booking-api/routes"
	"salon-booking-api/services"
)

func main() {
	// Load environment variables
	envLoaded := godotenv.Load() == nil

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)
	if !envLoaded {
		logger.Info().Msg("no .env file found")
	}

	var db *gorm.DB
	var store *repository.Store
	if cfg.DBURL == "" {
		logger.Warn().Msg("DB_URL not set, falling back to in-memory store")
		store = repository.NewMemoryStore()
	} else {
		var err error
		db, err = config.ConnectDB(cfg.DBURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		if err := db.AutoMigrate(
			&models.Service{},
			&models.Stylist{},
			&models.Customer{},
			&models.Appointment{},
			&models.User{},
		); err != nil {
			logger.Fatal().Err(err).Msg("failed to migrate database")
		}
		store = repository.NewGormStore(db)
	}

	completion := services.NewCompletionService(store.Appointments, logger)
	if err := completion.StartScheduler(cfg.SweepSchedule); err != nil {
		logger.Fatal().Err(err).Msg("failed to start completion sweeper")
	}
	defer completion.Stop()

	r := routes.SetupRouter(cfg, store, db, logger)
	printRoutes(r)

	logger.Info().Str("port", cfg.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
