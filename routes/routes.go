package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"salon-booking-api/config"
	"salon-booking-api/controllers"
	"salon-booking-api/logging"
	"salon-booking-api/repository"
	"salon-booking-api/services"
	"salon-booking-api/utils"
)

// SetupRouter wires the controllers around the injected store handle.
// db may be nil when running on the in-memory store.
func SetupRouter(cfg config.Config, store *repository.Store, db *gorm.DB, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging.RequestLogger(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Authorization", "Content-Type"}
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		// The original deployment is a public booking API, open by default.
		corsConfig.AllowAllOrigins = true
	}
	r.Use(cors.New(corsConfig))

	bookingService := services.NewBookingService(store, logger)

	health := controllers.NewHealthController(db)
	booking := controllers.NewBookingController(bookingService)
	service := controllers.NewServiceController(store.Services)
	stylist := controllers.NewStylistController(store.Stylists)
	customer := controllers.NewCustomerController(store.Customers)
	appointment := controllers.NewAppointmentController(store.Appointments)
	seed := controllers.NewSeedController(store)
	auth := controllers.NewAuthController(store.Users)

	r.GET("/", health.Root)
	r.GET("/test", health.Test)
	r.GET("/schema", health.Schema)
	r.POST("/seed/basic", seed.SeedBasic)

	r.GET("/services", service.GetServices)
	r.GET("/services/:id", service.GetService)
	r.GET("/stylists", stylist.GetStylists)
	r.GET("/stylists/:id", stylist.GetStylist)
	r.GET("/appointments", appointment.GetAppointments)

	r.POST("/book", booking.Book)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)

		authGroup.Use(utils.AuthMiddleware())
		authGroup.GET("/me", auth.Me)
	}

	admin := r.Group("/admin")
	admin.Use(utils.AuthMiddleware())
	{
		admin.POST("/services", service.CreateService)
		admin.PUT("/services/:id", service.UpdateService)
		admin.POST("/stylists", stylist.CreateStylist)
		admin.GET("/customers", customer.GetCustomers)
	}

	return r
}
