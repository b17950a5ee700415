package routes

import (
	"net/http"
	"time"

	"showtix/internal/auth"
	"showtix/internal/bookings"
	"showtix/internal/checkin"
	"showtix/internal/events"
	"showtix/internal/movies"
	"showtix/internal/notifications"
	"showtix/internal/promos"
	"showtix/internal/shared/config"
	"showtix/internal/shared/database"
	"showtix/internal/showtimes"
	"showtix/internal/venues"
	"showtix/pkg/cache"
	"showtix/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	producer *notifications.Producer
	log      *logger.Logger
}

// NewRouter creates a new router instance. producer may be nil when the
// notification pipeline is disabled.
func NewRouter(cfg *config.Config, db *database.DB, producer *notifications.Producer, log *logger.Logger) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
		log:      log,
	}
}

// SetupRoutes wires every feature package onto the engine. Construction
// order follows the dependency graph: catalog and venues first, then
// showtimes, then the booking protocol on top.
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	gormDB := r.db.GetPostgreSQL()
	cacheService := cache.NewService(r.db.GetRedisClient())

	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Auth + user vetting
		authRepo := auth.NewRepository(gormDB)
		authService := auth.NewService(authRepo, r.config)
		authController := auth.NewController(authService)
		auth.NewRouter(authController, r.config).SetupRoutes(api)

		// Catalog
		movieRepo := movies.NewRepository(gormDB)
		movieService := movies.NewService(movieRepo, cacheService)
		movies.SetupMovieRoutes(api, movies.NewController(movieService), r.config)

		eventRepo := events.NewRepository(gormDB)
		eventService := events.NewService(eventRepo, cacheService)
		events.SetupEventRoutes(api, events.NewController(eventService), r.config)

		// Venues and screen layouts
		venueRepo := venues.NewRepository(gormDB)
		venueService := venues.NewService(venueRepo, cacheService)
		venues.SetupVenueRoutes(api, venues.NewController(venueService), r.config)

		// Showtimes and seat maps
		showtimeRepo := showtimes.NewRepository(gormDB)
		showtimeService := showtimes.NewService(showtimeRepo, venueService, movieRepo, eventRepo, cacheService, r.config)
		showtimes.SetupShowtimeRoutes(api, showtimes.NewController(showtimeService), r.config)

		// Promo codes
		promoRepo := promos.NewRepository(gormDB)
		promoService := promos.NewService(promoRepo)
		promos.SetupPromoRoutes(api, promos.NewController(promoService), r.config)

		// Booking protocol
		bookingRepo := bookings.NewRepository(gormDB)
		refGen := bookings.NewReferenceGenerator(r.config.Booking.RefMaxAttempts)
		bookingService := bookings.NewService(
			bookingRepo,
			showtimeRepo,
			showtimeService,
			venueService,
			promoService,
			authRepo,
			refGen,
			r.producer,
			r.config,
			r.log,
		)
		bookings.SetupBookingRoutes(api, bookings.NewController(bookingService), r.config)

		// Gate check-in
		checkin.SetupCheckInRoutes(api, checkin.NewController(bookingService), r.config)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "showtix-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "showtix-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}
