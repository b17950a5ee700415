package bookings

import (
	"showtix/internal/shared/config"
	"showtix/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(router *gin.RouterGroup, controller Controller, cfg *config.Config) {
	// All booking routes require authentication
	bookings := router.Group("/bookings")
	bookings.Use(middleware.JWTAuthWithConfig(cfg))
	{
		bookings.POST("", controller.CreateBooking)
		bookings.GET("/:id", controller.GetBooking)
		bookings.PUT("/:id/cancel", controller.CancelBooking)
	}

	// Booking history for the authenticated user
	userBookings := router.Group("/users/bookings")
	userBookings.Use(middleware.JWTAuthWithConfig(cfg))
	{
		userBookings.GET("", controller.ListMyBookings)
	}
}
