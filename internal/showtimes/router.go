package showtimes

import (
	"showtix/internal/shared/config"
	"showtix/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupShowtimeRoutes(router *gin.RouterGroup, controller Controller, cfg *config.Config) {
	// Public routes - browsing showtimes and seat maps
	publicShowtimes := router.Group("/showtimes")
	{
		publicShowtimes.GET("", controller.ListShowtimes)
		publicShowtimes.GET("/:id", controller.GetShowtime)
		publicShowtimes.GET("/:id/seats", controller.GetSeatMap)
	}

	// Staff routes - scheduling
	staffShowtimes := router.Group("/admin/showtimes")
	staffShowtimes.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireStaff())
	{
		staffShowtimes.POST("", controller.CreateShowtime)
		staffShowtimes.DELETE("/:id", controller.DeactivateShowtime)
	}
}
