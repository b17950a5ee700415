package venues

import (
	"showtix/internal/shared/config"
	"showtix/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupVenueRoutes(router *gin.RouterGroup, controller Controller, cfg *config.Config) {
	// Public routes - anyone can browse venues and screens
	publicVenues := router.Group("/venues")
	{
		publicVenues.GET("", controller.ListVenues)
		publicVenues.GET("/:id", controller.GetVenue)
		publicVenues.GET("/screens/:screenId", controller.GetScreen)
	}

	// Staff routes - organizers manage their own venues, admins any
	staffVenues := router.Group("/admin/venues")
	staffVenues.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireStaff())
	{
		staffVenues.POST("", controller.CreateVenue)
		staffVenues.POST("/:id/screens", controller.AddScreen)
		staffVenues.DELETE("/:id", controller.DeactivateVenue)
	}
}
