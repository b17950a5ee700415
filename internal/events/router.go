package events

import (
	"showtix/internal/shared/config"
	"showtix/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupEventRoutes(router *gin.RouterGroup, controller Controller, cfg *config.Config) {
	// Public routes - anyone can browse events
	publicEvents := router.Group("/events")
	{
		publicEvents.GET("", controller.ListEvents)
		publicEvents.GET("/:id", controller.GetEvent)
	}

	// Staff routes - organizers manage their own events, admins any
	staffEvents := router.Group("/admin/events")
	staffEvents.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireStaff())
	{
		staffEvents.POST("", controller.CreateEvent)
		staffEvents.PUT("/:id", controller.UpdateEvent)
		staffEvents.DELETE("/:id", controller.DeactivateEvent)
	}
}
