package checkin

import (
	"showtix/internal/shared/config"
	"showtix/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupCheckInRoutes(router *gin.RouterGroup, controller Controller, cfg *config.Config) {
	// Gate scanning - admins and venue organizers only. Organizer approval
	// and venue ownership are enforced in the booking service.
	scan := router.Group("/scan")
	scan.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireStaff())
	{
		scan.POST("/validate", controller.ValidateScan)
	}
}
