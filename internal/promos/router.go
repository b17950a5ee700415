package promos

import (
	"showtix/internal/shared/config"
	"showtix/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupPromoRoutes(router *gin.RouterGroup, controller Controller, cfg *config.Config) {
	// Promo management is admin-only; codes reach users out of band
	adminPromos := router.Group("/admin/promos")
	adminPromos.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		adminPromos.POST("", controller.CreatePromo)
		adminPromos.GET("", controller.ListPromos)
		adminPromos.GET("/:id", controller.GetPromo)
		adminPromos.PUT("/:id", controller.UpdatePromo)
		adminPromos.DELETE("/:id", controller.DeactivatePromo)
	}
}
