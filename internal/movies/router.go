package movies

import (
	"showtix/internal/shared/config"
	"showtix/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupMovieRoutes(router *gin.RouterGroup, controller Controller, cfg *config.Config) {
	// Public routes - anyone can browse movies
	publicMovies := router.Group("/movies")
	{
		publicMovies.GET("", controller.ListMovies)
		publicMovies.GET("/:id", controller.GetMovie)
	}

	// Admin routes - catalog management
	adminMovies := router.Group("/admin/movies")
	adminMovies.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		adminMovies.POST("", controller.CreateMovie)
		adminMovies.PUT("/:id", controller.UpdateMovie)
		adminMovies.DELETE("/:id", controller.DeactivateMovie)
	}
}
