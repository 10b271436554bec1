package courts

import (
	"courtly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupCourtRoutes(router *gin.RouterGroup, controller *Controller) {
	// Public routes - anyone can browse active courts
	publicCourts := router.Group("/courts")
	{
		publicCourts.GET("", controller.GetCourts)
		publicCourts.GET("/:id", controller.GetCourt)
	}

	// Admin routes - court catalog management
	adminCourts := router.Group("/admin/courts")
	adminCourts.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminCourts.POST("", controller.CreateCourt)
		adminCourts.PUT("/:id", controller.UpdateCourt)
		adminCourts.DELETE("/:id", controller.DeactivateCourt)
	}
}
