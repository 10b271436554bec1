package coaches

import (
	"courtly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupCoachRoutes(router *gin.RouterGroup, controller *Controller) {
	publicCoaches := router.Group("/coaches")
	{
		publicCoaches.GET("", controller.GetCoaches)
		publicCoaches.GET("/eligible", controller.GetEligibleCoaches)
		publicCoaches.GET("/:id", controller.GetCoach)
		publicCoaches.GET("/:id/availability", controller.GetCoachAvailability)
	}

	adminCoaches := router.Group("/admin/coaches")
	adminCoaches.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminCoaches.POST("", controller.CreateCoach)
		adminCoaches.PUT("/:id", controller.UpdateCoach)
		adminCoaches.DELETE("/:id", controller.DeactivateCoach)
	}
}
