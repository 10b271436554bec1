package waitlist

import (
	"courtly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupWaitlistRoutes(router *gin.RouterGroup, controller *Controller) {
	entries := router.Group("/waitlist")
	entries.Use(middleware.JWTAuth())
	{
		entries.POST("", controller.Join)
		entries.GET("", controller.GetMyEntries)
		entries.DELETE("/:id", controller.Leave)
	}

	adminWaitlist := router.Group("/admin/courts/:id/waitlist")
	adminWaitlist.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminWaitlist.GET("", controller.GetCourtEntries)
	}
}
