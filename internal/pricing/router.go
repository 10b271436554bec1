package pricing

import (
	"courtly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupPricingRoutes(router *gin.RouterGroup, controller *Controller) {
	publicPricing := router.Group("/pricing")
	{
		publicPricing.GET("/rules", controller.GetRules)
		publicPricing.POST("/quote", controller.Quote)
	}

	adminPricing := router.Group("/admin/pricing/rules")
	adminPricing.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminPricing.GET("", controller.GetAllRules)
		adminPricing.POST("", controller.CreateRule)
		adminPricing.PUT("/:id", controller.UpdateRule)
		adminPricing.DELETE("/:id", controller.DeleteRule)
	}
}
