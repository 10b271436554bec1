package equipment

import (
	"courtly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupEquipmentRoutes(router *gin.RouterGroup, controller *Controller) {
	publicEquipment := router.Group("/equipment")
	{
		publicEquipment.GET("", controller.GetEquipment)
		publicEquipment.GET("/:id", controller.GetEquipmentByID)
	}

	adminEquipment := router.Group("/admin/equipment")
	adminEquipment.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminEquipment.POST("", controller.CreateEquipment)
		adminEquipment.PUT("/:id", controller.UpdateEquipment)
		adminEquipment.DELETE("/:id", controller.DeactivateEquipment)
	}
}
