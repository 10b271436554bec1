package bookings

import (
	"courtly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(router *gin.RouterGroup, controller *Controller) {
	// Availability is public so users can browse before signing in
	router.GET("/courts/:id/availability", controller.GetCourtAvailability)

	bookings := router.Group("/bookings")
	bookings.Use(middleware.JWTAuth())
	{
		bookings.POST("", controller.CreateBooking)
		bookings.GET("", controller.GetMyBookings)
		bookings.GET("/:id", controller.GetBooking)
		bookings.DELETE("/:id", controller.CancelBooking)
	}
}
