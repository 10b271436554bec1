package routes

import (
	"net/http"
	"time"

	"courtly/internal/auth"
	"courtly/internal/bookings"
	"courtly/internal/coaches"
	"courtly/internal/courts"
	"courtly/internal/equipment"
	"courtly/internal/pricing"
	"courtly/internal/shared/config"
	"courtly/internal/shared/database"
	"courtly/internal/waitlist"
	"courtly/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router wires every module's routes onto the engine
type Router struct {
	config    *config.Config
	db        *database.DB
	publisher bookings.EventPublisher
}

// NewRouter creates a new router instance. The publisher may be nil when
// Kafka is disabled; booking events are then skipped.
func NewRouter(cfg *config.Config, db *database.DB, publisher bookings.EventPublisher) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		publisher: publisher,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupDomainRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "courtly-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "courtly-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController, r.config)

	authRouter.SetupRoutes(rg)
}

// setupDomainRoutes wires the catalog, pricing, booking and waitlist
// modules. They share repositories so cross-module reads (quotes, coach
// eligibility, conflict checks) hit the same data layer.
func (r *Router) setupDomainRoutes(rg *gin.RouterGroup) {
	pg := r.db.GetPostgreSQL()
	cacheService := cache.NewService(r.db.GetRedis())

	courtRepo := courts.NewRepository(pg)
	courtService := courts.NewService(courtRepo, cacheService, r.config.Redis.CacheTTL)
	courts.SetupCourtRoutes(rg, courts.NewController(courtService))

	equipmentRepo := equipment.NewRepository(pg)
	equipmentService := equipment.NewService(equipmentRepo, cacheService)
	equipment.SetupEquipmentRoutes(rg, equipment.NewController(equipmentService))

	coachRepo := coaches.NewRepository(pg)
	coachService := coaches.NewService(coachRepo, cacheService)
	coaches.SetupCoachRoutes(rg, coaches.NewController(coachService))

	pricingRepo := pricing.NewRepository(pg)
	pricingService := pricing.NewService(pricingRepo, courtRepo, equipmentRepo, coachRepo, cacheService)
	pricing.SetupPricingRoutes(rg, pricing.NewController(pricingService))

	bookingRepo := bookings.NewRepository(pg)
	bookingService := bookings.NewService(bookingRepo, courtRepo, coachRepo, pricingService, r.config.Booking, r.publisher)
	bookings.SetupBookingRoutes(rg, bookings.NewController(bookingService))

	waitlistRepo := waitlist.NewRepository(pg)
	waitlistService := waitlist.NewService(waitlistRepo, courtRepo)
	waitlist.SetupWaitlistRoutes(rg, waitlist.NewController(waitlistService))
}
