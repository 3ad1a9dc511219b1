package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"relecloud-backend/internal/shared/middleware"
	"relecloud-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupDestinationRoutes(v1, c)
		setupCruiseRoutes(v1, c)
		setupInfoRequestRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
		auth.GET("/me", middleware.AuthMiddleware(c.JWTManager), c.UserHandler.Me)
	}
}

// ========================================
// DESTINATION + REVIEW ROUTES
// ========================================
func setupDestinationRoutes(v1 *gin.RouterGroup, c *container.Container) {
	destinations := v1.Group("/destinations")
	{
		destinations.GET("", c.DestinationHandler.List)
		destinations.GET("/:id", c.DestinationHandler.Get)

		destinations.GET("/:id/reviews", c.ReviewHandler.List)
		destinations.POST("/:id/reviews", middleware.AuthMiddleware(c.JWTManager), c.ReviewHandler.Create)
	}
}

// ========================================
// CRUISE ROUTES
// ========================================
func setupCruiseRoutes(v1 *gin.RouterGroup, c *container.Container) {
	cruises := v1.Group("/cruises")
	{
		cruises.GET("", c.CruiseHandler.List)
		cruises.GET("/:id", c.CruiseHandler.Get)
	}
}

// ========================================
// INFO REQUEST ROUTES
// ========================================
func setupInfoRequestRoutes(v1 *gin.RouterGroup, c *container.Container) {
	// Public submission: no account needed, the email alone grants
	// review entitlement later.
	v1.POST("/info-requests", c.InfoRequestHandler.Create)
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		admin.POST("/destinations", c.DestinationHandler.Create)
		admin.PUT("/destinations/:id", c.DestinationHandler.Update)
		admin.DELETE("/destinations/:id", c.DestinationHandler.Delete)

		admin.POST("/cruises", c.CruiseHandler.Create)
		admin.PUT("/cruises/:id", c.CruiseHandler.Update)
		admin.DELETE("/cruises/:id", c.CruiseHandler.Delete)

		admin.GET("/info-requests", c.InfoRequestHandler.List)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			health["status"] = "degraded"
			health["database"] = "unreachable"
			c.JSON(503, health)
			return
		}

		c.JSON(200, health)
	}
}
