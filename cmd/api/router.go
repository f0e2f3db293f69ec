package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"masterdata-backend/internal/shared/middleware"
	"masterdata-backend/internal/shared/response"
	"masterdata-backend/pkg/container"
)

// SetupRouter wires middleware and all API routes. Reads are public;
// every mutating route sits behind the admin JWT.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	authRequired := middleware.Auth(c.JWTManager)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthHandler(c))

		v1.POST("/auth/login", c.AuthHandler.Login)

		categoryTypes := v1.Group("/category-types")
		{
			categoryTypes.GET("", c.CategoryTypeHandler.List)
			categoryTypes.GET("/:id", c.CategoryTypeHandler.Get)
			categoryTypes.GET("/by-slug/*slug", c.CategoryTypeHandler.GetBySlug)
			categoryTypes.POST("", authRequired, c.CategoryTypeHandler.Create)
			categoryTypes.PUT("/:id", authRequired, c.CategoryTypeHandler.Update)
			categoryTypes.PATCH("/:id/status", authRequired, c.CategoryTypeHandler.UpdateStatus)
			categoryTypes.DELETE("/:id", authRequired, c.CategoryTypeHandler.Delete)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", c.CategoryHandler.List)
			categories.GET("/:id", c.CategoryHandler.Get)
			categories.GET("/by-slug/*slug", c.CategoryHandler.GetBySlug)
			categories.POST("", authRequired, c.CategoryHandler.Create)
			categories.PUT("/:id", authRequired, c.CategoryHandler.Update)
			categories.PATCH("/:id/status", authRequired, c.CategoryHandler.UpdateStatus)
			categories.DELETE("/:id", authRequired, c.CategoryHandler.Delete)
		}

		styles := v1.Group("/styles")
		{
			styles.GET("", c.StyleHandler.List)
			styles.GET("/:id", c.StyleHandler.Get)
			styles.GET("/by-slug/:slug", c.StyleHandler.GetBySlug)
			styles.POST("", authRequired, c.StyleHandler.Create)
			styles.PUT("/:id", authRequired, c.StyleHandler.Update)
			styles.PATCH("/:id/status", authRequired, c.StyleHandler.UpdateStatus)
			styles.DELETE("/:id", authRequired, c.StyleHandler.Delete)
		}

		collections := v1.Group("/collections")
		{
			collections.GET("", c.CollectionHandler.List)
			collections.GET("/:id", c.CollectionHandler.Get)
			collections.GET("/by-slug/:slug", c.CollectionHandler.GetBySlug)
			collections.POST("", authRequired, c.CollectionHandler.Create)
			collections.PUT("/:id", authRequired, c.CollectionHandler.Update)
			collections.PATCH("/:id/status", authRequired, c.CollectionHandler.UpdateStatus)
			collections.DELETE("/:id", authRequired, c.CollectionHandler.Delete)
		}

		ringSizes := v1.Group("/ring-sizes")
		{
			ringSizes.GET("", c.RingSizeHandler.List)
			ringSizes.GET("/default", c.RingSizeHandler.GetDefault)
			ringSizes.GET("/:id", c.RingSizeHandler.Get)
			ringSizes.POST("", authRequired, c.RingSizeHandler.Create)
			ringSizes.PUT("/:id", authRequired, c.RingSizeHandler.Update)
			ringSizes.PATCH("/:id/status", authRequired, c.RingSizeHandler.UpdateStatus)
			ringSizes.DELETE("/:id", authRequired, c.RingSizeHandler.Delete)
		}
	}

	return router
}

// healthHandler reports process, database and cache health.
func healthHandler(c *container.Container) gin.HandlerFunc {
	return func(gc *gin.Context) {
		ctx := gc.Request.Context()

		dbStatus := "up"
		if err := c.DB.HealthCheck(ctx); err != nil {
			dbStatus = "down"
		}

		cacheStatus := "up"
		if err := c.Cache.Ping(ctx); err != nil {
			cacheStatus = "down"
		}

		status := http.StatusOK
		if dbStatus == "down" {
			status = http.StatusServiceUnavailable
		}

		response.Success(gc, status, "Health check", gin.H{
			"version":  c.Config.App.Version,
			"database": dbStatus,
			"cache":    cacheStatus,
		})
	}
}
