package configs

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quochao170402/ecommerce-catalog/api"
	"github.com/quochao170402/ecommerce-catalog/internal/service"
	"github.com/quochao170402/ecommerce-catalog/middleware"
)

// SetupRoutes registers the middleware and every API route on the engine.
func SetupRoutes(router *gin.Engine, catalog *service.Catalog) {

	// Middleware
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			api.RegisterUserRoutes(users, catalog.Users)
		}

		categories := v1.Group("/categories")
		{
			api.RegisterCategoryRoutes(categories, catalog.Categories)
		}

		brands := v1.Group("/brands")
		{
			api.RegisterBrandRoutes(brands, catalog.Brands)
		}

		products := v1.Group("/products")
		{
			api.RegisterProductRoutes(products, catalog.Products)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "NotFound",
			"message": fmt.Sprintf("Route %s does not exist", c.Request.URL.Path),
		})
	})
}
