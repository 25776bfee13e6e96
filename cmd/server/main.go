package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/quochao170402/ecommerce-catalog/configs"
	"github.com/quochao170402/ecommerce-catalog/internal/seed"
	"github.com/quochao170402/ecommerce-catalog/internal/service"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger, err := configs.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	if cfg.App.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	catalog := service.NewCatalog()
	if !cfg.App.SeedDisabled {
		seed.Catalog(catalog)
	}

	router := gin.New()
	configs.SetupRoutes(router, catalog)

	zap.S().Infof("Server starting on port %s", cfg.App.AppPort)
	if err := router.Run(":" + cfg.App.AppPort); err != nil {
		zap.S().Fatalf("Server stopped: %v", err)
	}
}
