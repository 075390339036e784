package main

import (
	"log"
	"time"

	_ "vendorgrid/api/swagger" // swagger docs
	"vendorgrid/internal/config"
	"vendorgrid/internal/database"
	"vendorgrid/internal/handler"
	"vendorgrid/internal/logger"
	"vendorgrid/internal/repository"
	"vendorgrid/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           VendorGrid API
// @version         1.0
// @description     Vendor master-data management: CRUD, search, CSV import/export, and a read-only integration API with delta-change polling and webhooks.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	zapLogger, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Logger setup failed: %v", err)
	}
	defer zapLogger.Sync()

	db, err := database.NewConnection(cfg.DSN())
	if err != nil {
		zapLogger.Fatal("database connection failed", zap.Error(err))
	}
	zapLogger.Info("connected to PostgreSQL")

	// Set up dependencies (Repository -> Service -> Handler)
	vendorRepo := repository.NewVendorRepository(db)
	txManager := repository.NewTransactionManager(db)
	vendorService := service.NewVendorService(vendorRepo, txManager)
	integrationService := service.NewIntegrationService(
		vendorService,
		cfg.WebhookURL,
		time.Duration(cfg.WebhookTimeoutSeconds)*time.Second,
		zapLogger,
	)
	defer integrationService.Close()

	vendorHandler := handler.NewVendorHandler(vendorService, integrationService)
	integrationHandler := handler.NewIntegrationHandler(integrationService, zapLogger)

	// Set up Gin Router
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-API-Key", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Liveness check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	vendorHandler.RegisterRoutes(router.Group(""))
	integrationHandler.RegisterRoutes(router.Group(""))

	zapLogger.Info("server listening", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server failed", zap.Error(err))
	}
}
