package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/msolera/catalog-backend/config"
	"github.com/msolera/catalog-backend/internal/app/controller"
	"github.com/msolera/catalog-backend/internal/app/repository"
	"github.com/msolera/catalog-backend/internal/app/service"
	"github.com/msolera/catalog-backend/internal/db"
	"github.com/msolera/catalog-backend/internal/middleware"
	"github.com/msolera/catalog-backend/internal/router"
	"github.com/msolera/catalog-backend/internal/storage"
	"github.com/msolera/catalog-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	logFormat := "json"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
		logFormat = "console"
	}
	logger.Initialize(logger.Config{
		Level:  logLevel,
		Format: logFormat,
	})

	logger.Info("Starting Catalog Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(db.GetDB())
	optionRepo := repository.NewOptionRepository(db.GetDB())
	offerRepo := repository.NewOfferRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(cfg.Admin, cfg.JWT)
	productService := service.NewProductService(productRepo, db.GetDB())
	optionService := service.NewOptionService(optionRepo, productRepo, db.GetDB())
	offerService := service.NewOfferService(offerRepo, productRepo, db.GetDB())

	// Initialize storage
	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	productController := controller.NewProductController(productService)
	optionController := controller.NewOptionController(optionService)
	offerController := controller.NewOfferController(offerService)
	uploadController := controller.NewUploadController(s3Storage)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Setup router
	r := router.NewRouter(
		authController,
		productController,
		optionController,
		offerController,
		uploadController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
