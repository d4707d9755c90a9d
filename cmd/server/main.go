package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nickgiulioni1/offleash-api/internal/config"
	"github.com/nickgiulioni1/offleash-api/internal/database"
	"github.com/nickgiulioni1/offleash-api/internal/handlers"
	"github.com/nickgiulioni1/offleash-api/internal/logger"
	"github.com/nickgiulioni1/offleash-api/internal/middleware"
	"github.com/nickgiulioni1/offleash-api/internal/repository"
	"github.com/nickgiulioni1/offleash-api/internal/services"
)

const (
	shutdownTimeout = 30 * time.Second
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.NewWithLevel(cfg.Server.Env, cfg.Server.LogLevel)
	log.Info("Starting Offleash API", map[string]interface{}{
		"version":     "0.1.0",
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
	})

	// Create database connection pool
	ctx := context.Background()
	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", err, map[string]interface{}{
			"host": cfg.Database.Host,
			"port": cfg.Database.Port,
			"name": cfg.Database.Name,
		})
	}
	defer db.Close()

	log.Info("Database connection established", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Name,
		"pool_min": cfg.Database.PoolMin,
		"pool_max": cfg.Database.PoolMax,
	})

	// Bootstrap the analyses table before accepting traffic
	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure database schema", err, nil)
	}

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware in order: RequestID -> Logger -> Recovery -> CORS
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))

	// Register health check routes
	healthHandler := handlers.NewHealthHandler(db, cfg.Server.Env)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/api/v1/info", healthHandler.Info)

	// Initialize repository and service layers
	analysisRepo := repository.NewAnalysisRepository(db)
	analysisService := services.NewAnalysisService(analysisRepo, log)
	projectionService := services.NewProjectionService(log)

	// Initialize handlers
	analysisHandler := handlers.NewAnalysisHandler(analysisService)
	projectionHandler := handlers.NewProjectionHandler(projectionService)

	// Register API v1 routes
	v1 := router.Group("/api/v1")
	{
		projections := v1.Group("/projections")
		{
			projections.POST("/buy-hold", projectionHandler.BuyHold)
			projections.POST("/brrrr", projectionHandler.BRRRR)
			projections.POST("/flip", projectionHandler.Flip)
			projections.POST("/flip/detailed", projectionHandler.FlipDetailed)
		}

		rehab := v1.Group("/rehab")
		{
			rehab.GET("/catalog", projectionHandler.RehabCatalog)
			rehab.POST("/estimate", projectionHandler.RehabEstimate)
		}

		analyses := v1.Group("/analyses")
		{
			analyses.POST("", analysisHandler.Create)
			analyses.GET("", analysisHandler.List)
			analyses.GET("/:id", analysisHandler.Get)
			analyses.PUT("/:id", analysisHandler.Update)
			analyses.DELETE("/:id", analysisHandler.Delete)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
