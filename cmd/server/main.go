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
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/puckdata/internal/api"
	"github.com/jstittsworth/puckdata/internal/api/handlers"
	"github.com/jstittsworth/puckdata/internal/api/middleware"
	"github.com/jstittsworth/puckdata/internal/services"
	"github.com/jstittsworth/puckdata/internal/upstream"
	"github.com/jstittsworth/puckdata/pkg/config"
	"github.com/jstittsworth/puckdata/pkg/database"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Setup logging
	if cfg.IsDevelopment() {
		logrus.SetLevel(logrus.DebugLevel)
		gin.SetMode(gin.DebugMode)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
		gin.SetMode(gin.ReleaseMode)
	}
	logger := logrus.StandardLogger()

	// Connect to the ledger database
	db, err := database.NewConnection(cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Connect to Redis
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logrus.Fatalf("Failed to parse Redis URL: %v", err)
	}
	redisClient := redis.NewClient(opt)
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logrus.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize services
	ledger := services.NewLedgerService(db, logger)
	if err := ledger.Migrate(); err != nil {
		logrus.Fatalf("Failed to migrate ledger tables: %v", err)
	}
	freeTier := services.NewFreeTierService(redisClient, logger, cfg.FreeTierRequests, cfg.FreeTierWindow)
	receipts := services.NewReceiptIssuer(cfg.ReceiptSecret)

	// Initialize upstream clients
	nhl := upstream.NewNHLClient(cfg.NHLBaseURL, cfg.UpstreamTimeout, cfg.UpstreamRateLimit, cfg.BreakerThreshold, logger)
	espn := upstream.NewESPNClient(cfg.ESPNBaseURL, cfg.UpstreamTimeout, cfg.UpstreamRateLimit, cfg.BreakerThreshold, logger)

	// Live score hub and poller
	scoreHub := services.NewScoreHub(logger)
	go scoreHub.Run()
	if cfg.EnableScoreStream {
		poller := services.NewScorePoller(espn, scoreHub, logger, cfg.ScorePollInterval)
		if err := poller.Start(); err != nil {
			logrus.Errorf("Failed to start score poller: %v", err)
		} else {
			defer poller.Stop()
		}
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.CorsOrigins))

	// Health check endpoint
	router.GET("/health", handlers.GetHealth)

	// Setup API routes under /api/v1
	apiV1 := router.Group("/api/v1")
	api.SetupRoutes(apiV1, &api.Deps{
		NHL:      nhl,
		ESPN:     espn,
		Ledger:   ledger,
		FreeTier: freeTier,
		Receipts: receipts,
		Config:   cfg,
		Logger:   logger,
	})

	// WebSocket endpoint at root level (not under /api/v1)
	streamHandler := handlers.NewStreamHandler(scoreHub, logger)
	router.GET("/ws/scores", streamHandler.HandleScores)

	// Setup server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}
