package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/edublog/blog-service/internal/auth"
	"github.com/edublog/blog-service/internal/config"
	"github.com/edublog/blog-service/internal/events"
	"github.com/edublog/blog-service/internal/handlers"
	"github.com/edublog/blog-service/internal/lifecycle"
	"github.com/edublog/blog-service/internal/repositories/postgres"
	"github.com/edublog/blog-service/internal/services"
	"github.com/edublog/blog-service/internal/utils"
	"github.com/edublog/blog-service/internal/validator"
	"github.com/edublog/blog-service/pkg"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	logger := utils.NewSlogLogger(slogLogger)

	state := lifecycle.NewState()

	// Initialize database (create-if-missing, connect, migrate)
	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		state.Set(lifecycle.PhaseFailed)
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize Redis (if configured)
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = pkg.NewRedisClient(cfg)
		if err != nil {
			log.Printf("Warning: Failed to initialize Redis: %v", err)
		}
	}

	// Initialize repositories
	repoManager := postgres.NewRepositoryManager(postgres.RepositoryConfig{
		DB:          db,
		RedisClient: redisClient,
	})
	if err := repoManager.Initialize(); err != nil {
		state.Set(lifecycle.PhaseFailed)
		log.Fatalf("Failed to initialize repositories: %v", err)
	}
	repo := repoManager.GetRepository()

	// Initialize token service and validator
	tokens := auth.NewTokenService(cfg.JWTSecret)
	v := validator.New()

	// Initialize event publisher (Kafka when configured, in-process otherwise)
	var publisher events.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err = events.NewKafkaPublisher(cfg.KafkaBrokers, slogLogger)
		if err != nil {
			log.Fatalf("Failed to initialize Kafka publisher: %v", err)
		}
	} else {
		publisher = events.NewGoChannelPublisher(slogLogger)
	}

	// Initialize services
	serviceManager := services.NewDefaultServiceManager(repo, tokens, v, publisher, cfg.EventsTopic, slogLogger)

	// Initialize handlers
	development := cfg.Environment == "development"
	handlerManager := handlers.NewHandlerManager(serviceManager, tokens, repo.User(), logger, development)

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handlers.SetupMiddleware(router, logger, state)
	handlerManager.SetupRoutes(router)

	// Bootstrap finished; release traffic.
	state.Set(lifecycle.PhaseReady)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := serviceManager.Shutdown(ctx); err != nil {
		log.Printf("Failed to shutdown services: %v", err)
	}

	if err := repo.Close(); err != nil {
		log.Printf("Failed to close repositories: %v", err)
	}

	logger.Info("Server exited")
}
