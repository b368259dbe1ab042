package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/trivia-hub/trivia-service/internal/cache"
	"github.com/trivia-hub/trivia-service/internal/config"
	"github.com/trivia-hub/trivia-service/internal/events"
	"github.com/trivia-hub/trivia-service/internal/handlers"
	"github.com/trivia-hub/trivia-service/internal/repositories/postgres"
	"github.com/trivia-hub/trivia-service/internal/services"
	"github.com/trivia-hub/trivia-service/internal/utils"
	"github.com/trivia-hub/trivia-service/internal/validator"
	"github.com/trivia-hub/trivia-service/pkg"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run owns every resource so its defers execute on both the error
// paths and the signal-driven shutdown path.
func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
		logger = utils.NewDefaultLogger()
	} else {
		logger = utils.NewDevelopmentLogger()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}

	repo := postgres.NewRepository(db)
	defer repo.Close()

	// Redis is optional; without it category reads skip the cache.
	var cacheService cache.CacheService = cache.NoopCache{}
	if cfg.RedisURL != "" {
		redisClient, err := pkg.NewRedisClient(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to init redis: %w", err)
		}
		defer redisClient.Close()
		cacheService = cache.NewRedisCache(redisClient, logger)
	}

	// Kafka is optional; without brokers lifecycle events stay in memory.
	var publisher events.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err = events.NewKafkaEventPublisher(events.PublisherConfig{
			KafkaBrokers: cfg.KafkaBrokers,
			TopicName:    cfg.EventsTopic,
			Logger:       utils.ToSlogLogger(logger),
		})
		if err != nil {
			return fmt.Errorf("failed to init event publisher: %w", err)
		}
	} else {
		publisher = events.NewMockEventPublisher(utils.ToSlogLogger(logger))
	}
	defer publisher.Close()

	serviceManager := services.NewServiceManager(repo, cacheService, publisher, logger, validator.New(), nil)

	router := gin.New()
	router.Use(utils.LoggerMiddleware(logger), gin.Recovery())

	handlerManager := handlers.NewHandlerManager(serviceManager, logger)
	handlerManager.SetupRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting trivia service", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("trivia service stopped")
	return nil
}
