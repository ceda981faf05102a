// @title Checklist API
// @version 1.0
// @description Travel checklists grouped by trip type, with ordered items toggled between pendente and verificado.
// @BasePath /api/v1/internal
package main

import (
	"context"
	stderrors "errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NomadCrew/nomad-checklist-backend/config"
	"github.com/NomadCrew/nomad-checklist-backend/handlers"
	"github.com/NomadCrew/nomad-checklist-backend/internal/events"
	"github.com/NomadCrew/nomad-checklist-backend/internal/metrics"
	"github.com/NomadCrew/nomad-checklist-backend/internal/seed"
	"github.com/NomadCrew/nomad-checklist-backend/internal/store/memory"
	"github.com/NomadCrew/nomad-checklist-backend/logger"
	"github.com/NomadCrew/nomad-checklist-backend/middleware"
	"github.com/NomadCrew/nomad-checklist-backend/models"
	"github.com/NomadCrew/nomad-checklist-backend/router"
	"github.com/NomadCrew/nomad-checklist-backend/services"
	"github.com/NomadCrew/nomad-checklist-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const version = "1.0.0"

func main() {
	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := middleware.RegisterValidators(); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.Default()
	checklistStore := memory.NewChecklistStore(m.ObserveStore)

	// Event delivery is optional; without Redis, events are dropped.
	var publisher types.EventPublisher = events.NoopPublisher{}
	var redisPinger config.Pinger
	if cfg.Events.Enabled {
		redisClient := redis.NewClient(config.RedisOptions(&cfg.Redis))
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Warnw("Failed to close Redis client", "error", err)
			}
		}()

		if err := config.WaitForRedis(ctx, redisClient, 5, 2*time.Second); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		publisher = events.NewRedisPublisher(redisClient, m, events.Config{
			PublishTimeout: cfg.Events.PublishTimeout(),
		})
		redisPinger = redisClient
		log.Infow("Redis event publishing enabled", "address", cfg.Redis.Address)
	}

	opts := []models.Option{models.WithPublisher(publisher), models.WithMetrics(m)}
	checklistModel := models.NewChecklistModel(checklistStore, opts...)
	itemStatusModel := models.NewItemStatusModel(checklistStore, opts...)

	if cfg.Seed.File != "" {
		f, err := seed.LoadFile(cfg.Seed.File)
		if err != nil {
			log.Fatalf("Failed to load seed data: %v", err)
		}
		if _, err := seed.Apply(ctx, f, checklistModel, itemStatusModel); err != nil {
			log.Fatalf("Failed to apply seed data: %v", err)
		}
	}

	r := router.SetupRouter(router.Dependencies{
		Config:               cfg,
		Metrics:              m,
		Gatherer:             prometheus.DefaultGatherer,
		ChecklistHandler:     handlers.NewChecklistHandler(checklistModel),
		ChecklistItemHandler: handlers.NewChecklistItemHandler(checklistModel),
		ItemStatusHandler:    handlers.NewItemStatusHandler(itemStatusModel),
		HealthHandler:        handlers.NewHealthHandler(services.NewHealthService(checklistStore, redisPinger, version)),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infow("Starting server",
			"port", cfg.Server.Port,
			"environment", cfg.Server.Environment,
			"events_enabled", cfg.Events.Enabled)
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Graceful shutdown failed", "error", err)
		return
	}
	log.Info("Server stopped")
}
