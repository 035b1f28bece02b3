// @title       Swagger Petstore
// @version     1.0.0
// @description A pet store: create, list and show pets.
// @license.name MIT
// @BasePath    /v1
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	apppet "petstore/internal/app/pet"
	"petstore/internal/app/stub"
	"petstore/internal/cache"
	"petstore/internal/config"
	"petstore/internal/db"
	"petstore/internal/db/memory"
	"petstore/internal/db/repository"
	dompet "petstore/internal/domain/pet"
	"petstore/internal/http/handlers/health"
	"petstore/internal/http/handlers/pets"
	"petstore/internal/http/router"
	"petstore/internal/kafka"
	"petstore/internal/logging"
	"petstore/internal/petstore"
	"petstore/internal/telemetry"
)

func main() {
	// Top-level context with graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1) Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2) Initialize logger
	logger := logging.New(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceEnv,
		cfg.LogLevel,
	)

	logger.Info("starting service",
		"env", cfg.Environment,
		"backend", cfg.Backend,
		"api_version", petstore.APIVersion,
	)

	if err := run(ctx, stop, cfg, logger); err != nil {
		logger.Error("service failed", "error", err)
		os.Exit(1)
	}

	logger.Info("service stopped")
}

func run(ctx context.Context, stop context.CancelFunc, cfg *config.Config, logger logging.Logger) error {
	// 3) Initialize telemetry (OpenTelemetry)
	otelShutdown, err := telemetry.Setup(ctx, cfg.Observability, logger)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	// ensure we flush / shut down exporter on exit
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown telemetry", "error", err)
		}
	}()

	checks := map[string]health.Pinger{}

	// 4) Backing store
	var repo dompet.Repository
	switch cfg.Backend {
	case config.BackendPostgres:
		dbClient, err := db.NewClient(ctx, cfg.Postgres, logger)
		if err != nil {
			return fmt.Errorf("init database: %w", err)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				logger.Error("failed to close database", "error", err)
			}
		}()

		if cfg.Postgres.AutoMigrate {
			if err := dbClient.EnsureSchema(ctx); err != nil {
				return fmt.Errorf("ensure schema: %w", err)
			}
		}

		repo = repository.NewPetRepository(dbClient, logger)
		checks["db"] = dbClient
	case config.BackendMemory:
		repo = memory.NewPetRepo()
	}

	// 5) Initialize Redis
	var petCache cache.PetCache = cache.NoopPetCache{}
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis, logger)
		if err != nil {
			return fmt.Errorf("init redis: %w", err)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Error("failed to close redis", "error", err)
			}
		}()

		petCache = cache.NewPetCache(redisClient)
		checks["redis"] = redisClient
	}

	// 6) Initialize Kafka bus (Watermill)
	bus, closeBus, err := kafka.NewBus(cfg.Kafka, logger)
	if err != nil {
		return fmt.Errorf("init kafka bus: %w", err)
	}
	defer func() {
		_ = closeBus(context.Background())
	}()

	// 7) Kafka router (for consumers)
	kafkaRouter, err := kafka.NewRouter(ctx, cfg.Kafka, logger)
	if err != nil {
		return fmt.Errorf("init kafka router: %w", err)
	}
	defer func() {
		_ = kafkaRouter.Close(context.Background())
	}()

	// 8) Construct the API
	var api petstore.API
	if cfg.Backend == config.BackendStub {
		api = stub.New()
	} else {
		api = apppet.NewService(
			repo,
			petCache,
			cfg.Redis.TTL,
			kafka.NewPetEvents(bus, cfg.Kafka, logger),
			logger,
		)
	}

	// 9) HTTP handlers & router
	healthHandler := health.NewHandler(checks, logger)
	petsHandler := pets.NewHandler(api, logger)

	httpRouter := router.NewRouter(
		logger,
		cfg.HTTP.RequestTimeout,
		healthHandler,
		petsHandler,
	)

	// 10) HTTP server
	srv := &http.Server{
		Addr: fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: otelhttp.NewHandler(
			httpRouter,
			cfg.Observability.ServiceName, // span name prefix
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 11) Start concurrent processes (HTTP server, Kafka router)
	errCh := make(chan error, 2)

	go func() {
		logger.Info("http server starting",
			"host", cfg.HTTP.Host,
			"port", cfg.HTTP.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	go func() {
		logger.Info("kafka router starting", "enabled", cfg.Kafka.Enabled)
		if err := kafkaRouter.Run(ctx); err != nil {
			errCh <- err
		}
	}()

	// 12) Wait for shutdown signal or an error
	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case runErr = <-errCh:
		logger.Error("fatal error from subsystem", "error", runErr)
		// Cancel context to trigger shutdown of others
		stop()
	}

	// 13) Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown http server", "error", err)
	}

	return runErr
}
