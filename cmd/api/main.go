// Package main is the entry point for the TripWeaver API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/wayfarer-labs/tripweaver/backend/internal/cache"
	"github.com/wayfarer-labs/tripweaver/backend/internal/config"
	"github.com/wayfarer-labs/tripweaver/backend/internal/handler"
	"github.com/wayfarer-labs/tripweaver/backend/internal/planner"
	"github.com/wayfarer-labs/tripweaver/backend/internal/repo"
	"github.com/wayfarer-labs/tripweaver/backend/internal/service"
	"github.com/wayfarer-labs/tripweaver/backend/internal/worker"
	"github.com/wayfarer-labs/tripweaver/backend/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	// .env is a local development convenience; missing files are fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	if err := migrate(cfg.DatabaseURL); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// --- Redis ------------------------------------------------------------
	redisClient, err := cache.Connect(context.Background(), cfg.RedisURL)
	if err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	searchCache := cache.NewSearchCache(redisClient)

	// --- Services ---------------------------------------------------------
	trips := repo.NewTripRepo(pool)
	days := repo.NewItineraryRepo(pool)
	dests := repo.NewDestinationRepo(pool)

	provider := planner.NewOpenAIProvider(cfg.OpenAIKey, cfg.AIModel)

	genPool := worker.NewPool(cfg.QueueSize, logger)
	tripSvc := service.NewTripService(trips, genPool, logger)
	itinSvc := service.NewItineraryService(trips, days, provider, genPool, logger)
	destSvc := service.NewDestinationService(dests, searchCache, logger)
	exportSvc := service.NewExportService(trips, days)

	genPool.Start(itinSvc, cfg.Workers)
	defer genPool.Close()

	if err := destSvc.Seed(context.Background()); err != nil {
		slog.Error("failed to seed destinations", "error", err)
		os.Exit(1)
	}

	// --- Router -----------------------------------------------------------
	server := handler.NewServer(tripSvc, itinSvc, destSvc, exportSvc)
	router := handler.NewRouter(server, handler.RouterConfig{
		JWTSecret:   cfg.JWTSecret,
		CORSOrigins: cfg.CORSOrigins,
		DB:          pool,
		Cache:       searchCache,
		Logger:      logger,
	})

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing. The deferred
	// genPool.Close drains queued generations after the listener stops.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// migrate applies all pending goose migrations. Goose needs database/sql, so
// it gets its own short-lived connection rather than the pgx pool.
func migrate(databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	_, err = provider.Up(context.Background())
	return err
}
