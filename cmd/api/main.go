package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/Tomlord1122/dayplanner-backend/internal/config"
	"github.com/Tomlord1122/dayplanner-backend/internal/database"
	"github.com/Tomlord1122/dayplanner-backend/internal/domain"
	"github.com/Tomlord1122/dayplanner-backend/internal/logging"
	"github.com/Tomlord1122/dayplanner-backend/internal/repository"
	"github.com/Tomlord1122/dayplanner-backend/internal/server"
	"github.com/Tomlord1122/dayplanner-backend/internal/service"
)

func gracefulShutdown(apiServer *http.Server, dbService database.Service, logger *slog.Logger, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	logger.Info("shutting down gracefully, press Ctrl+C again to force")
	stop()

	// The server has 5 seconds to finish the requests it is currently handling.
	ctxTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctxTimeout); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if err := dbService.Close(); err != nil {
		logger.Error("closing database connection pool", "error", err)
	}

	logger.Info("server exiting")
	done <- true
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}
	loc, _ := cfg.Location()
	today := func() string { return domain.Today(time.Now(), loc) }

	// 1. Database: connect, migrate, seed.
	dbService, err := database.New(cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	if err := dbService.Migrate(context.Background()); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}
	gormDB := dbService.GetDB()

	// 2. Repositories
	timeout := cfg.Database.QueryTimeout
	todoRepo := repository.NewGormTodoRepository(gormDB, timeout)
	categoryRepo := repository.NewGormCategoryRepository(gormDB, timeout)
	rolloverRepo := repository.NewGormRolloverRepository(gormDB, timeout)
	dashboardRepo := repository.NewGormDashboardRepository(gormDB, timeout)

	// 3. Services
	rolloverService := service.NewRolloverService(rolloverRepo, logger)

	// Overdue todos are carried forward before the first request is served.
	if _, err := rolloverService.RunRollover(context.Background(), today()); err != nil {
		logger.Error("startup rollover failed", "error", err)
		_ = dbService.Close()
		os.Exit(1)
	}

	// 4. Server
	apiServer := server.NewServer(cfg.Port, server.Dependencies{
		Todos:          service.NewTodoService(todoRepo, logger),
		Categories:     service.NewCategoryService(categoryRepo, logger),
		Rollover:       rolloverService,
		Dashboard:      service.NewDashboardService(dashboardRepo, logger),
		Health:         dbService,
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		Today:          today,
	})

	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, dbService, logger, done)

	logger.Info("starting server", "addr", apiServer.Addr, "env", cfg.AppEnv)
	err = apiServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server error", "error", err)
		os.Exit(1)
	}

	<-done
	logger.Info("graceful shutdown complete")
}
