package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/CameronXie/neptune-tea-api/internal/api/rest"
	"github.com/CameronXie/neptune-tea-api/internal/api/rest/handlers"
	"github.com/CameronXie/neptune-tea-api/internal/api/rest/middlewares"
	"github.com/CameronXie/neptune-tea-api/internal/config"
	"github.com/CameronXie/neptune-tea-api/internal/repository/database"
	"github.com/CameronXie/neptune-tea-api/internal/seed"
	"github.com/CameronXie/neptune-tea-api/internal/version"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("version", version.Version),
	)
	logger.Info("api_starting")

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config_load_failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, logger)
	stop()

	if err != nil {
		logger.Error("api_failed", "error", err)
		os.Exit(1)
	}

	logger.Info("api_stopped")
}

// run opens the database, prepares schema and menu, then serves HTTP until ctx is cancelled.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := database.Open(ctx, &cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("db_init: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("db_close_failed", "error", err)
		}
	}()

	if err := database.EnsureSchema(ctx, db); err != nil {
		return fmt.Errorf("ensure_schema: %w", err)
	}

	menuRepo := database.NewMenuRepository(db)
	orderRepo := database.NewOrderRepository(db)

	// Seeding finishes before the listener opens so no request can observe an empty menu.
	if _, err := seed.SeedIfEmpty(ctx, menuRepo, logger); err != nil {
		return fmt.Errorf("seed_menu: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("sql_db: %w", err)
	}

	handler := rest.NewMuxWithHandlers(&rest.RouterConfig{
		MenuHandler:   handlers.NewMenuHandler(menuRepo, logger),
		OrderHandler:  handlers.NewOrderHandler(orderRepo, logger),
		HealthHandler: handlers.NewHealthHandler(sqlDB, logger),
		Middlewares: []middlewares.Middleware{
			middlewares.NewRequestLoggerMiddleware(logger),
			middlewares.NewCORSMiddleware(cfg.AllowedOrigin),
		},
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("api_listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("api_shutting_down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
