package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	httpLayer "property-simulator/http"
	"property-simulator/repository"
	"property-simulator/service"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the simulator HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context())
		},
	}
}

func runServer(ctx context.Context) error {
	logger := cfg.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	tables, err := loadTables()
	if err != nil {
		return err
	}
	logger.Info("tax tables loaded", "year", tables.Year, "path", cfg.TaxTables.Path)

	var store repository.CounterStore
	if cfg.Redis.Addr != "" {
		redisStore := repository.NewRedisCounterStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer redisStore.Close()
		if err := redisStore.Ping(ctx); err != nil {
			logger.Warn("redis unreachable, rate limiting will fail open", "addr", cfg.Redis.Addr, "error", err)
		}
		store = redisStore
	} else {
		memStore := repository.NewMemoryCounterStore()
		defer memStore.Stop()
		store = memStore
	}

	router := httpLayer.NewRouter(httpLayer.Dependencies{
		Simulator:      service.NewSimulatorService(tables, cfg.Simulator.ScheduleMonths),
		TermComparison: service.NewTermComparisonService(),
		RateLimiter:    httpLayer.NewRateLimiter(store, cfg.RateLimit.Capacity, cfg.RateLimit.Window, logger),
		Metrics:        httpLayer.NewMetrics(),
		Logger:         logger,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("API listening", "addr", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		logger.Error("server failed", "error", err)
		return err
	case <-ctx.Done():
		logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
		return err
	}

	logger.Info("server exited")
	return nil
}
