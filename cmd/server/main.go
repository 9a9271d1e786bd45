package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"strhelpers/internal/config"
	"strhelpers/internal/logging"
	"strhelpers/internal/repository"
	"strhelpers/internal/server"
	"strhelpers/internal/service"
	"strhelpers/internal/tracing"
	"strhelpers/pkg/strutil"
)

const tracerShutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging, os.Stdout)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	tp, err := tracing.Setup(context.Background(), cfg.Tracing)
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), tracerShutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error("failed to flush traces", "error", err)
		}
	}()

	repo, err := newRepository(cfg.Storage)
	if err != nil {
		return fmt.Errorf("opening usage store: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("failed to close usage store", "error", err)
		}
	}()

	helperService := service.NewHelperService(repo, strutil.RealClock{},
		service.WithTruncateLimit(cfg.Helpers.TruncateLimit),
		service.WithLogger(logger),
	)

	srv := server.New(server.Config{
		Port:            cfg.Server.Port,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
	}, logger, helperService)

	logger.Info("starting server",
		"port", cfg.Server.Port,
		"storage", storageKind(cfg.Storage),
		"tracing", tp.Enabled(),
	)

	return srv.Run(context.Background())
}

func newRepository(cfg config.StorageConfig) (repository.Repository, error) {
	if cfg.Path == "" {
		return repository.NewMemoryRepository(), nil
	}
	return repository.NewBoltRepository(cfg.Path)
}

func storageKind(cfg config.StorageConfig) string {
	if cfg.Path == "" {
		return "memory"
	}
	return "bolt"
}
