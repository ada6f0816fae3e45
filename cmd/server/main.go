package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/Codenidhi/-hustlehub-jobportal/api"
	"github.com/Codenidhi/-hustlehub-jobportal/internal/config"
	"github.com/Codenidhi/-hustlehub-jobportal/internal/store"
	filestore "github.com/Codenidhi/-hustlehub-jobportal/internal/store/file"
	sqlitestore "github.com/Codenidhi/-hustlehub-jobportal/internal/store/sqlite"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/ids"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	api.SetLogger(logger)

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Error("failed to load config", slog.Any("err", err))
		os.Exit(1)
	}

	logger.Info("starting hustlehub server",
		slog.String("version", version),
		slog.String("build_time", buildTime),
		slog.String("storage", cfg.StorageBackend),
	)

	ctx := context.Background()

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open store", slog.Any("err", err))
		os.Exit(1)
	}

	handler := api.SetupRoutes(version, buildTime, st, ids.UUID{})

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", slog.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", slog.Any("err", err))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", slog.Any("err", err))
	}

	if err := st.Close(); err != nil {
		logger.Error("failed to close store", slog.Any("err", err))
	}

	logger.Info("server exited")
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.Store, error) {
	switch cfg.StorageBackend {
	case config.StorageSQLite:
		return sqlitestore.New(ctx, cfg.DatabasePath, logger)
	case config.StorageFile:
		return filestore.New(cfg.DataDir, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
