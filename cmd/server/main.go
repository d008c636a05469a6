package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bet-ledger/internal/config"
	"bet-ledger/internal/gateway"
	"bet-ledger/internal/server"
	"bet-ledger/internal/usecase"
	"bet-ledger/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New(logger.Config{Level: "info"})
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Str("data_dir", cfg.DataDir).Msg("Starting bet-ledger")

	// Initialize store
	store, err := gateway.NewJSONFileStore(cfg.DataDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize store")
	}

	// Initialize usecases
	ingest := usecase.NewIngestService(store, log)
	stats := usecase.NewStatsService(store)

	// Initialize HTTP server
	srv := server.New(server.Config{
		Addr:    cfg.Addr(),
		Log:     log,
		Ingest:  ingest,
		Stats:   stats,
		DevMode: cfg.DevMode,
	})

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
