// Package main provides the docbridge API server entrypoint.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/docbridge/docbridge/internal/accel"
	"github.com/docbridge/docbridge/internal/config"
	"github.com/docbridge/docbridge/internal/convert"
	"github.com/docbridge/docbridge/internal/observability"
)

func main() {
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	cfgPath := os.Getenv("CONFIG_PATH")
	if len(os.Args) > 2 && os.Args[1] == "--config" {
		cfgPath = os.Args[2]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:       cfg.Observability.LogLevel,
		Format:      cfg.Observability.LogFormat,
		ServiceName: cfg.Observability.ServiceName,
	})

	// Accelerator selection runs once; the converter configuration never
	// changes after construction.
	acc := accelOptions(cfg, logger)

	converter, err := convert.NewConverter(cfg.Converter, acc, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create converter")
	}

	service := convert.NewService(converter, logger, cfg.Converter.TempDir)

	logger.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("backend", cfg.Converter.Backend).
		Str("device", string(acc.Device)).
		Msg("Starting docbridge API")

	router := NewRouter(logger, cfg, service)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("HTTP server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error().Err(err).Msg("Server error")
	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdown)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
		if err := srv.Close(); err != nil {
			logger.Error().Err(err).Msg("Forced shutdown failed")
		}
	}

	logger.Info().Msg("Server stopped")
}

// accelOptions applies the configured device override, or detects one from
// the host when no override is set.
func accelOptions(cfg *config.Config, logger *observability.Logger) accel.Options {
	if cfg.Converter.Device != "" {
		opts := accel.Options{
			Device:     accel.Device(cfg.Converter.Device),
			NumThreads: cfg.Converter.NumThreads,
		}
		logger.Info().
			Str("device", string(opts.Device)).
			Int("num_threads", opts.NumThreads).
			Msg("Accelerator device set by configuration")
		return opts
	}

	opts := accel.DetectHost(logger)
	opts.NumThreads = cfg.Converter.NumThreads
	return opts
}
