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

	"localnews/internal/client"
	"localnews/internal/observability/logging"
	"localnews/internal/web"
	"localnews/pkg/config"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := web.LoadConfig()
	if err != nil {
		logger.Error("failed to load web configuration", slog.Any("error", err))
		os.Exit(1)
	}

	api := client.New(cfg.APIBaseURL)
	api.HTTP.Timeout = cfg.RequestTimeout
	server, err := web.NewServer(cfg, api, logger)
	if err != nil {
		logger.Error("failed to build web server", slog.Any("error", err))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("web server starting",
			slog.String("addr", cfg.ListenAddr),
			slog.String("api", cfg.APIBaseURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("web server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down web server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("web server shutdown failed", slog.Any("error", err))
	}
	logger.Info("web server stopped")
}
