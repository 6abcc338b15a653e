package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pgRepo "localnews/internal/infra/adapter/persistence/postgres"
	sqliteRepo "localnews/internal/infra/adapter/persistence/sqlite"
	"localnews/internal/infra/db"
	"localnews/internal/observability/logging"
	"localnews/internal/repository"
	"localnews/pkg/config"

	artUC "localnews/internal/usecase/article"

	hhttp "localnews/internal/handler/http"
	harticle "localnews/internal/handler/http/article"
	"localnews/internal/handler/http/middleware"
	"localnews/internal/handler/http/requestid"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	database, kind := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	repo := newArticleRepo(database, kind)
	seedDatabase(logger, repo)

	version := getVersion()
	handler := setupServer(logger, database, repo, version)

	runServer(logger, handler, version)
}

// initDatabase opens the configured database and applies the schema.
func initDatabase(logger *slog.Logger) (*sql.DB, db.Kind) {
	database, kind, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database, kind); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database ready", slog.String("kind", string(kind)))
	return database, kind
}

func newArticleRepo(database *sql.DB, kind db.Kind) repository.ArticleRepository {
	if kind == db.KindPostgres {
		return pgRepo.NewArticleRepo(database)
	}
	return sqliteRepo.NewArticleRepo(database)
}

// seedDatabase loads the sample catalog before the listener starts, so
// the first request already sees data. Seeding is idempotent.
func seedDatabase(logger *slog.Logger, repo repository.ArticleRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.EnsureSeeded(ctx, repo, logger); err != nil {
		logger.Error("failed to seed database", slog.Any("error", err))
		os.Exit(1)
	}

	count, err := repo.Count(ctx)
	if err == nil {
		hhttp.UpdateArticlesTotal(count)
	}
}

func getVersion() string {
	return config.GetEnvString("VERSION", "1.0.0")
}

// setupServer registers routes and wraps them in the middleware chain.
func setupServer(logger *slog.Logger, database *sql.DB, repo repository.ArticleRepository, version string) http.Handler {
	artSvc := artUC.NewService(repo)

	mux := http.NewServeMux()
	harticle.Register(mux, artSvc, logger)
	mux.Handle("GET /health", hhttp.HealthHandler{DB: database})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.HandleFunc("/health", hhttp.NotFound)
	mux.HandleFunc("/metrics", hhttp.NotFound)
	mux.Handle("/", hhttp.RootHandler{Version: version})

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the handler chain.
// Order: CORS -> Request ID -> Recovery -> Logging -> Body Limit -> Metrics
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	corsConfig := middleware.LoadCORSConfig()
	logger.Info("CORS enabled",
		slog.Any("allowed_origins", corsConfig.AllowedOrigins),
		slog.Any("allowed_methods", corsConfig.AllowedMethods),
		slog.Int("max_age", corsConfig.MaxAge))

	chain := hhttp.MetricsMiddleware(handler)
	chain = hhttp.LimitRequestBody(1 << 20)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(corsConfig)(chain)
	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := fmt.Sprintf(":%d", config.GetEnvInt("PORT", 5000))

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.GetEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second))
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
