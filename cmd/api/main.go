package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"newsdesk/internal/common/listquery"
	pgRepo "newsdesk/internal/infra/adapter/persistence/postgres"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/observability/logging"
	"newsdesk/pkg/config"

	artUC "newsdesk/internal/usecase/article"
	bnUC "newsdesk/internal/usecase/breakingnews"
	catUC "newsdesk/internal/usecase/category"

	hhttp "newsdesk/internal/handler/http"
	harticle "newsdesk/internal/handler/http/article"
	hbreaking "newsdesk/internal/handler/http/breakingnews"
	hcategory "newsdesk/internal/handler/http/category"
	"newsdesk/internal/handler/http/requestid"
)

func main() {
	logger := initLogger()
	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler := setupServer(logger, database, version)

	runServer(logger, handler, version)
}

// initLogger builds the process-wide structured logger and installs it as
// the slog default so library code logs through the same handler.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires repositories, services, routes and middleware into the
// final HTTP handler.
func setupServer(logger *slog.Logger, database *sql.DB, version string) http.Handler {
	catSvc := &catUC.Service{Repo: pgRepo.NewCategoryRepo(database)}
	artSvc := &artUC.Service{Repo: pgRepo.NewArticleRepo(database)}
	bnSvc := &bnUC.Service{Repo: pgRepo.NewBreakingNewsRepo(database)}

	mux := setupRoutes(database, version, catSvc, artSvc, bnSvc, logger)
	return applyMiddleware(logger, mux)
}

// setupRoutes registers all HTTP routes.
func setupRoutes(
	database *sql.DB,
	version string,
	catSvc *catUC.Service,
	artSvc *artUC.Service,
	bnSvc *bnUC.Service,
	logger *slog.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("/health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("/ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	queryCfg := listquery.LoadFromEnv()

	hcategory.Register(mux, catSvc)
	harticle.Register(mux, artSvc, queryCfg, logger)
	hbreaking.Register(mux, bnSvc)

	return mux
}

// applyMiddleware wraps the handler with the middleware chain.
// Middleware order: Request ID → Recovery → Logging → Body Limit → Metrics
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	maxBodyBytes := int64(config.GetEnvInt("MAX_REQUEST_BODY_BYTES", 1<<20))

	wrapped := hhttp.MetricsMiddleware(handler)
	wrapped = hhttp.LimitRequestBody(maxBodyBytes)(wrapped)
	wrapped = hhttp.Logging(logger)(wrapped)
	wrapped = hhttp.Recover(logger)(wrapped)
	wrapped = requestid.Middleware(wrapped)
	return wrapped
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := config.GetEnvString("HTTP_ADDR", ":8080")

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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
