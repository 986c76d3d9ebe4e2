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

	"golang.org/x/sync/errgroup"

	"docbrief/internal/config"
	"docbrief/internal/infra/adapter/persistence/postgres"
	"docbrief/internal/infra/adapter/persistence/sqlite"
	"docbrief/internal/infra/archive"
	"docbrief/internal/infra/db"
	"docbrief/internal/infra/generator"
	"docbrief/internal/observability/logging"
	"docbrief/internal/observability/tracing"
	"docbrief/internal/repository"
	"docbrief/internal/resilience/circuitbreaker"

	sumUC "docbrief/internal/usecase/summarize"

	hhttp "docbrief/internal/handler/http"
	"docbrief/internal/handler/http/requestid"
	hsummary "docbrief/internal/handler/http/summary"
)

func main() {
	logger := logging.NewLogger()
	if os.Getenv("LOG_FORMAT") == "text" {
		logger = logging.NewTextLogger()
	}
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	shutdownTracer, err := tracing.InitTracer("docbrief")
	if err != nil {
		logger.Error("failed to initialize tracer", slog.Any("error", err))
		os.Exit(1)
	}

	database := initDatabase(logger, cfg)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	svc := buildService(logger, cfg, database)
	handler := setupServer(logger, cfg, database, svc)

	runServer(logger, cfg, handler)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Error("tracer shutdown failed", slog.Any("error", err))
	}
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger, cfg *config.Config) *sql.DB {
	database, err := db.Open(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database, cfg.DB.Driver); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// buildService assembles the summarization service from its configured
// generator, repository, and optional archiver.
func buildService(logger *slog.Logger, cfg *config.Config, database *sql.DB) *sumUC.Service {
	gen, err := generator.New(generator.Config{
		Provider: cfg.Generator.Provider,
		APIKey:   cfg.Generator.APIKey,
		Model:    cfg.Generator.Model,
		Timeout:  cfg.Generator.Timeout,
	})
	if err != nil {
		logger.Error("failed to initialize generator", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("generator initialized", slog.String("provider", cfg.Generator.Provider))

	// リポジトリはサーキットブレーカー経由でDBにアクセスする
	dbcb := circuitbreaker.NewDBCircuitBreaker(database)
	var repo repository.SummaryRepository
	switch cfg.DB.Driver {
	case db.DriverPostgres:
		repo = postgres.NewSummaryRepo(dbcb)
	default:
		repo = sqlite.NewSummaryRepo(dbcb)
	}

	opts := []sumUC.Option{
		sumUC.WithGenerationTimeout(cfg.Generator.GenerationTimeout),
	}
	if cfg.Archive.Enabled {
		opts = append(opts, sumUC.WithArchiver(archive.NewWriter(cfg.Archive.Dir)))
		logger.Info("summary archive enabled", slog.String("dir", cfg.Archive.Dir))
	}

	return sumUC.NewService(gen, repo, logger, opts...)
}

// setupServer registers all routes and wraps them in the middleware chain.
func setupServer(logger *slog.Logger, cfg *config.Config, database *sql.DB, svc *sumUC.Service) http.Handler {
	mux := http.NewServeMux()
	hsummary.Register(mux, svc)

	archiveDir := ""
	if cfg.Archive.Enabled {
		archiveDir = cfg.Archive.Dir
	}

	// ヘルスチェックエンドポイント（認証不要）
	mux.Handle("/health", &hhttp.HealthHandler{DB: database, Version: cfg.Version, ArchiveDir: archiveDir})
	mux.Handle("/ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("/live", &hhttp.LiveHandler{})
	if cfg.MetricsAddr == "" {
		mux.Handle("/metrics", hhttp.MetricsHandler())
	}

	// Build middleware chain, innermost first:
	// request ID → tracing → rate limit → recovery → logging → body limit → timeout → metrics
	chain := http.Handler(mux)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.Timeout(cfg.RequestTimeout)(chain)
	chain = hhttp.LimitRequestBody(cfg.MaxBodyBytes)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)

	if cfg.RateLimit.Enabled {
		limiter := hhttp.NewRateLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Window)
		chain = limiter.Limit(chain)
		logger.Info("rate limiting initialized",
			slog.Int("limit", cfg.RateLimit.Limit),
			slog.Duration("window", cfg.RateLimit.Window))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the API server (and the metrics server, when configured)
// and blocks until shutdown completes.
func runServer(logger *slog.Logger, cfg *config.Config, handler http.Handler) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	apiSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	var metricsSrv *http.Server
	if cfg.MetricsAddr != "" {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", hhttp.MetricsHandler())
		metricsSrv = &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           metricsMux,
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", cfg.Version))
		if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if metricsSrv != nil {
		g.Go(func() error {
			logger.Info("metrics server starting", slog.String("addr", cfg.MetricsAddr))
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		var shutdownErr error
		if err := apiSrv.Shutdown(shutdownCtx); err != nil {
			shutdownErr = err
		}
		if metricsSrv != nil {
			if err := metricsSrv.Shutdown(shutdownCtx); err != nil && shutdownErr == nil {
				shutdownErr = err
			}
		}
		return shutdownErr
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
