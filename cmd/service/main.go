package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "condotrack/internal/app"
	"condotrack/internal/entities"
	"condotrack/internal/handlers/rest/building_delete"
	"condotrack/internal/handlers/rest/healthcheck_head"
	"condotrack/internal/handlers/rest/login_post"
	"condotrack/internal/handlers/rest/me_get"
	"condotrack/internal/handlers/rest/officer_delete"
	"condotrack/internal/handlers/rest/package_delete"
	"condotrack/internal/handlers/rest/package_get"
	"condotrack/internal/handlers/rest/package_log_get"
	"condotrack/internal/handlers/rest/package_patch"
	"condotrack/internal/handlers/rest/package_post"
	"condotrack/internal/handlers/rest/packages_get"
	"condotrack/internal/handlers/rest/ping_get"
	"condotrack/internal/handlers/rest/room_delete"
	"condotrack/internal/handlers/rest/tenant_delete"
	"condotrack/internal/handlers/rest/tenant_package_logs_get"
	"condotrack/internal/handlers/rest/tenant_packages_get"
	"condotrack/internal/handlers/rest/tenant_profile_get"
	"condotrack/internal/handlers/rest/tenant_profile_put"
	"condotrack/internal/pkg/config"
	"condotrack/internal/pkg/dotenv"
	metrics_system "condotrack/internal/pkg/metrics"
	"condotrack/internal/pkg/middlewares/graceful_shutdown"
	"condotrack/internal/pkg/middlewares/metrics"
	"condotrack/internal/pkg/middlewares/rate_limiter"
	"condotrack/internal/pkg/middlewares/timeout"
	"condotrack/internal/pkg/postgres"
	"condotrack/pkg/logger"
	"condotrack/pkg/logger/zap_adapter"
	"condotrack/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting condotrack application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx feeds BaseContext and must survive SIGTERM. It is cancelled
	// only after server.Shutdown() so in-flight requests can finish.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled, so the case never fires
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must not descend from ctx, which is already cancelled here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/auth/login", login_post.New(log, app.ServiceAuth)).Methods("POST")

	staff := router.PathPrefix("/staff").Subrouter()
	staff.Use(app.AuthMiddleware.RequireStaff())
	staff.Handle("/me", me_get.New(log)).Methods("GET")
	staff.Handle("/packages", packages_get.New(log, app.ServiceQuery)).Methods("GET")
	staff.Handle("/packages", package_post.New(log, app.ServiceLifecycle)).Methods("POST")
	staff.Handle("/packages/{id}", package_get.New(log, app.ServiceQuery)).Methods("GET")
	staff.Handle("/packages/{id}", package_patch.New(log, app.ServiceLifecycle)).Methods("PATCH")
	staff.Handle("/packages/{id}", package_delete.New(log, app.ServiceLifecycle)).Methods("DELETE")
	staff.Handle("/package-log", package_log_get.New(log, app.ServiceQuery)).Methods("GET")

	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(app.AuthMiddleware.RequireStaff(entities.RoleAdmin))
	admin.Handle("/tenants/{id}", tenant_delete.New(log, app.ServiceDirectory)).Methods("DELETE")
	admin.Handle("/officers/{id}", officer_delete.New(log, app.ServiceDirectory)).Methods("DELETE")
	admin.Handle("/rooms/{id}", room_delete.New(log, app.ServiceDirectory)).Methods("DELETE")
	admin.Handle("/buildings/{id}", building_delete.New(log, app.ServiceDirectory)).Methods("DELETE")

	tenant := router.PathPrefix("/tenant").Subrouter()
	tenant.Use(app.AuthMiddleware.RequireTenant())
	tenant.Handle("/packages", tenant_packages_get.New(log, app.ServiceQuery)).Methods("GET")
	tenant.Handle("/packages/{id}/logs", tenant_package_logs_get.New(log, app.ServiceQuery)).Methods("GET")
	tenant.Handle("/profile", tenant_profile_get.New(log)).Methods("GET")
	tenant.Handle("/profile", tenant_profile_put.New(log, app.ServiceDirectory)).Methods("PUT")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
