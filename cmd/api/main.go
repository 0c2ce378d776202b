package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"

	"github.com/srgjo27/stay_booking/internal/adapter/auth"
	"github.com/srgjo27/stay_booking/internal/adapter/handler"
	"github.com/srgjo27/stay_booking/internal/adapter/repository/memory"
	"github.com/srgjo27/stay_booking/internal/adapter/repository/postgres"
	redisrepo "github.com/srgjo27/stay_booking/internal/adapter/repository/redis"
	"github.com/srgjo27/stay_booking/internal/core/domain"
	"github.com/srgjo27/stay_booking/internal/core/ports"
	"github.com/srgjo27/stay_booking/internal/core/services"
	"github.com/srgjo27/stay_booking/internal/observability/metrics"
	"github.com/srgjo27/stay_booking/internal/platform/cache"
	"github.com/srgjo27/stay_booking/internal/platform/config"
	"github.com/srgjo27/stay_booking/internal/platform/database"
	"github.com/srgjo27/stay_booking/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Default().Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider, db, err := newAuthProvider(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to set up authentication", "error", err)
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
	}

	sessions, redisClient, err := newSessionStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to set up session store", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	siteMetrics := metrics.NewSiteMetrics(registry)

	renderer, err := handler.NewRenderer(logger)
	if err != nil {
		logger.Error("failed to load templates", "error", err)
		os.Exit(1)
	}

	bookingService := services.NewBookingService(logger, siteMetrics)
	calendarService := services.NewCalendarService(time.Now, logger, siteMetrics)
	authService := services.NewAuthService(provider, sessions, logger, siteMetrics)

	router := handler.NewRouter(handler.RouterConfig{
		Logger:         logger,
		Calendar:       handler.NewCalendarHandler(calendarService, renderer),
		Booking:        handler.NewBookingHandler(bookingService, renderer, logger, cfg.MaxUploadBytes),
		Login:          handler.NewLoginHandler(authService, renderer, logger, cfg.CookieSecure),
		Auth:           authService,
		RequireLogin:   cfg.RequireLogin,
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr, "auth_backend", cfg.AuthBackend, "session_backend", cfg.SessionBackend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server startup failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server exiting")
}

func newAuthProvider(ctx context.Context, cfg *config.Config, logger *logging.Logger) (ports.AuthenticationProvider, *sql.DB, error) {
	if cfg.AuthBackend != config.AuthBackendPostgres {
		return auth.NewStaticProvider(cfg.LoginUsername, cfg.LoginPassword), nil, nil
	}

	db, err := database.NewPostgresDB(ctx, database.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
	}, logger)
	if err != nil {
		return nil, nil, err
	}

	if err := database.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}

	repo := postgres.NewCredentialRepository(db)
	seed := domain.Credentials{Username: cfg.LoginUsername, Password: cfg.LoginPassword}
	if err := repo.Upsert(ctx, seed); err != nil {
		db.Close()
		return nil, nil, err
	}

	return repo, db, nil
}

func newSessionStore(ctx context.Context, cfg *config.Config, logger *logging.Logger) (ports.SessionFlagStore, *goredis.Client, error) {
	if cfg.SessionBackend != config.SessionBackendRedis {
		return memory.NewSessionRepository(), nil, nil
	}

	client, err := cache.NewRedisClient(ctx, cache.Config{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
	}, logger)
	if err != nil {
		return nil, nil, err
	}

	return redisrepo.NewSessionRepository(client, cfg.SessionTTL), client, nil
}
