package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"caseboard/config"
	"caseboard/handlers"
	"caseboard/middleware"
	"caseboard/store"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Build the record store once; everything below receives it explicitly
	s, err := newStore(cfg)
	if err != nil {
		logger.Fatal("failed to initialize store", zap.Error(err))
	}
	logger.Info("store ready", zap.Any("records", s.Stats()), zap.String("id_strategy", cfg.IDStrategy))

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	e, cleanup := newServer(cfg, s, logger, reg)
	defer cleanup()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("port", cfg.ServerPort), zap.String("environment", cfg.Environment))
		errCh <- e.Start(":" + cfg.ServerPort)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	}
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Printf("[WARNING] Invalid LOG_LEVEL %q, using info", cfg.LogLevel)
		level = zapcore.InfoLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}

func newStore(cfg *config.Config) (*store.Store, error) {
	ids, err := store.NewIDGenerator(cfg.IDStrategy)
	if err != nil {
		return nil, err
	}
	s := store.New(store.WithIDGenerator(ids))
	if cfg.SeedData {
		if err := s.Seed(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// newServer assembles the echo instance. The returned func releases the
// rate limiter.
func newServer(cfg *config.Config, s *store.Store, logger *zap.Logger, reg *prometheus.Registry) (*echo.Echo, func()) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	metrics := middleware.NewMetrics(reg)
	reg.MustRegister(store.NewCollector(s))

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	e.Use(metrics.Middleware())

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	var writes []echo.MiddlewareFunc
	cleanup := func() {}
	if cfg.WriteRateLimit > 0 {
		limiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
			Requests: cfg.WriteRateLimit,
			Window:   time.Minute,
			Skipper:  middleware.SkipReads,
		})
		writes = append(writes, limiter.Middleware())
		cleanup = limiter.Close
	}

	handlers.New(s, cfg, logger).Register(e, writes...)
	return e, cleanup
}
