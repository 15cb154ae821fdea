package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/remessas/screening-service/internal/api"
	"github.com/remessas/screening-service/internal/config"
	"github.com/remessas/screening-service/internal/pkg/logger"
	"github.com/remessas/screening-service/internal/pkg/metrics"
	"github.com/remessas/screening-service/internal/screening"
	"github.com/remessas/screening-service/internal/store"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize Logger
	log, err := logger.New("screening-service", cfg.Log.Environment, cfg.Log.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	rules := cfg.Screening.Rules()
	if err := rules.Validate(); err != nil {
		log.Fatal("invalid screening thresholds", logger.ErrorField(err))
	}

	// 3. Build the screening engine and its collaborators
	historyStore := store.NewMemoryStore()
	collector := metrics.NewCollector()
	engine := screening.NewEngine(
		cfg.Screening.SanctionsList,
		cfg.Screening.HighRiskCountries,
		historyStore,
		rules,
		log,
		collector,
	)

	log.Info("reference data loaded",
		logger.IntField("sanctions_entries", len(cfg.Screening.SanctionsList)),
		logger.IntField("high_risk_countries", len(cfg.Screening.HighRiskCountries)),
	)

	// 4. Initialize Echo
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Security.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
	}))

	api.Register(e, api.NewHandler(engine, historyStore, log), collector.Handler())

	// 5. Start Server (Graceful Shutdown)
	serverAddr := fmt.Sprintf(":%d", cfg.Server.Port)

	go func() {
		if err := e.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("shutting down the server", logger.ErrorField(err))
		}
	}()

	log.Info("server started", logger.StringField("addr", serverAddr))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal("forced shutdown", logger.ErrorField(err))
	}

	log.Info("server exited properly")
}
