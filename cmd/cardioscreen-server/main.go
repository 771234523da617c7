package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cardioscreen/cardioscreen/internal/config"
	"github.com/cardioscreen/cardioscreen/internal/domain/patient"
	"github.com/cardioscreen/cardioscreen/internal/domain/report"
	"github.com/cardioscreen/cardioscreen/internal/domain/risk"
	"github.com/cardioscreen/cardioscreen/internal/platform/auth"
	"github.com/cardioscreen/cardioscreen/internal/platform/middleware"
	"github.com/cardioscreen/cardioscreen/internal/platform/session"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "cardioscreen-server",
		Short: "Cardiovascular risk screening API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(analyzeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the screening API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

// analyzeCmd scores a single record from a JSON file and prints the full
// report, using the same pipeline as the HTTP API.
func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <input.json>",
		Short: "Score a patient record from a JSON file and print the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(args[0])
		},
	}
	return cmd
}

func newLogger(cfg *config.Config) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger
}

func newSessionStore(cfg *config.Config, logger zerolog.Logger) (session.Store, error) {
	if cfg.RedisURL != "" {
		store, err := session.NewRedisStore(cfg.RedisURL, session.Config{TTL: cfg.SessionTTL})
		if err != nil {
			return nil, err
		}
		logger.Info().Msg("using redis session store")
		return store, nil
	}
	logger.Info().Msg("using in-memory session store")
	return session.NewMemoryStore(session.Config{TTL: cfg.SessionTTL}), nil
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	store, err := newSessionStore(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect session store")
	}
	defer store.Close()

	// Services
	patientSvc := patient.NewService(store, logger)
	riskSvc := risk.NewService(patientSvc, risk.NewThresholdScorer(), logger)
	reportSvc := report.NewService(riskSvc, logger)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit(cfg.BodyLimit))
	e.Use(middleware.RequestTimeout(cfg.RequestTimeout))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Auth middleware
	if cfg.IsDev() {
		e.Use(auth.DevAuthMiddleware())
	} else {
		e.Use(auth.JWTMiddleware(auth.JWTConfig{
			SigningKey: []byte(cfg.AuthSecret),
			Issuer:     "cardioscreen",
			Audience:   "cardioscreen-api",
		}))
	}

	// API group with rate limiting
	apiV1 := e.Group("/api/v1")
	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version,
		})
	})

	// Domain routes
	patient.NewHandler(patientSvc).RegisterRoutes(apiV1)
	risk.NewHandler(riskSvc).RegisterRoutes(apiV1)
	report.NewHandler(reportSvc).RegisterRoutes(apiV1)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

func runAnalyze(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var in patient.Input
	if err := json.Unmarshal(raw, &in); err != nil {
		return err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	store := session.NewMemoryStore(session.Config{TTL: time.Minute})
	defer store.Close()

	patientSvc := patient.NewService(store, logger)
	riskSvc := risk.NewService(patientSvc, risk.NewThresholdScorer(), logger)

	analysis, err := riskSvc.AnalyzeInput(context.Background(), in)
	if err != nil {
		return err
	}
	rep := report.FromAnalysis(analysis)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
