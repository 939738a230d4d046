package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fmt"

	"launchpro/internal/adapter/gemini"
	httpadapter "launchpro/internal/adapter/http"
	"launchpro/internal/adapter/postgres"
	"launchpro/internal/adapter/sandbox"
	"launchpro/internal/adapter/usecase"
	"launchpro/internal/config"
	"launchpro/internal/core/port"
	"launchpro/internal/db"
)

// main is the entry point of the launchpro service. It loads configuration,
// optionally runs database migrations, initializes the database pool, the
// launch pipeline and the HTTP server, and starts the queue advancement
// ticker. On receiving a termination signal it gracefully shuts down the
// server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub‑config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewCampaignRepository(pool)

	// Platform adapters. Sandbox stand-ins are always available; real
	// platform integrations register here as they are added.
	registry := port.NewRegistry()
	for _, name := range []string{"meta", "google", "tiktok"} {
		registry.Register(sandbox.NewPlatform(name))
	}

	var network port.AffiliateNetwork = sandbox.NewNetwork()

	// Content generation runs against Gemini when an API key is present,
	// otherwise the deterministic sandbox generator.
	var generator port.ContentGenerator
	if cfg.Gemini.APIKey != "" && !cfg.Launch.Sandbox {
		generator, err = gemini.New(ctx, gemini.Config{
			APIKey:        cfg.Gemini.APIKey,
			TextModel:     cfg.Gemini.TextModel,
			ImageModel:    cfg.Gemini.ImageModel,
			VideoModel:    cfg.Gemini.VideoModel,
			AssetsDir:     cfg.Gemini.AssetsDir,
			AssetsBaseURL: cfg.Gemini.AssetsBaseURL,
		})
		if err != nil {
			logger.Error("gemini init error", slog.Any("error", err))
			os.Exit(1)
		}
	} else {
		logger.Info("using sandbox content generator")
		generator = sandbox.NewGenerator()
	}

	policy := usecase.RetryPolicy{
		MaxAttempts: cfg.Launch.RetryAttempts,
		BackoffBase: cfg.Launch.BackoffBase,
		BackoffCap:  cfg.Launch.BackoffCap,
	}
	queue := usecase.NewLaunchQueue()
	stage := usecase.NewContentStage(usecase.ContentStageConfig{
		Repo:         repo,
		Generator:    generator,
		Network:      network,
		Policy:       policy,
		CallTimeout:  cfg.Launch.CallTimeout,
		MediaTimeout: cfg.Launch.MediaPollTimeout,
		Logger:       logger,
	})
	launcher := usecase.NewLauncher(usecase.LauncherConfig{
		Registry:     registry,
		Repo:         repo,
		Policy:       policy,
		CallTimeout:  cfg.Launch.CallTimeout,
		PollInterval: cfg.Launch.MediaPollInterval,
		PollTimeout:  cfg.Launch.MediaPollTimeout,
		Logger:       logger,
	})
	svc := usecase.NewOrchestrator(usecase.OrchestratorConfig{
		Repo:                  repo,
		Queue:                 queue,
		Stage:                 stage,
		Launcher:              launcher,
		Network:               network,
		Registry:              registry,
		Policy:                policy,
		CallTimeout:           cfg.Launch.CallTimeout,
		AllowedCountries:      cfg.Launch.AllowedCountries,
		RequeueOnEarlyFailure: cfg.Launch.RequeueOnEarlyFailure,
		Logger:                logger,
	})

	// Rebuild the admission queue from persisted state.
	if err = svc.RestoreQueue(ctx); err != nil {
		logger.Error("queue restore error", slog.Any("error", err))
		os.Exit(1)
	}

	// Drive the queue: each tick starts the next campaign if the slot is
	// free. The AdvanceQueue endpoint triggers the same path on demand.
	go func() {
		ticker := time.NewTicker(cfg.Launch.AdvanceInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				id, err := svc.AdvanceQueue(ctx)
				if err != nil {
					logger.Error("queue advance error", slog.Any("error", err))
				} else if id != nil {
					logger.Info("campaign processed", slog.String("campaign_id", id.String()))
				}
			}
		}
	}()

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
