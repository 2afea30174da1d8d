package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"racing_analyzer/internal/api"
	"racing_analyzer/internal/app"
	"racing_analyzer/internal/config"
	"racing_analyzer/internal/scheduler"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	withCron := flag.Bool("cron", true, "run the scheduled daily sync in-process")
	flag.Parse()

	logger := app.NewLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = app.NewLogger(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	runner := scheduler.NewRunner(a.Sync, scheduler.RunnerConfig{
		Workers:    cfg.Sync.Workers,
		QueueSize:  cfg.Sync.QueueSize,
		RunTimeout: cfg.Sync.RunTimeout,
	}, logger)
	defer runner.Stop()

	if *withCron {
		sched := scheduler.NewScheduler(runner, cfg.Sync.Schedule, logger)
		go func() {
			if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("scheduler error", "error", err)
				cancel()
			}
		}()
	}

	h := api.New(api.Deps{
		DB:       a.DB,
		Races:    a.Races,
		Horses:   a.Horses,
		Comments: a.Comments,
		Feedback: a.Feedback,
		Stats:    a.Stats,
		Runner:   runner,
		Logger:   logger,
	})
	e := api.NewServer(h, a.Metrics, cfg.HTTP.CORSOrigins, logger)

	go func() {
		logger.Info("starting api server", "addr", cfg.HTTP.Addr, "version", api.Version)
		if err := e.Start(cfg.HTTP.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server exited", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
}
