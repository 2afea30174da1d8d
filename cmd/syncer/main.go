package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"racing_analyzer/internal/app"
	"racing_analyzer/internal/config"
	"racing_analyzer/internal/domain"
	"racing_analyzer/internal/scheduler"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	date := flag.String("date", "", "sync a single race day (YYYY-MM-DD) and exit")
	force := flag.Bool("force", false, "re-sync even if the day is already stored")
	flag.Parse()

	// Setup logger
	logger := app.NewLogger("info")

	// Load configuration
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

	if *date != "" {
		target, err := domain.ParseRaceDate(*date)
		if err != nil {
			logger.Error("invalid -date", "value", *date, "error", err)
			os.Exit(2)
		}

		runCtx, cancelRun := context.WithTimeout(ctx, cfg.Sync.RunTimeout)
		defer cancelRun()

		summary, err := a.Sync.SyncDate(runCtx, target, *force)
		if summary != nil {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			_ = enc.Encode(summary)
		}
		if err != nil {
			logger.Error("sync failed", "error", err)
			os.Exit(1)
		}
		return
	}

	runner := scheduler.NewRunner(a.Sync, scheduler.RunnerConfig{
		Workers:    cfg.Sync.Workers,
		QueueSize:  cfg.Sync.QueueSize,
		RunTimeout: cfg.Sync.RunTimeout,
	}, logger)
	defer runner.Stop()

	sched := scheduler.NewScheduler(runner, cfg.Sync.Schedule, logger)

	logger.Info("starting race syncer",
		"source", a.Source.Name(),
		"schedule", cfg.Sync.Schedule,
		"concurrency", cfg.Sync.Concurrency,
		"started_at", time.Now().In(domain.JST),
	)

	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}
