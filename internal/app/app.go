package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"racing_analyzer/internal/config"
	"racing_analyzer/internal/metrics"
	"racing_analyzer/internal/publisher"
	"racing_analyzer/internal/service"
	"racing_analyzer/internal/source/jra"
	"racing_analyzer/internal/storage/postgres"
)

// App is the wired sync pipeline shared by the server and the CLI syncer.
type App struct {
	DB        *sqlx.DB
	Metrics   *metrics.Recorder
	Source    *jra.Source
	Sync      *service.SyncService
	Races     *postgres.RaceStore
	Horses    *postgres.HorseStore
	Comments  *postgres.CommentStore
	Feedback  *postgres.FeedbackStore
	Stats     *service.StatsService
	publisher *publisher.RabbitMQ
	logger    *slog.Logger
}

func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	logger.Info("connected to database")

	if err := postgres.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	a := &App{
		DB:      db,
		Metrics: metrics.NewRecorder(),
		logger:  logger,
	}

	// A nil interface, not a typed nil, keeps publishing disabled.
	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			db.Close()
			return nil, err
		}
		a.publisher = rabbitMQ
		pub = rabbitMQ
	}

	a.Races = postgres.NewRaceStore(db)
	a.Horses = postgres.NewHorseStore(db)
	a.Comments = postgres.NewCommentStore(db)
	a.Feedback = postgres.NewFeedbackStore(db)
	pastRaces := postgres.NewPastRaceStore(db)
	syncState := postgres.NewSyncStateStore(db)
	txManager := postgres.NewTransactionManager(db)

	a.Source = jra.New(jra.Config{
		BaseURL:     cfg.Source.BaseURL,
		Timeout:     cfg.Source.Timeout,
		UserAgent:   cfg.Source.UserAgent,
		MaxAttempts: cfg.Source.Retry.MaxAttempts,
		RetryDelay:  cfg.Source.Retry.Delay,
	}, a.Metrics, logger)

	saver := service.NewRaceUpsert(a.Races, a.Horses, pastRaces, txManager)
	a.Sync = service.NewSyncService(a.Source, saver, a.Races, syncState, pub, a.Metrics, logger, cfg.Sync)
	a.Stats = service.NewStatsService(a.Races, postgres.NewBettingStore(db), postgres.NewStatsStore(db))

	return a, nil
}

func (a *App) Close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("close rabbitmq", "error", err)
		}
	}
	a.Source.Close()
	a.DB.Close()
}

func NewLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
