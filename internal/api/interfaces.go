package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"racing_analyzer/internal/domain"
	"racing_analyzer/internal/scheduler"
	"racing_analyzer/internal/service"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type RaceStore interface {
	List(ctx context.Context, filter domain.RaceFilter) ([]domain.Race, error)
	GetByID(ctx context.Context, id int64) (*domain.Race, error)
}

type HorseStore interface {
	ListByRace(ctx context.Context, raceID int64) ([]domain.Horse, error)
}

type CommentStore interface {
	List(ctx context.Context, filter domain.CommentFilter) ([]domain.Comment, error)
	Get(ctx context.Context, id int64) (*domain.Comment, error)
	Create(ctx context.Context, comment *domain.Comment) error
	Update(ctx context.Context, id int64, patch domain.CommentPatch) (*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}

type FeedbackStore interface {
	Create(ctx context.Context, fb *domain.Feedback) error
	List(ctx context.Context) ([]domain.Feedback, error)
}

type StatsService interface {
	Stats(ctx context.Context, filter domain.StatsFilter) ([]domain.Stats, error)
	KPI(ctx context.Context, period domain.DateRange) (*service.KPI, error)
	Recommendations(ctx context.Context, date time.Time) ([]service.Recommendation, error)
}

type SyncRunner interface {
	Submit(date time.Time, force bool) (scheduler.Run, error)
	Get(id string) (scheduler.Run, error)
}
