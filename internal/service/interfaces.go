package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"racing_analyzer/internal/domain"
)

type Source interface {
	ID() string
	Name() string
	FetchListing(ctx context.Context, date time.Time) ([]domain.RaceListingEntry, error)
	FetchDetail(ctx context.Context, entry domain.RaceListingEntry) (*domain.RaceDetail, error)
	FetchOdds(ctx context.Context, externalRaceID string) domain.OddsMap
	Close()
}

type RaceStore interface {
	CountByDate(ctx context.Context, date time.Time) (int, error)
	FindByExternalID(ctx context.Context, externalID string) (*domain.Race, error)
	Insert(ctx context.Context, race *domain.Race) error
	Update(ctx context.Context, race *domain.Race) error
}

type HorseStore interface {
	FindByRaceAndExternalID(ctx context.Context, raceID int64, externalID string) (*domain.Horse, error)
	Insert(ctx context.Context, horse *domain.Horse) error
	Update(ctx context.Context, horse *domain.Horse) error
}

type PastRaceStore interface {
	Insert(ctx context.Context, past *domain.HorsePastRace) error
}

type SyncStateStore interface {
	Get(ctx context.Context, date time.Time) (*domain.SyncState, error)
	Update(ctx context.Context, state *domain.SyncState) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, race *domain.Race, isNew bool) error
	Close() error
}

// RaceSaver persists one merged race with its horses.
type RaceSaver interface {
	SaveRace(ctx context.Context, detail *domain.RaceDetail, odds domain.OddsMap) (*domain.SaveResult, error)
}

type RaceReader interface {
	List(ctx context.Context, filter domain.RaceFilter) ([]domain.Race, error)
}

type BettingReader interface {
	Totals(ctx context.Context, period domain.DateRange) (domain.BetTotals, error)
}

type StatsReader interface {
	List(ctx context.Context, filter domain.StatsFilter) ([]domain.Stats, error)
	AverageROI(ctx context.Context) (float64, bool, error)
	ListQualifying(ctx context.Context, minROI float64, minBets int, categories []string) ([]domain.Stats, error)
}
