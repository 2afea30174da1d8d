package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"racing_analyzer/internal/config"
	"racing_analyzer/internal/domain"
	"racing_analyzer/internal/metrics"
)

type SyncService struct {
	source    Source
	saver     RaceSaver
	races     RaceStore
	syncState SyncStateStore
	publisher Publisher
	metrics   *metrics.Recorder
	logger    *slog.Logger
	config    config.SyncConfig
}

func NewSyncService(
	source Source,
	saver RaceSaver,
	races RaceStore,
	syncState SyncStateStore,
	publisher Publisher,
	recorder *metrics.Recorder,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	return &SyncService{
		source:    source,
		saver:     saver,
		races:     races,
		syncState: syncState,
		publisher: publisher,
		metrics:   recorder,
		logger:    logger.With("source", source.ID()),
		config:    cfg,
	}
}

// SyncDate scrapes every race listed for date and upserts it. Without force,
// a date that already has stored races is skipped before any fetch. A listing
// failure aborts the run with domain.ErrSyncAborted; per-race failures are
// recorded in the summary and never returned.
func (s *SyncService) SyncDate(ctx context.Context, date time.Time, force bool) (*domain.SyncSummary, error) {
	defer s.source.Close()

	startTime := time.Now()
	logger := s.logger.With("target_date", date.Format(time.DateOnly), "force", force)
	summary := &domain.SyncSummary{TargetDate: date}

	if !force {
		existing, err := s.races.CountByDate(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("count races: %w", err)
		}
		if existing > 0 {
			summary.Status = domain.SyncSkipped
			summary.Message = fmt.Sprintf("%d races already stored", existing)
			summary.Duration = time.Since(startTime)
			s.metrics.RecordSyncRun(string(summary.Status), summary.Duration)
			logger.Info("sync skipped", "existing", existing)
			return summary, nil
		}
	}

	logger.Info("starting sync", "source_name", s.source.Name(), "concurrency", s.config.Concurrency)

	listing, err := s.source.FetchListing(ctx, date)
	if err != nil {
		s.metrics.RecordSyncRun(string(domain.SyncFailure), time.Since(startTime))
		logger.Error("listing fetch failed", "error", err)
		return nil, fmt.Errorf("%w: fetch listing: %w", domain.ErrSyncAborted, err)
	}

	if len(listing) == 0 {
		summary.Status = domain.SyncNoData
		summary.Message = "no races listed"
		summary.Duration = time.Since(startTime)
		s.metrics.RecordSyncRun(string(summary.Status), summary.Duration)
		logger.Info("no races listed")
		if err := s.updateSyncState(ctx, summary); err != nil {
			return summary, fmt.Errorf("update sync state: %w", err)
		}
		return summary, nil
	}

	logger.Info("fetched listing", "count", len(listing))

	outcomes := make([]domain.RaceOutcome, len(listing))
	saved := make([]*domain.SaveResult, len(listing))
	var saveMu sync.Mutex

	var g errgroup.Group
	g.SetLimit(s.config.Concurrency)
	for i, entry := range listing {
		g.Go(func() error {
			defer func() {
				if p := recover(); p != nil {
					saved[i] = nil
					outcomes[i] = s.raceFailed(newOutcome(entry), fmt.Errorf("race panicked: %v", p))
				}
			}()
			saved[i], outcomes[i] = s.syncRace(ctx, entry, &saveMu)
			return nil
		})
	}
	_ = g.Wait()

	summary.Listed = len(listing)
	summary.Details = outcomes
	for i, outcome := range outcomes {
		if outcome.Status != domain.RaceSucceeded {
			summary.Failed++
			continue
		}
		summary.Succeeded++
		if saved[i].Created {
			summary.Created++
		} else {
			summary.Updated++
		}
	}

	summary.Published = s.publish(ctx, saved)
	summary.Status = resolveStatus(summary.Succeeded, summary.Failed)
	summary.Message = fmt.Sprintf("synced %d of %d races", summary.Succeeded, summary.Listed)
	summary.Duration = time.Since(startTime)
	s.metrics.RecordSyncRun(string(summary.Status), summary.Duration)

	logger.Info("sync completed",
		"status", summary.Status,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"created", summary.Created,
		"updated", summary.Updated,
		"published", summary.Published,
		"duration", summary.Duration,
	)

	if err := s.updateSyncState(ctx, summary); err != nil {
		return summary, fmt.Errorf("update sync state: %w", err)
	}
	return summary, nil
}

// syncRace fetches detail and odds concurrently, merges them and saves the
// race. Saves are serialized through saveMu.
func (s *SyncService) syncRace(ctx context.Context, entry domain.RaceListingEntry, saveMu *sync.Mutex) (*domain.SaveResult, domain.RaceOutcome) {
	outcome := newOutcome(entry)

	var (
		odds domain.OddsMap
		wg   sync.WaitGroup
	)
	wg.Go(func() {
		defer func() {
			if p := recover(); p != nil {
				s.logger.Error("odds fetch panicked", "race_id", entry.ExternalRaceID, "panic", p)
			}
		}()
		odds = s.source.FetchOdds(ctx, entry.ExternalRaceID)
	})
	detail, err := s.source.FetchDetail(ctx, entry)
	wg.Wait()

	if err != nil {
		return nil, s.raceFailed(outcome, fmt.Errorf("fetch detail: %w", err))
	}
	if detail == nil {
		return nil, s.raceFailed(outcome, errors.New("fetch detail: empty detail"))
	}

	domain.MergeOdds(detail.Horses, odds)

	result, err := s.save(ctx, saveMu, detail, odds)
	if err != nil {
		return nil, s.raceFailed(outcome, fmt.Errorf("save race: %w", err))
	}

	outcome.Status = domain.RaceSucceeded
	outcome.Created = result.Created
	s.metrics.RecordRaceOutcome(string(outcome.Status))
	s.logger.Debug("race synced",
		"race_id", entry.ExternalRaceID,
		"created", result.Created,
		"horses_created", result.HorsesCreated,
		"horses_updated", result.HorsesUpdated,
	)
	return result, outcome
}

// save holds saveMu for the duration of one SaveRace, released even if it panics.
func (s *SyncService) save(ctx context.Context, saveMu *sync.Mutex, detail *domain.RaceDetail, odds domain.OddsMap) (*domain.SaveResult, error) {
	saveMu.Lock()
	defer saveMu.Unlock()
	return s.saver.SaveRace(ctx, detail, odds)
}

func newOutcome(entry domain.RaceListingEntry) domain.RaceOutcome {
	return domain.RaceOutcome{
		ExternalRaceID: entry.ExternalRaceID,
		Venue:          entry.Venue,
		RaceNumber:     entry.RaceNumber,
	}
}

func (s *SyncService) raceFailed(outcome domain.RaceOutcome, err error) domain.RaceOutcome {
	outcome.Status = domain.RaceFailed
	outcome.Message = err.Error()
	s.metrics.RecordRaceOutcome(string(outcome.Status))
	s.logger.Error("race sync failed",
		"race_id", outcome.ExternalRaceID,
		"venue", outcome.Venue,
		"race_number", outcome.RaceNumber,
		"error", err,
	)
	return outcome
}

func (s *SyncService) publish(ctx context.Context, saved []*domain.SaveResult) int {
	if s.publisher == nil {
		return 0
	}

	published := 0
	for _, result := range saved {
		if result == nil {
			continue
		}
		if err := s.publisher.Publish(ctx, result.Race, result.Created); err != nil {
			s.logger.Warn("publish failed", "race_id", result.Race.ExternalRaceID, "error", err)
			continue
		}
		published++
	}
	return published
}

func (s *SyncService) updateSyncState(ctx context.Context, summary *domain.SyncSummary) error {
	state, err := s.syncState.Get(ctx, summary.TargetDate)
	if err != nil {
		return err
	}

	state.TargetDate = summary.TargetDate
	state.LastSyncedAt = time.Now()
	state.LastStatus = summary.Status
	state.Succeeded = summary.Succeeded
	state.Failed = summary.Failed
	state.TotalSynced += int64(summary.Succeeded)

	return s.syncState.Update(ctx, state)
}

// resolveStatus reports success only when no race failed and failure when
// none succeeded. Anything in between is partial_failure.
func resolveStatus(succeeded, failed int) domain.SyncStatus {
	switch {
	case failed == 0:
		return domain.SyncSuccess
	case succeeded == 0:
		return domain.SyncFailure
	default:
		return domain.SyncPartialFailure
	}
}
