package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"racing_analyzer/internal/domain"
)

// Submitter queues a sync for a target date.
type Submitter interface {
	Submit(date time.Time, force bool) (Run, error)
}

// Scheduler submits a forced sync of the current race day on a cron schedule.
// The evening run refreshes odds for a day that may already be stored.
type Scheduler struct {
	submitter Submitter
	spec      string
	logger    *slog.Logger
	now       func() time.Time
}

func NewScheduler(submitter Submitter, spec string, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		submitter: submitter,
		spec:      spec,
		logger:    logger,
		now:       time.Now,
	}
}

// Start registers the schedule and blocks until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	c := cron.New(cron.WithSeconds(), cron.WithLocation(domain.JST))
	if _, err := c.AddFunc(s.spec, s.submitToday); err != nil {
		return fmt.Errorf("schedule %q: %w", s.spec, err)
	}

	c.Start()
	s.logger.Info("scheduler started", "schedule", s.spec)

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) submitToday() {
	date := domain.RaceDay(s.now())

	run, err := s.submitter.Submit(date, true)
	if err != nil {
		s.logger.Error("scheduled sync not queued", "target_date", date.Format(time.DateOnly), "error", err)
		return
	}
	s.logger.Info("scheduled sync queued", "run_id", run.ID, "target_date", run.TargetDate)
}
