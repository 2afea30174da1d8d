package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"racing_analyzer/internal/domain"
)

var (
	ErrQueueFull     = errors.New("sync queue is full")
	ErrRunNotFound   = errors.New("sync run not found")
	ErrRunnerStopped = errors.New("sync runner stopped")
)

// historyLimit caps how many finished runs stay queryable.
const historyLimit = 256

// Syncer defines the interface for sync operations.
type Syncer interface {
	SyncDate(ctx context.Context, date time.Time, force bool) (*domain.SyncSummary, error)
}

type RunStatus string

const (
	RunQueued  RunStatus = "queued"
	RunRunning RunStatus = "running"
	RunDone    RunStatus = "done"
	RunFailed  RunStatus = "failed"
)

// Run is a snapshot of one submitted sync.
type Run struct {
	ID          string              `json:"run_id"`
	TargetDate  string              `json:"target_date"`
	Force       bool                `json:"force"`
	Status      RunStatus           `json:"status"`
	Summary     *domain.SyncSummary `json:"summary,omitempty"`
	Error       string              `json:"error,omitempty"`
	SubmittedAt time.Time           `json:"submitted_at"`
	StartedAt   *time.Time          `json:"started_at,omitempty"`
	FinishedAt  *time.Time          `json:"finished_at,omitempty"`
}

func (r Run) Finished() bool {
	return r.Status == RunDone || r.Status == RunFailed
}

type RunnerConfig struct {
	Workers    int
	QueueSize  int
	RunTimeout time.Duration
}

type job struct {
	run  Run
	date time.Time
	done chan struct{}
}

// Runner executes submitted syncs on a fixed pool of workers and keeps their
// status for polling.
type Runner struct {
	syncer  Syncer
	timeout time.Duration
	logger  *slog.Logger

	// ctx is the parent of every run and is cancelled by Stop.
	ctx    context.Context
	cancel context.CancelFunc

	queue chan *job
	wg    sync.WaitGroup

	mu       sync.RWMutex
	jobs     map[string]*job
	finished []string
	stopped  bool
}

func NewRunner(syncer Syncer, cfg RunnerConfig, logger *slog.Logger) *Runner {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	r := &Runner{
		ctx:     ctx,
		cancel:  cancel,
		syncer:  syncer,
		timeout: cfg.RunTimeout,
		logger:  logger.With("component", "runner"),
		queue:   make(chan *job, cfg.QueueSize),
		jobs:    make(map[string]*job),
	}

	for range cfg.Workers {
		r.wg.Go(r.work)
	}
	return r
}

// Submit queues a sync of date and returns its handle without waiting.
func (r *Runner) Submit(date time.Time, force bool) (Run, error) {
	j := &job{
		run: Run{
			ID:          uuid.NewString(),
			TargetDate:  date.Format(time.DateOnly),
			Force:       force,
			Status:      RunQueued,
			SubmittedAt: time.Now(),
		},
		date: date,
		done: make(chan struct{}),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return Run{}, ErrRunnerStopped
	}

	select {
	case r.queue <- j:
	default:
		return Run{}, ErrQueueFull
	}

	r.jobs[j.run.ID] = j
	r.logger.Info("sync queued", "run_id", j.run.ID, "target_date", j.run.TargetDate, "force", force)
	return j.run, nil
}

func (r *Runner) Get(id string) (Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	j, ok := r.jobs[id]
	if !ok {
		return Run{}, ErrRunNotFound
	}
	return j.run, nil
}

// Wait blocks until the run finishes or ctx is done.
func (r *Runner) Wait(ctx context.Context, id string) (Run, error) {
	r.mu.RLock()
	j, ok := r.jobs[id]
	r.mu.RUnlock()
	if !ok {
		return Run{}, ErrRunNotFound
	}

	select {
	case <-j.done:
		r.mu.RLock()
		defer r.mu.RUnlock()
		return j.run, nil
	case <-ctx.Done():
		return Run{}, ctx.Err()
	}
}

// Stop rejects new submissions, cancels the runs in progress, marks queued
// runs as failed without starting them, and waits for the workers to exit.
// It is safe to call more than once.
func (r *Runner) Stop() {
	r.mu.Lock()
	if !r.stopped {
		r.stopped = true
		close(r.queue)
	}
	r.mu.Unlock()

	r.cancel()
	r.wg.Wait()
}

func (r *Runner) work() {
	for j := range r.queue {
		if r.ctx.Err() != nil {
			r.abandon(j)
			continue
		}
		r.execute(j)
	}
}

func (r *Runner) abandon(j *job) {
	finished := time.Now()
	r.update(j, func(run *Run) {
		run.Status = RunFailed
		run.Error = ErrRunnerStopped.Error()
		run.FinishedAt = &finished
	})
	r.retire(j.run.ID)
	close(j.done)
	r.logger.Warn("sync dropped", "run_id", j.run.ID, "target_date", j.run.TargetDate)
}

func (r *Runner) execute(j *job) {
	started := time.Now()
	r.update(j, func(run *Run) {
		run.Status = RunRunning
		run.StartedAt = &started
	})

	logger := r.logger.With("run_id", j.run.ID, "target_date", j.run.TargetDate)
	logger.Info("sync started")

	summary, err := r.runSync(j)

	finished := time.Now()
	r.update(j, func(run *Run) {
		run.FinishedAt = &finished
		run.Summary = summary
		if err != nil {
			run.Status = RunFailed
			run.Error = err.Error()
			return
		}
		run.Status = RunDone
	})
	r.retire(j.run.ID)
	close(j.done)

	if err != nil {
		logger.Error("sync failed", "error", err, "duration", finished.Sub(started))
		return
	}
	logger.Info("sync finished", "status", summary.Status, "duration", finished.Sub(started))
}

func (r *Runner) runSync(j *job) (summary *domain.SyncSummary, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("sync panicked: %v", p)
		}
	}()

	ctx := r.ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	return r.syncer.SyncDate(ctx, j.date, j.run.Force)
}

func (r *Runner) update(j *job, fn func(*Run)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&j.run)
}

// retire records a finished run and drops the oldest once over historyLimit.
func (r *Runner) retire(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.finished = append(r.finished, id)
	for len(r.finished) > historyLimit {
		delete(r.jobs, r.finished[0])
		r.finished = r.finished[1:]
	}
}
