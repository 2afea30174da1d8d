package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"racing_analyzer/internal/domain"
)

type SyncStateStore struct {
	db *sqlx.DB
}

func NewSyncStateStore(db *sqlx.DB) *SyncStateStore {
	return &SyncStateStore{db: db}
}

func (s *SyncStateStore) Get(ctx context.Context, date time.Time) (*domain.SyncState, error) {
	var state domain.SyncState
	query := `
		SELECT id, target_date, last_synced_at, last_status, succeeded, failed, total_synced
		FROM sync_state
		WHERE target_date = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &state, query, dateArg(date))
	if errors.Is(err, sql.ErrNoRows) {
		// Return empty state for dates never synced
		return &domain.SyncState{TargetDate: date}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *SyncStateStore) Update(ctx context.Context, state *domain.SyncState) error {
	query := `
		INSERT INTO sync_state (target_date, last_synced_at, last_status, succeeded, failed, total_synced)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (target_date) DO UPDATE SET
			last_synced_at = EXCLUDED.last_synced_at,
			last_status = EXCLUDED.last_status,
			succeeded = EXCLUDED.succeeded,
			failed = EXCLUDED.failed,
			total_synced = EXCLUDED.total_synced
		RETURNING id, total_synced`

	return GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		dateArg(state.TargetDate),
		state.LastSyncedAt,
		state.LastStatus,
		state.Succeeded,
		state.Failed,
		state.TotalSynced,
	).Scan(&state.ID, &state.TotalSynced)
}
