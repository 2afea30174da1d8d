package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"racing_analyzer/internal/domain"
)

const horseColumns = `id, race_id, external_horse_id, horse_name, horse_number, jockey, trainer,
	weight, odds, result_order, result_time, result_margin, result_corner_position,
	created_at, updated_at`

type HorseStore struct {
	db *sqlx.DB
}

func NewHorseStore(db *sqlx.DB) *HorseStore {
	return &HorseStore{db: db}
}

func (s *HorseStore) FindByRaceAndExternalID(ctx context.Context, raceID int64, externalID string) (*domain.Horse, error) {
	var horse domain.Horse
	query := `SELECT ` + horseColumns + ` FROM horses WHERE race_id = $1 AND external_horse_id = $2`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &horse, query, raceID, externalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &horse, nil
}

func (s *HorseStore) Insert(ctx context.Context, horse *domain.Horse) error {
	query := `
		INSERT INTO horses (
			race_id, external_horse_id, horse_name, horse_number, jockey, trainer, weight, odds
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		RETURNING id, created_at, updated_at`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		horse.RaceID,
		horse.ExternalHorseID,
		horse.HorseName,
		horse.HorseNumber,
		horse.Jockey,
		horse.Trainer,
		horse.Weight,
		horse.Odds,
	).Scan(&horse.ID, &horse.CreatedAt, &horse.UpdatedAt)
	return mapError(err)
}

// Update rewrites the scraped entry fields. Result columns are owned by the
// results import and are left alone.
func (s *HorseStore) Update(ctx context.Context, horse *domain.Horse) error {
	query := `
		UPDATE horses SET
			horse_name = $2,
			horse_number = $3,
			jockey = $4,
			trainer = $5,
			weight = $6,
			odds = $7,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		horse.ID,
		horse.HorseName,
		horse.HorseNumber,
		horse.Jockey,
		horse.Trainer,
		horse.Weight,
		horse.Odds,
	).Scan(&horse.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (s *HorseStore) ListByRace(ctx context.Context, raceID int64) ([]domain.Horse, error) {
	horses := []domain.Horse{}
	query := `SELECT ` + horseColumns + ` FROM horses WHERE race_id = $1 ORDER BY horse_number`

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &horses, query, raceID); err != nil {
		return nil, err
	}
	return horses, nil
}
