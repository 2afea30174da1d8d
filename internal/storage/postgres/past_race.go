package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"racing_analyzer/internal/domain"
)

type PastRaceStore struct {
	db *sqlx.DB
}

func NewPastRaceStore(db *sqlx.DB) *PastRaceStore {
	return &PastRaceStore{db: db}
}

func (s *PastRaceStore) Insert(ctx context.Context, past *domain.HorsePastRace) error {
	query := `
		INSERT INTO horse_past_races (
			horse_id, race_date, venue, race_name, result_order, horse_count,
			jockey, weight, course_condition, memo
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		RETURNING id, created_at`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		past.HorseID,
		past.RaceDate,
		past.Venue,
		past.RaceName,
		past.ResultOrder,
		past.HorseCount,
		past.Jockey,
		past.Weight,
		past.CourseCondition,
		past.Memo,
	).Scan(&past.ID, &past.CreatedAt)
	return mapError(err)
}

func (s *PastRaceStore) ListByHorse(ctx context.Context, horseID int64) ([]domain.HorsePastRace, error) {
	past := []domain.HorsePastRace{}
	query := `
		SELECT id, horse_id, race_date, venue, race_name, result_order, horse_count,
			jockey, weight, course_condition, memo, created_at
		FROM horse_past_races
		WHERE horse_id = $1
		ORDER BY race_date DESC, id`

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &past, query, horseID); err != nil {
		return nil, err
	}
	return past, nil
}
