package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"racing_analyzer/internal/domain"
)

const raceColumns = `id, external_race_id, race_date, venue, race_number, race_name, race_class,
	course_type, distance, weather, track_condition, start_time, created_at, updated_at`

type RaceStore struct {
	db *sqlx.DB
}

func NewRaceStore(db *sqlx.DB) *RaceStore {
	return &RaceStore{db: db}
}

func (s *RaceStore) CountByDate(ctx context.Context, date time.Time) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count,
		`SELECT COUNT(*) FROM races WHERE race_date = $1`, dateArg(date))
	return count, err
}

func (s *RaceStore) FindByExternalID(ctx context.Context, externalID string) (*domain.Race, error) {
	var race domain.Race
	query := `SELECT ` + raceColumns + ` FROM races WHERE external_race_id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &race, query, externalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &race, nil
}

func (s *RaceStore) GetByID(ctx context.Context, id int64) (*domain.Race, error) {
	var race domain.Race
	query := `SELECT ` + raceColumns + ` FROM races WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &race, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &race, nil
}

// Insert stores a new race and fills in its generated id and timestamps.
func (s *RaceStore) Insert(ctx context.Context, race *domain.Race) error {
	query := `
		INSERT INTO races (
			external_race_id, race_date, venue, race_number, race_name, race_class,
			course_type, distance, weather, track_condition, start_time
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		RETURNING id, created_at, updated_at`

	return GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		race.ExternalRaceID,
		dateArg(race.RaceDate),
		race.Venue,
		race.RaceNumber,
		race.RaceName,
		race.RaceClass,
		race.CourseType,
		race.Distance,
		race.Weather,
		race.TrackCondition,
		race.StartTime,
	).Scan(&race.ID, &race.CreatedAt, &race.UpdatedAt)
}

// Update rewrites the scraped columns of an existing race. The external id is
// the identity and never changes.
func (s *RaceStore) Update(ctx context.Context, race *domain.Race) error {
	query := `
		UPDATE races SET
			race_date = $2,
			venue = $3,
			race_number = $4,
			race_name = $5,
			race_class = $6,
			course_type = $7,
			distance = $8,
			weather = $9,
			track_condition = $10,
			start_time = $11,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		race.ID,
		dateArg(race.RaceDate),
		race.Venue,
		race.RaceNumber,
		race.RaceName,
		race.RaceClass,
		race.CourseType,
		race.Distance,
		race.Weather,
		race.TrackCondition,
		race.StartTime,
	).Scan(&race.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (s *RaceStore) List(ctx context.Context, filter domain.RaceFilter) ([]domain.Race, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Date != nil {
		args = append(args, dateArg(*filter.Date))
		conds = append(conds, fmt.Sprintf("race_date = $%d", len(args)))
	}
	if filter.Venue != "" {
		args = append(args, filter.Venue)
		conds = append(conds, fmt.Sprintf("venue = $%d", len(args)))
	}

	query := `SELECT ` + raceColumns + ` FROM races`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY race_date, race_number, venue`

	races := []domain.Race{}
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &races, query, args...); err != nil {
		return nil, err
	}
	return races, nil
}
