package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"racing_analyzer/internal/domain"
)

const statsColumns = `id, category, condition, bet_count, win_count, total_bet, total_payout, roi, calculated_at`

type StatsStore struct {
	db *sqlx.DB
}

func NewStatsStore(db *sqlx.DB) *StatsStore {
	return &StatsStore{db: db}
}

func (s *StatsStore) Insert(ctx context.Context, stats *domain.Stats) error {
	query := `
		INSERT INTO stats (category, condition, bet_count, win_count, total_bet, total_payout, roi, calculated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	return GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		stats.Category,
		stats.Condition,
		stats.BetCount,
		stats.WinCount,
		stats.TotalBet,
		stats.TotalPayout,
		stats.ROI,
		dateArg(stats.CalculatedAt),
	).Scan(&stats.ID)
}

func (s *StatsStore) List(ctx context.Context, filter domain.StatsFilter) ([]domain.Stats, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Start != nil {
		args = append(args, dateArg(*filter.Start))
		conds = append(conds, fmt.Sprintf("calculated_at >= $%d", len(args)))
	}
	if filter.End != nil {
		args = append(args, dateArg(*filter.End))
		conds = append(conds, fmt.Sprintf("calculated_at <= $%d", len(args)))
	}

	query := `SELECT ` + statsColumns + ` FROM stats`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY roi DESC, id`

	rows := []domain.Stats{}
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// AverageROI reports false when the table is empty.
func (s *StatsStore) AverageROI(ctx context.Context) (float64, bool, error) {
	var avg sql.NullFloat64
	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &avg, `SELECT AVG(roi) FROM stats`); err != nil {
		return 0, false, err
	}
	return avg.Float64, avg.Valid, nil
}

// ListQualifying returns rows in the given categories whose ROI reaches
// minROI and whose sample holds at least minBets bets, best ROI first.
func (s *StatsStore) ListQualifying(ctx context.Context, minROI float64, minBets int, categories []string) ([]domain.Stats, error) {
	query := `
		SELECT ` + statsColumns + `
		FROM stats
		WHERE roi >= $1 AND bet_count >= $2 AND category = ANY($3)
		ORDER BY roi DESC, id`

	rows := []domain.Stats{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, minROI, minBets, pq.Array(categories))
	if err != nil {
		return nil, err
	}
	return rows, nil
}
