package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"racing_analyzer/internal/domain"
)

type BettingStore struct {
	db *sqlx.DB
}

func NewBettingStore(db *sqlx.DB) *BettingStore {
	return &BettingStore{db: db}
}

func (s *BettingStore) Insert(ctx context.Context, bet *domain.BettingResult) error {
	query := `
		INSERT INTO betting_results (race_id, bet_type, bet_numbers, amount, is_won, payout)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		bet.RaceID,
		bet.BetType,
		bet.BetNumbers,
		bet.Amount,
		bet.IsWon,
		bet.Payout,
	).Scan(&bet.ID, &bet.CreatedAt)
	return mapError(err)
}

// Totals aggregates stakes and payouts for bets on races inside the range.
// An empty range yields zero totals.
func (s *BettingStore) Totals(ctx context.Context, period domain.DateRange) (domain.BetTotals, error) {
	var (
		conds []string
		args  []any
	)
	if period.Start != nil {
		args = append(args, dateArg(*period.Start))
		conds = append(conds, fmt.Sprintf("r.race_date >= $%d", len(args)))
	}
	if period.End != nil {
		args = append(args, dateArg(*period.End))
		conds = append(conds, fmt.Sprintf("r.race_date <= $%d", len(args)))
	}

	query := `
		SELECT
			COALESCE(SUM(b.amount), 0) AS total_bet,
			COALESCE(SUM(b.payout), 0) AS total_payout,
			COUNT(b.id) AS bet_count,
			COUNT(b.id) FILTER (WHERE b.is_won) AS win_count
		FROM betting_results b
		JOIN races r ON r.id = b.race_id`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}

	var totals domain.BetTotals
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &totals, query, args...)
	return totals, err
}
