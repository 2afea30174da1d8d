package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"racing_analyzer/internal/domain"
)

type FeedbackStore struct {
	db *sqlx.DB
}

func NewFeedbackStore(db *sqlx.DB) *FeedbackStore {
	return &FeedbackStore{db: db}
}

func (s *FeedbackStore) Create(ctx context.Context, fb *domain.Feedback) error {
	query := `
		INSERT INTO feedback (name, email, type, title, description, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	return GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		fb.Name,
		fb.Email,
		fb.Type,
		fb.Title,
		fb.Description,
		fb.Status,
	).Scan(&fb.ID, &fb.CreatedAt)
}

func (s *FeedbackStore) List(ctx context.Context) ([]domain.Feedback, error) {
	items := []domain.Feedback{}
	query := `
		SELECT id, name, email, type, title, description, status, admin_notes, created_at
		FROM feedback
		ORDER BY created_at DESC, id DESC`

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &items, query); err != nil {
		return nil, err
	}
	return items, nil
}
