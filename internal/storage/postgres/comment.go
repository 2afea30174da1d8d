package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"racing_analyzer/internal/domain"
)

const commentColumns = `id, race_id, horse_id, content, is_public, created_at, updated_at`

type CommentStore struct {
	db *sqlx.DB
}

func NewCommentStore(db *sqlx.DB) *CommentStore {
	return &CommentStore{db: db}
}

func (s *CommentStore) List(ctx context.Context, filter domain.CommentFilter) ([]domain.Comment, error) {
	var (
		conds []string
		args  []any
	)
	if filter.RaceID != nil {
		args = append(args, *filter.RaceID)
		conds = append(conds, fmt.Sprintf("race_id = $%d", len(args)))
	}
	if filter.HorseID != nil {
		args = append(args, *filter.HorseID)
		conds = append(conds, fmt.Sprintf("horse_id = $%d", len(args)))
	}

	query := `SELECT ` + commentColumns + ` FROM comments`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at DESC, id DESC`

	comments := []domain.Comment{}
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &comments, query, args...); err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentStore) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	var comment domain.Comment
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &comment,
		`SELECT `+commentColumns+` FROM comments WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Create returns domain.ErrInvalidReference when the race or horse is missing.
func (s *CommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (race_id, horse_id, content, is_public)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		comment.RaceID,
		comment.HorseID,
		comment.Content,
		comment.IsPublic,
	).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	return mapError(err)
}

func (s *CommentStore) Update(ctx context.Context, id int64, patch domain.CommentPatch) (*domain.Comment, error) {
	query := `
		UPDATE comments SET
			content = COALESCE($2, content),
			is_public = COALESCE($3, is_public),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + commentColumns

	var comment domain.Comment
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &comment, query, id, patch.Content, patch.IsPublic)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *CommentStore) Delete(ctx context.Context, id int64) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
