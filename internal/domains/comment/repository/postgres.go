package repository

import (
	"context"
	"errors"
	"fmt"

	"blogicum-backend/internal/domains/comment"
	"blogicum-backend/internal/domains/user"
	"blogicum-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const commentWithAuthorColumns = `
	cm.id, cm.text, cm.post_id, cm.author_id, cm.created_at,
	u.id, u.username, u.first_name, u.last_name, u.email, u.created_at
`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) comment.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, entity *comment.Comment) (*comment.Comment, error) {
	const query = `
		INSERT INTO comments (id, text, post_id, author_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, text, post_id, author_id, created_at
	`

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Text,
		entity.PostID,
		entity.AuthorID,
		entity.CreatedAt,
	)

	created := &comment.Comment{}
	err := row.Scan(
		&created.ID,
		&created.Text,
		&created.PostID,
		&created.AuthorID,
		&created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// Parent post (or author) vanished between resolve and persist.
			logger.Error("Create: bad reference", err)
			return nil, comment.ErrCommentNotFound
		}
		logger.Error("Create: database error", err)
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetForPost(ctx context.Context, postID, commentID uuid.UUID) (*comment.Comment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM comments cm
		JOIN users u ON u.id = cm.author_id
		WHERE cm.id = $1 AND cm.post_id = $2
	`, commentWithAuthorColumns)

	entity, err := scanComment(r.pool.QueryRow(ctx, query, commentID, postID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, comment.ErrCommentNotFound
		}
		logger.Error("GetForPost: database error", err)
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return entity, nil
}

func (r *postgresRepository) Update(ctx context.Context, entity *comment.Comment) (*comment.Comment, error) {
	const query = `
		UPDATE comments
		SET text = $2
		WHERE id = $1
		RETURNING id, text, post_id, author_id, created_at
	`

	updated := &comment.Comment{}
	err := r.pool.QueryRow(ctx, query, entity.ID, entity.Text).Scan(
		&updated.ID,
		&updated.Text,
		&updated.PostID,
		&updated.AuthorID,
		&updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, comment.ErrCommentNotFound
		}
		logger.Error("Update: database error", err)
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM comments WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		logger.Error("Delete: database error", err)
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return comment.ErrCommentNotFound
	}

	return nil
}

func (r *postgresRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]comment.Comment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM comments cm
		JOIN users u ON u.id = cm.author_id
		WHERE cm.post_id = $1
		ORDER BY cm.created_at ASC
	`, commentWithAuthorColumns)

	rows, err := r.pool.Query(ctx, query, postID)
	if err != nil {
		logger.Error("ListByPost: query failed", err)
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]comment.Comment, 0)
	for rows.Next() {
		entity, err := scanComment(rows)
		if err != nil {
			logger.Error("ListByPost: scan error", err)
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, *entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comments: %w", err)
	}

	return comments, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComment(row rowScanner) (*comment.Comment, error) {
	entity := &comment.Comment{}
	author := &user.User{}

	err := row.Scan(
		&entity.ID,
		&entity.Text,
		&entity.PostID,
		&entity.AuthorID,
		&entity.CreatedAt,
		&author.ID,
		&author.Username,
		&author.FirstName,
		&author.LastName,
		&author.Email,
		&author.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	entity.Author = author
	return entity, nil
}
