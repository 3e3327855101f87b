package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blogicum-backend/internal/domains/category"
	"blogicum-backend/internal/domains/location"
	"blogicum-backend/internal/domains/post"
	"blogicum-backend/internal/domains/user"
	"blogicum-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) post.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, entity *post.Post) (*post.Post, error) {
	const query = `
		INSERT INTO posts (
			id, title, text, pub_date, author_id,
			category_id, location_id, image_url, is_published, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING
			id, title, text, pub_date, author_id,
			category_id, location_id, image_url, is_published, created_at
	`

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Title,
		entity.Text,
		entity.PubDate,
		entity.AuthorID,
		entity.CategoryID,
		entity.LocationID,
		entity.ImageURL,
		entity.IsPublished,
		entity.CreatedAt,
	)

	created := &post.Post{}
	err := row.Scan(
		&created.ID,
		&created.Title,
		&created.Text,
		&created.PubDate,
		&created.AuthorID,
		&created.CategoryID,
		&created.LocationID,
		&created.ImageURL,
		&created.IsPublished,
		&created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			logger.Error("Create: bad reference", err)
			return nil, post.ErrInvalidInput
		}
		logger.Error("Create: database error", err)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	query, args, err := NewFeedQuery().ByID(id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build post query: %w", err)
	}

	entity, err := scanFeedRow(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		logger.Error("GetByID: database error", err)
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return entity, nil
}

func (r *postgresRepository) Update(ctx context.Context, entity *post.Post) (*post.Post, error) {
	const query = `
		UPDATE posts
		SET title = $2, text = $3, pub_date = $4,
			category_id = $5, location_id = $6, image_url = $7, is_published = $8
		WHERE id = $1
		RETURNING
			id, title, text, pub_date, author_id,
			category_id, location_id, image_url, is_published, created_at
	`

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Title,
		entity.Text,
		entity.PubDate,
		entity.CategoryID,
		entity.LocationID,
		entity.ImageURL,
		entity.IsPublished,
	)

	updated := &post.Post{}
	err := row.Scan(
		&updated.ID,
		&updated.Title,
		&updated.Text,
		&updated.PubDate,
		&updated.AuthorID,
		&updated.CategoryID,
		&updated.LocationID,
		&updated.ImageURL,
		&updated.IsPublished,
		&updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			logger.Error("Update: bad reference", err)
			return nil, post.ErrInvalidInput
		}
		logger.Error("Update: database error", err)
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Comments go with the post via ON DELETE CASCADE.
	const query = `DELETE FROM posts WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		logger.Error("Delete: database error", err)
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}

	return nil
}

func (r *postgresRepository) List(ctx context.Context, f post.FeedFilter) ([]post.Post, int64, error) {
	countQuery, countArgs, err := applyFilter(newFeedCount(), f).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		logger.Error("List: count query failed", err)
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	q := applyFilter(NewFeedQuery(), f).OrderedByPubDate()
	if f.Limit > 0 {
		q = q.Paginate(f.Limit, f.Offset)
	}

	listQuery, listArgs, err := q.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.pool.Query(ctx, listQuery, listArgs...)
	if err != nil {
		logger.Error("List: query failed", err)
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	entities := make([]post.Post, 0, f.Limit)
	for rows.Next() {
		entity, err := scanFeedRow(rows)
		if err != nil {
			logger.Error("List: scan error", err)
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}
		entities = append(entities, *entity)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read posts: %w", err)
	}

	return entities, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanFeedRow reads one row of the feedColumns projection, materializing
// the nullable category and location relations only when present.
func scanFeedRow(row rowScanner) (*post.Post, error) {
	entity := &post.Post{}
	author := &user.User{}

	var (
		catID      *uuid.UUID
		catTitle   *string
		catDesc    *string
		catSlug    *string
		catPub     *bool
		catCreated *time.Time

		locID      *uuid.UUID
		locName    *string
		locPub     *bool
		locCreated *time.Time
	)

	err := row.Scan(
		&entity.ID,
		&entity.Title,
		&entity.Text,
		&entity.PubDate,
		&entity.AuthorID,
		&entity.CategoryID,
		&entity.LocationID,
		&entity.ImageURL,
		&entity.IsPublished,
		&entity.CreatedAt,
		&author.ID,
		&author.Username,
		&author.FirstName,
		&author.LastName,
		&author.Email,
		&author.CreatedAt,
		&catID,
		&catTitle,
		&catDesc,
		&catSlug,
		&catPub,
		&catCreated,
		&locID,
		&locName,
		&locPub,
		&locCreated,
		&entity.CommentCount,
	)
	if err != nil {
		return nil, err
	}

	entity.Author = author

	if catID != nil {
		entity.Category = &category.Category{
			ID:          *catID,
			Title:       *catTitle,
			Description: *catDesc,
			Slug:        *catSlug,
			IsPublished: *catPub,
			CreatedAt:   *catCreated,
		}
	}

	if locID != nil {
		entity.Location = &location.Location{
			ID:          *locID,
			Name:        *locName,
			IsPublished: *locPub,
			CreatedAt:   *locCreated,
		}
	}

	return entity, nil
}
