package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blogicum-backend/internal/domains/category"
	"blogicum-backend/pkg/cache"
	"blogicum-backend/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
	ttl   time.Duration
}

// NewPostgresRepository builds the category reader. Slug lookups are
// read-through cached: categories change rarely and every category page
// resolves one.
func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache, ttl time.Duration) category.Repository {
	return &postgresRepository{pool: pool, cache: c, ttl: ttl}
}

func cacheKey(slug string) string {
	return "category:slug:" + slug
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*category.Category, error) {
	if r.cache != nil {
		cached := &category.Category{}
		found, err := r.cache.Get(ctx, cacheKey(slug), cached)
		if err != nil {
			// A broken cache must not take category pages down.
			logger.Error("GetBySlug: cache read failed", err)
		} else if found {
			return cached, nil
		}
	}

	const query = `
		SELECT id, title, description, slug, is_published, created_at
		FROM categories
		WHERE slug = $1
	`

	entity := &category.Category{}
	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&entity.ID,
		&entity.Title,
		&entity.Description,
		&entity.Slug,
		&entity.IsPublished,
		&entity.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrCategoryNotFound
		}
		logger.Error("GetBySlug: database error", err)
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, cacheKey(slug), entity, r.ttl); err != nil {
			logger.Error("GetBySlug: cache write failed", err)
		}
	}

	return entity, nil
}
