package repository

import (
	"context"
	"errors"
	"fmt"

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

func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	const query = `
		SELECT id, username, first_name, last_name, email, created_at
		FROM users
		WHERE id = $1
	`
	return r.getOne(ctx, query, id)
}

func (r *postgresRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	const query = `
		SELECT id, username, first_name, last_name, email, created_at
		FROM users
		WHERE username = $1
	`
	return r.getOne(ctx, query, username)
}

func (r *postgresRepository) getOne(ctx context.Context, query string, arg any) (*user.User, error) {
	entity := &user.User{}
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&entity.ID,
		&entity.Username,
		&entity.FirstName,
		&entity.LastName,
		&entity.Email,
		&entity.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		logger.Error("getOne: database error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return entity, nil
}

func (r *postgresRepository) UpdateProfile(ctx context.Context, entity *user.User) (*user.User, error) {
	const query = `
		UPDATE users
		SET username = $2, first_name = $3, last_name = $4, email = $5
		WHERE id = $1
		RETURNING id, username, first_name, last_name, email, created_at
	`

	updated := &user.User{}
	err := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Username,
		entity.FirstName,
		entity.LastName,
		entity.Email,
	).Scan(
		&updated.ID,
		&updated.Username,
		&updated.FirstName,
		&updated.LastName,
		&updated.Email,
		&updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, user.ErrDuplicateUsername
		}
		logger.Error("UpdateProfile: database error", err)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return updated, nil
}
