package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ahmadblivin/studybuddy/pkg/account"
)

// UserRepository implements account.UserRepository backed by PostgreSQL (pgx).
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) (*UserRepository, error) {
	repo := &UserRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *UserRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}

func (r *UserRepository) Create(ctx context.Context, user account.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, email, name, created_at)
		VALUES ($1, $2, $3, $4)
	`, user.ID, strings.ToLower(user.Email), user.Name, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return account.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (account.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, name, created_at
		FROM users WHERE email = $1
	`, strings.ToLower(email))
	var user account.User
	var createdAt time.Time
	if err := row.Scan(&user.ID, &user.Email, &user.Name, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.User{}, account.ErrNotFound
		}
		return account.User{}, err
	}
	user.CreatedAt = createdAt.UTC()
	return user, nil
}

func (r *UserRepository) UpdateName(ctx context.Context, email, name string) (account.User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users SET name = $2
		WHERE email = $1
		RETURNING id, email, name, created_at
	`, strings.ToLower(email), name)
	var user account.User
	var createdAt time.Time
	if err := row.Scan(&user.ID, &user.Email, &user.Name, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.User{}, account.ErrNotFound
		}
		return account.User{}, err
	}
	user.CreatedAt = createdAt.UTC()
	return user, nil
}
