package repository

import (
	"context"
	"errors"

	"parkspot/internal/domain/user"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/pgconv"
	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, email, password_hash, name, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, u.ID(), u.Email().String(), u.HashedPassword(), u.Name(), u.IsActive()).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	view := &queries.AuthorizedUserView{}
	var passwordHash string
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, name, is_active, password_hash
		FROM users
		WHERE email = $1
	`, email).Scan(&view.ID, &view.Email, &view.Name, &view.IsActive, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return view, passwordHash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	view := &queries.AuthorizedUserView{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, name, is_active
		FROM users
		WHERE id = $1
	`, id).Scan(&view.ID, &view.Email, &view.Name, &view.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return view, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
