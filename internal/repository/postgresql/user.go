package postgresql

import (
	"context"
	"fmt"

	"github.com/emiratehr/payroll-backend-go/internal/domain/user"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	query := `
		INSERT INTO users (username, password_hash, active, created_at, updated_at)
		VALUES ($1, $2, TRUE, NOW(), NOW())
		RETURNING id, username, password_hash, active, created_at, updated_at
	`

	var created user.User
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, u.Username, u.PasswordHash).Scan(
		&created.ID,
		&created.Username,
		&created.PasswordHash,
		&created.Active,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return created, nil
}

func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	query := `
		SELECT id, username, password_hash, active, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var u user.User
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, username).Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Active,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}

	return u, nil
}
