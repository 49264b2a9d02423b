package repositories

import (
	"context"
	"errors"
	"time"

	"online-shop/config"
	"online-shop/models"

	"github.com/jackc/pgx/v5"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := config.DB.QueryRow(ctx,
		`INSERT INTO users (email, password, created_at) VALUES ($1, $2, $3) RETURNING id, created_at`,
		user.Email, user.Password, time.Now(),
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return models.PersistenceError("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := config.DB.QueryRow(ctx,
		`SELECT id, email, password, created_at FROM users WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.Email, &user.Password, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NotFoundError("user not found")
		}
		return nil, models.PersistenceError("failed to load user", err)
	}
	return &user, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int
	err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE email = $1`, email).Scan(&count)
	if err != nil {
		return false, models.PersistenceError("failed to check email", err)
	}
	return count > 0, nil
}
