package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"harvesthub/models"
)

// CreateUser сохраняет пользователя с уже захешированным паролем.
func (s *Storage) CreateUser(ctx context.Context, u *models.User) error {
	query := `INSERT INTO users (username, password, role) VALUES ($1, $2, $3)`
	_, err := s.db.ExecContext(ctx, query, u.Username, u.PasswordHash, u.Role)
	if isUniqueViolation(err) {
		return ErrDuplicateUsername
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *Storage) GetUser(ctx context.Context, username string) (*models.User, error) {
	u := &models.User{}
	query := `SELECT username, password, role FROM users WHERE username = $1`
	err := s.db.GetContext(ctx, u, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	return u, nil
}
