package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"harvesthub/internal/config"
	"harvesthub/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrNotFoundOrLocked   = errors.New("listing not found or not available")
	ErrNotEligible        = errors.New("listing not eligible for claim")
	ErrListingUnavailable = errors.New("listing unavailable")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrAlreadyResolved    = errors.New("purchase request already resolved")
	ErrInvalidDecision    = models.ErrInvalidDecision
)

// Код PostgreSQL unique_violation
const uniqueViolation = "23505"

type Storage struct {
	db *sqlx.DB
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{db: db}
}

// Open подключается к базе по настройкам и проверяет соединение.
func Open(ctx context.Context, cfg config.Database) (*sqlx.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	conn, err := sqlx.ConnectContext(ctx, "postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return conn, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
