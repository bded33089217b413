package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"harvesthub/models"

	"github.com/jmoiron/sqlx"
)

const listingColumns = `id, title, quantity, type, farmer_id, farmer_name, available_date, price, status, claimed_by`

func (s *Storage) CreateListing(ctx context.Context, l *models.Listing) error {
	query := `
        INSERT INTO listings
            (title, quantity, type, farmer_id, farmer_name, available_date, price, status)
        VALUES
            ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id`
	l.Status = models.StatusAvailable
	l.ClaimedBy = nil
	err := s.db.QueryRowContext(ctx, query,
		l.Title, l.Quantity, l.Type, l.FarmerID, l.FarmerName, l.AvailableDate, l.Price, l.Status).
		Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert listing: %w", err)
	}
	return nil
}

func (s *Storage) GetListing(ctx context.Context, id int) (*models.Listing, error) {
	l := &models.Listing{}
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`
	err := s.db.GetContext(ctx, l, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select listing: %w", err)
	}
	return l, nil
}

func (s *Storage) GetListings(ctx context.Context) ([]models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings ORDER BY id`
	listings := []models.Listing{}
	if err := s.db.SelectContext(ctx, &listings, query); err != nil {
		return nil, fmt.Errorf("select listings: %w", err)
	}
	return listings, nil
}

func (s *Storage) GetFarmerListings(ctx context.Context, farmerID string) ([]models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE farmer_id = $1 ORDER BY id`
	listings := []models.Listing{}
	if err := s.db.SelectContext(ctx, &listings, query, farmerID); err != nil {
		return nil, fmt.Errorf("select farmer listings: %w", err)
	}
	return listings, nil
}

// GetAvailableListings возвращает доступные объявления указанных типов.
func (s *Storage) GetAvailableListings(ctx context.Context, types ...models.ListingType) ([]models.Listing, error) {
	query, args, err := sqlx.In(
		`SELECT `+listingColumns+` FROM listings WHERE status = ? AND type IN (?) ORDER BY id`,
		models.StatusAvailable, types)
	if err != nil {
		return nil, fmt.Errorf("build available listings query: %w", err)
	}
	listings := []models.Listing{}
	if err := s.db.SelectContext(ctx, &listings, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select available listings: %w", err)
	}
	return listings, nil
}

func (s *Storage) GetClaimedListings(ctx context.Context, ngoID string) ([]models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE claimed_by = $1 AND status = $2 ORDER BY id`
	listings := []models.Listing{}
	if err := s.db.SelectContext(ctx, &listings, query, ngoID, models.StatusClaimed); err != nil {
		return nil, fmt.Errorf("select claimed listings: %w", err)
	}
	return listings, nil
}

// UpdateListing меняет поля объявления одним условным UPDATE:
// строка обновляется, только пока статус редактируемый.
func (s *Storage) UpdateListing(ctx context.Context, l *models.Listing) error {
	query := `
        UPDATE listings
        SET title = $2, quantity = $3, type = $4, available_date = $5, price = $6
        WHERE id = $1 AND status = $7
        RETURNING ` + listingColumns
	err := s.db.GetContext(ctx, l, query,
		l.ID, l.Title, l.Quantity, l.Type, l.AvailableDate, l.Price, models.EditableStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFoundOrLocked
	}
	if err != nil {
		return fmt.Errorf("update listing: %w", err)
	}
	return nil
}

func (s *Storage) DeleteListing(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ClaimListing резервирует пожертвование за НКО. Проверка типа и статуса
// входит в WHERE, поэтому из двух одновременных claim проходит только один.
func (s *Storage) ClaimListing(ctx context.Context, id int, claimant string) (*models.Listing, error) {
	query := `
        UPDATE listings
        SET status = $3, claimed_by = $2
        WHERE id = $1 AND type = $4 AND status = $5
        RETURNING ` + listingColumns
	l := &models.Listing{}
	err := s.db.GetContext(ctx, l, query,
		id, claimant, models.ClaimTransition.To, models.ClaimableType, models.ClaimTransition.From)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotEligible
	}
	if err != nil {
		return nil, fmt.Errorf("claim listing: %w", err)
	}
	return l, nil
}
