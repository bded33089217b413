package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"harvesthub/models"
)

// UpsertNGOProfile создает профиль или полностью заменяет существующий.
func (s *Storage) UpsertNGOProfile(ctx context.Context, p *models.NGOProfile) error {
	query := `
        INSERT INTO ngo_profiles (ngo_id, org_name, contact, address, focus_area)
        VALUES (:ngo_id, :org_name, :contact, :address, :focus_area)
        ON CONFLICT (ngo_id) DO UPDATE SET
            org_name = EXCLUDED.org_name,
            contact = EXCLUDED.contact,
            address = EXCLUDED.address,
            focus_area = EXCLUDED.focus_area`
	if _, err := s.db.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("upsert ngo profile: %w", err)
	}
	return nil
}

func (s *Storage) GetNGOProfile(ctx context.Context, ngoID string) (*models.NGOProfile, error) {
	p := &models.NGOProfile{}
	query := `SELECT ngo_id, org_name, contact, address, focus_area FROM ngo_profiles WHERE ngo_id = $1`
	err := s.db.GetContext(ctx, p, query, ngoID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select ngo profile: %w", err)
	}
	return p, nil
}
