package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"harvesthub/models"
)

const purchaseRequestColumns = `id, listing_id, buyer_id, farmer_id, crop_title, quantity, price, payment_proof, status, created_at`

// CreatePurchaseRequest создает заявку, копируя условия из объявления тем же
// запросом. Если объявление уже не available, ничего не вставляется.
func (s *Storage) CreatePurchaseRequest(ctx context.Context, r *models.PurchaseRequest) error {
	query := `
        INSERT INTO purchase_requests
            (listing_id, buyer_id, farmer_id, crop_title, quantity, price, payment_proof, status)
        SELECT id, $2, farmer_id, title, quantity, price, $3, $4
        FROM listings
        WHERE id = $1 AND status = $5
        RETURNING ` + purchaseRequestColumns
	err := s.db.GetContext(ctx, r, query,
		r.ListingID, r.BuyerID, r.PaymentProof, models.RequestPending, models.SellTransition.From)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrListingUnavailable
	}
	if err != nil {
		return fmt.Errorf("insert purchase request: %w", err)
	}
	return nil
}

func (s *Storage) GetFarmerPurchaseRequests(ctx context.Context, farmerID string) ([]models.PurchaseRequest, error) {
	query := `SELECT ` + purchaseRequestColumns + ` FROM purchase_requests WHERE farmer_id = $1 ORDER BY created_at DESC`
	requests := []models.PurchaseRequest{}
	if err := s.db.SelectContext(ctx, &requests, query, farmerID); err != nil {
		return nil, fmt.Errorf("select farmer purchase requests: %w", err)
	}
	return requests, nil
}

func (s *Storage) GetBuyerPurchaseRequests(ctx context.Context, buyerID string) ([]models.PurchaseRequest, error) {
	query := `SELECT ` + purchaseRequestColumns + ` FROM purchase_requests WHERE buyer_id = $1 ORDER BY created_at DESC`
	requests := []models.PurchaseRequest{}
	if err := s.db.SelectContext(ctx, &requests, query, buyerID); err != nil {
		return nil, fmt.Errorf("select buyer purchase requests: %w", err)
	}
	return requests, nil
}

// ResolvePurchaseRequest фиксирует решение фермера. При одобрении объявление
// переводится в sold в той же транзакции; если это невозможно, заявка
// остается pending.
func (s *Storage) ResolvePurchaseRequest(ctx context.Context, id int, decision models.RequestStatus) error {
	if !decision.IsDecision() {
		return fmt.Errorf("%w: %q", ErrInvalidDecision, decision)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var req struct {
		ListingID int                  `db:"listing_id"`
		Status    models.RequestStatus `db:"status"`
	}
	err = tx.GetContext(ctx, &req,
		`SELECT listing_id, status FROM purchase_requests WHERE id = $1 FOR UPDATE`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("select purchase request: %w", err)
	}

	next, err := req.Status.Resolve(decision)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAlreadyResolved, err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE purchase_requests SET status = $2 WHERE id = $1`, id, next); err != nil {
		return fmt.Errorf("update purchase request: %w", err)
	}

	if next == models.RequestApproved {
		if err := markSold(ctx, tx, req.ListingID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func markSold(ctx context.Context, tx execGetter, listingID int) error {
	var status models.ListingStatus
	err := tx.GetContext(ctx, &status, `SELECT status FROM listings WHERE id = $1 FOR UPDATE`, listingID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrListingUnavailable
	}
	if err != nil {
		return fmt.Errorf("select listing: %w", err)
	}

	sold, err := status.Sell()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrListingUnavailable, err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE listings SET status = $2 WHERE id = $1`, listingID, sold); err != nil {
		return fmt.Errorf("mark listing sold: %w", err)
	}
	return nil
}

type execGetter interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
