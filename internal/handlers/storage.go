package handlers

import (
	"context"

	"harvesthub/models"
)

type StorageInterface interface {
	Ping(ctx context.Context) error

	CreateUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, username string) (*models.User, error)

	CreateListing(ctx context.Context, l *models.Listing) error
	GetListing(ctx context.Context, id int) (*models.Listing, error)
	GetListings(ctx context.Context) ([]models.Listing, error)
	GetFarmerListings(ctx context.Context, farmerID string) ([]models.Listing, error)
	GetAvailableListings(ctx context.Context, types ...models.ListingType) ([]models.Listing, error)
	GetClaimedListings(ctx context.Context, ngoID string) ([]models.Listing, error)
	UpdateListing(ctx context.Context, l *models.Listing) error
	DeleteListing(ctx context.Context, id int) error
	ClaimListing(ctx context.Context, id int, claimant string) (*models.Listing, error)

	UpsertNGOProfile(ctx context.Context, p *models.NGOProfile) error
	GetNGOProfile(ctx context.Context, ngoID string) (*models.NGOProfile, error)

	CreatePurchaseRequest(ctx context.Context, r *models.PurchaseRequest) error
	GetFarmerPurchaseRequests(ctx context.Context, farmerID string) ([]models.PurchaseRequest, error)
	GetBuyerPurchaseRequests(ctx context.Context, buyerID string) ([]models.PurchaseRequest, error)
	ResolvePurchaseRequest(ctx context.Context, id int, decision models.RequestStatus) error
}
