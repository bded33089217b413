package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"harvesthub/db"
	"harvesthub/models"
)

type listingInput struct {
	Title         string             `json:"title"`
	Quantity      string             `json:"quantity"`
	Type          models.ListingType `json:"type"`
	FarmerID      string             `json:"farmer_id"`
	FarmerName    string             `json:"farmer_name"`
	AvailableDate models.NullDate    `json:"available_date"`
	Price         *float64           `json:"price"`
}

func (in *listingInput) trim() {
	in.Title = strings.TrimSpace(in.Title)
	in.Quantity = strings.TrimSpace(in.Quantity)
	in.FarmerID = strings.TrimSpace(in.FarmerID)
	in.FarmerName = strings.TrimSpace(in.FarmerName)
}

// validateListingFields проверяет поля, общие для создания и редактирования
func validateListingFields(in *listingInput) error {
	if in.Title == "" || in.Quantity == "" || in.Type == "" {
		return errors.New("Missing required fields")
	}
	if err := checkLen("title", in.Title, maxTitleLen); err != nil {
		return err
	}
	if err := checkLen("quantity", in.Quantity, maxQuantityLen); err != nil {
		return err
	}
	if !in.Type.Valid() {
		return errors.New("type must be one of sell, barter, donate")
	}
	if in.Price != nil && (*in.Price < 0 || *in.Price > maxPrice) {
		return fmt.Errorf("price must be between 0 and %.2f", maxPrice)
	}
	return nil
}

// CreateListingHandler обрабатывает POST /api/listings
func (h *Handler) CreateListingHandler(w http.ResponseWriter, r *http.Request) {
	var in listingInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	in.trim()

	if in.FarmerID == "" || in.FarmerName == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if err := errors.Join(
		checkLen("farmer_id", in.FarmerID, maxIDLen),
		checkLen("farmer_name", in.FarmerName, maxIDLen),
		validateListingFields(&in),
	); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	listing := models.Listing{
		Title:         in.Title,
		Quantity:      in.Quantity,
		Type:          in.Type,
		FarmerID:      in.FarmerID,
		FarmerName:    in.FarmerName,
		AvailableDate: in.AvailableDate,
		Price:         in.Price,
	}
	if err := h.Store.CreateListing(r.Context(), &listing); err != nil {
		writeStoreError(w, "add listing", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"id": listing.ID, "message": "Listing added"})
}

// GetListingsHandler возвращает все объявления
func (h *Handler) GetListingsHandler(w http.ResponseWriter, r *http.Request) {
	listings, err := h.Store.GetListings(r.Context())
	if err != nil {
		writeStoreError(w, "fetch listings", err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

func (h *Handler) GetListingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "listingId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	listing, err := h.Store.GetListing(r.Context(), id)
	if err != nil {
		writeStoreError(w, "fetch listing", err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

// UpdateListingHandler обрабатывает PUT /api/listings/{listingId}.
// Редактировать можно только доступное объявление.
func (h *Handler) UpdateListingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "listingId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var in listingInput
	err = decodeJSON(w, r, &in)
	if err == nil {
		in.trim()
		err = validateListingFields(&in)
	}
	if err != nil {
		h.rejectListingUpdate(r.Context(), w, id, err)
		return
	}

	listing := models.Listing{
		ID:            id,
		Title:         in.Title,
		Quantity:      in.Quantity,
		Type:          in.Type,
		AvailableDate: in.AvailableDate,
		Price:         in.Price,
	}
	if err := h.Store.UpdateListing(r.Context(), &listing); err != nil {
		writeStoreError(w, "update listing", err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

// rejectListingUpdate отвечает на некорректное тело. Недоступное или
// отсутствующее объявление дает 404 независимо от полей.
func (h *Handler) rejectListingUpdate(ctx context.Context, w http.ResponseWriter, id int, invalid error) {
	l, err := h.Store.GetListing(ctx, id)
	switch {
	case errors.Is(err, db.ErrNotFound), err == nil && !l.Status.Editable():
		writeStoreError(w, "update listing", db.ErrNotFoundOrLocked)
	case err != nil:
		writeStoreError(w, "update listing", err)
	default:
		writeError(w, http.StatusBadRequest, invalid.Error())
	}
}

// DeleteListingHandler обрабатывает DELETE /api/listings/{listingId}
func (h *Handler) DeleteListingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "listingId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Store.DeleteListing(r.Context(), id); err != nil {
		writeStoreError(w, "delete listing", err)
		return
	}
	writeMessage(w, http.StatusOK, "Listing deleted")
}

// ClaimListingHandler обрабатывает POST /api/claim/{listingId}: НКО забирает пожертвование
func (h *Handler) ClaimListingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "listingId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var in struct {
		NGOID string `json:"ngo_id"`
	}
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	in.NGOID = strings.TrimSpace(in.NGOID)
	if in.NGOID == "" {
		writeError(w, http.StatusBadRequest, "Missing ngo_id")
		return
	}
	if err := checkLen("ngo_id", in.NGOID, maxIDLen); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	listing, err := h.Store.ClaimListing(r.Context(), id, in.NGOID)
	if err != nil {
		writeStoreError(w, "claim listing", err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}
