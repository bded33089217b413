package handlers

import (
	"net/http"

	"harvesthub/internal/analytics"
	"harvesthub/models"

	"github.com/go-chi/chi/v5"
)

func userParam(r *http.Request) string {
	return chi.URLParam(r, "userId")
}

// FarmerAnalyticsHandler обрабатывает GET /api/analytics/farmer/{userId}
func (h *Handler) FarmerAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	listings, err := h.Store.GetFarmerListings(r.Context(), userParam(r))
	if err != nil {
		writeStoreError(w, "fetch analytics", err)
		return
	}
	writeJSON(w, http.StatusOK, analytics.Farmer(listings))
}

// BuyerAnalyticsHandler считает статистику по рынку; userId только для единообразия маршрутов
func (h *Handler) BuyerAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	listings, err := h.Store.GetAvailableListings(r.Context(), models.ListingSell, models.ListingBarter)
	if err != nil {
		writeStoreError(w, "fetch analytics", err)
		return
	}
	writeJSON(w, http.StatusOK, analytics.Buyer(listings))
}

// NGOAnalyticsHandler обрабатывает GET /api/analytics/ngo/{userId}
func (h *Handler) NGOAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	claimed, err := h.Store.GetClaimedListings(r.Context(), userParam(r))
	if err != nil {
		writeStoreError(w, "fetch analytics", err)
		return
	}
	available, err := h.Store.GetAvailableListings(r.Context(), models.ListingDonate)
	if err != nil {
		writeStoreError(w, "fetch analytics", err)
		return
	}
	writeJSON(w, http.StatusOK, analytics.NGO(claimed, available))
}
