package handlers

import (
	"net/http"
	"strings"

	"harvesthub/models"
)

// CreatePurchaseRequestHandler обрабатывает POST /api/purchase-request
func (h *Handler) CreatePurchaseRequestHandler(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ListingID    int    `json:"listing_id"`
		BuyerID      string `json:"buyer_id"`
		PaymentProof string `json:"payment_proof"`
	}
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	in.BuyerID = strings.TrimSpace(in.BuyerID)

	if in.ListingID <= 0 || in.BuyerID == "" || in.PaymentProof == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if err := checkLen("buyer_id", in.BuyerID, maxIDLen); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	req := models.PurchaseRequest{
		ListingID:    in.ListingID,
		BuyerID:      in.BuyerID,
		PaymentProof: in.PaymentProof,
	}
	if err := h.Store.CreatePurchaseRequest(r.Context(), &req); err != nil {
		writeStoreError(w, "create purchase request", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"id": req.ID, "message": "Purchase request sent"})
}

func (h *Handler) GetFarmerPurchaseRequestsHandler(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Store.GetFarmerPurchaseRequests(r.Context(), userParam(r))
	if err != nil {
		writeStoreError(w, "fetch purchase requests", err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *Handler) GetBuyerPurchaseRequestsHandler(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Store.GetBuyerPurchaseRequests(r.Context(), userParam(r))
	if err != nil {
		writeStoreError(w, "fetch purchase requests", err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

// UpdatePurchaseRequestStatusHandler обрабатывает PUT /api/purchase-request/{requestId}/status.
// Одобрение заодно помечает объявление проданным.
func (h *Handler) UpdatePurchaseRequestStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "requestId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var in struct {
		Status models.RequestStatus `json:"status"`
	}
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !in.Status.IsDecision() {
		writeError(w, http.StatusBadRequest, "Invalid status value")
		return
	}

	if err := h.Store.ResolvePurchaseRequest(r.Context(), id, in.Status); err != nil {
		writeStoreError(w, "update purchase request", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "status": in.Status})
}
