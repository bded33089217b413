package handlers

import (
	"errors"
	"net/http"
	"strings"

	"harvesthub/models"
)

// GetNGOProfileHandler обрабатывает GET /api/ngo/profile?ngo_id=...
func (h *Handler) GetNGOProfileHandler(w http.ResponseWriter, r *http.Request) {
	ngoID := strings.TrimSpace(r.URL.Query().Get("ngo_id"))
	if ngoID == "" {
		writeError(w, http.StatusBadRequest, "Missing ngo_id parameter")
		return
	}

	profile, err := h.Store.GetNGOProfile(r.Context(), ngoID)
	if err != nil {
		writeStoreError(w, "fetch ngo profile", err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// SaveNGOProfileHandler обрабатывает POST /api/ngo/profile (создание или замена)
func (h *Handler) SaveNGOProfileHandler(w http.ResponseWriter, r *http.Request) {
	var p models.NGOProfile
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	for _, f := range []*string{&p.NGOID, &p.OrgName, &p.Contact, &p.Address, &p.FocusArea} {
		*f = strings.TrimSpace(*f)
		if *f == "" {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}
	}

	if err := errors.Join(
		checkLen("ngo_id", p.NGOID, maxIDLen),
		checkLen("org_name", p.OrgName, maxNGOFieldLen),
		checkLen("contact", p.Contact, maxNGOFieldLen),
		checkLen("focus_area", p.FocusArea, maxNGOFieldLen),
	); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Store.UpsertNGOProfile(r.Context(), &p); err != nil {
		writeStoreError(w, "save ngo profile", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
