package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"harvesthub/db"
	"harvesthub/internal/auth"
	"harvesthub/models"
)

type credentials struct {
	Username string      `json:"username"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// RegisterHandler обрабатывает POST /api/register
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	in.Username = strings.TrimSpace(in.Username)

	if in.Username == "" || in.Password == "" || in.Role == "" {
		writeError(w, http.StatusBadRequest, "Missing fields")
		return
	}
	if !in.Role.Valid() {
		writeError(w, http.StatusBadRequest, "role must be one of farmer, buyer, ngo")
		return
	}
	if err := checkLen("username", in.Username, maxIDLen); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := auth.HashPassword(in.Password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.Printf("register %s: %v", in.Username, err)
		writeError(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	user := models.User{Username: in.Username, PasswordHash: hash, Role: in.Role}
	if err := h.Store.CreateUser(r.Context(), &user); err != nil {
		writeStoreError(w, "register", err)
		return
	}

	writeMessage(w, http.StatusCreated, "Registration successful")
}

// LoginHandler обрабатывает POST /api/login
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	in.Username = strings.TrimSpace(in.Username)

	if in.Username == "" || in.Password == "" {
		writeError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	user, err := h.Store.GetUser(r.Context(), in.Username)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
		return
	}
	if err != nil {
		writeStoreError(w, "login", err)
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, in.Password); err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"username": user.Username,
		"role":     string(user.Role),
		"message":  "Login successful",
	})
}
