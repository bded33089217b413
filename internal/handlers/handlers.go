package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"unicode/utf8"

	"harvesthub/db"

	"github.com/go-chi/chi/v5"
)

// Ограничение размера тела; payment_proof может быть картинкой в base64
const maxBodyBytes = 5 << 20

// Ширины колонок VARCHAR, в символах
const (
	maxIDLen       = 100
	maxTitleLen    = 100
	maxQuantityLen = 50
	maxNGOFieldLen = 200
	// DECIMAL(10,2)
	maxPrice = 99999999.99
)

// Handler оборачивает хранилище для доступа к данным
type Handler struct {
	Store StorageInterface
}

// NewHandler создает новый Handler
func NewHandler(store StorageInterface) *Handler {
	return &Handler{Store: store}
}

// HomeHandler отвечает, что сервис запущен
func (h *Handler) HomeHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Harvest Hub Backend is running!"))
}

// PingHandler отвечает "ok", если база доступна
func (h *Handler) PingHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Ping(r.Context()); err != nil {
		log.Printf("ping store: %v", err)
		writeError(w, http.StatusInternalServerError, "DB connection failed")
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return errors.New("failed to read request body")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return errors.New("invalid JSON format")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// writeStoreError переводит ошибки хранилища в HTTP-ответ.
// Неизвестные ошибки логируются и отдаются как 500 без подробностей.
func writeStoreError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, db.ErrNotFound),
		errors.Is(err, db.ErrNotFoundOrLocked),
		errors.Is(err, db.ErrNotEligible),
		errors.Is(err, db.ErrListingUnavailable):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, db.ErrDuplicateUsername), errors.Is(err, db.ErrInvalidDecision):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, db.ErrAlreadyResolved):
		writeError(w, http.StatusConflict, db.ErrAlreadyResolved.Error())
	default:
		log.Printf("%s: %v", op, err)
		writeError(w, http.StatusInternalServerError, "Failed to "+op)
	}
}

func urlParamID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

func checkLen(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return fmt.Errorf("%s max length %d", field, max)
	}
	return nil
}
