package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter собирает все маршруты API
func NewRouter(h *Handler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", h.HomeHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", h.PingHandler)
		// пользователи
		r.Post("/register", h.RegisterHandler)
		r.Post("/login", h.LoginHandler)
		// объявления
		r.Post("/listings", h.CreateListingHandler)
		r.Get("/listings", h.GetListingsHandler)
		r.Get("/listings/{listingId}", h.GetListingHandler)
		r.Put("/listings/{listingId}", h.UpdateListingHandler)
		r.Delete("/listings/{listingId}", h.DeleteListingHandler)
		r.Post("/claim/{listingId}", h.ClaimListingHandler)
		// НКО
		r.Get("/ngo/profile", h.GetNGOProfileHandler)
		r.Post("/ngo/profile", h.SaveNGOProfileHandler)
		// аналитика
		r.Get("/analytics/farmer/{userId}", h.FarmerAnalyticsHandler)
		r.Get("/analytics/buyer/{userId}", h.BuyerAnalyticsHandler)
		r.Get("/analytics/ngo/{userId}", h.NGOAnalyticsHandler)
		// заявки на покупку
		r.Post("/purchase-request", h.CreatePurchaseRequestHandler)
		r.Get("/purchase-requests/farmer/{userId}", h.GetFarmerPurchaseRequestsHandler)
		r.Get("/purchase-requests/buyer/{userId}", h.GetBuyerPurchaseRequestsHandler)
		r.Put("/purchase-request/{requestId}/status", h.UpdatePurchaseRequestStatusHandler)
	})

	return r
}
