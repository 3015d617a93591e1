package http

import (
	"net/http"

	"carrental-backend/internal/logger"

	"github.com/gorilla/mux"
)

// NewRouter wires all handlers under /api/v1.
func NewRouter(vehicles *VehicleHandler, bookings *BookingHandler) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogging)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/vehicles", vehicles.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/brands", vehicles.HandleBrands).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/upcoming", vehicles.HandleUpcoming).Methods(http.MethodGet)
	api.HandleFunc("/bookings", bookings.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}/advance-payment", bookings.HandlePayAdvance).Methods(http.MethodPost)

	return r
}

func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("HTTP request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
