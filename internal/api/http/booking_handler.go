package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookings service.BookingService
	catalog  service.CatalogService
}

func NewBookingHandler(bookings service.BookingService, catalog service.CatalogService) *BookingHandler {
	return &BookingHandler{bookings: bookings, catalog: catalog}
}

type createBookingRequest struct {
	CustomerName        string `json:"customer_name"`
	Contact             string `json:"contact"`
	VehicleID           string `json:"vehicle_id"`
	RentDays            int    `json:"rent_days"`
	DesiredDeliveryDays int    `json:"desired_delivery_days"`
	// FuelFilter scopes the urgent-alternative search when the chosen
	// vehicle cannot meet the delivery window. Defaults to ALL.
	FuelFilter string `json:"fuel_filter,omitempty"`
}

type payAdvanceRequest struct {
	Amount float64 `json:"amount"`
}

// HandleCreate checks delivery feasibility for the chosen vehicle and
// either creates the booking or answers 409 with urgent alternatives
// (possibly empty). The feasibility draw here and the booking's own
// draw are separate, independent estimates.
func (h *BookingHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CustomerName == "" || req.Contact == "" || req.VehicleID == "" {
		writeError(w, http.StatusBadRequest, "customer_name, contact and vehicle_id are required")
		return
	}
	if req.RentDays <= 0 {
		writeError(w, http.StatusBadRequest, "rent_days must be positive")
		return
	}
	fuel, ok := service.ParseFuelFilter(req.FuelFilter)
	if !ok {
		writeError(w, http.StatusBadRequest, "fuel_filter must be EV, PETROL or ALL")
		return
	}

	estimate, feasible, err := h.catalog.CheckDeliveryFeasible(req.VehicleID, req.DesiredDeliveryDays)
	if err != nil {
		h.writeBookingError(w, err)
		return
	}
	if !feasible {
		writeJSON(w, http.StatusConflict, map[string]any{
			"error":                   "selected vehicle cannot meet the delivery window",
			"estimated_delivery_days": estimate,
			"alternatives":            h.catalog.UrgentAlternatives(fuel, req.DesiredDeliveryDays),
		})
		return
	}

	booking, err := h.bookings.CreateBooking(r.Context(), service.CreateBookingRequest{
		CustomerName:        req.CustomerName,
		Contact:             req.Contact,
		VehicleID:           req.VehicleID,
		RentDays:            req.RentDays,
		DesiredDeliveryDays: req.DesiredDeliveryDays,
	})
	if err != nil {
		h.writeBookingError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) HandlePayAdvance(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["id"]

	var req payAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	booking, err := h.bookings.PayAdvance(r.Context(), bookingID, req.Amount)
	if err != nil {
		h.writeBookingError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) writeBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDeliveryWindowTooShort):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrVehicleNotFound), errors.Is(err, domain.ErrBookingNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrVehicleUnavailable), errors.Is(err, domain.ErrBookingAlreadyPaid):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInsufficientAdvance):
		writeError(w, http.StatusPaymentRequired, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
