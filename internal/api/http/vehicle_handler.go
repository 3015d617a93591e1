package http

import (
	"net/http"

	"carrental-backend/internal/service"
)

// VehicleHandler serves the catalog browse flow: filtered listings,
// brand lists, and the static upcoming-models teaser.
type VehicleHandler struct {
	catalog        service.CatalogService
	upcomingModels []string
}

func NewVehicleHandler(catalog service.CatalogService, upcomingModels []string) *VehicleHandler {
	return &VehicleHandler{
		catalog:        catalog,
		upcomingModels: upcomingModels,
	}
}

func (h *VehicleHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	fuel, ok := service.ParseFuelFilter(r.URL.Query().Get("fuel"))
	if !ok {
		writeError(w, http.StatusBadRequest, "fuel must be EV, PETROL or ALL")
		return
	}
	brand := r.URL.Query().Get("brand")

	vehicles := h.catalog.Filter(fuel, brand)
	writeJSON(w, http.StatusOK, map[string]any{
		"vehicles": vehicles,
		"count":    len(vehicles),
	})
}

func (h *VehicleHandler) HandleBrands(w http.ResponseWriter, r *http.Request) {
	fuel, ok := service.ParseFuelFilter(r.URL.Query().Get("fuel"))
	if !ok {
		writeError(w, http.StatusBadRequest, "fuel must be EV, PETROL or ALL")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"brands": h.catalog.Brands(fuel),
	})
}

func (h *VehicleHandler) HandleUpcoming(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"models": h.upcomingModels,
	})
}
