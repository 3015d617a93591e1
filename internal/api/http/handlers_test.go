package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	vehicles     []domain.Vehicle
	brands       []string
	estimate     int
	feasible     bool
	feasibleErr  error
	alternatives []domain.Vehicle
}

func (s *stubCatalog) Filter(fuel service.FuelFilter, brand string) []domain.Vehicle {
	return s.vehicles
}

func (s *stubCatalog) Brands(fuel service.FuelFilter) []string { return s.brands }

func (s *stubCatalog) Get(id string) (domain.Vehicle, error) {
	for _, v := range s.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Vehicle{}, domain.ErrVehicleNotFound
}

func (s *stubCatalog) CheckDeliveryFeasible(id string, desiredDays int) (int, bool, error) {
	return s.estimate, s.feasible, s.feasibleErr
}

func (s *stubCatalog) UrgentAlternatives(fuel service.FuelFilter, desiredDays int) []domain.Vehicle {
	return s.alternatives
}

func (s *stubCatalog) MarkUnavailable(ctx context.Context, id string) error { return nil }

func (s *stubCatalog) Stats() service.CatalogStats { return service.CatalogStats{} }

type stubBookings struct {
	booking   *domain.Booking
	createErr error
	payErr    error
}

func (s *stubBookings) CreateBooking(ctx context.Context, req service.CreateBookingRequest) (*domain.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.booking, nil
}

func (s *stubBookings) PayAdvance(ctx context.Context, bookingID string, amount float64) (*domain.Booking, error) {
	if s.payErr != nil {
		return nil, s.payErr
	}
	return s.booking, nil
}

func serve(t *testing.T, catalog service.CatalogService, bookings service.BookingService, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	router := NewRouter(
		NewVehicleHandler(catalog, []string{"Tesla Model Y", "BMW iX"}),
		NewBookingHandler(bookings, catalog),
	)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleList(t *testing.T) {
	catalog := &stubCatalog{vehicles: []domain.Vehicle{
		{ID: "E01", Model: "Tata Nexon EV", Brand: "Tata", Available: true, FuelType: domain.FuelTypeEV, Origin: domain.OriginDomestic},
	}}

	t.Run("Success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles?fuel=EV&brand=Tata", nil)
		rec := serve(t, catalog, &stubBookings{}, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Vehicles []domain.Vehicle `json:"vehicles"`
			Count    int              `json:"count"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 1, body.Count)
		assert.Equal(t, "E01", body.Vehicles[0].ID)
	})

	t.Run("Bad fuel filter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles?fuel=diesel", nil)
		rec := serve(t, catalog, &stubBookings{}, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleBrands(t *testing.T) {
	catalog := &stubCatalog{brands: []string{"Tata", "Mahindra"}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles/brands?fuel=EV", nil)
	rec := serve(t, catalog, &stubBookings{}, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Brands []string `json:"brands"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"Tata", "Mahindra"}, body.Brands)
}

func TestHandleUpcoming(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles/upcoming", nil)
	rec := serve(t, &stubCatalog{}, &stubBookings{}, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Models []string `json:"models"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"Tesla Model Y", "BMW iX"}, body.Models)
}

func createBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(map[string]any{
		"customer_name":         "Asha",
		"contact":               "9876543210",
		"vehicle_id":            "E01",
		"rent_days":             30,
		"desired_delivery_days": 5,
	})
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestHandleCreate(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		catalog := &stubCatalog{estimate: 3, feasible: true}
		bookings := &stubBookings{booking: &domain.Booking{
			ID:        "b-001",
			VehicleID: "E01",
			FinalCost: 16500,
			Status:    domain.BookingStatusCreated,
		}}

		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", createBody(t))
		rec := serve(t, catalog, bookings, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var body domain.Booking
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "b-001", body.ID)
		assert.Equal(t, domain.BookingStatusCreated, body.Status)
	})

	t.Run("Infeasible window answers 409 with alternatives", func(t *testing.T) {
		catalog := &stubCatalog{
			estimate: 15,
			feasible: false,
			alternatives: []domain.Vehicle{
				{ID: "E02", Brand: "Tata", Available: true},
			},
		}

		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", createBody(t))
		rec := serve(t, catalog, &stubBookings{}, req)

		require.Equal(t, http.StatusConflict, rec.Code)
		var body struct {
			Error                 string           `json:"error"`
			EstimatedDeliveryDays int              `json:"estimated_delivery_days"`
			Alternatives          []domain.Vehicle `json:"alternatives"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 15, body.EstimatedDeliveryDays)
		require.Len(t, body.Alternatives, 1)
		assert.Equal(t, "E02", body.Alternatives[0].ID)
	})

	t.Run("Window too short", func(t *testing.T) {
		catalog := &stubCatalog{feasibleErr: domain.ErrDeliveryWindowTooShort}

		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", createBody(t))
		rec := serve(t, catalog, &stubBookings{}, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Unknown vehicle", func(t *testing.T) {
		catalog := &stubCatalog{feasibleErr: domain.ErrVehicleNotFound}

		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", createBody(t))
		rec := serve(t, catalog, &stubBookings{}, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Unavailable vehicle", func(t *testing.T) {
		catalog := &stubCatalog{estimate: 3, feasible: true}
		bookings := &stubBookings{createErr: domain.ErrVehicleUnavailable}

		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", createBody(t))
		rec := serve(t, catalog, bookings, req)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Missing fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings",
			bytes.NewBufferString(`{"vehicle_id": "E01"}`))
		rec := serve(t, &stubCatalog{}, &stubBookings{}, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings",
			bytes.NewBufferString("not json"))
		rec := serve(t, &stubCatalog{}, &stubBookings{}, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandlePayAdvance(t *testing.T) {
	payBody := func() *bytes.Buffer {
		return bytes.NewBufferString(`{"amount": 3300}`)
	}

	t.Run("Paid", func(t *testing.T) {
		bookings := &stubBookings{booking: &domain.Booking{
			ID:             "b-001",
			Status:         domain.BookingStatusPaid,
			AdvancePayment: 3300,
		}}

		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/b-001/advance-payment", payBody())
		rec := serve(t, &stubCatalog{}, bookings, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body domain.Booking
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, domain.BookingStatusPaid, body.Status)
		assert.Equal(t, 3300.0, body.AdvancePayment)
	})

	t.Run("Insufficient advance answers 402", func(t *testing.T) {
		bookings := &stubBookings{payErr: domain.ErrInsufficientAdvance}

		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/b-001/advance-payment", payBody())
		rec := serve(t, &stubCatalog{}, bookings, req)
		assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	})

	t.Run("Already paid", func(t *testing.T) {
		bookings := &stubBookings{payErr: domain.ErrBookingAlreadyPaid}

		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/b-001/advance-payment", payBody())
		rec := serve(t, &stubCatalog{}, bookings, req)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Unknown booking", func(t *testing.T) {
		bookings := &stubBookings{payErr: domain.ErrBookingNotFound}

		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/missing/advance-payment", payBody())
		rec := serve(t, &stubCatalog{}, bookings, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
