package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

// seqSource replays a fixed sequence of draws so delivery estimates are
// deterministic in tests.
type seqSource struct {
	vals []int
	idx  int
}

func (s *seqSource) Intn(n int) int {
	v := s.vals[s.idx%len(s.vals)]
	s.idx++
	return v % n
}

type fakeVehicleRepo struct {
	marked  []string
	markErr error
}

func (f *fakeVehicleRepo) ListAll(ctx context.Context) ([]domain.Vehicle, error) {
	return nil, nil
}

func (f *fakeVehicleRepo) MarkUnavailable(ctx context.Context, id string) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.marked = append(f.marked, id)
	return nil
}

type fakeCustomerRepo struct {
	years     map[string]int
	appended  map[string]int
	lookupErr error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		years:    make(map[string]int),
		appended: make(map[string]int),
	}
}

func (f *fakeCustomerRepo) LookupYears(ctx context.Context, contact string) (int, bool, error) {
	if f.lookupErr != nil {
		return 0, false, f.lookupErr
	}
	y, ok := f.years[contact]
	return y, ok, nil
}

func (f *fakeCustomerRepo) AppendCustomer(ctx context.Context, contact string, years int) error {
	f.appended[contact] = years
	f.years[contact] = years
	return nil
}

type fakeBookingRepo struct {
	byID      map[string]*domain.Booking
	createErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byID: make(map[string]*domain.Booking)}
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	stored := *b
	f.byID[b.ID] = &stored
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	copy := *b
	return &copy, nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, b *domain.Booking) error {
	stored := *b
	f.byID[b.ID] = &stored
	return nil
}

func (f *fakeBookingRepo) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

func testFleet() []domain.Vehicle {
	return []domain.Vehicle{
		{ID: "E01", Model: "Tata Nexon EV", Brand: "Tata", Mileage: 500, MonthlyRentRs: 15000, Available: true, StockDays: 60, Origin: domain.OriginDomestic, FuelType: domain.FuelTypeEV},
		{ID: "E02", Model: "Tata Tigor EV", Brand: "Tata", Mileage: 200, MonthlyRentRs: 12000, Available: true, StockDays: 26, Origin: domain.OriginDomestic, FuelType: domain.FuelTypeEV},
		{ID: "E03", Model: "Tata Tiago EV", Brand: "Tata", Mileage: 2500, MonthlyRentRs: 11000, Available: true, StockDays: 24, Origin: domain.OriginDomestic, FuelType: domain.FuelTypeEV},
		{ID: "E04", Model: "Tata Punch EV", Brand: "Tata", Mileage: 400, MonthlyRentRs: 13000, Available: true, StockDays: 35, Origin: domain.OriginDomestic, FuelType: domain.FuelTypeEV},
		{ID: "E05", Model: "Tata Curvv EV", Brand: "Tata", Mileage: 500, MonthlyRentRs: 18000, Available: false, StockDays: 12, Origin: domain.OriginDomestic, FuelType: domain.FuelTypeEV},
		{ID: "N03", Model: "Tata Altroz", Brand: "Tata", Mileage: 15, MonthlyRentRs: 9500, Available: true, StockDays: 37, Origin: domain.OriginDomestic, FuelType: domain.FuelTypePetrol},
		{ID: "N05", Model: "Hyundai i20", Brand: "Hyundai", Mileage: 18, MonthlyRentRs: 10000, Available: true, StockDays: 300, Origin: domain.OriginDomestic, FuelType: domain.FuelTypePetrol},
		{ID: "N06", Model: "Honda Amaze", Brand: "Honda", Mileage: 20, MonthlyRentRs: 8000, Available: true, StockDays: 20, Origin: domain.OriginDomestic, FuelType: domain.FuelTypePetrol},
		{ID: "I01", Model: "Audi A8", Brand: "Audi", Mileage: 12, MonthlyRentRs: 45000, Available: true, StockDays: 200, Origin: domain.OriginImported, FuelType: domain.FuelTypePetrol},
	}
}
