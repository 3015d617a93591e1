package domain

type Origin string

const (
	OriginDomestic Origin = "DOMESTIC"
	OriginImported Origin = "IMPORTED"
)

type FuelType string

const (
	FuelTypeEV     FuelType = "EV"
	FuelTypePetrol FuelType = "PETROL"
)

// Vehicle is one rentable unit in the catalog. Origin and FuelType are
// fixed at construction; Available is the only mutable field and flips
// true->false exactly once, when a booking for the vehicle is paid.
type Vehicle struct {
	ID            string   `json:"id"`
	Model         string   `json:"model"`
	Brand         string   `json:"brand"`
	Mileage       float64  `json:"mileage"` // km/l for petrol, km of range for EVs
	MonthlyRentRs float64  `json:"monthly_rent_rs"`
	Available     bool     `json:"available"`
	StockDays     int      `json:"stock_days"`
	Origin        Origin   `json:"origin"`
	FuelType      FuelType `json:"fuel_type"`
}
