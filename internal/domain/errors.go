package domain

import "errors"

var (
	ErrInsufficientAdvance    = errors.New("minimum 20% advance payment required")
	ErrDeliveryWindowTooShort = errors.New("delivery not possible in less than 3 days")
	ErrVehicleNotFound        = errors.New("vehicle not found")
	ErrVehicleUnavailable     = errors.New("vehicle is not available")
	ErrBookingNotFound        = errors.New("booking not found")
	ErrBookingAlreadyPaid     = errors.New("booking is already paid")
)
