package service

import (
	"context"
	"fmt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

// catalogService holds the live catalog in memory, in insertion order.
// The design assumes a single interactive session; catalog access is
// not guarded against concurrent mutation.
type catalogService struct {
	vehicles  []*domain.Vehicle
	byID      map[string]*domain.Vehicle
	estimator *DeliveryEstimator
	repo      repository.VehicleRepository
}

func NewCatalogService(vehicles []domain.Vehicle, estimator *DeliveryEstimator, repo repository.VehicleRepository) CatalogService {
	s := &catalogService{
		byID:      make(map[string]*domain.Vehicle, len(vehicles)),
		estimator: estimator,
		repo:      repo,
	}
	for i := range vehicles {
		v := vehicles[i]
		s.vehicles = append(s.vehicles, &v)
		s.byID[v.ID] = &v
	}
	return s
}

func matchesFuel(v *domain.Vehicle, fuel FuelFilter) bool {
	return fuel == FuelFilterAll || string(v.FuelType) == string(fuel)
}

func (s *catalogService) Filter(fuel FuelFilter, brand string) []domain.Vehicle {
	result := []domain.Vehicle{}
	for _, v := range s.vehicles {
		if !v.Available || !matchesFuel(v, fuel) {
			continue
		}
		if brand != "" && v.Brand != brand {
			continue
		}
		result = append(result, *v)
	}
	return result
}

func (s *catalogService) Brands(fuel FuelFilter) []string {
	seen := make(map[string]bool)
	brands := []string{}
	for _, v := range s.vehicles {
		if !v.Available || !matchesFuel(v, fuel) {
			continue
		}
		if !seen[v.Brand] {
			seen[v.Brand] = true
			brands = append(brands, v.Brand)
		}
	}
	return brands
}

func (s *catalogService) Get(id string) (domain.Vehicle, error) {
	v, ok := s.byID[id]
	if !ok {
		return domain.Vehicle{}, domain.ErrVehicleNotFound
	}
	return *v, nil
}

func (s *catalogService) CheckDeliveryFeasible(id string, desiredDays int) (int, bool, error) {
	if err := ValidateDeliveryWindow(desiredDays); err != nil {
		return 0, false, err
	}
	v, ok := s.byID[id]
	if !ok {
		return 0, false, domain.ErrVehicleNotFound
	}
	estimate := s.estimator.Estimate(v.Brand)
	return estimate, estimate <= desiredDays, nil
}

// UrgentAlternatives is a best-effort probabilistic search: each vehicle
// gets an independent draw, so the same vehicle can qualify on one scan
// and not the next.
func (s *catalogService) UrgentAlternatives(fuel FuelFilter, desiredDays int) []domain.Vehicle {
	result := []domain.Vehicle{}
	for _, v := range s.vehicles {
		if !v.Available || !matchesFuel(v, fuel) {
			continue
		}
		if s.estimator.Estimate(v.Brand) <= desiredDays {
			result = append(result, *v)
		}
	}
	return result
}

// MarkUnavailable flips availability exactly once and writes the flip
// through to the store.
func (s *catalogService) MarkUnavailable(ctx context.Context, id string) error {
	v, ok := s.byID[id]
	if !ok {
		return domain.ErrVehicleNotFound
	}
	if !v.Available {
		return domain.ErrVehicleUnavailable
	}
	if err := s.repo.MarkUnavailable(ctx, id); err != nil {
		return fmt.Errorf("persist availability for vehicle %s: %w", id, err)
	}
	v.Available = false
	logger.Info("Vehicle marked unavailable", "vehicle_id", id)
	return nil
}

func (s *catalogService) Stats() CatalogStats {
	stats := CatalogStats{Total: len(s.vehicles)}
	for _, v := range s.vehicles {
		if !v.Available {
			continue
		}
		stats.Available++
		switch v.FuelType {
		case domain.FuelTypeEV:
			stats.AvailableEV++
		case domain.FuelTypePetrol:
			stats.AvailablePetrol++
		}
	}
	return stats
}
