package service

import (
	"testing"

	"carrental-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryEstimator_FastBrands(t *testing.T) {
	t.Run("Lowest draw", func(t *testing.T) {
		est := NewDeliveryEstimator(&seqSource{vals: []int{0}})
		assert.Equal(t, 3, est.Estimate("Tata"))
	})

	t.Run("Highest draw", func(t *testing.T) {
		est := NewDeliveryEstimator(&seqSource{vals: []int{4}})
		assert.Equal(t, 7, est.Estimate("Mahindra"))
	})

	t.Run("All fast brands share the band", func(t *testing.T) {
		for _, brand := range []string{"Tata", "Mahindra", "Maruti"} {
			est := NewDeliveryEstimator(&seqSource{vals: []int{2}})
			assert.Equal(t, 5, est.Estimate(brand), brand)
		}
	})
}

func TestDeliveryEstimator_StandardBrands(t *testing.T) {
	t.Run("Lowest draw", func(t *testing.T) {
		est := NewDeliveryEstimator(&seqSource{vals: []int{0}})
		assert.Equal(t, 7, est.Estimate("Audi"))
	})

	t.Run("Highest draw", func(t *testing.T) {
		est := NewDeliveryEstimator(&seqSource{vals: []int{13}})
		assert.Equal(t, 20, est.Estimate("Hyundai"))
	})
}

func TestDeliveryEstimator_RedrawsEveryCall(t *testing.T) {
	// Estimates are never memoized: the same brand yields a fresh draw
	// each time.
	est := NewDeliveryEstimator(&seqSource{vals: []int{0, 4}})
	first := est.Estimate("Tata")
	second := est.Estimate("Tata")
	assert.Equal(t, 3, first)
	assert.Equal(t, 7, second)
}

func TestValidateDeliveryWindow(t *testing.T) {
	assert.ErrorIs(t, ValidateDeliveryWindow(2), domain.ErrDeliveryWindowTooShort)
	assert.ErrorIs(t, ValidateDeliveryWindow(0), domain.ErrDeliveryWindowTooShort)
	assert.ErrorIs(t, ValidateDeliveryWindow(-1), domain.ErrDeliveryWindowTooShort)
	assert.NoError(t, ValidateDeliveryWindow(3)) // minimum accepted window
	assert.NoError(t, ValidateDeliveryWindow(30))
}
