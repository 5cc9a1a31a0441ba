package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBillingCompute(t *testing.T) {
	billing := NewBillingService()

	bill, err := billing.Compute(1000, 3, 0)
	assert.NoError(t, err)
	assert.Equal(t, 3, bill.Nights)
	assert.Equal(t, float64(3000), bill.Base)
	assert.Equal(t, float64(0), bill.Extras)
	assert.Equal(t, float64(360), bill.Tax)
	assert.Equal(t, float64(3360), bill.Total)
}

func TestBillingComputeWithExtras(t *testing.T) {
	billing := NewBillingService()

	// extras are entered per night and billed as a stay total
	bill, err := billing.Compute(1000, 2, 250)
	assert.NoError(t, err)
	assert.Equal(t, float64(2000), bill.Base)
	assert.Equal(t, float64(500), bill.Extras)
	assert.Equal(t, float64(300), bill.Tax)
	assert.Equal(t, float64(2800), bill.Total)
}

func TestBillingComputeTotalInvariant(t *testing.T) {
	billing := NewBillingService()

	for _, tc := range []struct {
		rate   float64
		nights int
		extras float64
	}{
		{800, 1, 0},
		{1500, 7, 100},
		{2500, 2, 37},
		{999, 4, 1},
	} {
		bill, err := billing.Compute(tc.rate, tc.nights, tc.extras)
		assert.NoError(t, err)
		assert.Equal(t, bill.Base+bill.Extras+bill.Tax, bill.Total)
		assert.Equal(t, tc.rate*float64(tc.nights), bill.Base)
	}
}

func TestBillingComputeRoundsTaxHalfUp(t *testing.T) {
	billing := NewBillingService()

	// 0.12 * 287.5 = 34.5, which must round up to 35
	bill, err := billing.Compute(143.75, 2, 0)
	assert.NoError(t, err)
	assert.Equal(t, float64(35), bill.Tax)
}

func TestBillingComputeRejectsNonPositiveNights(t *testing.T) {
	billing := NewBillingService()

	_, err := billing.Compute(1000, 0, 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = billing.Compute(1000, -3, 0)
	assert.ErrorIs(t, err, ErrValidation)
}
