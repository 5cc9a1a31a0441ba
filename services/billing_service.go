package services

import "math"

// TaxRate is the fixed tax applied to base + extras.
const TaxRate = 0.12

// Bill is the billing breakdown for one stay. Extras holds the stay total,
// not the per-night figure the staff entered.
type Bill struct {
	Nights int     `json:"nights"`
	Rate   float64 `json:"rate"`
	Base   float64 `json:"base"`
	Extras float64 `json:"extras"`
	Tax    float64 `json:"tax"`
	Total  float64 `json:"total"`
}

// BillingService computes stay charges. Pure: no state, no side effects.
type BillingService struct{}

func NewBillingService() *BillingService {
	return &BillingService{}
}

// Compute returns the full breakdown for a stay. Tax is 12% of base plus
// extras, rounded half-up to the nearest whole amount.
func (s *BillingService) Compute(rate float64, nights int, extrasPerNight float64) (Bill, error) {
	if nights < 1 {
		return Bill{}, validationf("nights must be at least 1, got %d", nights)
	}

	base := rate * float64(nights)
	extras := extrasPerNight * float64(nights)
	tax := math.Floor(TaxRate*(base+extras) + 0.5)

	return Bill{
		Nights: nights,
		Rate:   rate,
		Base:   base,
		Extras: extras,
		Tax:    tax,
		Total:  base + extras + tax,
	}, nil
}
