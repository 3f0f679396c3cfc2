package offer

import (
	"math"
	"time"
)

// Stats are the summary metrics behind GET /api/stats.
type Stats struct {
	TotalOffers     int     `json:"totalOffers"`
	ActiveOffers    int     `json:"activeOffers"`
	ActiveProviders int     `json:"activeProviders"`
	AverageDiscount int     `json:"averageDiscount"`
	TotalSavings    float64 `json:"totalSavings"`
	Cities          int     `json:"cities"`
}

// Summarize derives summary metrics from a generated collection. All ratios
// short-circuit to zero on an empty collection; no NaN ever escapes.
func Summarize(offers []Offer, now time.Time) Stats {
	if len(offers) == 0 {
		return Stats{}
	}

	providers := make(map[string]struct{})
	cities := make(map[string]struct{})
	var discountSum, savings float64
	active := 0

	for _, o := range offers {
		providers[o.ProviderID] = struct{}{}
		cities[o.City] = struct{}{}
		discountSum += float64(o.DiscountPercent)
		savings += o.Savings()
		if o.ActiveAt(now) {
			active++
		}
	}

	return Stats{
		TotalOffers:     len(offers),
		ActiveOffers:    active,
		ActiveProviders: len(providers),
		AverageDiscount: int(math.Round(discountSum / float64(len(offers)))),
		TotalSavings:    math.Round(savings),
		Cities:          len(cities),
	}
}
