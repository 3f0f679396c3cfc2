//go:build unit

package offer_test

import (
	"testing"
	"time"

	"foodai-api/internal/domain/catalog"
	"foodai-api/internal/domain/offer"
	"foodai-api/internal/pkg/clock"
	"foodai-api/internal/pkg/locale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroRand always picks the first element of every band and pool.
type zeroRand struct{}

func (zeroRand) IntN(int) int     { return 0 }
func (zeroRand) Float64() float64 { return 0.5 }

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// pinnedConfig collapses every band to a single value so any random source
// yields the same offers.
func pinnedConfig() locale.Config {
	cfg := locale.ForCode("fi")
	cfg.PriceMin = 10
	cfg.PriceMax = 10
	cfg.DiscountMin = 20
	cfg.DiscountMax = 20
	cfg.OffersPerPairMin = 3
	cfg.OffersPerPairMax = 3
	cfg.ValidityHoursMin = 4
	cfg.ValidityHoursMax = 4
	cfg.DeliveryFeeMax = 1
	cfg.MinOrderChoices = []float64{10}
	cfg.PickupProbability = 0
	cfg.FoodItems = []string{"Lohikeitto"}
	cfg.ImagePool = []string{"https://images.example.com/lohikeitto.jpg"}
	return cfg
}

func pinnedCatalog() catalog.Catalog {
	return catalog.Catalog{
		Providers: []catalog.Provider{
			{ID: "wolt", Name: "Wolt", Active: true},
		},
		Restaurants: []catalog.Restaurant{
			{ID: "r1", Name: "Pizza Palace", City: "Helsinki", CuisineTypes: []string{"Pizza"}, Rating: 4.5},
			{ID: "r2", Name: "Sushi Master", City: "Tampere", CuisineTypes: []string{"Sushi"}, Rating: 4.8},
		},
	}
}

func TestGenerator_PinnedBands(t *testing.T) {
	gen := offer.NewGenerator(pinnedCatalog(), pinnedConfig(), zeroRand{}, clock.NewMockClock(testNow))

	offers := gen.Generate()

	// 2 restaurants x 1 provider x 3 per pair
	require.Len(t, offers, 6)
	for _, o := range offers {
		assert.Equal(t, 10.0, o.OriginalPrice)
		assert.Equal(t, 20, o.DiscountPercent)
		assert.Equal(t, 8.0, o.DiscountedPrice)
		assert.Equal(t, "EUR", o.Currency)
		assert.Equal(t, testNow, o.StartsAt)
		assert.Equal(t, testNow.Add(4*time.Hour), o.EndsAt)
		assert.True(t, o.Active)
		assert.True(t, o.Delivery)
		assert.False(t, o.Pickup)
	}
}

func TestGenerator_Invariants(t *testing.T) {
	cat := catalog.ForLocale("fi")
	cfg := locale.ForCode("fi")
	gen := offer.NewGenerator(cat, cfg, offer.NewSystemRand(), clock.NewMockClock(testNow))

	offers := gen.Generate()

	pairs := len(cat.Restaurants) * len(cat.Providers)
	assert.GreaterOrEqual(t, len(offers), pairs*cfg.OffersPerPairMin)
	assert.LessOrEqual(t, len(offers), pairs*cfg.OffersPerPairMax)

	seen := make(map[string]bool, len(offers))
	for _, o := range offers {
		assert.False(t, seen[o.ID], "offer ids must be unique")
		seen[o.ID] = true

		assert.GreaterOrEqual(t, o.OriginalPrice, float64(cfg.PriceMin))
		assert.LessOrEqual(t, o.OriginalPrice, float64(cfg.PriceMax))
		assert.GreaterOrEqual(t, o.DiscountPercent, cfg.DiscountMin)
		assert.LessOrEqual(t, o.DiscountPercent, cfg.DiscountMax)
		assert.Less(t, o.DiscountedPrice, o.OriginalPrice)
		assert.Greater(t, o.DiscountedPrice, 0.0)
		assert.True(t, o.EndsAt.After(o.StartsAt))
		assert.Contains(t, o.Tags, cfg.DiscountTag)
		assert.NotEmpty(t, o.DeepLink)

		// prices carry at most two decimals
		assert.Equal(t, offer.Round2(o.DiscountedPrice), o.DiscountedPrice)
	}
}

func TestGenerator_EmptyCatalog(t *testing.T) {
	gen := offer.NewGenerator(catalog.Catalog{}, locale.ForCode("fi"), zeroRand{}, clock.NewMockClock(testNow))

	offers := gen.Generate()

	assert.NotNil(t, offers)
	assert.Empty(t, offers)
}

func TestGenerator_TurkishLocale(t *testing.T) {
	cfg := locale.ForCode("tr")
	gen := offer.NewGenerator(catalog.ForLocale("tr"), cfg, offer.NewSystemRand(), clock.NewMockClock(testNow))

	offers := gen.Generate()

	require.NotEmpty(t, offers)
	for _, o := range offers {
		assert.Equal(t, "TRY", o.Currency)
		assert.Contains(t, o.Tags, "indirim")
	}
}
