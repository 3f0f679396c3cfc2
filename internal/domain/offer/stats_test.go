//go:build unit

package offer_test

import (
	"testing"
	"time"

	"foodai-api/internal/domain/offer"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("empty collection yields all zeros", func(t *testing.T) {
		assert.Equal(t, offer.Stats{}, offer.Summarize(nil, now))
		assert.Equal(t, offer.Stats{}, offer.Summarize([]offer.Offer{}, now))
	})

	t.Run("aggregates totals", func(t *testing.T) {
		offers := []offer.Offer{
			{ProviderID: "wolt", City: "Helsinki", DiscountPercent: 20, OriginalPrice: 10, DiscountedPrice: 8,
				Active: true, StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour)},
			{ProviderID: "wolt", City: "Tampere", DiscountPercent: 40, OriginalPrice: 20, DiscountedPrice: 12,
				Active: true, StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour)},
			{ProviderID: "foodora", City: "Helsinki", DiscountPercent: 30, OriginalPrice: 15, DiscountedPrice: 10.5,
				Active: true, StartsAt: now.Add(-3 * time.Hour), EndsAt: now.Add(-time.Hour)}, // expired
		}

		stats := offer.Summarize(offers, now)

		assert.Equal(t, 3, stats.TotalOffers)
		assert.Equal(t, 2, stats.ActiveOffers)
		assert.Equal(t, 2, stats.ActiveProviders)
		assert.Equal(t, 2, stats.Cities)
		assert.Equal(t, 30, stats.AverageDiscount)
		// savings: 2 + 8 + 4.5 = 14.5, rounded
		assert.Equal(t, 15.0, stats.TotalSavings)
	})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 8.0, offer.Round2(8.0000001))
	assert.Equal(t, 8.33, offer.Round2(8.3333333))
	assert.Equal(t, 8.68, offer.Round2(8.678))
	assert.Equal(t, 0.0, offer.Round2(0))
}

func TestDiscountMath(t *testing.T) {
	assert.Equal(t, 8.0, offer.DiscountedFrom(10, 20))
	assert.Equal(t, 50, offer.PercentFrom(10, 5))
	assert.Equal(t, 0, offer.PercentFrom(0, 5)) // division-safe
}
