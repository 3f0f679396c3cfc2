//go:build unit

package report_test

import (
	"testing"
	"time"

	"foodai-api/internal/domain/catalog"
	"foodai-api/internal/domain/offer"
	"foodai-api/internal/domain/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand returns a constant for IntN and Float64.
type fixedRand struct {
	n int
	f float64
}

func (r fixedRand) IntN(int) int     { return r.n }
func (r fixedRand) Float64() float64 { return r.f }

var reportNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func reportOffers() []offer.Offer {
	return []offer.Offer{
		{ID: "a", Title: "Pizza", RestaurantName: "Palace", ProviderID: "wolt", ProviderName: "Wolt", City: "Helsinki",
			DiscountPercent: 30, DiscountedPrice: 10, Active: true, EndsAt: reportNow.Add(time.Hour)},
		{ID: "b", Title: "Sushi", RestaurantName: "Master", ProviderID: "foodora", ProviderName: "Foodora", City: "Tampere",
			DiscountPercent: 45, DiscountedPrice: 20, Active: true, EndsAt: reportNow.Add(-time.Hour)},
	}
}

func TestBuilder_Overview(t *testing.T) {
	t.Run("empty collection is division-safe", func(t *testing.T) {
		b := report.NewBuilder(fixedRand{n: 0})

		ov := b.Overview(nil, reportNow)

		assert.Equal(t, 0, ov.TotalClicks)
		assert.Equal(t, 0.0, ov.ConversionRate)
		assert.Equal(t, 0.0, ov.TotalRevenue)
		assert.Empty(t, ov.TopOffers)
		assert.Empty(t, ov.CityStats)
	})

	t.Run("rolls up clicks, revenue and cities", func(t *testing.T) {
		b := report.NewBuilder(fixedRand{n: 10})

		ov := b.Overview(reportOffers(), reportNow)

		assert.Equal(t, 20, ov.TotalClicks)
		assert.Equal(t, 2, ov.TotalOffers)
		assert.Equal(t, 1, ov.ActiveOffers)
		// 10 clicks * 0.08 * (10 + 20)
		assert.Equal(t, 24.0, ov.TotalRevenue)
		// round(20 * 0.08) = 2 conversions of 20 clicks
		assert.Equal(t, 2, ov.TotalConversions)
		assert.Equal(t, 10.0, ov.ConversionRate)

		require.Len(t, ov.CityStats, 2)
		assert.Equal(t, "Helsinki", ov.CityStats[0].City)
		assert.Equal(t, 1, ov.CityStats[0].Offers)
		assert.Equal(t, 10, ov.CityStats[0].Clicks)

		require.Len(t, ov.TopOffers, 2)
		for _, top := range ov.TopOffers {
			assert.Equal(t, 10, top.Clicks)
		}
	})
}

func TestBuilder_Providers(t *testing.T) {
	providers := []catalog.Provider{
		{ID: "wolt", Name: "Wolt", CommissionRate: 15, Active: true},
		{ID: "foodora", Name: "Foodora", CommissionRate: 12, Active: true},
		{ID: "resq_club", Name: "ResQ Club", CommissionRate: 20, Active: true},
	}
	b := report.NewBuilder(fixedRand{n: 10})

	reports := b.Providers(providers, reportOffers())

	require.Len(t, reports, 3)
	byID := make(map[string]report.ProviderReport)
	for _, r := range reports {
		byID[r.ID] = r
	}

	assert.Equal(t, 1, byID["wolt"].Offers)
	assert.Equal(t, 10, byID["wolt"].Clicks)
	assert.Equal(t, 1, byID["wolt"].Conversions)
	// 10 clicks * 0.08 * 10 price * 15% commission
	assert.Equal(t, 1.2, byID["wolt"].Revenue)

	// provider with no offers stays all-zero instead of dividing by zero
	assert.Equal(t, 0, byID["resq_club"].Offers)
	assert.Equal(t, 0, byID["resq_club"].Conversions)
	assert.Equal(t, 0.0, byID["resq_club"].Revenue)
}

func TestBuilder_Rows(t *testing.T) {
	b := report.NewBuilder(fixedRand{n: 0, f: 0.5})
	offers := reportOffers()

	t.Run("clickout rows are capped by the collection size", func(t *testing.T) {
		rows := b.Clickouts(offers, reportNow, 20)

		require.Len(t, rows, 2)
		for _, row := range rows {
			assert.NotEmpty(t, row.ID)
			assert.Equal(t, "Pizza", row.OfferTitle)
			assert.False(t, row.IsConversion) // 0.5 >= conversion rate
			assert.False(t, row.Timestamp.After(reportNow))
		}
	})

	t.Run("commission rows carry the 12 percent cut", func(t *testing.T) {
		rows := b.Commissions(offers, reportNow, 15)

		require.Len(t, rows, 2)
		for _, row := range rows {
			assert.Equal(t, offer.Round2(row.GrossAmount*0.12), row.CommissionAmount)
			assert.Contains(t, []string{"pending", "approved", "canceled"}, row.Status)
		}
	})

	t.Run("empty collection yields no rows", func(t *testing.T) {
		assert.Empty(t, b.Clickouts(nil, reportNow, 20))
		assert.Empty(t, b.Commissions(nil, reportNow, 15))
	})
}
