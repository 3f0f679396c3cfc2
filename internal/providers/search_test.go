//go:build unit

package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchAll(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates every enabled provider", func(t *testing.T) {
		res := SearchAll(ctx, "Helsinki", SearchParams{})

		require.NotEmpty(t, res.Offers)
		assert.Nil(t, res.Errors)
		assert.Len(t, res.Providers, 3)
		assert.Equal(t, res.Total, sumCounts(res.Providers))

		seen := make(map[string]bool)
		for _, o := range res.Offers {
			seen[o.Provider] = true
			assert.NotEmpty(t, o.ID)
			assert.NotEmpty(t, o.ProviderName)
		}
		assert.True(t, seen[ProviderWolt])
		assert.True(t, seen[ProviderFoodora])
		assert.True(t, seen[ProviderResQ])
	})

	t.Run("default sort is discount descending", func(t *testing.T) {
		res := SearchAll(ctx, "Helsinki", SearchParams{})

		for i := 1; i < len(res.Offers); i++ {
			assert.GreaterOrEqual(t, res.Offers[i-1].DiscountPercentage, res.Offers[i].DiscountPercentage)
		}
	})

	t.Run("price sort ascending", func(t *testing.T) {
		res := SearchAll(ctx, "Helsinki", SearchParams{SortBy: "price"})

		for i := 1; i < len(res.Offers); i++ {
			assert.LessOrEqual(t, res.Offers[i-1].DiscountedPrice, res.Offers[i].DiscountedPrice)
		}
	})

	t.Run("offset pagination partitions the merged set", func(t *testing.T) {
		full := SearchAll(ctx, "Helsinki", SearchParams{Limit: 100})
		p1 := SearchAll(ctx, "Helsinki", SearchParams{Limit: 2, Offset: 0})
		p2 := SearchAll(ctx, "Helsinki", SearchParams{Limit: 2, Offset: 2})

		require.Len(t, p1.Offers, 2)
		assert.True(t, p1.HasMore)
		assert.Equal(t, full.Total, p1.Total)
		assert.Equal(t, full.Total, p2.Total)
	})

	t.Run("offset past the end is empty", func(t *testing.T) {
		res := SearchAll(ctx, "Helsinki", SearchParams{Limit: 10, Offset: 999})

		assert.Empty(t, res.Offers)
		assert.False(t, res.HasMore)
	})

	t.Run("cuisine narrows every provider on its own tag field", func(t *testing.T) {
		res := SearchAll(ctx, "Helsinki", SearchParams{Cuisine: "pizza"})

		require.NotEmpty(t, res.Offers)
		for _, o := range res.Offers {
			assert.True(t, cuisineMatch(o.Cuisine, "pizza"), "offer %s has cuisines %v", o.ID, o.Cuisine)
		}
		assert.Equal(t, res.Total, sumCounts(res.Providers))
	})

	t.Run("cuisine matches resq category records", func(t *testing.T) {
		res := SearchAll(ctx, "Helsinki", SearchParams{Cuisine: "bakery"})

		require.Len(t, res.Offers, 1)
		assert.Equal(t, ProviderResQ, res.Offers[0].Provider)
	})

	t.Run("unknown cuisine is empty", func(t *testing.T) {
		res := SearchAll(ctx, "Helsinki", SearchParams{Cuisine: "sushi-omakase"})

		assert.Empty(t, res.Offers)
		assert.Zero(t, res.Total)
	})

	t.Run("minDiscount narrows all providers", func(t *testing.T) {
		res := SearchAll(ctx, "Helsinki", SearchParams{MinDiscount: 60})

		for _, o := range res.Offers {
			assert.GreaterOrEqual(t, o.DiscountPercentage, 60)
		}
	})
}

func TestApplySearch(t *testing.T) {
	offers := []RawOffer{
		{"title": "Pizza Special", "description": "Kaksi pizzaa", "sale_price": 10.0, "discount_percentage": 40},
		{"title": "Sushi Box", "description": "12 palaa", "sale_price": 15.0, "discount_percentage": 25},
		{"title": "Burger Deal", "description": "Pizza-burgeri", "sale_price": 8.0, "discount_percentage": 50},
	}

	t.Run("query matches title or description", func(t *testing.T) {
		res := applySearch(offers, SearchParams{Query: "pizza"}, "sale_price")
		assert.Equal(t, 2, res.Total)
	})

	t.Run("maxPrice on the provider price key", func(t *testing.T) {
		res := applySearch(offers, SearchParams{MaxPrice: 10}, "sale_price")
		assert.Equal(t, 2, res.Total)
	})

	t.Run("cuisine coalesces the per-provider tag aliases", func(t *testing.T) {
		tagged := []RawOffer{
			{"title": "Margherita", "sale_price": 10.0, "venue_cuisine": []string{"pizza", "italian"}},
			{"title": "Lohikeitto", "sale_price": 9.0, "restaurant_cuisines": []string{"suomalainen"}},
			{"title": "Leipäpussi", "sale_price": 4.0, "category": "bakery"},
		}

		res := applySearch(tagged, SearchParams{Cuisine: "Pizza"}, "sale_price")
		require.Equal(t, 1, res.Total)
		assert.Equal(t, "Margherita", res.Offers[0]["title"])

		res = applySearch(tagged, SearchParams{Cuisine: "bakery"}, "sale_price")
		require.Equal(t, 1, res.Total)
		assert.Equal(t, "Leipäpussi", res.Offers[0]["title"])

		res = applySearch(tagged, SearchParams{Cuisine: "ramen"}, "sale_price")
		assert.Zero(t, res.Total)
	})

	t.Run("limit and hasMore", func(t *testing.T) {
		res := applySearch(offers, SearchParams{Limit: 2}, "sale_price")
		assert.Len(t, res.Offers, 2)
		assert.Equal(t, 3, res.Total)
		assert.True(t, res.HasMore)
	})
}

func sumCounts(outcomes map[string]ProviderOutcome) int {
	total := 0
	for _, o := range outcomes {
		total += o.Count
	}
	return total
}
