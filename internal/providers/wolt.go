package providers

import (
	"context"
	"time"
)

// Wolt venue offers. Field names follow the consumer API's response shape.
func searchWoltOffers(_ context.Context, city string, p SearchParams) (SearchResult, error) {
	offers := []RawOffer{
		{
			"id":                  "wolt_offer_1",
			"venue_id":            "venue_1",
			"name":                "Margherita Pizza",
			"description":         "30% off classic Margherita pizza",
			"original_price":      14.90,
			"discounted_price":    10.43,
			"discount_percentage": 30,
			"image_url":           "https://images.unsplash.com/photo-1546069901-ba9599a7e63c",
			"category":            "pizza",
			"venue_name":          "Sample Restaurant",
			"venue_rating":        4.5,
			"venue_cuisine":       []string{"pizza", "italian"},
			"venue_city":          city,
			"available_until":     time.Now().Add(24 * time.Hour),
			"delivery_time":       "25-35 min",
			"min_order":           nil,
			"has_delivery":        true,
			"has_pickup":          true,
			"deep_link":           "https://wolt.com/fi/discovery/venue_1",
		},
		{
			"id":                  "wolt_offer_2",
			"venue_id":            "venue_1",
			"name":                "Pepperoni Feast",
			"description":         "Lunch deal on pepperoni pizza",
			"original_price":      16.90,
			"discounted_price":    12.68,
			"discount_percentage": 25,
			"image_url":           "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b",
			"category":            "pizza",
			"venue_name":          "Sample Restaurant",
			"venue_rating":        4.5,
			"venue_cuisine":       []string{"pizza", "italian"},
			"venue_city":          city,
			"available_until":     time.Now().Add(12 * time.Hour),
			"delivery_time":       "25-35 min",
			"has_delivery":        true,
			"has_pickup":          false,
			"deep_link":           "https://wolt.com/fi/discovery/venue_1",
		},
	}

	return applySearch(offers, p, "discounted_price"), nil
}
