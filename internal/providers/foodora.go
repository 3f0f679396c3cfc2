package providers

import (
	"context"
	"time"
)

// Foodora restaurant deals. Deal price lives in deal_price, the minimum
// basket in min_order_value.
func searchFoodoraDeals(_ context.Context, city string, p SearchParams) (SearchResult, error) {
	offers := []RawOffer{
		{
			"id":                  "deal_foodora_1",
			"restaurant_id":       "rest_foodora_1",
			"title":               "Lounastarjous: Lohikeitto + leipä",
			"description":         "25% alennus lounasannoksesta",
			"original_price":      12.50,
			"deal_price":          9.38,
			"discount_percentage": 25,
			"image_url":           "https://images.unsplash.com/photo-1715493926880-a15b1fee7b30",
			"category":            "lounas",
			"restaurant_name":     "Ravintola Example",
			"restaurant_rating":   4.2,
			"restaurant_cuisines": []string{"suomalainen", "pizza"},
			"restaurant_city":     city,
			"valid_until":         time.Now().Add(48 * time.Hour),
			"min_order_value":     15.00,
			"max_uses":            1,
			"conditions":          "Voimassa ma-pe klo 11-15",
			"delivery_time":       "30-45 min",
			"deep_link":           "https://foodora.fi/restaurant/rest_foodora_1",
		},
		{
			"id":                  "deal_foodora_2",
			"restaurant_id":       "rest_foodora_1",
			"title":               "Perheateria -20%",
			"description":         "Neljän hengen ateria arkisin",
			"original_price":      39.90,
			"deal_price":          31.92,
			"discount_percentage": 20,
			"image_url":           "https://images.unsplash.com/photo-1504674900247-0877df9cc836",
			"category":            "perheateria",
			"restaurant_name":     "Ravintola Example",
			"restaurant_rating":   4.2,
			"restaurant_cuisines": []string{"suomalainen"},
			"restaurant_city":     city,
			"valid_until":         time.Now().Add(72 * time.Hour),
			"min_order_value":     25.00,
			"conditions":          "Vain kotiinkuljetus",
			"delivery_time":       "30-45 min",
			"deep_link":           "https://foodora.fi/restaurant/rest_foodora_1",
		},
	}

	return applySearch(offers, p, "deal_price"), nil
}
