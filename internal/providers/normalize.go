package providers

import (
	"strings"
	"time"

	"foodai-api/internal/domain/offer"

	"github.com/google/uuid"
)

// NormalizedOffer is the one canonical shape every provider record maps onto.
// Required fields are always populated; provider-specific fields live under
// Extensions keyed by provider id instead of subtyping.
type NormalizedOffer struct {
	ID                 string         `json:"id"`
	Provider           string         `json:"provider"`
	ProviderName       string         `json:"provider_name"`
	ProviderColor      string         `json:"provider_color"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	OriginalPrice      float64        `json:"original_price"`
	DiscountedPrice    float64        `json:"discounted_price"`
	DiscountPercentage int            `json:"discount_percentage"`
	ImageURL           string         `json:"image_url"`
	DeepLink           string         `json:"deep_link"`
	RestaurantName     string         `json:"restaurant_name"`
	Rating             float64        `json:"rating"`
	Cuisine            []string       `json:"cuisine"`
	CreatedAt          time.Time      `json:"created_at"`
	IsActive           bool           `json:"is_active"`
	Extensions         map[string]any `json:"extensions,omitempty"`
}

// Normalize maps one raw provider record onto the canonical shape. Missing
// required fields default to zero/empty/now so downstream filtering and
// sorting stay total; a missing discount percentage is recomputed from the
// price pair rather than left at zero.
func Normalize(raw RawOffer, providerID string) NormalizedOffer {
	stub, _ := stubByID(providerID)

	n := NormalizedOffer{
		ID:              str(raw, "id"),
		Provider:        providerID,
		ProviderName:    stub.Name,
		ProviderColor:   stub.Color,
		Title:           str(raw, "title", "name"),
		Description:     str(raw, "description"),
		OriginalPrice:   num(raw, "original_price", "original_value"),
		DiscountedPrice: num(raw, "discounted_price", "deal_price", "sale_price"),
		ImageURL:        str(raw, "image_url", "image"),
		DeepLink:        str(raw, "deep_link"),
		RestaurantName:  str(raw, "venue_name", "restaurant_name"),
		Rating:          num(raw, "venue_rating", "restaurant_rating"),
		Cuisine:         strs(raw, "venue_cuisine", "restaurant_cuisines", "category"),
		IsActive:        boolOr(raw, "is_active", true),
	}

	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if t, ok := raw["created_at"].(time.Time); ok {
		n.CreatedAt = t
	} else {
		n.CreatedAt = time.Now()
	}

	if pct := num(raw, "discount_percentage"); pct > 0 {
		n.DiscountPercentage = int(pct)
	} else {
		n.DiscountPercentage = offer.PercentFrom(n.OriginalPrice, n.DiscountedPrice)
	}

	n.Extensions = map[string]any{providerID: extensionsFor(raw, providerID)}
	return n
}

func extensionsFor(raw RawOffer, providerID string) map[string]any {
	switch providerID {
	case ProviderWolt:
		return map[string]any{
			"delivery_time": strOr(raw, "delivery_time", "25-35 min"),
			"minimum_order": raw["min_order"],
			"has_delivery":  boolOr(raw, "has_delivery", true),
			"has_pickup":    boolOr(raw, "has_pickup", true),
		}
	case ProviderFoodora:
		return map[string]any{
			"delivery_time": strOr(raw, "delivery_time", "30-45 min"),
			"minimum_order": raw["min_order_value"],
			"conditions":    str(raw, "conditions"),
		}
	case ProviderResQ:
		return map[string]any{
			"type":                 "surplus_food",
			"pickup_start":         raw["pickup_start"],
			"pickup_end":           raw["pickup_end"],
			"quantity_available":   int(num(raw, "quantity_available")),
			"co2_saved":            num(raw, "co2_saved"),
			"environmental_impact": str(raw, "environmental_impact"),
			"pickup_instructions":  str(raw, "pickup_instructions"),
		}
	default:
		return map[string]any{}
	}
}

// str coalesces the first present string field.
func str(raw RawOffer, keys ...string) string {
	for _, k := range keys {
		if v, ok := raw[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func strOr(raw RawOffer, key, fallback string) string {
	if v := str(raw, key); v != "" {
		return v
	}
	return fallback
}

// num coalesces the first present numeric field, tolerating the int/float
// mix that schemaless records carry.
func num(raw RawOffer, keys ...string) float64 {
	for _, k := range keys {
		switch v := raw[k].(type) {
		case float64:
			return v
		case float32:
			return float64(v)
		case int:
			return float64(v)
		case int64:
			return float64(v)
		}
	}
	return 0
}

func strs(raw RawOffer, keys ...string) []string {
	for _, k := range keys {
		switch v := raw[k].(type) {
		case []string:
			return v
		case []any:
			out := make([]string, 0, len(v))
			for _, e := range v {
				if s, ok := e.(string); ok {
					out = append(out, s)
				}
			}
			if len(out) > 0 {
				return out
			}
		case string:
			if v != "" {
				return []string{v}
			}
		}
	}
	return nil
}

func boolOr(raw RawOffer, key string, fallback bool) bool {
	if v, ok := raw[key].(bool); ok {
		return v
	}
	return fallback
}

// cuisineMatch reports whether any cuisine tag matches the filter,
// case-insensitively.
func cuisineMatch(tags []string, cuisine string) bool {
	for _, c := range tags {
		if strings.Contains(strings.ToLower(c), strings.ToLower(cuisine)) {
			return true
		}
	}
	return false
}
