package offer

import (
	"math"
	"time"
)

// Offer is one generated discount instance tying a restaurant to a provider.
// Provider and restaurant display fields are denormalized inline so the
// front-end can render a card without extra lookups.
type Offer struct {
	ID              string    `json:"id"`
	ProviderID      string    `json:"providerId"`
	ProviderName    string    `json:"providerName"`
	ProviderLogo    string    `json:"providerLogo"`
	RestaurantID    string    `json:"restaurantId"`
	RestaurantName  string    `json:"restaurantName"`
	City            string    `json:"city"`
	Cuisine         []string  `json:"cuisine"`
	Rating          float64   `json:"rating"`
	Lat             float64   `json:"lat"`
	Lon             float64   `json:"lon"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	OriginalPrice   float64   `json:"originalPrice"`
	DiscountedPrice float64   `json:"discountedPrice"`
	DiscountPercent int       `json:"discountPercent"`
	Currency        string    `json:"currency"`
	DeliveryFee     float64   `json:"deliveryFee"`
	MinOrder        float64   `json:"minOrder"`
	Pickup          bool      `json:"pickup"`
	Delivery        bool      `json:"delivery"`
	StartsAt        time.Time `json:"startsAt"`
	EndsAt          time.Time `json:"endsAt"`
	ImageURL        string    `json:"imageUrl"`
	Tags            []string  `json:"tags"`
	DeepLink        string    `json:"deepLink"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"insertedAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ActiveAt reports whether the validity window still covers t. Expiry is
// advisory; nothing removes expired offers, display just shows time remaining.
func (o Offer) ActiveAt(t time.Time) bool {
	return o.Active && o.EndsAt.After(t)
}

// Savings is the theoretical saving against the undiscounted price.
func (o Offer) Savings() float64 {
	return o.OriginalPrice - o.DiscountedPrice
}

// Round2 is the money rounding rule used everywhere a discounted price is
// derived: half away from zero, two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DiscountedFrom derives the sale price from an original price and a percent
// discount with the canonical rounding rule.
func DiscountedFrom(original float64, percent int) float64 {
	return Round2(original * (1 - float64(percent)/100))
}

// PercentFrom recovers the discount percent from a price pair, rounded to the
// nearest whole percent. Used when a source record carries prices but no
// explicit percentage.
func PercentFrom(original, discounted float64) int {
	if original <= 0 {
		return 0
	}
	return int(math.Round((original - discounted) / original * 100))
}
