package offer

import (
	"fmt"
	"strings"
	"time"

	"foodai-api/internal/domain/catalog"
	"foodai-api/internal/pkg/clock"
	"foodai-api/internal/pkg/locale"

	"github.com/google/uuid"
)

// Generator produces a fresh synthetic offer collection on every call by
// cross-joining the seed restaurants and providers. There is no seeding
// guarantee and no caching between calls; every read request that touches the
// catalog sees a new collection.
type Generator struct {
	catalog catalog.Catalog
	cfg     locale.Config
	rnd     Rand
	clock   clock.Clock
}

func NewGenerator(cat catalog.Catalog, cfg locale.Config, rnd Rand, clk clock.Clock) *Generator {
	return &Generator{
		catalog: cat,
		cfg:     cfg,
		rnd:     rnd,
		clock:   clk,
	}
}

// Generate builds offers for every (restaurant, provider) pair. An empty
// catalog yields an empty slice, never an error.
func (g *Generator) Generate() []Offer {
	now := g.clock.Now()
	offers := make([]Offer, 0, len(g.catalog.Restaurants)*len(g.catalog.Providers)*g.cfg.OffersPerPairMin)

	for _, restaurant := range g.catalog.Restaurants {
		for _, provider := range g.catalog.Providers {
			n := g.drawBetween(g.cfg.OffersPerPairMin, g.cfg.OffersPerPairMax)
			for i := 0; i < n; i++ {
				offers = append(offers, g.buildOffer(restaurant, provider, now))
			}
		}
	}

	return offers
}

func (g *Generator) buildOffer(r catalog.Restaurant, p catalog.Provider, now time.Time) Offer {
	item := g.cfg.FoodItems[g.rnd.IntN(len(g.cfg.FoodItems))]
	originalPrice := float64(g.drawBetween(g.cfg.PriceMin, g.cfg.PriceMax))
	discountPercent := g.drawBetween(g.cfg.DiscountMin, g.cfg.DiscountMax)
	validHours := g.drawBetween(g.cfg.ValidityHoursMin, g.cfg.ValidityHoursMax)
	image := g.cfg.ImagePool[g.rnd.IntN(len(g.cfg.ImagePool))]
	deliveryFee := float64(g.drawBetween(1, g.cfg.DeliveryFeeMax))
	minOrder := g.cfg.MinOrderChoices[g.rnd.IntN(len(g.cfg.MinOrderChoices))]
	pickup := g.rnd.Float64() < g.cfg.PickupProbability

	tags := make([]string, 0, len(r.CuisineTypes)+1)
	tags = append(tags, g.cfg.DiscountTag)
	for _, c := range r.CuisineTypes {
		tags = append(tags, strings.ToLower(c))
	}

	return Offer{
		ID:              uuid.NewString(),
		ProviderID:      p.ID,
		ProviderName:    p.Name,
		ProviderLogo:    p.LogoURL,
		RestaurantID:    r.ID,
		RestaurantName:  r.Name,
		City:            r.City,
		Cuisine:         r.CuisineTypes,
		Rating:          r.Rating,
		Lat:             r.Lat,
		Lon:             r.Lon,
		Title:           item,
		Description:     g.cfg.DescribeOffer(item, r.Name),
		OriginalPrice:   originalPrice,
		DiscountedPrice: DiscountedFrom(originalPrice, discountPercent),
		DiscountPercent: discountPercent,
		Currency:        g.cfg.Currency,
		DeliveryFee:     deliveryFee,
		MinOrder:        minOrder,
		Pickup:          pickup,
		Delivery:        true,
		StartsAt:        now,
		EndsAt:          now.Add(time.Duration(validHours) * time.Hour),
		ImageURL:        image,
		Tags:            tags,
		DeepLink:        fmt.Sprintf("https://%s.com/restaurant/%s/offer/%s", p.ID, r.ID, uuid.NewString()),
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// drawBetween draws uniformly from the inclusive [lo, hi] band.
func (g *Generator) drawBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rnd.IntN(hi-lo+1)
}
