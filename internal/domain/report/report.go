// Package report builds the admin dashboard payloads. The figures are
// presentation placeholders drawn fresh per load and deliberately not derived
// from recorded clickouts; the dashboards are a reporting stub until real
// conversion tracking lands.
package report

import (
	"math"
	"time"

	"foodai-api/internal/domain/catalog"
	"foodai-api/internal/domain/offer"

	"github.com/google/uuid"
)

// conversionRate is the fixed click-to-conversion ratio applied to the
// synthetic click counts.
const conversionRate = 0.08

type Overview struct {
	TotalRevenue     float64    `json:"totalRevenue"`
	RevenueGrowth    int        `json:"revenueGrowth"`
	TotalClicks      int        `json:"totalClicks"`
	ClicksGrowth     int        `json:"clicksGrowth"`
	TotalConversions int        `json:"totalConversions"`
	ConversionRate   float64    `json:"conversionRate"`
	ActiveOffers     int        `json:"activeOffers"`
	TotalOffers      int        `json:"totalOffers"`
	TopOffers        []TopOffer `json:"topOffers"`
	CityStats        []CityStat `json:"cityStats"`
}

type TopOffer struct {
	Title           string  `json:"title"`
	RestaurantName  string  `json:"restaurantName"`
	ProviderName    string  `json:"providerName"`
	DiscountPercent int     `json:"discountPercent"`
	Clicks          int     `json:"clicks"`
	Revenue         float64 `json:"revenue"`
}

type CityStat struct {
	City   string `json:"city"`
	Offers int    `json:"offers"`
	Clicks int    `json:"clicks"`
}

type ProviderReport struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Color          string  `json:"color"`
	CommissionRate float64 `json:"commissionRate"`
	Offers         int     `json:"offers"`
	Clicks         int     `json:"clicks"`
	Conversions    int     `json:"conversions"`
	Revenue        float64 `json:"revenue"`
	Active         bool    `json:"active"`
}

type ClickoutRow struct {
	ID           string    `json:"id"`
	OfferTitle   string    `json:"offerTitle"`
	ProviderName string    `json:"providerName"`
	City         string    `json:"city"`
	Timestamp    time.Time `json:"timestamp"`
	IsConversion bool      `json:"isConversion"`
}

type CommissionRow struct {
	ID               string    `json:"id"`
	OfferTitle       string    `json:"offerTitle"`
	ProviderName     string    `json:"providerName"`
	GrossAmount      float64   `json:"grossAmount"`
	CommissionAmount float64   `json:"commissionAmount"`
	Status           string    `json:"status"`
	OccurredAt       time.Time `json:"occurredAt"`
}

var commissionStatuses = []string{"pending", "approved", "canceled"}

// Builder assigns synthetic click counts to a generated collection and rolls
// them up. Division by zero short-circuits to zero everywhere.
type Builder struct {
	rnd offer.Rand
}

func NewBuilder(rnd offer.Rand) *Builder {
	return &Builder{rnd: rnd}
}

func (b *Builder) Overview(offers []offer.Offer, now time.Time) Overview {
	clicks := b.assignClicks(offers)

	totalClicks := 0
	var revenue float64
	active := 0
	cityOffers := make(map[string]int)
	cityClicks := make(map[string]int)
	cityOrder := []string{}

	for i, o := range offers {
		totalClicks += clicks[i]
		revenue += float64(clicks[i]) * conversionRate * o.DiscountedPrice
		if o.ActiveAt(now) {
			active++
		}
		if _, ok := cityOffers[o.City]; !ok {
			cityOrder = append(cityOrder, o.City)
		}
		cityOffers[o.City]++
		cityClicks[o.City] += clicks[i]
	}

	conversions := int(math.Round(float64(totalClicks) * conversionRate))

	rate := 0.0
	if totalClicks > 0 {
		rate = math.Round(float64(conversions)/float64(totalClicks)*1000) / 10
	}

	ov := Overview{
		TotalRevenue:     offer.Round2(revenue),
		RevenueGrowth:    b.rnd.IntN(25) + 1,
		TotalClicks:      totalClicks,
		ClicksGrowth:     b.rnd.IntN(40) + 1,
		TotalConversions: conversions,
		ConversionRate:   rate,
		ActiveOffers:     active,
		TotalOffers:      len(offers),
		TopOffers:        b.topOffers(offers, clicks),
		CityStats:        make([]CityStat, 0, len(cityOrder)),
	}
	for _, city := range cityOrder {
		ov.CityStats = append(ov.CityStats, CityStat{City: city, Offers: cityOffers[city], Clicks: cityClicks[city]})
	}
	return ov
}

func (b *Builder) Providers(providers []catalog.Provider, offers []offer.Offer) []ProviderReport {
	clicks := b.assignClicks(offers)

	reports := make([]ProviderReport, 0, len(providers))
	for _, p := range providers {
		r := ProviderReport{
			ID:             p.ID,
			Name:           p.Name,
			Color:          p.Color,
			CommissionRate: p.CommissionRate,
			Active:         p.Active,
		}
		for i, o := range offers {
			if o.ProviderID != p.ID {
				continue
			}
			r.Offers++
			r.Clicks += clicks[i]
			r.Revenue += float64(clicks[i]) * conversionRate * o.DiscountedPrice * p.CommissionRate / 100
		}
		r.Conversions = int(math.Round(float64(r.Clicks) * conversionRate))
		r.Revenue = offer.Round2(r.Revenue)
		reports = append(reports, r)
	}
	return reports
}

func (b *Builder) Clickouts(offers []offer.Offer, now time.Time, limit int) []ClickoutRow {
	if limit > len(offers) {
		limit = len(offers)
	}
	rows := make([]ClickoutRow, 0, limit)
	for i := 0; i < limit; i++ {
		o := offers[b.rnd.IntN(len(offers))]
		rows = append(rows, ClickoutRow{
			ID:           uuid.NewString(),
			OfferTitle:   o.Title,
			ProviderName: o.ProviderName,
			City:         o.City,
			Timestamp:    now.Add(-time.Duration(b.rnd.IntN(72)) * time.Hour),
			IsConversion: b.rnd.Float64() < conversionRate,
		})
	}
	return rows
}

func (b *Builder) Commissions(offers []offer.Offer, now time.Time, limit int) []CommissionRow {
	if limit > len(offers) {
		limit = len(offers)
	}
	rows := make([]CommissionRow, 0, limit)
	for i := 0; i < limit; i++ {
		o := offers[b.rnd.IntN(len(offers))]
		gross := o.DiscountedPrice * float64(1+b.rnd.IntN(4))
		rows = append(rows, CommissionRow{
			ID:               uuid.NewString(),
			OfferTitle:       o.Title,
			ProviderName:     o.ProviderName,
			GrossAmount:      offer.Round2(gross),
			CommissionAmount: offer.Round2(gross * 0.12),
			Status:           commissionStatuses[b.rnd.IntN(len(commissionStatuses))],
			OccurredAt:       now.Add(-time.Duration(b.rnd.IntN(240)) * time.Hour),
		})
	}
	return rows
}

func (b *Builder) assignClicks(offers []offer.Offer) []int {
	clicks := make([]int, len(offers))
	for i := range offers {
		clicks[i] = b.rnd.IntN(120)
	}
	return clicks
}

func (b *Builder) topOffers(offers []offer.Offer, clicks []int) []TopOffer {
	const topN = 5

	type indexed struct {
		idx    int
		clicks int
	}
	ranked := make([]indexed, len(offers))
	for i := range offers {
		ranked[i] = indexed{idx: i, clicks: clicks[i]}
	}
	// Selection of the top five by clicks; the collection is a few hundred
	// entries at most.
	top := make([]TopOffer, 0, topN)
	for len(top) < topN && len(ranked) > 0 {
		best := 0
		for i := range ranked {
			if ranked[i].clicks > ranked[best].clicks {
				best = i
			}
		}
		o := offers[ranked[best].idx]
		top = append(top, TopOffer{
			Title:           o.Title,
			RestaurantName:  o.RestaurantName,
			ProviderName:    o.ProviderName,
			DiscountPercent: o.DiscountPercent,
			Clicks:          ranked[best].clicks,
			Revenue:         offer.Round2(float64(ranked[best].clicks) * conversionRate * o.DiscountedPrice),
		})
		ranked = append(ranked[:best], ranked[best+1:]...)
	}
	return top
}
