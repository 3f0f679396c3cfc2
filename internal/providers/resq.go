package providers

import (
	"context"
	"time"
)

// ResQ Club surplus-food offers. Price fields are sale_price/original_value
// and the records carry pickup-window and environmental extension fields.
func searchResQOffers(_ context.Context, city string, p SearchParams) (SearchResult, error) {
	offers := []RawOffer{
		{
			"id":                   "resq_offer_1",
			"venue_id":             "resq_venue_1",
			"title":                "Surprise Bag - Leivonnaisia",
			"description":          "Päivän tuoreita leivonnaisia ja piirakoita. Arvo 15-20€",
			"original_value":       18.00,
			"sale_price":           6.00,
			"discount_percentage":  67,
			"image_url":            "https://images.unsplash.com/photo-1533777324565-a040eb52facd",
			"category":             "bakery",
			"type":                 "surprise_bag",
			"venue_name":           "Fazer Café Keskusta",
			"venue_city":           city,
			"pickup_start":         time.Now().Add(2 * time.Hour),
			"pickup_end":           time.Now().Add(6 * time.Hour),
			"quantity_available":   5,
			"co2_saved":            1.2,
			"environmental_impact": "Torjuu ruokahävikkiä ja vähentää päästöjä",
			"pickup_instructions":  "Nouto tiskin luota. Mainitse ResQ Club varaus.",
			"deep_link":            "https://www.resq-club.com/fi/offers/resq_offer_1",
		},
		{
			"id":                   "resq_offer_2",
			"venue_id":             "resq_venue_1",
			"title":                "Lounasbuffet loppupäivä",
			"description":          "Buffetin antimia mukaan klo 14 jälkeen",
			"original_value":       11.50,
			"sale_price":           4.50,
			"image_url":            "https://images.unsplash.com/photo-1555939594-58d7cb561ad1",
			"category":             "lunch",
			"type":                 "surplus_food",
			"venue_name":           "Fazer Café Keskusta",
			"venue_city":           city,
			"pickup_start":         time.Now().Add(1 * time.Hour),
			"pickup_end":           time.Now().Add(4 * time.Hour),
			"quantity_available":   3,
			"co2_saved":            0.8,
			"environmental_impact": "Torjuu ruokahävikkiä",
			"pickup_instructions":  "Nouto kassalta.",
			"deep_link":            "https://www.resq-club.com/fi/offers/resq_offer_2",
		},
	}

	return applySearch(offers, p, "sale_price"), nil
}
