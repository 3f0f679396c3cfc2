// Package providers holds the per-provider integration stubs and the
// normalizer that maps their heterogeneous record shapes onto one canonical
// offer shape. Every stub returns literal mock records shaped like the
// provider's real API; swapping in live HTTP calls changes nothing downstream.
package providers

import "context"

// RawOffer is a provider record before normalization. The three providers
// disagree on almost every field name, so the pre-normalization shape stays
// schemaless.
type RawOffer map[string]any

// SearchParams narrows a provider search.
type SearchParams struct {
	Query       string
	Cuisine     string
	MaxPrice    float64
	MinDiscount int
	SortBy      string
	Limit       int
	Offset      int
}

// SearchResult is one provider's slice of raw offers plus metadata.
type SearchResult struct {
	Offers  []RawOffer
	Total   int
	HasMore bool
}

// Stub is one provider integration point.
type Stub struct {
	ID           string
	Name         string
	Color        string
	Enabled      bool
	APIAvailable bool // set once a real API integration lands
	Search       func(ctx context.Context, city string, p SearchParams) (SearchResult, error)
}

const (
	ProviderWolt    = "wolt"
	ProviderFoodora = "foodora"
	ProviderResQ    = "resq_club"
)

// Registry lists every known provider stub in a stable order.
func Registry() []Stub {
	return []Stub{
		{ID: ProviderWolt, Name: "Wolt", Color: "#00c2e8", Enabled: true, Search: searchWoltOffers},
		{ID: ProviderFoodora, Name: "Foodora", Color: "#e91e63", Enabled: true, Search: searchFoodoraDeals},
		{ID: ProviderResQ, Name: "ResQ Club", Color: "#4caf50", Enabled: true, Search: searchResQOffers},
	}
}

func stubByID(id string) (Stub, bool) {
	for _, s := range Registry() {
		if s.ID == id {
			return s, true
		}
	}
	return Stub{}, false
}
