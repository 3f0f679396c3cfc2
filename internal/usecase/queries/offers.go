package queries

import (
	"context"

	"foodai-api/internal/domain/catalog"
	"foodai-api/internal/domain/offer"
	"foodai-api/internal/pkg/clock"
	"foodai-api/internal/pkg/locale"
	"foodai-api/internal/providers"
)

// ListParams is the parsed, defaulted query for GET /api/offers. Handlers
// apply locale fallbacks before calling in, so zero values here are already
// meaningful.
type ListParams struct {
	City        string
	Cuisine     string
	Provider    string
	SortBy      string
	MinDiscount int
	MaxPrice    float64
	Page        int
	Limit       int
}

type OfferQueries interface {
	List(p ListParams) offer.Result
	Stats() offer.Stats
	Providers() []catalog.Provider
	Cities() []string
	Cuisines() []string
	// SearchProviders aggregates the provider integration stubs instead of
	// the generated catalog.
	SearchProviders(ctx context.Context, city string, p providers.SearchParams) providers.AggregateResult
	// TopOffers returns the highest-discount offers from a fresh generation
	// run, capped to limit. Used as assistant context.
	TopOffers(limit int) []offer.Offer
}

type offerQueriesImpl struct {
	gen   *offer.Generator
	cat   catalog.Catalog
	cfg   locale.Config
	clock clock.Clock
}

func NewOfferQueries(gen *offer.Generator, cat catalog.Catalog, cfg locale.Config, clk clock.Clock) OfferQueries {
	return &offerQueriesImpl{gen: gen, cat: cat, cfg: cfg, clock: clk}
}

// List regenerates the collection on every call; nothing is cached between
// requests.
func (q *offerQueriesImpl) List(p ListParams) offer.Result {
	offers := q.gen.Generate()
	return offer.Query(offers,
		offer.Filter{
			City:        p.City,
			Cuisine:     p.Cuisine,
			Provider:    p.Provider,
			MinDiscount: p.MinDiscount,
			MaxPrice:    p.MaxPrice,
		},
		p.SortBy,
		offer.Page{Num: p.Page, Size: p.Limit},
	)
}

func (q *offerQueriesImpl) Stats() offer.Stats {
	return offer.Summarize(q.gen.Generate(), q.clock.Now())
}

func (q *offerQueriesImpl) Providers() []catalog.Provider {
	return q.cat.ActiveProviders()
}

func (q *offerQueriesImpl) Cities() []string {
	return q.cat.Cities()
}

func (q *offerQueriesImpl) Cuisines() []string {
	return q.cat.Cuisines()
}

func (q *offerQueriesImpl) SearchProviders(ctx context.Context, city string, p providers.SearchParams) providers.AggregateResult {
	return providers.SearchAll(ctx, city, p)
}

func (q *offerQueriesImpl) TopOffers(limit int) []offer.Offer {
	res := offer.Query(q.gen.Generate(), offer.Filter{}, offer.SortByDiscount, offer.Page{Num: 1, Size: limit})
	return res.Items
}
