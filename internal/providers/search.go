package providers

import (
	"context"
	"log/slog"
	"sort"
	"strings"
)

// AggregateResult is the cross-provider search output: normalized offers,
// per-provider counts, and per-provider errors (a failing stub degrades the
// result instead of failing the search).
type AggregateResult struct {
	Offers    []NormalizedOffer          `json:"offers"`
	Total     int                        `json:"total"`
	HasMore   bool                       `json:"hasMore"`
	Providers map[string]ProviderOutcome `json:"providers"`
	Errors    map[string]string          `json:"errors,omitempty"`
}

type ProviderOutcome struct {
	Count   int  `json:"count"`
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
}

// SearchAll queries every enabled provider stub, normalizes, sorts across
// providers and offset-paginates the merged collection.
func SearchAll(ctx context.Context, city string, params SearchParams) AggregateResult {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := params.Offset

	res := AggregateResult{
		Providers: make(map[string]ProviderOutcome),
		Errors:    make(map[string]string),
	}

	var all []NormalizedOffer
	for _, stub := range Registry() {
		if !stub.Enabled {
			continue
		}

		out, err := stub.Search(ctx, city, params)
		if err != nil {
			slog.Warn("provider search failed", "provider", stub.ID, "error", err)
			res.Errors[stub.ID] = err.Error()
			res.Providers[stub.ID] = ProviderOutcome{}
			continue
		}

		for _, raw := range out.Offers {
			all = append(all, Normalize(raw, stub.ID))
		}
		res.Providers[stub.ID] = ProviderOutcome{
			Count:   len(out.Offers),
			Total:   out.Total,
			HasMore: out.HasMore,
		}
	}

	sortNormalized(all, params.SortBy)

	res.Total = len(all)
	res.HasMore = offset+limit < len(all)

	if offset > len(all) {
		offset = len(all)
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	res.Offers = all[offset:end]

	if len(res.Errors) == 0 {
		res.Errors = nil
	}
	return res
}

func sortNormalized(offers []NormalizedOffer, sortBy string) {
	switch sortBy {
	case "price":
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].DiscountedPrice < offers[j].DiscountedPrice
		})
	case "rating":
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].Rating > offers[j].Rating
		})
	case "newest":
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].CreatedAt.After(offers[j].CreatedAt)
		})
	default: // discount
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].DiscountPercentage > offers[j].DiscountPercentage
		})
	}
}

// applySearch is the shared stub-side filter/sort/slice. priceKey names the
// provider's sale-price field.
func applySearch(offers []RawOffer, p SearchParams, priceKey string) SearchResult {
	filtered := make([]RawOffer, 0, len(offers))
	for _, o := range offers {
		if p.Query != "" {
			title := strings.ToLower(str(o, "title", "name"))
			desc := strings.ToLower(str(o, "description"))
			q := strings.ToLower(p.Query)
			if !strings.Contains(title, q) && !strings.Contains(desc, q) {
				continue
			}
		}
		if p.Cuisine != "" && !cuisineMatch(strs(o, "venue_cuisine", "restaurant_cuisines", "category"), p.Cuisine) {
			continue
		}
		if p.MaxPrice > 0 && num(o, priceKey) > p.MaxPrice {
			continue
		}
		if p.MinDiscount > 0 && num(o, "discount_percentage") < float64(p.MinDiscount) {
			continue
		}
		filtered = append(filtered, o)
	}

	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := p.Offset
	if offset > len(filtered) {
		offset = len(filtered)
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	return SearchResult{
		Offers:  filtered[offset:end],
		Total:   len(filtered),
		HasMore: end < len(filtered),
	}
}
