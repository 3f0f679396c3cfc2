package offer

import (
	"sort"
	"strings"
)

// Sort orders supported by the query engine.
const (
	SortByDiscount = "discount" // descending, default
	SortByPrice    = "price"    // ascending on discounted price
	SortByRating   = "rating"   // descending
)

// FilterAll is the sentinel meaning "no constraint", accepted alongside the
// empty string for every filter field.
const FilterAll = "all"

// Filter narrows a generated collection. All set fields are AND-combined.
type Filter struct {
	City        string  // case-insensitive substring on restaurant city
	Cuisine     string  // case-insensitive substring on any cuisine tag
	MinDiscount int     // inclusive lower bound on discount percent
	MaxPrice    float64 // inclusive upper bound on discounted price; <= 0 means unbounded
	Provider    string  // exact provider id
}

// Page is a 1-indexed page request.
type Page struct {
	Num  int
	Size int
}

// Result is one filtered, sorted, paginated slice plus pagination metadata.
// Total reflects the post-filter, pre-pagination count.
type Result struct {
	Items      []Offer `json:"offers"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	TotalPages int     `json:"totalPages"`
	HasMore    bool    `json:"hasMore"`
}

// Query filters, sorts and paginates in a single pass over the in-memory
// collection. An empty result is valid output, not an error.
func Query(offers []Offer, f Filter, sortBy string, page Page) Result {
	filtered := make([]Offer, 0, len(offers))
	for _, o := range offers {
		if f.matches(o) {
			filtered = append(filtered, o)
		}
	}

	sortOffers(filtered, sortBy)

	if page.Num < 1 {
		page.Num = 1
	}
	if page.Size < 1 {
		page.Size = 1
	}

	total := len(filtered)
	totalPages := (total + page.Size - 1) / page.Size
	start := (page.Num - 1) * page.Size
	end := start + page.Size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result{
		Items:      filtered[start:end],
		Total:      total,
		Page:       page.Num,
		TotalPages: totalPages,
		HasMore:    page.Num*page.Size < total,
	}
}

func (f Filter) matches(o Offer) bool {
	if !isUnset(f.City) && !containsFold(o.City, f.City) {
		return false
	}
	if !isUnset(f.Cuisine) {
		found := false
		for _, c := range o.Cuisine {
			if containsFold(c, f.Cuisine) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if o.DiscountPercent < f.MinDiscount {
		return false
	}
	if f.MaxPrice > 0 && o.DiscountedPrice > f.MaxPrice {
		return false
	}
	if !isUnset(f.Provider) && o.ProviderID != f.Provider {
		return false
	}
	return true
}

// sortOffers is stable so ties keep generation order; input order itself is
// not fixed between generation runs.
func sortOffers(offers []Offer, sortBy string) {
	switch sortBy {
	case SortByPrice:
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].DiscountedPrice < offers[j].DiscountedPrice
		})
	case SortByRating:
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].Rating > offers[j].Rating
		})
	default: // SortByDiscount
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].DiscountPercent > offers[j].DiscountPercent
		})
	}
}

func isUnset(v string) bool {
	return v == "" || strings.EqualFold(v, FilterAll)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
