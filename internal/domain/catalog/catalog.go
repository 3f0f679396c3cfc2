package catalog

// Provider is a delivery or discount service the site aggregates. Seed data,
// never mutated on the generation path.
type Provider struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	LogoURL        string  `json:"logo"`
	Color          string  `json:"color"`
	Website        string  `json:"website,omitempty"`
	CommissionRate float64 `json:"commissionRate"`
	Active         bool    `json:"active"`
}

// Restaurant is a physical or virtual food outlet.
type Restaurant struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	City         string   `json:"city"`
	District     string   `json:"district,omitempty"`
	CuisineTypes []string `json:"cuisine"`
	Rating       float64  `json:"rating"`
	Lat          float64  `json:"lat"`
	Lon          float64  `json:"lon"`
	Active       bool     `json:"active"`
}

// Catalog bundles the static seed for one market.
type Catalog struct {
	Providers   []Provider
	Restaurants []Restaurant
}

// ActiveProviders filters the seed down to providers that are enabled.
func (c Catalog) ActiveProviders() []Provider {
	out := make([]Provider, 0, len(c.Providers))
	for _, p := range c.Providers {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}

// Cities returns the distinct restaurant cities in seed order.
func (c Catalog) Cities() []string {
	seen := make(map[string]struct{}, len(c.Restaurants))
	var out []string
	for _, r := range c.Restaurants {
		if _, ok := seen[r.City]; ok {
			continue
		}
		seen[r.City] = struct{}{}
		out = append(out, r.City)
	}
	return out
}

// Cuisines returns the distinct cuisine tags in seed order.
func (c Catalog) Cuisines() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range c.Restaurants {
		for _, cu := range r.CuisineTypes {
			if _, ok := seen[cu]; ok {
				continue
			}
			seen[cu] = struct{}{}
			out = append(out, cu)
		}
	}
	return out
}
