package catalog

// Per-market seed tables. One table per locale replaces the per-locale route
// copies; the rest of the pipeline is locale-agnostic.

var finnishCatalog = Catalog{
	Providers: []Provider{
		{ID: "wolt", Name: "Wolt", LogoURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=100&h=100&fit=crop", Color: "#00c2e8", Website: "https://wolt.com", CommissionRate: 12, Active: true},
		{ID: "foodora", Name: "Foodora", LogoURL: "https://images.unsplash.com/photo-1555992336-03a23a47b61e?w=100&h=100&fit=crop", Color: "#e91e63", Website: "https://foodora.fi", CommissionRate: 14, Active: true},
		{ID: "resq_club", Name: "ResQ Club", LogoURL: "https://images.unsplash.com/photo-1498837167922-ddd27525d352?w=100&h=100&fit=crop", Color: "#4caf50", Website: "https://resq-club.com", CommissionRate: 10, Active: true},
	},
	Restaurants: []Restaurant{
		{ID: "rest_fi_1", Name: "Pizza Palace", City: "Helsinki", District: "Kamppi", CuisineTypes: []string{"Italian", "Pizza"}, Rating: 4.5, Lat: 60.1699, Lon: 24.9384, Active: true},
		{ID: "rest_fi_2", Name: "Sushi Master", City: "Helsinki", District: "Kluuvi", CuisineTypes: []string{"Japanese", "Sushi"}, Rating: 4.7, Lat: 60.1695, Lon: 24.9354, Active: true},
		{ID: "rest_fi_3", Name: "Burger Kingdom", City: "Helsinki", District: "Kallio", CuisineTypes: []string{"American", "Burgers"}, Rating: 4.3, Lat: 60.1715, Lon: 24.9417, Active: true},
		{ID: "rest_fi_4", Name: "Thai Garden", City: "Tampere", District: "Keskusta", CuisineTypes: []string{"Thai", "Asian"}, Rating: 4.4, Lat: 61.4981, Lon: 23.7608, Active: true},
		{ID: "rest_fi_5", Name: "Café Bistro", City: "Turku", District: "Keskusta", CuisineTypes: []string{"European", "Cafe"}, Rating: 4.2, Lat: 60.4518, Lon: 22.2666, Active: true},
		{ID: "rest_fi_6", Name: "Indian Spice", City: "Helsinki", District: "Punavuori", CuisineTypes: []string{"Indian", "Curry"}, Rating: 4.6, Lat: 60.1642, Lon: 24.9410, Active: true},
	},
}

var turkishCatalog = Catalog{
	Providers: []Provider{
		{ID: "yemeksepeti", Name: "Yemeksepeti", LogoURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=100&h=100&fit=crop", Color: "#FF6B35", Website: "https://yemeksepeti.com", CommissionRate: 15, Active: true},
		{ID: "getir", Name: "Getir", LogoURL: "https://images.unsplash.com/photo-1555992336-03a23a47b61e?w=100&h=100&fit=crop", Color: "#5D4FB3", Website: "https://getir.com", CommissionRate: 13, Active: true},
		{ID: "trendyol", Name: "Trendyol Yemek", LogoURL: "https://images.unsplash.com/photo-1498837167922-ddd27525d352?w=100&h=100&fit=crop", Color: "#F27A1A", Website: "https://trendyolyemek.com", CommissionRate: 12, Active: true},
	},
	Restaurants: []Restaurant{
		{ID: "rest_tr_1", Name: "Sultanahmet Köftecisi", City: "İstanbul", District: "Fatih", CuisineTypes: []string{"Türk Mutfağı", "Kebap"}, Rating: 4.7, Lat: 41.0082, Lon: 28.9784, Active: true},
		{ID: "rest_tr_2", Name: "Pandora Patisserie", City: "İstanbul", District: "Beşiktaş", CuisineTypes: []string{"Tatlı", "Kahvaltı"}, Rating: 4.5, Lat: 41.0431, Lon: 29.0097, Active: true},
		{ID: "rest_tr_3", Name: "Adana Ocakbaşı", City: "Ankara", District: "Çankaya", CuisineTypes: []string{"Türk Mutfağı", "Kebap"}, Rating: 4.6, Lat: 39.9334, Lon: 32.8597, Active: true},
		{ID: "rest_tr_4", Name: "Golden Dragon", City: "İzmir", District: "Konak", CuisineTypes: []string{"Çin Mutfağı", "Uzak Doğu"}, Rating: 4.4, Lat: 38.4192, Lon: 27.1287, Active: true},
		{ID: "rest_tr_5", Name: "Deniz Balık Evi", City: "İstanbul", District: "Kadıköy", CuisineTypes: []string{"Balık", "Meze"}, Rating: 4.3, Lat: 40.9916, Lon: 29.0257, Active: true},
		{ID: "rest_tr_6", Name: "Veggie İstanbul", City: "Ankara", District: "Kızılay", CuisineTypes: []string{"Vegan", "Sağlıklı"}, Rating: 4.2, Lat: 39.9208, Lon: 32.8541, Active: true},
	},
}

var seeds = map[string]Catalog{
	"fi": finnishCatalog,
	"tr": turkishCatalog,
}

// ForLocale returns the seed catalog for a market code, falling back to the
// Finnish market for unknown codes.
func ForLocale(code string) Catalog {
	if c, ok := seeds[code]; ok {
		return c
	}
	return finnishCatalog
}
