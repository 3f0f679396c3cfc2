package locale

import "fmt"

// Config carries every constant that differed between the localized route
// variants: currency, price and discount bands, validity window, filter
// defaults, the food-item pool, and the user-facing error strings. One generic
// engine plus one Config per market replaces the per-locale copies.
type Config struct {
	Code     string
	Currency string

	// Offer generation bands (inclusive, whole currency units / percent / hours).
	PriceMin          int
	PriceMax          int
	DiscountMin       int
	DiscountMax       int
	OffersPerPairMin  int
	OffersPerPairMax  int
	ValidityHoursMin  int
	ValidityHoursMax  int
	DeliveryFeeMax    int
	MinOrderChoices   []float64
	PickupProbability float64

	// Query defaults (applied when a parameter is absent or malformed).
	DefaultMinDiscount int
	DefaultMaxPrice    float64
	DefaultPageSize    int

	DiscountTag string
	FoodItems   []string
	ImagePool   []string

	// Localized client-facing strings.
	MsgChatUnavailable   string
	MsgStreamUnavailable string
	MsgBadRequest        string
}

func (c Config) DescribeOffer(item, restaurant string) string {
	switch c.Code {
	case "tr":
		return fmt.Sprintf("%s restoranından nefis %s", restaurant, item)
	default:
		return fmt.Sprintf("Herkullinen %s ravintolasta %s", item, restaurant)
	}
}

var finnish = Config{
	Code:     "fi",
	Currency: "EUR",

	PriceMin:          8,
	PriceMax:          28,
	DiscountMin:       10,
	DiscountMax:       50,
	OffersPerPairMin:  2,
	OffersPerPairMax:  5,
	ValidityHoursMin:  2,
	ValidityHoursMax:  48,
	DeliveryFeeMax:    5,
	MinOrderChoices:   []float64{0, 10, 15},
	PickupProbability: 0.7,

	DefaultMinDiscount: 0,
	DefaultMaxPrice:    100,
	DefaultPageSize:    12,

	DiscountTag: "tarjous",
	FoodItems: []string{
		"Margherita Pizza", "Pepperoni Pizza", "Salmon Sushi Roll", "Chicken Teriyaki Bowl",
		"Classic Cheeseburger", "Bacon Burger", "Pad Thai", "Green Curry", "Fish & Chips",
		"Caesar Salad", "Chicken Tikka Masala", "Naan Bread Set", "Pasta Carbonara",
		"Mushroom Risotto", "Grilled Salmon", "Beef Steak", "Vegetable Curry", "Chicken Wings",
	},
	ImagePool: []string{
		"https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1555992336-03a23a47b61e?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1498837167922-ddd27525d352?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?w=400&h=300&fit=crop",
	},

	MsgChatUnavailable:   "AI-palvelu ei ole tällä hetkellä käytettävissä",
	MsgStreamUnavailable: "Streaming-palvelu ei ole käytettävissä",
	MsgBadRequest:        "Pyyntöä ei voitu käsitellä",
}

var turkish = Config{
	Code:     "tr",
	Currency: "TRY",

	PriceMin:          60,
	PriceMax:          320,
	DiscountMin:       15,
	DiscountMax:       60,
	OffersPerPairMin:  2,
	OffersPerPairMax:  5,
	ValidityHoursMin:  2,
	ValidityHoursMax:  48,
	DeliveryFeeMax:    25,
	MinOrderChoices:   []float64{0, 100, 150},
	PickupProbability: 0.7,

	DefaultMinDiscount: 0,
	DefaultMaxPrice:    200,
	DefaultPageSize:    12,

	DiscountTag: "indirim",
	FoodItems: []string{
		"Adana Kebap", "Urfa Kebap", "Lahmacun", "Karışık Pide", "İskender",
		"Tavuk Döner", "Et Döner", "Mercimek Çorbası", "Mantı", "Künefe",
		"Baklava", "Çiğ Köfte", "Meze Tabağı", "Izgara Köfte", "Pilav Üstü Tavuk",
		"Karnıyarık", "Menemen", "Su Böreği",
	},
	ImagePool: []string{
		"https://images.unsplash.com/photo-1561651823-34feb02250e4?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1599487488170-d11ec9c172f0?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1529006557810-274b9b2fc783?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=400&h=300&fit=crop",
		"https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400&h=300&fit=crop",
	},

	MsgChatUnavailable:   "AI servisi şu anda kullanılamıyor",
	MsgStreamUnavailable: "Streaming servisi kullanılamıyor",
	MsgBadRequest:        "İstek işlenemedi",
}

var configs = map[string]Config{
	"fi": finnish,
	"tr": turkish,
}

// ForCode returns the configuration for a market code. Unknown codes fall back
// to the Finnish market so the service can still start with sensible defaults.
func ForCode(code string) Config {
	if cfg, ok := configs[code]; ok {
		return cfg
	}
	return finnish
}

func Codes() []string {
	return []string{"fi", "tr"}
}
