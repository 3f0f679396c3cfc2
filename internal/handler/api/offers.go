package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodai-api/internal/pkg/locale"
	"foodai-api/internal/providers"
	"foodai-api/internal/usecase/queries"
)

type OfferHandler struct {
	offerQueries queries.OfferQueries
	cfg          locale.Config
}

func NewOfferHandler(offerQueries queries.OfferQueries, cfg locale.Config) *OfferHandler {
	return &OfferHandler{
		offerQueries: offerQueries,
		cfg:          cfg,
	}
}

// @Summary List offers
// @Description List generated offers with filtering, sorting and pagination
// @Tags offers
// @Produce json
// @Param city query string false "City substring filter"
// @Param cuisine query string false "Cuisine substring filter"
// @Param provider query string false "Provider id, or 'all'"
// @Param minDiscount query int false "Minimum discount percent"
// @Param maxPrice query number false "Maximum discounted price"
// @Param sortBy query string false "discount | price | rating"
// @Param page query int false "1-indexed page"
// @Param limit query int false "Page size"
// @Success 200 {object} offer.Result
// @Router /offers [get]
func (h *OfferHandler) List(c *gin.Context) {
	p := queries.ListParams{
		City:        c.Query("city"),
		Cuisine:     c.Query("cuisine"),
		Provider:    c.Query("provider"),
		SortBy:      c.DefaultQuery("sortBy", "discount"),
		MinDiscount: intQuery(c, "minDiscount", h.cfg.DefaultMinDiscount),
		MaxPrice:    floatQuery(c, "maxPrice", h.cfg.DefaultMaxPrice),
		Page:        max(1, intQuery(c, "page", 1)),
		Limit:       max(1, intQuery(c, "limit", h.cfg.DefaultPageSize)),
	}

	c.JSON(http.StatusOK, h.offerQueries.List(p))
}

// @Summary Aggregate statistics
// @Tags offers
// @Produce json
// @Success 200 {object} offer.Stats
// @Router /stats [get]
func (h *OfferHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.offerQueries.Stats())
}

// @Summary Search provider integrations
// @Description Aggregate the live provider stubs instead of the generated catalog
// @Tags offers
// @Produce json
// @Param city query string false "Target city"
// @Param query query string false "Free-text filter"
// @Param cuisine query string false "Cuisine filter"
// @Param maxPrice query number false "Maximum discounted price"
// @Param minDiscount query int false "Minimum discount percent"
// @Param sortBy query string false "discount | price | rating | newest"
// @Param limit query int false "Result cap"
// @Param offset query int false "Result offset"
// @Success 200 {object} providers.AggregateResult
// @Router /search [get]
func (h *OfferHandler) Search(c *gin.Context) {
	city := c.Query("city")
	p := providers.SearchParams{
		Query:       c.Query("query"),
		Cuisine:     c.Query("cuisine"),
		MaxPrice:    floatQuery(c, "maxPrice", 0),
		MinDiscount: intQuery(c, "minDiscount", 0),
		SortBy:      c.DefaultQuery("sortBy", "discount"),
		Limit:       intQuery(c, "limit", 20),
		Offset:      max(0, intQuery(c, "offset", 0)),
	}

	c.JSON(http.StatusOK, h.offerQueries.SearchProviders(c.Request.Context(), city, p))
}

// Malformed numeric params fall back to the locale default instead of
// answering 400; the site always renders something.
func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func floatQuery(c *gin.Context, key string, fallback float64) float64 {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
