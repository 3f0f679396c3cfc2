package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodai-api/internal/usecase/queries"
)

type CatalogHandler struct {
	offerQueries queries.OfferQueries
}

func NewCatalogHandler(offerQueries queries.OfferQueries) *CatalogHandler {
	return &CatalogHandler{offerQueries: offerQueries}
}

// @Summary List active providers
// @Tags catalog
// @Produce json
// @Success 200 {array} catalog.Provider
// @Router /providers [get]
func (h *CatalogHandler) Providers(c *gin.Context) {
	c.JSON(http.StatusOK, h.offerQueries.Providers())
}

// @Summary List cities
// @Tags catalog
// @Produce json
// @Success 200 {array} string
// @Router /cities [get]
func (h *CatalogHandler) Cities(c *gin.Context) {
	c.JSON(http.StatusOK, h.offerQueries.Cities())
}

// @Summary List cuisines
// @Tags catalog
// @Produce json
// @Success 200 {array} string
// @Router /cuisines [get]
func (h *CatalogHandler) Cuisines(c *gin.Context) {
	c.JSON(http.StatusOK, h.offerQueries.Cuisines())
}
