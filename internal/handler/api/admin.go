package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodai-api/internal/usecase/queries"
)

type AdminHandler struct {
	adminQueries queries.AdminQueries
}

func NewAdminHandler(adminQueries queries.AdminQueries) *AdminHandler {
	return &AdminHandler{adminQueries: adminQueries}
}

// @Summary Dashboard overview
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} report.Overview
// @Router /admin/overview [get]
func (h *AdminHandler) Overview(c *gin.Context) {
	c.JSON(http.StatusOK, h.adminQueries.Overview())
}

// @Summary Provider performance rollup
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} report.ProviderReport
// @Router /admin/providers [get]
func (h *AdminHandler) Providers(c *gin.Context) {
	c.JSON(http.StatusOK, h.adminQueries.Providers())
}

// @Summary Recent clickouts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} report.ClickoutRow
// @Router /admin/clickouts [get]
func (h *AdminHandler) Clickouts(c *gin.Context) {
	c.JSON(http.StatusOK, h.adminQueries.Clickouts())
}

// @Summary Commission records
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} report.CommissionRow
// @Router /admin/commissions [get]
func (h *AdminHandler) Commissions(c *gin.Context) {
	c.JSON(http.StatusOK, h.adminQueries.Commissions())
}
