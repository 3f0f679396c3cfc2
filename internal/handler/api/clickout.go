package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "foodai-api/internal/handler/dto/request"
	resdto "foodai-api/internal/handler/dto/response"
	"foodai-api/internal/handler/httperr"
	"foodai-api/internal/usecase/commands"
)

type ClickoutHandler struct {
	clickoutCommands commands.ClickoutCommands
}

func NewClickoutHandler(clickoutCommands commands.ClickoutCommands) *ClickoutHandler {
	return &ClickoutHandler{clickoutCommands: clickoutCommands}
}

// @Summary Record a clickout
// @Description Record a click-through to a provider site. Best-effort: persistence failures never fail the call.
// @Tags clickouts
// @Accept json
// @Produce json
// @Param request body reqdto.ClickoutRequest true "Clickout payload"
// @Success 201 {object} resdto.ClickoutResponse
// @Failure 400 {object} map[string]string
// @Router /clickouts [post]
func (h *ClickoutHandler) Create(c *gin.Context) {
	var req reqdto.ClickoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "offerId and providerId are required", nil)
		return
	}

	result := h.clickoutCommands.Record(c.Request.Context(), commands.RecordClickoutParams{
		OfferID:    req.OfferID,
		ProviderID: req.ProviderID,
		UserID:     req.UserID,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Referer:    c.Request.Referer(),
	})

	c.JSON(http.StatusCreated, resdto.ClickoutResponse{
		Success:    true,
		ClickoutID: result.ClickoutID.String(),
	})
}
