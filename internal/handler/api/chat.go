package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "foodai-api/internal/handler/dto/request"
	resdto "foodai-api/internal/handler/dto/response"
	"foodai-api/internal/handler/httperr"
	"foodai-api/internal/pkg/locale"
	"foodai-api/internal/usecase/commands"
)

type ChatHandler struct {
	chatCommands commands.ChatCommands
	cfg          locale.Config
}

func NewChatHandler(chatCommands commands.ChatCommands, cfg locale.Config) *ChatHandler {
	return &ChatHandler{
		chatCommands: chatCommands,
		cfg:          cfg,
	}
}

// @Summary Chat with the deal assistant
// @Description One-shot completion against the configured assistant
// @Tags chat
// @Accept json
// @Produce json
// @Param request body reqdto.ChatRequest true "Conversation transcript"
// @Success 200 {object} resdto.ChatResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /chat [post]
func (h *ChatHandler) Complete(c *gin.Context) {
	req, ok := h.bindChatRequest(c)
	if !ok {
		return
	}

	msg, err := h.chatCommands.Complete(c.Request.Context(), toCommandMessages(req.Messages), req.IncludeOffers)
	if err != nil {
		// Upstream details never reach the client, only the localized
		// unavailable message.
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, h.cfg.MsgChatUnavailable, nil)
		return
	}

	c.JSON(http.StatusOK, resdto.ChatResponse{
		Message: resdto.ChatMessage{Role: msg.Role, Content: msg.Content},
	})
}

// @Summary Stream a chat response
// @Description Server-sent events; data chunks carry {"content":...} and the stream ends with [DONE]
// @Tags chat
// @Accept json
// @Produce text/event-stream
// @Param request body reqdto.ChatRequest true "Conversation transcript"
// @Success 200 {string} string "SSE stream"
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /chat/stream [post]
func (h *ChatHandler) Stream(c *gin.Context) {
	req, ok := h.bindChatRequest(c)
	if !ok {
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	started := false
	err := h.chatCommands.Stream(c.Request.Context(), toCommandMessages(req.Messages), req.IncludeOffers, func(delta string) error {
		chunk, mErr := json.Marshal(resdto.ChatChunk{Content: delta})
		if mErr != nil {
			return mErr
		}
		if _, wErr := fmt.Fprintf(c.Writer, "data: %s\n\n", chunk); wErr != nil {
			return wErr
		}
		started = true
		c.Writer.Flush()
		return nil
	})
	if err != nil {
		if errors.Is(err, commands.ErrAssistantUnavailable) && !started {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, h.cfg.MsgStreamUnavailable, nil)
		}
		// Mid-stream failures just end the stream; the browser retries.
		return
	}

	fmt.Fprint(c.Writer, "data: [DONE]\n\n")
	c.Writer.Flush()
}

func toCommandMessages(msgs []reqdto.ChatMessage) []commands.ChatMessage {
	out := make([]commands.ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, commands.ChatMessage{Role: m.Role, Content: m.Content})
	}
	return out
}

func (h *ChatHandler) bindChatRequest(c *gin.Context) (reqdto.ChatRequest, bool) {
	var req reqdto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, h.cfg.MsgBadRequest, nil)
		return reqdto.ChatRequest{}, false
	}
	return req, true
}
