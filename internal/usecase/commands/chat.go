package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"foodai-api/internal/pkg/locale"
	"foodai-api/internal/usecase/queries"
)

var ErrAssistantUnavailable = errors.New("assistant unavailable")

// contextOfferCap bounds the offer context forwarded upstream so the prompt
// stays inside the completion token budget.
const contextOfferCap = 10

// ChatMessage is one transcript entry. Valid roles are user, assistant and
// system.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Assistant is the upstream completion API. Implementations must map any
// upstream failure to ErrAssistantUnavailable; the raw error never reaches
// a client.
type Assistant interface {
	Complete(ctx context.Context, system string, msgs []ChatMessage) (string, error)
	Stream(ctx context.Context, system string, msgs []ChatMessage, fn func(delta string) error) error
}

// ChatCommands bridges a conversation transcript to the completion API,
// optionally with a capped slice of current offers as context.
type ChatCommands interface {
	Complete(ctx context.Context, msgs []ChatMessage, includeOffers bool) (ChatMessage, error)
	Stream(ctx context.Context, msgs []ChatMessage, includeOffers bool, fn func(delta string) error) error
}

type chatCommandsImpl struct {
	assistant Assistant
	offers    queries.OfferQueries
	cfg       locale.Config
}

func NewChatCommands(assistant Assistant, offers queries.OfferQueries, cfg locale.Config) ChatCommands {
	return &chatCommandsImpl{assistant: assistant, offers: offers, cfg: cfg}
}

func (c *chatCommandsImpl) Complete(ctx context.Context, msgs []ChatMessage, includeOffers bool) (ChatMessage, error) {
	system := SystemPrompt(c.cfg, c.offerContext(includeOffers))

	content, err := c.assistant.Complete(ctx, system, msgs)
	if err != nil {
		return ChatMessage{}, err
	}
	return ChatMessage{Role: "assistant", Content: content}, nil
}

func (c *chatCommandsImpl) Stream(ctx context.Context, msgs []ChatMessage, includeOffers bool, fn func(delta string) error) error {
	system := StreamSystemPrompt(c.cfg, c.offerContext(includeOffers))
	return c.assistant.Stream(ctx, system, msgs, fn)
}

// offerContext serializes the current top offers into the compact shape the
// prompt embeds. A failure to build context degrades to no context; the chat
// still works.
func (c *chatCommandsImpl) offerContext(includeOffers bool) string {
	if !includeOffers {
		return ""
	}

	type contextOffer struct {
		Title           string `json:"title"`
		Restaurant      string `json:"restaurant"`
		OriginalPrice   float64 `json:"originalPrice"`
		DiscountedPrice float64 `json:"discountedPrice"`
		Discount        int    `json:"discount"`
		Provider        string `json:"provider"`
		Cuisine         string `json:"cuisine"`
		City            string `json:"city"`
	}

	top := c.offers.TopOffers(contextOfferCap)
	ctxOffers := make([]contextOffer, 0, len(top))
	for _, o := range top {
		cuisine := ""
		if len(o.Cuisine) > 0 {
			cuisine = o.Cuisine[0]
		}
		ctxOffers = append(ctxOffers, contextOffer{
			Title:           o.Title,
			Restaurant:      o.RestaurantName,
			OriginalPrice:   o.OriginalPrice,
			DiscountedPrice: o.DiscountedPrice,
			Discount:        o.DiscountPercent,
			Provider:        o.ProviderName,
			Cuisine:         cuisine,
			City:            o.City,
		})
	}

	b, err := json.MarshalIndent(ctxOffers, "", "  ")
	if err != nil {
		slog.Warn("failed to serialize offer context for assistant", "error", err)
		return ""
	}
	return string(b)
}
