package bootstrap

import (
	"log/slog"

	"foodai-api/internal/infra/assistant"
	"foodai-api/internal/pkg/config"
	"foodai-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var AssistantModule = fx.Module("assistant",
	fx.Provide(
		NewAssistant,
	),
)

// NewAssistant picks the completion backend. Without an API key the chat
// endpoints stay up but answer 503.
func NewAssistant(cfg config.Config) commands.Assistant {
	if cfg.Chat.APIKey == "" {
		slog.Warn("no assistant API key configured, chat endpoints will answer 503")
		return assistant.NewDisabledAssistant()
	}
	return assistant.NewDeepSeekAssistant(cfg.Chat)
}
