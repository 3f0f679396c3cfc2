package assistant

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"foodai-api/internal/pkg/config"
	"foodai-api/internal/usecase/commands"
)

// streamMaxTokens is lower than the one-shot budget; streamed answers are
// meant to be short.
const streamMaxTokens = 800

// DeepSeekAssistant talks to a DeepSeek-compatible chat completion API
// through the OpenAI wire protocol.
type DeepSeekAssistant struct {
	client *openai.Client
	cfg    config.ChatConfig
}

func NewDeepSeekAssistant(cfg config.ChatConfig) *DeepSeekAssistant {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	return &DeepSeekAssistant{
		client: openai.NewClientWithConfig(clientCfg),
		cfg:    cfg,
	}
}

func (a *DeepSeekAssistant) Complete(ctx context.Context, system string, msgs []commands.ChatMessage) (string, error) {
	start := time.Now()

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:            a.cfg.Model,
		Messages:         a.wireMessages(system, msgs),
		Temperature:      float32(a.cfg.Temperature),
		MaxTokens:        a.cfg.MaxTokens,
		PresencePenalty:  0.1,
		FrequencyPenalty: 0.1,
	})
	if err != nil {
		slog.Error("chat completion failed", "error", err, "duration", time.Since(start))
		return "", commands.ErrAssistantUnavailable
	}
	if len(resp.Choices) == 0 {
		slog.Error("chat completion returned no choices", "duration", time.Since(start))
		return "", commands.ErrAssistantUnavailable
	}

	slog.Info("chat completion succeeded", "duration", time.Since(start))
	return resp.Choices[0].Message.Content, nil
}

func (a *DeepSeekAssistant) Stream(ctx context.Context, system string, msgs []commands.ChatMessage, fn func(delta string) error) error {
	stream, err := a.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:       a.cfg.Model,
		Messages:    a.wireMessages(system, msgs),
		Temperature: float32(a.cfg.Temperature),
		MaxTokens:   streamMaxTokens,
		Stream:      true,
	})
	if err != nil {
		slog.Error("chat stream open failed", "error", err)
		return commands.ErrAssistantUnavailable
	}
	defer stream.Close()

	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			slog.Error("chat stream receive failed", "error", err)
			return commands.ErrAssistantUnavailable
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		delta := chunk.Choices[0].Delta.Content
		if delta == "" {
			continue
		}
		if err := fn(delta); err != nil {
			// Writer failure means the client went away; stop reading.
			return err
		}
	}
}

func (a *DeepSeekAssistant) wireMessages(system string, msgs []commands.ChatMessage) []openai.ChatCompletionMessage {
	wire := make([]openai.ChatCompletionMessage, 0, len(msgs)+1)
	wire = append(wire, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: system,
	})
	for _, m := range msgs {
		wire = append(wire, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	return wire
}

// DisabledAssistant stands in when no API key is configured. Every call
// reports the assistant as unavailable.
type DisabledAssistant struct{}

func NewDisabledAssistant() *DisabledAssistant {
	return &DisabledAssistant{}
}

func (*DisabledAssistant) Complete(context.Context, string, []commands.ChatMessage) (string, error) {
	return "", commands.ErrAssistantUnavailable
}

func (*DisabledAssistant) Stream(context.Context, string, []commands.ChatMessage, func(delta string) error) error {
	return commands.ErrAssistantUnavailable
}
