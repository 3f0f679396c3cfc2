package commands

import (
	"context"
	"log/slog"

	"foodai-api/internal/domain/clickout"
	"foodai-api/internal/pkg/clock"

	"github.com/google/uuid"
)

// ClickoutStore persists clickout rows in the managed store.
type ClickoutStore interface {
	Insert(ctx context.Context, c clickout.Clickout) error
}

// RecordClickoutParams carries the click plus request metadata.
type RecordClickoutParams struct {
	OfferID    string
	ProviderID string
	UserID     *string
	IP         string
	UserAgent  string
	Referer    string
}

type RecordClickoutResult struct {
	ClickoutID uuid.UUID
}

// ClickoutCommands records click-throughs best-effort: persistence failures
// are logged with the full payload and never surfaced to the caller.
type ClickoutCommands interface {
	Record(ctx context.Context, p RecordClickoutParams) RecordClickoutResult
}

type clickoutCommandsImpl struct {
	store ClickoutStore
	clock clock.Clock
}

func NewClickoutCommands(store ClickoutStore, clk clock.Clock) ClickoutCommands {
	return &clickoutCommandsImpl{store: store, clock: clk}
}

func (c *clickoutCommandsImpl) Record(ctx context.Context, p RecordClickoutParams) RecordClickoutResult {
	row := clickout.Clickout{
		ID:         uuid.New(),
		OfferID:    p.OfferID,
		ProviderID: p.ProviderID,
		UserID:     p.UserID,
		IP:         p.IP,
		UserAgent:  p.UserAgent,
		Referer:    p.Referer,
		Timestamp:  c.clock.Now(),
	}

	if err := c.store.Insert(ctx, row); err != nil {
		// Fire-and-forget contract: the click is still acknowledged, the
		// payload goes to the log instead of the store. No retry, no queue.
		slog.Warn("clickout persistence failed, falling back to log",
			"error", err,
			"clickout_id", row.ID,
			"offer_id", row.OfferID,
			"provider_id", row.ProviderID,
			"ip", row.IP,
		)
	}

	return RecordClickoutResult{ClickoutID: row.ID}
}
