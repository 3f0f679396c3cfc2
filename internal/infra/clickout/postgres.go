package clickout

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"foodai-api/internal/domain/clickout"
	"foodai-api/internal/pkg/errs"
)

// PostgresStore writes clickout rows to the clickouts table. The table is
// append-only; there are no updates or deletes.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Insert(ctx context.Context, c clickout.Clickout) error {
	const q = `
		INSERT INTO clickouts (
			id, offer_id, provider_id, user_id, ip, user_agent, referer,
			clicked_at, is_conversion, commission_amount
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.pool.Exec(ctx, q,
		c.ID, c.OfferID, c.ProviderID, c.UserID, c.IP, c.UserAgent, c.Referer,
		c.Timestamp, c.IsConversion, c.CommissionAmount,
	)
	if err != nil {
		return errs.Wrap(err, "failed to insert clickout")
	}
	return nil
}

// LogStore is the no-database fallback. Every click lands in the structured
// log and nothing else.
type LogStore struct{}

func NewLogStore() *LogStore {
	return &LogStore{}
}

func (*LogStore) Insert(_ context.Context, c clickout.Clickout) error {
	slog.Info("clickout recorded",
		"clickout_id", c.ID,
		"offer_id", c.OfferID,
		"provider_id", c.ProviderID,
		"ip", c.IP,
		"user_agent", c.UserAgent,
		"referer", c.Referer,
		"clicked_at", c.Timestamp,
	)
	return nil
}
