package bootstrap

import (
	"context"
	"log/slog"

	infraclickout "foodai-api/internal/infra/clickout"
	"foodai-api/internal/infra/db"
	"foodai-api/internal/pkg/config"
	"foodai-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewClickoutStore,
	),
)

// NewClickoutStore wires clickout persistence. Without DB credentials the
// service runs store-less and every click goes to the log instead; the site
// works either way.
func NewClickoutStore(lc fx.Lifecycle, cfg config.Config) (commands.ClickoutStore, error) {
	if !cfg.DB.Enabled() {
		slog.Info("no database configured, clickouts are log-only")
		return infraclickout.NewLogStore(), nil
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return infraclickout.NewPostgresStore(pool), nil
}
