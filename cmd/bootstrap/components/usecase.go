package components

import (
	"foodai-api/internal/domain/catalog"
	"foodai-api/internal/domain/offer"
	"foodai-api/internal/domain/report"
	"foodai-api/internal/pkg/clock"
	"foodai-api/internal/pkg/config"
	"foodai-api/internal/pkg/locale"
	"foodai-api/internal/usecase/commands"
	"foodai-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	offer.NewSystemRand,
	func(cfg config.Config) locale.Config {
		return locale.ForCode(cfg.Locale.Code)
	},
	func(cfg locale.Config) catalog.Catalog {
		return catalog.ForLocale(cfg.Code)
	},
	offer.NewGenerator,
	report.NewBuilder,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOfferQueries,
		queries.NewAdminQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewClickoutCommands,
		commands.NewChatCommands,
	),
)
