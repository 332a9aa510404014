package components

import (
	"log/slog"

	"ondc-seller-bridge/internal/inventory"
	"ondc-seller-bridge/internal/ondc"
	"ondc-seller-bridge/internal/pkg/clock"
	"ondc-seller-bridge/internal/pkg/config"
	"ondc-seller-bridge/internal/usecase/commands"
	"ondc-seller-bridge/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	ondc.NewCodec,
	fx.Annotate(
		inventory.NewManager,
		fx.As(new(commands.Inventory)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(
			catalogStore commands.CatalogStore,
			orderStore commands.OrderStore,
			idemStore commands.IdempotencyStore,
			inv commands.Inventory,
			clk clock.Clock,
			cfg config.ProtocolConfig,
			logger *slog.Logger,
		) commands.OrderCommands {
			return commands.NewOrderCommands(catalogStore, orderStore, idemStore, inv, clk, cfg.Currency, logger)
		},
		commands.NewRatingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(store queries.CatalogReadStore, cfg config.ProtocolConfig, logger *slog.Logger) queries.CatalogQueries {
			return queries.NewCatalogQueries(store, cfg.SearchLimit, logger)
		},
		queries.NewOrderQueries,
	),
)
