package bootstrap

import (
	"ondc-seller-bridge/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.ProtocolConfig { return cfg.Protocol },
	),
)
