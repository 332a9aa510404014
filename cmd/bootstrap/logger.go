package bootstrap

import (
	"log/slog"

	"ondc-seller-bridge/internal/handler/middleware"
	"ondc-seller-bridge/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		func(cfg config.Config) *middleware.Logger {
			return middleware.NewLogger(cfg.Log)
		},
		func(l *middleware.Logger) *slog.Logger {
			return l.GetSlogLogger()
		},
	),
)
