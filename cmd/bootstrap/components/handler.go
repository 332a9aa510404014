package components

import (
	"ondc-seller-bridge/internal/handler"
	"ondc-seller-bridge/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewONDCHandler,
	),
	fx.Invoke(handler.NewRouter),
)
