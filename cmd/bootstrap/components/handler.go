package components

import (
	"booking-manager/internal/handler"
	"booking-manager/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewBlockHandler,
		api.NewAvailabilityHandler,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
