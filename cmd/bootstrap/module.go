package bootstrap

import (
	"booking-manager/cmd/bootstrap/components"
	"booking-manager/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)

// Module wires the whole server: config, logging, the selected store, use
// cases and HTTP handlers.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	components.UseCaseModule,
	components.HandlerModule,
)
