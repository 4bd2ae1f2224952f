package bootstrap

import (
	"booking-scheduler/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	ObservabilityModule,
	StorageModule,
	BrokerModule,
	JWTModule,
	components.UseCaseModule,
	components.HandlerModule,
)
