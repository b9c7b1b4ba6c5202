package bootstrap

import (
	"hotel-booking-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	SweeperModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
