package bootstrap

import (
	"hotel-booking-api/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule loads the environment once and exposes the sections that
// downstream modules depend on, so they do not pull in the whole Config.
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.SweepConfig { return cfg.Sweep },
	),
)
