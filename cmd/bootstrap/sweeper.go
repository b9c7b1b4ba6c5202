package bootstrap

import (
	"context"
	"log/slog"

	"hotel-booking-api/internal/jobs"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/usecase"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Provide(
		NewExpirySweeper,
	),
	fx.Invoke(runExpirySweeper),
)

func NewExpirySweeper(cfg config.SweepConfig, discounts usecase.DiscountUseCase, logger *slog.Logger) *jobs.ExpirySweeper {
	return jobs.NewExpirySweeper(discounts.SweepExpired, cfg.Interval, logger)
}

func runExpirySweeper(lc fx.Lifecycle, sweeper *jobs.ExpirySweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}
