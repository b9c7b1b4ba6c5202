package components

import (
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewDiscountUseCase,
		// The booking use case sees discounts only through their lifecycle
		// operations.
		func(d usecase.DiscountUseCase) usecase.DiscountLifecycle {
			return d
		},
		usecase.NewBookingUseCase,
	),
)
