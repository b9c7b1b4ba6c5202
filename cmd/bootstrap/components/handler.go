package components

import (
	"hotel-booking-api/internal/handler"
	"hotel-booking-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewDiscountHandler,
	),
	fx.Invoke(handler.NewRouter),
)
