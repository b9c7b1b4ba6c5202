package components

import (
	repo_impl "hotel-booking-api/internal/infra/repository"
	"hotel-booking-api/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewRoomRepository,
			fx.As(new(usecase.RoomRepository)),
		),
		fx.Annotate(
			repo_impl.NewDiscountRepository,
			fx.As(new(usecase.DiscountRepository)),
		),
	),
)
