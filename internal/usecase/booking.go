package usecase

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoomRate is the read-only room snapshot the pricing path needs.
type RoomRate struct {
	ID          uuid.UUID
	NightlyRate decimal.Decimal
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (*booking.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindAll(ctx context.Context) ([]*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking, now time.Time) (*booking.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type RoomRepository interface {
	FindRate(ctx context.Context, id uuid.UUID) (*RoomRate, error)
}

type CreateBookingParams struct {
	CheckIn    time.Time
	CheckOut   time.Time
	Status     booking.Status
	UserID     uuid.UUID
	HotelID    uuid.UUID
	RoomID     uuid.UUID
	DiscountID *uuid.UUID
}

type UpdateBookingParams struct {
	CheckIn    *time.Time
	CheckOut   *time.Time
	Status     *booking.Status
	UserID     *uuid.UUID
	HotelID    *uuid.UUID
	RoomID     *uuid.UUID
	DiscountID *uuid.UUID
}

func (p UpdateBookingParams) IsEmpty() bool {
	return p.CheckIn == nil && p.CheckOut == nil && p.Status == nil &&
		p.UserID == nil && p.HotelID == nil && p.RoomID == nil &&
		p.DiscountID == nil
}

func (p UpdateBookingParams) affectsPrice() bool {
	return p.CheckIn != nil || p.CheckOut != nil || p.RoomID != nil
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*booking.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListBookings(ctx context.Context) ([]*booking.Booking, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, params UpdateBookingParams) (*booking.Booking, error)
	DeleteBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	discounts   DiscountLifecycle
	clock       clock.Clock
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	discounts DiscountLifecycle,
	clock clock.Clock,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		discounts:   discounts,
		clock:       clock,
	}
}

// CreateBooking prices the stay, applies and consumes the discount if one is
// supplied, and persists the booking. A failure at any step aborts creation;
// in particular, a failed usage increment means no booking row is written.
func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*booking.Booking, error) {
	stay, err := booking.NewStayPeriod(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayRange)
	}

	total, err := u.priceStay(ctx, params.RoomID, stay)
	if err != nil {
		return nil, err
	}

	if params.DiscountID != nil {
		d, err := u.discounts.EnsureUsable(ctx, *params.DiscountID)
		if err != nil {
			return nil, err
		}
		total = booking.ApplyDiscount(total, d.Percent().Value())

		// Usage is consumed only after the price is final, and before the
		// booking is persisted. There is no compensating decrement.
		if _, err := u.discounts.IncrementUsage(ctx, *params.DiscountID); err != nil {
			return nil, err
		}
	}

	ent, err := booking.NewBooking(
		params.UserID, params.HotelID, params.RoomID,
		stay, total, params.DiscountID, params.Status,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	created, err := u.bookingRepo.Create(ctx, ent)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return created, nil
}

func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return b, nil
}

func (u *bookingUseCaseImpl) ListBookings(ctx context.Context) ([]*booking.Booking, error) {
	bookings, err := u.bookingRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return bookings, nil
}

// UpdateBooking patches only the supplied fields. A stay or room change
// recomputes the total price from patched-or-stored values; a new discount
// is validated and consumed, with no usage release on the one it replaces.
func (u *bookingUseCaseImpl) UpdateBooking(ctx context.Context, id uuid.UUID, params UpdateBookingParams) (*booking.Booking, error) {
	if params.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	existing, err := u.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	status := patch.Coalesce(params.Status, existing.Status())
	if !status.IsValid() {
		return nil, errs.Mark(booking.ErrInvalidStatus, ErrValidation)
	}

	discountID := existing.DiscountID()
	if params.DiscountID != nil {
		if _, err := u.discounts.EnsureUsable(ctx, *params.DiscountID); err != nil {
			return nil, err
		}
		discountID = params.DiscountID
	}

	stay := existing.Stay()
	total := existing.TotalPrice()
	if params.affectsPrice() {
		stay, err = booking.NewStayPeriod(
			patch.Coalesce(params.CheckIn, existing.Stay().CheckIn()),
			patch.Coalesce(params.CheckOut, existing.Stay().CheckOut()),
		)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidStayRange)
		}

		roomID := patch.Coalesce(params.RoomID, existing.RoomID())
		total, err = u.priceStay(ctx, roomID, stay)
		if err != nil {
			return nil, err
		}

		if discountID != nil {
			d, err := u.discounts.GetDiscount(ctx, *discountID)
			if err != nil {
				return nil, err
			}
			total = booking.ApplyDiscount(total, d.Percent().Value())
		}
	}

	if params.DiscountID != nil {
		if _, err := u.discounts.IncrementUsage(ctx, *params.DiscountID); err != nil {
			return nil, err
		}
	}

	updated := booking.ReconstructBooking(
		existing.ID(), stay, total, status,
		patch.Coalesce(params.UserID, existing.UserID()),
		patch.Coalesce(params.HotelID, existing.HotelID()),
		patch.Coalesce(params.RoomID, existing.RoomID()),
		discountID,
		existing.CreatedAt(), existing.UpdatedAt(),
	)

	saved, err := u.bookingRepo.Update(ctx, updated, u.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return saved, nil
}

// DeleteBooking removes the booking and returns the removed record. Any
// usage slot consumed on an attached discount stays consumed.
func (u *bookingUseCaseImpl) DeleteBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	removed, err := u.bookingRepo.Delete(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return removed, nil
}

func (u *bookingUseCaseImpl) priceStay(ctx context.Context, roomID uuid.UUID, stay booking.StayPeriod) (decimal.Decimal, error) {
	rate, err := u.roomRepo.FindRate(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return decimal.Decimal{}, ErrRoomNotFound
		}
		return decimal.Decimal{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return booking.TotalPrice(rate.NightlyRate, stay), nil
}
