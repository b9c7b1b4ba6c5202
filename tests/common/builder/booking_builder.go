//go:build unit || e2e

package builder

import (
	"time"

	dombooking "hotel-booking-api/internal/domain/booking"
	reqdto "hotel-booking-api/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ID         uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	TotalPrice decimal.Decimal
	Status     dombooking.Status
	UserID     uuid.UUID
	HotelID    uuid.UUID
	RoomID     uuid.UUID
	DiscountID *uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &BookingBuilder{
		ID:         uuid.New(),
		CheckIn:    now.Add(24 * time.Hour),
		CheckOut:   now.Add(3 * 24 * time.Hour),
		TotalPrice: decimal.NewFromInt(200),
		Status:     dombooking.StatusPending,
		UserID:     uuid.New(),
		HotelID:    uuid.New(),
		RoomID:     uuid.New(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() *dombooking.Booking {
	stay, err := dombooking.NewStayPeriod(b.CheckIn, b.CheckOut)
	if err != nil {
		panic(err)
	}
	return dombooking.ReconstructBooking(
		b.ID, stay, b.TotalPrice, b.Status,
		b.UserID, b.HotelID, b.RoomID,
		b.DiscountID,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		UserID:     b.UserID,
		HotelID:    b.HotelID,
		RoomID:     b.RoomID,
		DiscountID: b.DiscountID,
	}
}
