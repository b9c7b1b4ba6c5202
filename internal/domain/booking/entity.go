package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidStatus = errors.New("invalid booking status")

// Booking ties a user and a hotel room to a stay period with a computed
// total price. The price is always derived from room rate and stay length,
// never taken from the caller.
type Booking struct {
	id         uuid.UUID
	stay       StayPeriod
	totalPrice decimal.Decimal
	status     Status
	userID     uuid.UUID
	hotelID    uuid.UUID
	roomID     uuid.UUID
	discountID *uuid.UUID
	createdAt  time.Time
	updatedAt  time.Time
}

func NewBooking(
	userID, hotelID, roomID uuid.UUID,
	stay StayPeriod,
	totalPrice decimal.Decimal,
	discountID *uuid.UUID,
	status Status,
) (*Booking, error) {
	if status == "" {
		status = StatusPending
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Booking{
		id:         uuid.New(),
		stay:       stay,
		totalPrice: totalPrice,
		status:     status,
		userID:     userID,
		hotelID:    hotelID,
		roomID:     roomID,
		discountID: discountID,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	stay StayPeriod,
	totalPrice decimal.Decimal,
	status Status,
	userID, hotelID, roomID uuid.UUID,
	discountID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		stay:       stay,
		totalPrice: totalPrice,
		status:     status,
		userID:     userID,
		hotelID:    hotelID,
		roomID:     roomID,
		discountID: discountID,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) Stay() StayPeriod            { return b.stay }
func (b *Booking) TotalPrice() decimal.Decimal { return b.totalPrice }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) UserID() uuid.UUID           { return b.userID }
func (b *Booking) HotelID() uuid.UUID          { return b.hotelID }
func (b *Booking) RoomID() uuid.UUID           { return b.roomID }
func (b *Booking) DiscountID() *uuid.UUID      { return b.discountID }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }
