package response

import (
	"time"

	"hotel-booking-api/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingResponse struct {
	ID         uuid.UUID       `json:"id"`
	CheckIn    time.Time       `json:"check_in"`
	CheckOut   time.Time       `json:"check_out"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     string          `json:"status"`
	UserID     uuid.UUID       `json:"user"`
	HotelID    uuid.UUID       `json:"hotel"`
	RoomID     uuid.UUID       `json:"room"`
	DiscountID *uuid.UUID      `json:"discount,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:         b.ID(),
		CheckIn:    b.Stay().CheckIn(),
		CheckOut:   b.Stay().CheckOut(),
		TotalPrice: b.TotalPrice(),
		Status:     b.Status().String(),
		UserID:     b.UserID(),
		HotelID:    b.HotelID(),
		RoomID:     b.RoomID(),
		DiscountID: b.DiscountID(),
		CreatedAt:  b.CreatedAt(),
		UpdatedAt:  b.UpdatedAt(),
	}
}

func FromBookings(bs []*booking.Booking) []*BookingResponse {
	out := make([]*BookingResponse, len(bs))
	for i, b := range bs {
		out[i] = FromBooking(b)
	}
	return out
}
