package request

import (
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/usecase"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CheckIn    time.Time  `json:"check_in" binding:"required"`
	CheckOut   time.Time  `json:"check_out" binding:"required"`
	Status     *string    `json:"status,omitempty" binding:"omitempty,oneof=Pending Confirmed Cancelled"`
	UserID     uuid.UUID  `json:"user" binding:"required"`
	HotelID    uuid.UUID  `json:"hotel" binding:"required"`
	RoomID     uuid.UUID  `json:"room" binding:"required"`
	DiscountID *uuid.UUID `json:"discount,omitempty"`
}

func (r CreateBookingRequest) ToParams() usecase.CreateBookingParams {
	var status booking.Status
	if r.Status != nil {
		status = booking.Status(*r.Status)
	}

	return usecase.CreateBookingParams{
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		Status:     status,
		UserID:     r.UserID,
		HotelID:    r.HotelID,
		RoomID:     r.RoomID,
		DiscountID: r.DiscountID,
	}
}

type UpdateBookingRequest struct {
	CheckIn    *time.Time `json:"check_in,omitempty"`
	CheckOut   *time.Time `json:"check_out,omitempty"`
	Status     *string    `json:"status,omitempty" binding:"omitempty,oneof=Pending Confirmed Cancelled"`
	UserID     *uuid.UUID `json:"user,omitempty"`
	HotelID    *uuid.UUID `json:"hotel,omitempty"`
	RoomID     *uuid.UUID `json:"room,omitempty"`
	DiscountID *uuid.UUID `json:"discount,omitempty"`
}

func (r UpdateBookingRequest) ToParams() usecase.UpdateBookingParams {
	var status *booking.Status
	if r.Status != nil {
		s := booking.Status(*r.Status)
		status = &s
	}

	return usecase.UpdateBookingParams{
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		Status:     status,
		UserID:     r.UserID,
		HotelID:    r.HotelID,
		RoomID:     r.RoomID,
		DiscountID: r.DiscountID,
	}
}
