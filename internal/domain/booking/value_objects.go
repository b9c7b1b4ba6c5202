package booking

import (
	"errors"
	"time"
)

var ErrInvalidStayRange = errors.New("check-out must be after check-in")

// StayPeriod is the half-open [check-in, check-out) range of a booking.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	if !checkOut.After(checkIn) {
		return StayPeriod{}, ErrInvalidStayRange
	}
	return StayPeriod{
		checkIn:  checkIn,
		checkOut: checkOut,
	}, nil
}

func (s StayPeriod) CheckIn() time.Time {
	return s.checkIn
}

func (s StayPeriod) CheckOut() time.Time {
	return s.checkOut
}

func (s StayPeriod) Duration() time.Duration {
	return s.checkOut.Sub(s.checkIn)
}

// Nights is the stay length in whole nights. Any partial day counts as a
// full night, so a same-day stay of a few hours still charges one night.
func (s StayPeriod) Nights() int64 {
	d := s.Duration()
	nights := int64(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}
