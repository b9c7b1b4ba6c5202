//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 7, 1, 15, 0, 0, 0, time.UTC)

func TestStayPeriod(t *testing.T) {
	t.Run("check-out must be after check-in", func(t *testing.T) {
		cases := []struct {
			name     string
			checkIn  time.Time
			checkOut time.Time
			errIs    error
		}{
			{
				name:     "valid range",
				checkIn:  baseTime,
				checkOut: baseTime.Add(24 * time.Hour),
			},
			{
				name:     "check-out equal to check-in",
				checkIn:  baseTime,
				checkOut: baseTime,
				errIs:    booking.ErrInvalidStayRange,
			},
			{
				name:     "check-out before check-in",
				checkIn:  baseTime,
				checkOut: baseTime.Add(-time.Hour),
				errIs:    booking.ErrInvalidStayRange,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := booking.NewStayPeriod(tc.checkIn, tc.checkOut)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				assert.NoError(t, err)
			})
		}
	})

	t.Run("nights round partial days up", func(t *testing.T) {
		cases := []struct {
			name     string
			duration time.Duration
			nights   int64
		}{
			{name: "exactly one day", duration: 24 * time.Hour, nights: 1},
			{name: "exactly two days", duration: 48 * time.Hour, nights: 2},
			{name: "a few hours still charge one night", duration: 10 * time.Hour, nights: 1},
			{name: "two and a half days charge three nights", duration: 60 * time.Hour, nights: 3},
			{name: "one day plus a minute charges two nights", duration: 24*time.Hour + time.Minute, nights: 2},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				stay, err := booking.NewStayPeriod(baseTime, baseTime.Add(tc.duration))
				require.NoError(t, err)
				assert.Equal(t, tc.nights, stay.Nights())
			})
		}
	})
}

func TestTotalPrice(t *testing.T) {
	stay, err := booking.NewStayPeriod(baseTime, baseTime.Add(48*time.Hour))
	require.NoError(t, err)

	total := booking.TotalPrice(decimal.NewFromInt(100), stay)
	assert.True(t, total.Equal(decimal.NewFromInt(200)), "got %s", total)
}

func TestApplyDiscount(t *testing.T) {
	cases := []struct {
		name    string
		total   decimal.Decimal
		percent decimal.Decimal
		want    decimal.Decimal
	}{
		{
			name:    "ten percent off",
			total:   decimal.NewFromInt(100),
			percent: decimal.NewFromInt(10),
			want:    decimal.NewFromInt(90),
		},
		{
			name:    "full discount brings total to zero",
			total:   decimal.NewFromInt(250),
			percent: decimal.NewFromInt(100),
			want:    decimal.NewFromInt(0),
		},
		{
			name:    "fractional percentage keeps exact cents",
			total:   decimal.NewFromInt(200),
			percent: decimal.RequireFromString("12.5"),
			want:    decimal.NewFromInt(175),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := booking.ApplyDiscount(tc.total, tc.percent)
			assert.True(t, got.Equal(tc.want), "got %s, want %s", got, tc.want)
		})
	}
}
