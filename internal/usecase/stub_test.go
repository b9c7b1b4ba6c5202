//go:build unit

package usecase_test

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/discount"
	"hotel-booking-api/internal/usecase"

	"github.com/google/uuid"
)

// Function-field stubs stand in for the storage layer. A nil field means the
// test does not expect that call, so reaching it panics loudly.

type stubDiscountRepo struct {
	create         func(ctx context.Context, d *discount.Discount) error
	findByID       func(ctx context.Context, id uuid.UUID) (*discount.Discount, error)
	findByStatus   func(ctx context.Context, status discount.Status) ([]*discount.Discount, error)
	findAll        func(ctx context.Context) ([]*discount.Discount, error)
	save           func(ctx context.Context, d *discount.Discount) error
	incrementUsage func(ctx context.Context, id uuid.UUID, now time.Time) (*discount.Discount, error)
	delete         func(ctx context.Context, id uuid.UUID) error
}

func (s *stubDiscountRepo) Create(ctx context.Context, d *discount.Discount) error {
	return s.create(ctx, d)
}

func (s *stubDiscountRepo) FindByID(ctx context.Context, id uuid.UUID) (*discount.Discount, error) {
	return s.findByID(ctx, id)
}

func (s *stubDiscountRepo) FindByStatus(ctx context.Context, status discount.Status) ([]*discount.Discount, error) {
	return s.findByStatus(ctx, status)
}

func (s *stubDiscountRepo) FindAll(ctx context.Context) ([]*discount.Discount, error) {
	return s.findAll(ctx)
}

func (s *stubDiscountRepo) Save(ctx context.Context, d *discount.Discount) error {
	return s.save(ctx, d)
}

func (s *stubDiscountRepo) IncrementUsage(ctx context.Context, id uuid.UUID, now time.Time) (*discount.Discount, error) {
	return s.incrementUsage(ctx, id, now)
}

func (s *stubDiscountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, id)
}

type stubBookingRepo struct {
	create   func(ctx context.Context, b *booking.Booking) (*booking.Booking, error)
	findByID func(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	findAll  func(ctx context.Context) ([]*booking.Booking, error)
	update   func(ctx context.Context, b *booking.Booking, now time.Time) (*booking.Booking, error)
	delete   func(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

func (s *stubBookingRepo) Create(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	return s.create(ctx, b)
}

func (s *stubBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return s.findByID(ctx, id)
}

func (s *stubBookingRepo) FindAll(ctx context.Context) ([]*booking.Booking, error) {
	return s.findAll(ctx)
}

func (s *stubBookingRepo) Update(ctx context.Context, b *booking.Booking, now time.Time) (*booking.Booking, error) {
	return s.update(ctx, b, now)
}

func (s *stubBookingRepo) Delete(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return s.delete(ctx, id)
}

type stubRoomRepo struct {
	findRate func(ctx context.Context, id uuid.UUID) (*usecase.RoomRate, error)
}

func (s *stubRoomRepo) FindRate(ctx context.Context, id uuid.UUID) (*usecase.RoomRate, error) {
	return s.findRate(ctx, id)
}

type stubDiscountLifecycle struct {
	ensureUsable   func(ctx context.Context, id uuid.UUID) (*discount.Discount, error)
	incrementUsage func(ctx context.Context, id uuid.UUID) (*discount.Discount, error)
	getDiscount    func(ctx context.Context, id uuid.UUID) (*discount.Discount, error)
}

func (s *stubDiscountLifecycle) EnsureUsable(ctx context.Context, id uuid.UUID) (*discount.Discount, error) {
	return s.ensureUsable(ctx, id)
}

func (s *stubDiscountLifecycle) IncrementUsage(ctx context.Context, id uuid.UUID) (*discount.Discount, error) {
	return s.incrementUsage(ctx, id)
}

func (s *stubDiscountLifecycle) GetDiscount(ctx context.Context, id uuid.UUID) (*discount.Discount, error) {
	return s.getDiscount(ctx, id)
}
