package repository

import (
	"context"
	"errors"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var bookingColumns = []string{
	"id", "check_in", "check_out", "total_price", "status",
	"user_id", "hotel_id", "room_id", "discount_id", "created_at", "updated_at",
}

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("bookings").
		Columns("id", "check_in", "check_out", "total_price", "status", "user_id", "hotel_id", "room_id", "discount_id").
		Values(
			b.ID(), b.Stay().CheckIn(), b.Stay().CheckOut(),
			b.TotalPrice(), b.Status().String(),
			b.UserID(), b.HotelID(), b.RoomID(), b.DiscountID(),
		).
		Suffix("RETURNING " + joinColumns(bookingColumns)).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking insert", err)
	}

	created, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return created, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return b, nil
}

func (r *BookingRepository) FindAll(ctx context.Context) ([]*booking.Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking list query", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var bookings []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return bookings, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking, now time.Time) (*booking.Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("bookings").
		Set("check_in", b.Stay().CheckIn()).
		Set("check_out", b.Stay().CheckOut()).
		Set("total_price", b.TotalPrice()).
		Set("status", b.Status().String()).
		Set("user_id", b.UserID()).
		Set("hotel_id", b.HotelID()).
		Set("room_id", b.RoomID()).
		Set("discount_id", b.DiscountID()).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": b.ID()}).
		Suffix("RETURNING " + joinColumns(bookingColumns)).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking update", err)
	}

	updated, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update booking", err)
	}
	return updated, nil
}

// Delete removes the booking and returns the removed row.
func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(bookingColumns)).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking delete", err)
	}

	removed, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to delete booking", err)
	}
	return removed, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id                      uuid.UUID
		checkIn, checkOut       time.Time
		totalPrice              decimal.Decimal
		status                  string
		userID, hotelID, roomID uuid.UUID
		discountID              *uuid.UUID
		createdAt, updatedAt    time.Time
	)
	if err := row.Scan(
		&id, &checkIn, &checkOut, &totalPrice, &status,
		&userID, &hotelID, &roomID, &discountID, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	stay, err := booking.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id, stay, totalPrice, booking.Status(status),
		userID, hotelID, roomID, discountID,
		createdAt, updatedAt,
	), nil
}
