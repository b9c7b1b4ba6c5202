package repository

import (
	"context"
	"errors"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/usecase"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RoomRepository reads room rates only; room lifecycle belongs to an
// external service.
type RoomRepository struct {
	pool *pgxpool.Pool
}

func NewRoomRepository(pool *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{pool: pool}
}

func (r *RoomRepository) FindRate(ctx context.Context, id uuid.UUID) (*usecase.RoomRate, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "nightly_rate").
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build room query", err)
	}

	var rate usecase.RoomRate
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&rate.ID, &rate.NightlyRate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return &rate, nil
}
