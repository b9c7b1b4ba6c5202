package repository

import (
	"context"
	"errors"
	"time"

	"hotel-booking-api/internal/domain/discount"
	"hotel-booking-api/internal/infra"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var discountColumns = []string{
	"id", "code", "percent", "start_date", "end_date",
	"status", "max_use", "used_count", "created_at", "updated_at",
}

type DiscountRepository struct {
	pool *pgxpool.Pool
}

func NewDiscountRepository(pool *pgxpool.Pool) *DiscountRepository {
	return &DiscountRepository{pool: pool}
}

func (r *DiscountRepository) Create(ctx context.Context, d *discount.Discount) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("discounts").
		Columns("id", "code", "percent", "start_date", "end_date", "status", "max_use", "used_count").
		Values(
			d.ID(), d.Code().String(), d.Percent().Value(),
			d.StartDate(), d.EndDate(), d.Status().String(),
			d.MaxUse(), d.UsedCount(),
		).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build discount insert", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("discount code already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create discount", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *DiscountRepository) FindByID(ctx context.Context, id uuid.UUID) (*discount.Discount, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(discountColumns...).
		From("discounts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build discount query", err)
	}

	d, err := scanDiscount(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("discount not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find discount", err)
	}
	return d, nil
}

func (r *DiscountRepository) FindByStatus(ctx context.Context, status discount.Status) ([]*discount.Discount, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(discountColumns...).
		From("discounts").
		Where(squirrel.Eq{"status": status.String()}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build discount status query", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query discounts by status", err)
	}
	defer rows.Close()

	var discounts []*discount.Discount
	for rows.Next() {
		d, err := scanDiscount(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan discount row", err)
		}
		discounts = append(discounts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read discount rows", err)
	}
	return discounts, nil
}

func (r *DiscountRepository) FindAll(ctx context.Context) ([]*discount.Discount, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(discountColumns...).
		From("discounts").
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build discount list query", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list discounts", err)
	}
	defer rows.Close()

	var discounts []*discount.Discount
	for rows.Next() {
		d, err := scanDiscount(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan discount row", err)
		}
		discounts = append(discounts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read discount rows", err)
	}
	return discounts, nil
}

// Save writes back mutable discount fields. Usage counters go through
// IncrementUsage instead; this is for status flips and metadata updates.
func (r *DiscountRepository) Save(ctx context.Context, d *discount.Discount) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("discounts").
		Set("code", d.Code().String()).
		Set("percent", d.Percent().Value()).
		Set("start_date", d.StartDate()).
		Set("end_date", d.EndDate()).
		Set("status", d.Status().String()).
		Set("max_use", d.MaxUse()).
		Set("used_count", d.UsedCount()).
		Set("updated_at", d.UpdatedAt()).
		Where(squirrel.Eq{"id": d.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build discount update", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("discount code already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update discount", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("discount not found", nil, infra.KindNotFound)
	}
	return nil
}

// IncrementUsage consumes one usage slot in a single conditional UPDATE, so
// two concurrent bookings can never push used_count past max_use. Hitting
// the ceiling flips the status to Inactive in the same statement.
func (r *DiscountRepository) IncrementUsage(ctx context.Context, id uuid.UUID, now time.Time) (*discount.Discount, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("discounts").
		Set("used_count", squirrel.Expr("used_count + 1")).
		Set("status", squirrel.Expr("CASE WHEN used_count + 1 >= max_use THEN 'Inactive' ELSE status END")).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("used_count < max_use")).
		Suffix("RETURNING " + joinColumns(discountColumns)).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build usage increment", err)
	}

	d, err := scanDiscount(r.pool.QueryRow(ctx, query, args...))
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.WrapRepoErr("failed to increment discount usage", err)
	}

	// Zero rows means either an unknown id or an exhausted counter.
	if _, findErr := r.FindByID(ctx, id); findErr != nil {
		return nil, findErr
	}
	return nil, infra.WrapRepoErr("discount usage limit reached", nil, infra.KindConflict)
}

func (r *DiscountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("discounts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build discount delete", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to delete discount", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("discount not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanDiscount(row pgx.Row) (*discount.Discount, error) {
	var (
		id                   uuid.UUID
		code                 string
		percent              decimal.Decimal
		startDate, endDate   time.Time
		status               string
		maxUse, usedCount    int32
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(
		&id, &code, &percent, &startDate, &endDate,
		&status, &maxUse, &usedCount, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	return discount.ReconstructDiscount(
		id,
		discount.Code(code),
		discount.ReconstructPercent(percent),
		startDate, endDate,
		discount.Status(status),
		maxUse, usedCount,
		createdAt, updatedAt,
	), nil
}

func joinColumns(cols []string) string {
	out := cols[0]
	for _, c := range cols[1:] {
		out += ", " + c
	}
	return out
}
