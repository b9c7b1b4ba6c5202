//go:build e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SetDiscountUsage writes the usage counter and status straight into the
// row, bypassing the repository, to stage discounts near their limit.
func SetDiscountUsage(t *testing.T, pool *pgxpool.Pool, id uuid.UUID, usedCount int32, status string) {
	t.Helper()

	tag, err := pool.Exec(context.Background(),
		"UPDATE discounts SET used_count = $1, status = $2 WHERE id = $3",
		usedCount, status, id)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
}

// DiscountRow is the raw usage state of a discounts row, read without going
// through the repository's scanning.
type DiscountRow struct {
	UsedCount int32
	Status    string
	UpdatedAt time.Time
}

func FetchDiscountRow(t *testing.T, pool *pgxpool.Pool, id uuid.UUID) DiscountRow {
	t.Helper()

	var row DiscountRow
	err := pool.QueryRow(context.Background(),
		"SELECT used_count, status, updated_at FROM discounts WHERE id = $1", id).
		Scan(&row.UsedCount, &row.Status, &row.UpdatedAt)
	require.NoError(t, err)
	return row
}
