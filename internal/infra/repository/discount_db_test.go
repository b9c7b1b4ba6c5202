//go:build e2e

package repository_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	domdiscount "hotel-booking-api/internal/domain/discount"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/repository"
	"hotel-booking-api/tests/common/builder"
	"hotel-booking-api/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountRepositoryIncrementUsage(t *testing.T) {
	pool := dbtest.NewPool(t)
	repo := repository.NewDiscountRepository(pool)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	seed := func(t *testing.T, mutate func(*builder.DiscountBuilder)) *domdiscount.Discount {
		t.Helper()
		d := builder.NewDiscountBuilder().With(mutate).BuildDomain()
		require.NoError(t, repo.Create(ctx, d))
		return d
	}

	t.Run("below the limit the counter advances and stays active", func(t *testing.T) {
		d := seed(t, func(b *builder.DiscountBuilder) { b.Code = "BELOW" })

		// The conditional UPDATE must land on the same state as the
		// domain transition applied to the stored row.
		want, err := repo.FindByID(ctx, d.ID())
		require.NoError(t, err)
		require.NoError(t, want.RecordUse(now))

		got, err := repo.IncrementUsage(ctx, d.ID(), now)
		require.NoError(t, err)
		assert.Equal(t, want.UsedCount(), got.UsedCount())
		assert.Equal(t, want.Status(), got.Status())
		assert.Equal(t, domdiscount.StatusActive, got.Status())
	})

	t.Run("consuming the last slot flips the status to inactive", func(t *testing.T) {
		d := seed(t, func(b *builder.DiscountBuilder) {
			b.Code = "LAST"
			b.UsedCount = 4
		})

		got, err := repo.IncrementUsage(ctx, d.ID(), now)
		require.NoError(t, err)
		assert.EqualValues(t, 5, got.UsedCount())
		assert.Equal(t, domdiscount.StatusInactive, got.Status())
	})

	t.Run("at the limit nothing is written and the conflict kind is returned", func(t *testing.T) {
		d := seed(t, func(b *builder.DiscountBuilder) { b.Code = "FULL" })
		dbtest.SetDiscountUsage(t, pool, d.ID(), 5, "Active")
		before := dbtest.FetchDiscountRow(t, pool, d.ID())

		_, err := repo.IncrementUsage(ctx, d.ID(), now)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))

		after := dbtest.FetchDiscountRow(t, pool, d.ID())
		assert.Equal(t, before, after)
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		_, err := repo.IncrementUsage(ctx, uuid.New(), now)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("concurrent increments never push past the limit", func(t *testing.T) {
		d := seed(t, func(b *builder.DiscountBuilder) {
			b.Code = "RACE"
			b.MaxUse = 3
		})

		var wg sync.WaitGroup
		var succeeded atomic.Int32
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := repo.IncrementUsage(ctx, d.ID(), now); err == nil {
					succeeded.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.EqualValues(t, 3, succeeded.Load())
		row := dbtest.FetchDiscountRow(t, pool, d.ID())
		assert.EqualValues(t, 3, row.UsedCount)
		assert.Equal(t, "Inactive", row.Status)
	})
}
