//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking-api/internal/domain/discount"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/pkg/ptr"
	"hotel-booking-api/internal/usecase"
	"hotel-booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

func notFoundErr() error {
	return infra.WrapRepoErr("row not found", errs.New("no rows"), infra.KindNotFound)
}

func conflictErr() error {
	return infra.WrapRepoErr("discount usage limit reached", errs.New("no rows"), infra.KindConflict)
}

func TestCreateDiscount(t *testing.T) {
	ctx := context.Background()

	t.Run("valid discount is persisted and re-read", func(t *testing.T) {
		var created *discount.Discount
		repo := &stubDiscountRepo{
			create: func(_ context.Context, d *discount.Discount) error {
				created = d
				return nil
			},
			findByID: func(_ context.Context, id uuid.UUID) (*discount.Discount, error) {
				require.NotNil(t, created)
				assert.Equal(t, created.ID(), id)
				return created, nil
			},
		}
		uc := usecase.NewDiscountUseCase(repo, clock.NewFixedClock(testNow))

		got, err := uc.CreateDiscount(ctx, usecase.CreateDiscountParams{
			Code:      "SUMMER10",
			Percent:   decimal.NewFromInt(10),
			StartDate: testNow.Add(time.Hour),
			EndDate:   testNow.Add(30 * 24 * time.Hour),
			MaxUse:    5,
		})
		require.NoError(t, err)
		assert.Equal(t, "SUMMER10", got.Code().String())
		assert.Equal(t, discount.StatusActive, got.Status())
	})

	t.Run("duplicate code surfaces as a conflict", func(t *testing.T) {
		repo := &stubDiscountRepo{
			create: func(_ context.Context, _ *discount.Discount) error {
				return infra.WrapRepoErr("discount code already exists", errs.New("unique violation"), infra.KindDuplicateKey)
			},
		}
		uc := usecase.NewDiscountUseCase(repo, clock.NewFixedClock(testNow))

		_, err := uc.CreateDiscount(ctx, usecase.CreateDiscountParams{
			Code:      "SUMMER10",
			Percent:   decimal.NewFromInt(10),
			StartDate: testNow.Add(time.Hour),
			EndDate:   testNow.Add(30 * 24 * time.Hour),
			MaxUse:    5,
		})
		assert.ErrorIs(t, err, usecase.ErrDuplicateCode)
	})

	t.Run("domain validation failure never reaches the store", func(t *testing.T) {
		repo := &stubDiscountRepo{}
		uc := usecase.NewDiscountUseCase(repo, clock.NewFixedClock(testNow))

		_, err := uc.CreateDiscount(ctx, usecase.CreateDiscountParams{
			Code:      "LATE",
			Percent:   decimal.NewFromInt(10),
			StartDate: testNow.Add(-time.Hour),
			EndDate:   testNow.Add(time.Hour),
			MaxUse:    5,
		})
		assert.ErrorIs(t, err, usecase.ErrValidation)
		assert.ErrorIs(t, err, discount.ErrStartInPast)
	})
}

func TestEnsureUsableDiscount(t *testing.T) {
	ctx := context.Background()

	t.Run("active discount passes", func(t *testing.T) {
		d := builder.NewDiscountBuilder().BuildDomain()
		repo := &stubDiscountRepo{
			findByID: func(_ context.Context, _ uuid.UUID) (*discount.Discount, error) {
				return d, nil
			},
		}
		uc := usecase.NewDiscountUseCase(repo, clock.NewFixedClock(testNow))

		got, err := uc.EnsureUsable(ctx, d.ID())
		require.NoError(t, err)
		assert.Equal(t, d.ID(), got.ID())
	})

	t.Run("inactive discount is reported expired", func(t *testing.T) {
		d := builder.NewDiscountBuilder().
			With(func(b *builder.DiscountBuilder) { b.Status = discount.StatusInactive }).
			BuildDomain()
		repo := &stubDiscountRepo{
			findByID: func(_ context.Context, _ uuid.UUID) (*discount.Discount, error) {
				return d, nil
			},
		}
		uc := usecase.NewDiscountUseCase(repo, clock.NewFixedClock(testNow))

		_, err := uc.EnsureUsable(ctx, d.ID())
		assert.ErrorIs(t, err, usecase.ErrDiscountExpired)
	})

	t.Run("missing discount", func(t *testing.T) {
		repo := &stubDiscountRepo{
			findByID: func(_ context.Context, _ uuid.UUID) (*discount.Discount, error) {
				return nil, notFoundErr()
			},
		}
		uc := usecase.NewDiscountUseCase(repo, clock.NewFixedClock(testNow))

		_, err := uc.EnsureUsable(ctx, uuid.New())
		assert.ErrorIs(t, err, usecase.ErrDiscountNotFound)
	})
}

func TestIncrementUsage(t *testing.T) {
	ctx := context.Background()

	t.Run("storage conflict maps to usage limit error", func(t *testing.T) {
		repo := &stubDiscountRepo{
			incrementUsage: func(_ context.Context, _ uuid.UUID, _ time.Time) (*discount.Discount, error) {
				return nil, conflictErr()
			},
		}
		uc := usecase.NewDiscountUseCase(repo, clock.NewFixedClock(testNow))

		_, err := uc.IncrementUsage(ctx, uuid.New())
		assert.ErrorIs(t, err, usecase.ErrUsageLimitReached)
	})

	t.Run("returns the post-increment row", func(t *testing.T) {
		d := builder.NewDiscountBuilder().
			With(func(b *builder.DiscountBuilder) { b.UsedCount = 3 }).
			BuildDomain()
		repo := &stubDiscountRepo{
			incrementUsage: func(_ context.Context, id uuid.UUID, now time.Time) (*discount.Discount, error) {
				assert.Equal(t, d.ID(), id)
				assert.Equal(t, testNow, now)
				return d, nil
			},
		}
		uc := usecase.NewDiscountUseCase(repo, clock.NewFixedClock(testNow))

		got, err := uc.IncrementUsage(ctx, d.ID())
		require.NoError(t, err)
		assert.Equal(t, int32(3), got.UsedCount())
	})
}

func TestUpdateDiscount(t *testing.T) {
	ctx := context.Background()

	t.Run("empty patch is rejected", func(t *testing.T) {
		uc := usecase.NewDiscountUseCase(&stubDiscountRepo{}, clock.NewFixedClock(testNow))

		_, err := uc.UpdateDiscount(ctx, uuid.New(), usecase.UpdateDiscountParams{})
		assert.ErrorIs(t, err, usecase.ErrEmptyUpdate)
	})

	t.Run("patched fields replace stored ones", func(t *testing.T) {
		existing := builder.NewDiscountBuilder().BuildDomain()
		var saved *discount.Discount
		repo := &stubDiscountRepo{
			findByID: func(_ context.Context, _ uuid.UUID) (*discount.Discount, error) {
				return existing, nil
			},
			save: func(_ context.Context, d *discount.Discount) error {
				saved = d
				return nil
			},
		}
		uc := usecase.NewDiscountUseCase(repo, clock.NewFixedClock(testNow))

		got, err := uc.UpdateDiscount(ctx, existing.ID(), usecase.UpdateDiscountParams{
			Code:    ptr.To("WINTER20"),
			Percent: ptr.To(decimal.NewFromInt(20)),
		})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "WINTER20", got.Code().String())
		assert.True(t, got.Percent().Value().Equal(decimal.NewFromInt(20)))
		assert.Equal(t, existing.EndDate(), got.EndDate())
		assert.Equal(t, existing.Status(), got.Status())
	})

	t.Run("max use cannot drop below used count", func(t *testing.T) {
		existing := builder.NewDiscountBuilder().
			With(func(b *builder.DiscountBuilder) { b.MaxUse = 5; b.UsedCount = 3 }).
			BuildDomain()
		repo := &stubDiscountRepo{
			findByID: func(_ context.Context, _ uuid.UUID) (*discount.Discount, error) {
				return existing, nil
			},
		}
		uc := usecase.NewDiscountUseCase(repo, clock.NewFixedClock(testNow))

		_, err := uc.UpdateDiscount(ctx, existing.ID(), usecase.UpdateDiscountParams{
			MaxUse: ptr.To(int32(2)),
		})
		assert.ErrorIs(t, err, usecase.ErrValidation)
	})
}

func TestSweepExpired(t *testing.T) {
	ctx := context.Background()

	t.Run("expired discounts are deactivated, future ones kept", func(t *testing.T) {
		expired := builder.NewDiscountBuilder().
			With(func(b *builder.DiscountBuilder) { b.EndDate = testNow.Add(-time.Hour) }).
			BuildDomain()
		future := builder.NewDiscountBuilder().
			With(func(b *builder.DiscountBuilder) { b.EndDate = testNow.Add(time.Hour) }).
			BuildDomain()

		var saved []*discount.Discount
		repo := &stubDiscountRepo{
			findByStatus: func(_ context.Context, status discount.Status) ([]*discount.Discount, error) {
				assert.Equal(t, discount.StatusActive, status)
				return []*discount.Discount{expired, future}, nil
			},
			save: func(_ context.Context, d *discount.Discount) error {
				saved = append(saved, d)
				return nil
			},
		}
		uc := usecase.NewDiscountUseCase(repo, clock.NewFixedClock(testNow))

		checked, err := uc.SweepExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, checked)

		require.Len(t, saved, 1)
		assert.Equal(t, expired.ID(), saved[0].ID())
		assert.Equal(t, discount.StatusInactive, saved[0].Status())
		assert.Equal(t, discount.StatusActive, future.Status())
	})

	t.Run("no active discounts is a no-op", func(t *testing.T) {
		repo := &stubDiscountRepo{
			findByStatus: func(_ context.Context, _ discount.Status) ([]*discount.Discount, error) {
				return nil, nil
			},
		}
		uc := usecase.NewDiscountUseCase(repo, clock.NewFixedClock(testNow))

		checked, err := uc.SweepExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, checked)
	})

	t.Run("listing failure surfaces as a database error", func(t *testing.T) {
		repo := &stubDiscountRepo{
			findByStatus: func(_ context.Context, _ discount.Status) ([]*discount.Discount, error) {
				return nil, infra.WrapRepoErr("query failed", errs.New("boom"))
			},
		}
		uc := usecase.NewDiscountUseCase(repo, clock.NewFixedClock(testNow))

		_, err := uc.SweepExpired(ctx)
		assert.ErrorIs(t, err, usecase.ErrDatabaseOperationFailed)
	})
}
