package usecase

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking-api/internal/domain/discount"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountRepository interface {
	Create(ctx context.Context, d *discount.Discount) error
	FindByID(ctx context.Context, id uuid.UUID) (*discount.Discount, error)
	FindByStatus(ctx context.Context, status discount.Status) ([]*discount.Discount, error)
	FindAll(ctx context.Context) ([]*discount.Discount, error)
	Save(ctx context.Context, d *discount.Discount) error
	IncrementUsage(ctx context.Context, id uuid.UUID, now time.Time) (*discount.Discount, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DiscountLifecycle is the slice of discount behavior the booking
// orchestrator depends on. Usage counters are mutated only through here.
type DiscountLifecycle interface {
	EnsureUsable(ctx context.Context, id uuid.UUID) (*discount.Discount, error)
	IncrementUsage(ctx context.Context, id uuid.UUID) (*discount.Discount, error)
	GetDiscount(ctx context.Context, id uuid.UUID) (*discount.Discount, error)
}

type CreateDiscountParams struct {
	Code      string
	Percent   decimal.Decimal
	StartDate time.Time
	EndDate   time.Time
	MaxUse    int32
}

type UpdateDiscountParams struct {
	Code      *string
	Percent   *decimal.Decimal
	StartDate *time.Time
	EndDate   *time.Time
	MaxUse    *int32
}

func (p UpdateDiscountParams) IsEmpty() bool {
	return p.Code == nil && p.Percent == nil && p.StartDate == nil &&
		p.EndDate == nil && p.MaxUse == nil
}

type DiscountUseCase interface {
	DiscountLifecycle
	CreateDiscount(ctx context.Context, params CreateDiscountParams) (*discount.Discount, error)
	ListDiscounts(ctx context.Context) ([]*discount.Discount, error)
	UpdateDiscount(ctx context.Context, id uuid.UUID, params UpdateDiscountParams) (*discount.Discount, error)
	DeleteDiscount(ctx context.Context, id uuid.UUID) error
	SweepExpired(ctx context.Context) (int, error)
}

type discountUseCaseImpl struct {
	discountRepo DiscountRepository
	clock        clock.Clock
}

func NewDiscountUseCase(discountRepo DiscountRepository, clock clock.Clock) DiscountUseCase {
	return &discountUseCaseImpl{
		discountRepo: discountRepo,
		clock:        clock,
	}
}

func (u *discountUseCaseImpl) CreateDiscount(ctx context.Context, params CreateDiscountParams) (*discount.Discount, error) {
	d, err := discount.NewDiscount(
		params.Code, params.Percent,
		params.StartDate, params.EndDate,
		params.MaxUse, u.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	if err := u.discountRepo.Create(ctx, d); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateCode)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return u.GetDiscount(ctx, d.ID())
}

func (u *discountUseCaseImpl) GetDiscount(ctx context.Context, id uuid.UUID) (*discount.Discount, error) {
	d, err := u.discountRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDiscountNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return d, nil
}

func (u *discountUseCaseImpl) ListDiscounts(ctx context.Context) ([]*discount.Discount, error) {
	discounts, err := u.discountRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return discounts, nil
}

func (u *discountUseCaseImpl) UpdateDiscount(ctx context.Context, id uuid.UUID, params UpdateDiscountParams) (*discount.Discount, error) {
	if params.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	existing, err := u.GetDiscount(ctx, id)
	if err != nil {
		return nil, err
	}

	code, err := discount.NewCode(patch.Coalesce(params.Code, existing.Code().String()))
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	percent, err := discount.NewPercent(patch.Coalesce(params.Percent, existing.Percent().Value()))
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	startDate := patch.Coalesce(params.StartDate, existing.StartDate())
	endDate := patch.Coalesce(params.EndDate, existing.EndDate())
	if endDate.Before(startDate) {
		return nil, errs.Mark(discount.ErrEndBeforeStart, ErrValidation)
	}

	maxUse := patch.Coalesce(params.MaxUse, existing.MaxUse())
	if maxUse < existing.UsedCount() {
		return nil, errs.Mark(errs.New("max use cannot drop below used count"), ErrValidation)
	}

	// Status is not patchable: Inactive is terminal and deactivation happens
	// through usage exhaustion or the expiry sweep, never by hand.
	updated := discount.ReconstructDiscount(
		existing.ID(), code, percent,
		startDate, endDate,
		existing.Status(),
		maxUse, existing.UsedCount(),
		existing.CreatedAt(), u.clock.Now(),
	)

	if err := u.discountRepo.Save(ctx, updated); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrDiscountNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, errs.Mark(err, ErrDuplicateCode)
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return updated, nil
}

func (u *discountUseCaseImpl) DeleteDiscount(ctx context.Context, id uuid.UUID) error {
	if err := u.discountRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrDiscountNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// EnsureUsable checks the stored status only. An Active discount past its
// end date that the sweep has not reached yet is accepted; strict callers
// use discount.IsEffectivelyActive instead.
func (u *discountUseCaseImpl) EnsureUsable(ctx context.Context, id uuid.UUID) (*discount.Discount, error) {
	d, err := u.GetDiscount(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := d.EnsureUsable(); err != nil {
		return nil, errs.Mark(err, ErrDiscountExpired)
	}
	return d, nil
}

// IncrementUsage delegates to the storage layer's conditional increment so
// concurrent bookings cannot push the counter past its ceiling.
func (u *discountUseCaseImpl) IncrementUsage(ctx context.Context, id uuid.UUID) (*discount.Discount, error) {
	d, err := u.discountRepo.IncrementUsage(ctx, id, u.clock.Now())
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrDiscountNotFound
		case infra.IsKind(err, infra.KindConflict):
			return nil, ErrUsageLimitReached
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return d, nil
}

// SweepExpired deactivates every Active discount whose end date has passed
// and returns how many Active discounts were checked. An empty result set is
// a logged no-op, not an error.
func (u *discountUseCaseImpl) SweepExpired(ctx context.Context) (int, error) {
	now := u.clock.Now()

	active, err := u.discountRepo.FindByStatus(ctx, discount.StatusActive)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(active) == 0 {
		slog.InfoContext(ctx, "no active discounts to sweep")
		return 0, nil
	}

	for _, d := range active {
		if !d.HasExpired(now) {
			continue
		}
		d.Deactivate(now)
		if err := u.discountRepo.Save(ctx, d); err != nil {
			return 0, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	slog.InfoContext(ctx, "checked and updated discount statuses", "count", len(active))
	return len(active), nil
}
