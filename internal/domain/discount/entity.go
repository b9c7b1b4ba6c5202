package discount

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEndBeforeStart    = errors.New("end date must not be before start date")
	ErrStartInPast       = errors.New("start date must not be in the past")
	ErrInvalidMaxUse     = errors.New("max use must be greater than 0")
	ErrUsageLimitReached = errors.New("discount has reached its maximum usage")
	ErrInactive          = errors.New("discount is expired and cannot be used")
)

// Discount moves from Active to Inactive exactly once, either when its usage
// ceiling is hit or when its end date passes. Inactive is terminal.
type Discount struct {
	id        uuid.UUID
	code      Code
	percent   Percent
	startDate time.Time
	endDate   time.Time
	status    Status
	maxUse    int32
	usedCount int32
	createdAt time.Time
	updatedAt time.Time
}

// NewDiscount validates creation-time rules: code length, percent range,
// date ordering, and that the start date is not already behind now.
func NewDiscount(
	code string,
	percent decimal.Decimal,
	startDate, endDate time.Time,
	maxUse int32,
	now time.Time,
) (*Discount, error) {
	c, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	p, err := NewPercent(percent)
	if err != nil {
		return nil, err
	}

	if endDate.Before(startDate) {
		return nil, ErrEndBeforeStart
	}
	if startDate.Before(now) {
		return nil, ErrStartInPast
	}
	if maxUse <= 0 {
		return nil, ErrInvalidMaxUse
	}

	return &Discount{
		id:        uuid.New(),
		code:      c,
		percent:   p,
		startDate: startDate,
		endDate:   endDate,
		status:    StatusActive,
		maxUse:    maxUse,
		usedCount: 0,
	}, nil
}

func ReconstructDiscount(
	id uuid.UUID,
	code Code,
	percent Percent,
	startDate, endDate time.Time,
	status Status,
	maxUse, usedCount int32,
	createdAt, updatedAt time.Time,
) *Discount {
	return &Discount{
		id:        id,
		code:      code,
		percent:   percent,
		startDate: startDate,
		endDate:   endDate,
		status:    status,
		maxUse:    maxUse,
		usedCount: usedCount,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// IsEffectivelyActive is the strict activity predicate: stored status AND
// end date both have to agree. The stored status alone can lag behind the
// end date until the sweep catches up.
func (d *Discount) IsEffectivelyActive(now time.Time) bool {
	return d.status == StatusActive && !now.After(d.endDate)
}

func (d *Discount) HasExpired(now time.Time) bool {
	return now.After(d.endDate)
}

// EnsureUsable reports whether the discount can still be attached to a
// booking. Only the stored status is consulted here; an Active discount past
// its end date is accepted until the sweep deactivates it.
func (d *Discount) EnsureUsable() error {
	if d.status == StatusInactive {
		return ErrInactive
	}
	return nil
}

// RecordUse consumes one usage slot. Hitting the ceiling flips the status to
// Inactive; at the ceiling the call fails without mutating anything.
func (d *Discount) RecordUse(now time.Time) error {
	if d.usedCount >= d.maxUse {
		return ErrUsageLimitReached
	}
	d.usedCount++
	if d.usedCount == d.maxUse {
		d.status = StatusInactive
	}
	d.updatedAt = now
	return nil
}

// Deactivate marks the discount Inactive. There is no reactivation path.
func (d *Discount) Deactivate(now time.Time) {
	d.status = StatusInactive
	d.updatedAt = now
}

func (d *Discount) ID() uuid.UUID        { return d.id }
func (d *Discount) Code() Code           { return d.code }
func (d *Discount) Percent() Percent     { return d.percent }
func (d *Discount) StartDate() time.Time { return d.startDate }
func (d *Discount) EndDate() time.Time   { return d.endDate }
func (d *Discount) Status() Status       { return d.status }
func (d *Discount) MaxUse() int32        { return d.maxUse }
func (d *Discount) UsedCount() int32     { return d.usedCount }
func (d *Discount) CreatedAt() time.Time { return d.createdAt }
func (d *Discount) UpdatedAt() time.Time { return d.updatedAt }
