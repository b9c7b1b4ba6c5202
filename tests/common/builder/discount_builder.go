//go:build unit || e2e

package builder

import (
	"time"

	domdiscount "hotel-booking-api/internal/domain/discount"
	reqdto "hotel-booking-api/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountBuilder struct {
	ID        uuid.UUID
	Code      string
	Percent   decimal.Decimal
	StartDate time.Time
	EndDate   time.Time
	Status    domdiscount.Status
	MaxUse    int32
	UsedCount int32
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewDiscountBuilder() *DiscountBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &DiscountBuilder{
		ID:        uuid.New(),
		Code:      "SUMMER10",
		Percent:   decimal.NewFromInt(10),
		StartDate: now,
		EndDate:   now.Add(30 * 24 * time.Hour),
		Status:    domdiscount.StatusActive,
		MaxUse:    5,
		UsedCount: 0,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *DiscountBuilder) With(mutate func(*DiscountBuilder)) *DiscountBuilder {
	mutate(b)
	return b
}

func (b *DiscountBuilder) BuildDomain() *domdiscount.Discount {
	code, err := domdiscount.NewCode(b.Code)
	if err != nil {
		panic(err)
	}
	return domdiscount.ReconstructDiscount(
		b.ID, code, domdiscount.ReconstructPercent(b.Percent),
		b.StartDate, b.EndDate,
		b.Status,
		b.MaxUse, b.UsedCount,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *DiscountBuilder) BuildCreateRequestDTO() reqdto.CreateDiscountRequest {
	return reqdto.CreateDiscountRequest{
		Code:      b.Code,
		Percent:   b.Percent,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		MaxUse:    b.MaxUse,
	}
}
