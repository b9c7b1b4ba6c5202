package response

import (
	"time"

	"hotel-booking-api/internal/domain/discount"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountResponse struct {
	ID        uuid.UUID       `json:"id"`
	Code      string          `json:"code"`
	Percent   decimal.Decimal `json:"discount"`
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`
	Status    string          `json:"status"`
	MaxUse    int32           `json:"max_use"`
	UsedCount int32           `json:"used_count"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func FromDiscount(d *discount.Discount) *DiscountResponse {
	return &DiscountResponse{
		ID:        d.ID(),
		Code:      d.Code().String(),
		Percent:   d.Percent().Value(),
		StartDate: d.StartDate(),
		EndDate:   d.EndDate(),
		Status:    d.Status().String(),
		MaxUse:    d.MaxUse(),
		UsedCount: d.UsedCount(),
		CreatedAt: d.CreatedAt(),
		UpdatedAt: d.UpdatedAt(),
	}
}

func FromDiscounts(ds []*discount.Discount) []*DiscountResponse {
	out := make([]*DiscountResponse, len(ds))
	for i, d := range ds {
		out[i] = FromDiscount(d)
	}
	return out
}
