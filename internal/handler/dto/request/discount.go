package request

import (
	"time"

	"hotel-booking-api/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateDiscountRequest struct {
	Code      string          `json:"code" binding:"required,max=20"`
	Percent   decimal.Decimal `json:"discount" binding:"required"`
	StartDate time.Time       `json:"start_date" binding:"required"`
	EndDate   time.Time       `json:"end_date" binding:"required"`
	MaxUse    int32           `json:"max_use" binding:"required,gt=0"`
}

func (r CreateDiscountRequest) ToParams() usecase.CreateDiscountParams {
	return usecase.CreateDiscountParams{
		Code:      r.Code,
		Percent:   r.Percent,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		MaxUse:    r.MaxUse,
	}
}

type UpdateDiscountRequest struct {
	Code      *string          `json:"code,omitempty" binding:"omitempty,max=20"`
	Percent   *decimal.Decimal `json:"discount,omitempty"`
	StartDate *time.Time       `json:"start_date,omitempty"`
	EndDate   *time.Time       `json:"end_date,omitempty"`
	MaxUse    *int32           `json:"max_use,omitempty" binding:"omitempty,gt=0"`
}

func (r UpdateDiscountRequest) ToParams() usecase.UpdateDiscountParams {
	return usecase.UpdateDiscountParams{
		Code:      r.Code,
		Percent:   r.Percent,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		MaxUse:    r.MaxUse,
	}
}
