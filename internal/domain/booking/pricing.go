package booking

import (
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// TotalPrice is the nightly rate multiplied by the number of nights in the
// stay. The rate comes from the room the booking references.
func TotalPrice(nightlyRate decimal.Decimal, stay StayPeriod) decimal.Decimal {
	return nightlyRate.Mul(decimal.NewFromInt(stay.Nights()))
}

// ApplyDiscount reduces total by percent of itself. The result is not floored
// at zero; percentages above 100 are rejected when the discount is created,
// not here.
func ApplyDiscount(total decimal.Decimal, percent decimal.Decimal) decimal.Decimal {
	return total.Sub(total.Mul(percent).Div(oneHundred))
}
