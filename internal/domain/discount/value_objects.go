package discount

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCode      = errors.New("discount code is required")
	ErrCodeTooLong    = errors.New("discount code must be at most 20 characters")
	ErrInvalidPercent = errors.New("discount percent must be greater than 0 and at most 100")
)

const maxCodeLength = 20

type Code string

func NewCode(raw string) (Code, error) {
	code := strings.TrimSpace(raw)
	if code == "" {
		return "", ErrEmptyCode
	}
	if utf8.RuneCountInString(code) > maxCodeLength {
		return "", ErrCodeTooLong
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

var oneHundred = decimal.NewFromInt(100)

// Percent is a discount percentage in (0, 100].
type Percent struct {
	value decimal.Decimal
}

func NewPercent(value decimal.Decimal) (Percent, error) {
	if !value.IsPositive() || value.GreaterThan(oneHundred) {
		return Percent{}, ErrInvalidPercent
	}
	return Percent{value: value}, nil
}

// ReconstructPercent rebuilds a Percent from a stored row without
// re-validating it.
func ReconstructPercent(value decimal.Decimal) Percent {
	return Percent{value: value}
}

func (p Percent) Value() decimal.Decimal {
	return p.value
}
