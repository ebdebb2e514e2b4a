package currency

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Common errors
var (
	ErrInvalidDecimalPlaces = errors.New("decimal places cannot be negative")
	ErrUnknownCurrency      = errors.New("unknown currency code")
)

// Rules describes the precision of a currency. The zero value is a
// currency without fractional digits.
type Rules struct {
	decimalPlaces int32
}

// NewRules creates rules for a currency with the given number of fractional digits
func NewRules(decimalPlaces int) (Rules, error) {
	if decimalPlaces < 0 {
		return Rules{}, ErrInvalidDecimalPlaces
	}
	return Rules{decimalPlaces: int32(decimalPlaces)}, nil
}

// DecimalPlaces returns the number of fractional digits the currency supports
func (r Rules) DecimalPlaces() int32 {
	return r.decimalPlaces
}

// SmallestIncrement returns 10^-decimalPlaces (0.01 for USD, 1 for JPY)
func (r Rules) SmallestIncrement() decimal.Decimal {
	return decimal.New(1, -r.decimalPlaces)
}

// Round rounds an amount to the currency's precision, half away from zero
func (r Rules) Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(r.decimalPlaces)
}

// IsMultiple reports whether amount is a whole number of smallest increments
func (r Rules) IsMultiple(amount decimal.Decimal) bool {
	return amount.Mod(r.SmallestIncrement()).IsZero()
}

// Format renders an amount with exactly DecimalPlaces fractional digits
func (r Rules) Format(amount decimal.Decimal) string {
	return r.Round(amount).StringFixed(r.decimalPlaces)
}

// Spread distributes residual across amounts one smallest increment at a
// time, cycling through amounts in order: with k increments over n amounts
// every amount receives k/n increments and the first |k mod n| one more.
// A negative residual is taken away the same way. It returns a new slice
// and the number of increments moved.
func (r Rules) Spread(amounts []decimal.Decimal, residual decimal.Decimal) ([]decimal.Decimal, int64) {
	out := make([]decimal.Decimal, len(amounts))
	copy(out, amounts)

	increment := r.SmallestIncrement()
	steps := r.Round(residual).Div(increment).IntPart()
	if steps == 0 || len(out) == 0 {
		return out, 0
	}

	n := int64(len(out))
	sign := int64(1)
	if steps < 0 {
		sign = -1
	}
	magnitude := steps * sign
	perAmount := magnitude / n
	extra := magnitude % n

	for i := range out {
		count := perAmount
		if int64(i) < extra {
			count++
		}
		if count == 0 {
			continue
		}
		out[i] = out[i].Add(increment.Mul(decimal.NewFromInt(count * sign)))
	}

	return out, magnitude
}
