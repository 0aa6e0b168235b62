// Package valueobject defines immutable value types shared across the domain.
package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a monetary amount in integer cents. All engine arithmetic happens
// in cents so that summing many allocations never accumulates floating-point
// drift. Negative values represent refunds or debits.
type Money int64

// Zero is the zero monetary amount.
const Zero Money = 0

var oneHundred = decimal.NewFromInt(100)

// MoneyFromDecimal converts a currency-unit amount (e.g. 1234.56) to cents,
// rounding half away from zero to the nearest cent.
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money(d.Mul(oneHundred).Round(0).IntPart())
}

// MoneyFromCents wraps a raw cent count.
func MoneyFromCents(cents int64) Money {
	return Money(cents)
}

// Cents returns the raw cent count.
func (m Money) Cents() int64 {
	return int64(m)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return m + other
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return m - other
}

// Neg returns the negated amount.
func (m Money) Neg() Money {
	return -m
}

// Abs returns the absolute amount.
func (m Money) Abs() Money {
	if m < 0 {
		return -m
	}
	return m
}

// IsZero reports whether the amount is exactly zero cents.
func (m Money) IsZero() bool {
	return m == 0
}

// DivCount divides the amount by a count, rounding half away from zero.
// Used for averages; a count of zero yields zero rather than an error.
func (m Money) DivCount(count int64) Money {
	if count == 0 {
		return 0
	}
	q := decimal.NewFromInt(int64(m)).DivRound(decimal.NewFromInt(count), 0)
	return Money(q.IntPart())
}

// Decimal returns the amount in currency units as a decimal (cents / 100).
func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(m)).Div(oneHundred)
}

// String formats the amount in currency units with exactly two decimal
// places, e.g. -5000 cents -> "-50.00". This is the format the CSV export
// and statement emails render.
func (m Money) String() string {
	cents := int64(m)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// MarshalJSON encodes the amount as a bare cent integer so API consumers
// never see floating-point currency.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%d", int64(m))), nil
}

// UnmarshalJSON decodes a bare cent integer.
func (m *Money) UnmarshalJSON(data []byte) error {
	var cents int64
	if _, err := fmt.Sscanf(string(data), "%d", &cents); err != nil {
		return fmt.Errorf("invalid money value %q: %w", string(data), err)
	}
	*m = Money(cents)
	return nil
}
