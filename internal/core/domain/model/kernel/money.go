package kernel

import (
	"fmt"

	"ecommerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// minorUnits is the number of decimal places of the currency's minor unit (cents).
const minorUnits = 2

// Money is a value object representing a non-negative monetary amount in fixed-point
// decimal arithmetic. All order totals, product prices, and tariff thresholds are
// expressed as Money; float64 is never used for amounts.
//
// The zero value of Money is a valid zero amount. Amounts are immutable: every
// arithmetic operation returns a new Money.
//
// Example usage:
//
//	price, err := kernel.NewMoneyFromString("19.99")
//	if err != nil {
//	    // handle error
//	}
//	lineTotal := price.MulInt(3) // 59.97
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{}
}

// NewMoney creates a Money from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromString parses a Money from its decimal string representation,
// e.g. "10.00" or "49.99". Returns an error for malformed or negative input.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// MustMoney parses a Money from a string and panics on failure.
// Intended for constants and test fixtures only.
func MustMoney(s string) Money {
	m, err := NewMoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulInt returns the amount multiplied by a whole quantity.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// ApplyRatePercent returns amount * (rate / 100), rounded half-up to the
// currency's minor unit. The rounding is applied exactly once, here.
func (m Money) ApplyRatePercent(rate decimal.Decimal) Money {
	raw := m.amount.Mul(rate).Div(decimal.NewFromInt(100))
	return Money{amount: raw.Round(minorUnits)}
}

// GreaterThanOrEqual reports whether m >= other.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality ("1.5" equals "1.50").
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal value.
// Used by persistence adapters; domain code should stay on Money.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with exactly two decimal places, e.g. "59.97".
func (m Money) String() string {
	return m.amount.StringFixed(minorUnits)
}
