// Package money provides functionality for handling monetary values.
//
// It is a value object that represents a monetary value in a specific currency.
// Invariants:
//   - Amount is held as an arbitrary precision decimal, never as a float.
//   - Currency code must be valid ISO 4217 (3 uppercase letters).
//   - All arithmetic operations require matching currencies.
//
// Float conversion is only offered at the edges, for systems that cannot
// take a decimal, and reports whether it lost precision.
package money

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a specific currency.
type Money struct {
	amount   decimal.Decimal
	currency Code
}

// New creates a new Money value object with the given amount and currency.
//
// Returns Money or an error if the currency is not a valid ISO 4217 code.
func New(amount decimal.Decimal, currency Code) (*Money, error) {
	code, err := ParseCode(string(currency))
	if err != nil {
		return nil, err
	}
	return &Money{amount: amount, currency: code}, nil
}

// NewFromString parses amount as a decimal string (e.g. "150.75").
func NewFromString(amount string, currency Code) (*Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidAmount, amount, err)
	}
	return New(d, currency)
}

// Must creates a Money object from the given amount and currency.
//
// Panics if the currency is invalid.
func Must(amount decimal.Decimal, currency Code) *Money {
	m, err := New(amount, currency)
	if err != nil {
		panic(fmt.Sprintf("money.Must(%v, %v): %v", amount, currency, err))
	}
	return m
}

// Zero creates a Money object with zero amount in the specified currency.
func Zero(currency Code) *Money {
	return &Money{amount: decimal.Zero, currency: currency}
}

// Amount returns the decimal amount in the main currency unit.
func (m *Money) Amount() decimal.Decimal {
	return m.amount
}

// CurrencyCode returns the currency code of the Money object.
func (m *Money) CurrencyCode() Code {
	return m.currency
}

// Decimal magnitudes (exponent of the leading digit plus one) outside
// float64 range. Values past maxFloatMagnitude are at least 1e309; values
// below minFloatMagnitude are smaller than the smallest subnormal.
const (
	maxFloatMagnitude = 309
	minFloatMagnitude = -324
)

// plainExponentLimit bounds the exponents FormatAmount renders in plain form.
const plainExponentLimit = 32

// FormatAmount renders d for logs and error messages. Amounts with a large
// exponent are written as <coefficient>e<exponent> instead of being expanded.
func FormatAmount(d decimal.Decimal) string {
	if exp := d.Exponent(); exp > plainExponentLimit || exp < -plainExponentLimit {
		return fmt.Sprintf("%se%d", d.Coefficient().String(), exp)
	}
	return d.String()
}

// Float64 converts the amount to a float64.
// exact reports whether the float is exactly equal to the decimal amount.
// Amounts beyond the float64 range return ErrAmountOverflow. Amounts too
// small for a subnormal convert to a lossy 0.
func (m *Money) Float64() (f float64, exact bool, err error) {
	if m.amount.IsZero() {
		return 0, true, nil
	}
	magnitude := int64(m.amount.Exponent()) + int64(m.amount.NumDigits())
	if magnitude > maxFloatMagnitude {
		return 0, false, fmt.Errorf("%w: %s", ErrAmountOverflow, FormatAmount(m.amount))
	}
	if magnitude < minFloatMagnitude {
		return 0, false, nil
	}

	f, exact = m.amount.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false, fmt.Errorf("%w: %s", ErrAmountOverflow, FormatAmount(m.amount))
	}
	return f, exact, nil
}

// StrictFloat64 is Float64 that refuses lossy conversions.
func (m *Money) StrictFloat64() (float64, error) {
	f, exact, err := m.Float64()
	if err != nil {
		return 0, err
	}
	if !exact {
		return 0, fmt.Errorf("%w: %s", ErrPrecisionLoss, FormatAmount(m.amount))
	}
	return f, nil
}

// Add returns a new Money object with the sum of amounts.
// Invariants enforced:
//   - Currencies must match.
func (m *Money) Add(other *Money) (*Money, error) {
	if m.currency != other.currency {
		return nil, fmt.Errorf("%w: cannot add %s and %s", ErrMismatchedCurrencies, m.currency, other.currency)
	}
	return &Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Equals checks if the current Money object is equal to another Money object.
func (m *Money) Equals(other *Money) bool {
	if m == nil || other == nil {
		return false
	}
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// IsNegative returns true if the Money is not nil and its amount is less than zero.
func (m *Money) IsNegative() bool {
	return m != nil && m.amount.IsNegative()
}

// IsZero returns true if the Money is nil or its amount is zero.
func (m *Money) IsZero() bool {
	return m == nil || m.amount.IsZero()
}

// String returns the amount rounded to the currency's minor unit followed by the code.
func (m *Money) String() string {
	if exp := m.amount.Exponent(); exp > plainExponentLimit || exp < -plainExponentLimit {
		return fmt.Sprintf("%s %s", FormatAmount(m.amount), m.currency)
	}
	return fmt.Sprintf("%s %s", m.amount.StringFixed(int32(m.currency.Decimals())), m.currency)
}
