package money

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
)

// Code represents a currency code (e.g., "USD", "EUR").
type Code string

// Common currency codes
const (
	USD Code = "USD" // US Dollar
	EUR Code = "EUR" // Euro
	JPY Code = "JPY" // Japanese Yen
	KWD Code = "KWD" // Kuwaiti Dinar
	GBP Code = "GBP" // British Pound
)

// DefaultCode is the default currency code (USD)
const DefaultCode = USD

// ParseCode normalizes s and checks it against the ISO 4217 table.
func ParseCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 3 {
		return "", fmt.Errorf("%w: invalid currency code length: %q", ErrInvalidCurrency, s)
	}
	if _, err := currency.ParseISO(s); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidCurrency, s)
	}
	return Code(s), nil
}

// IsValid checks if the currency code is a known ISO 4217 code.
func (c Code) IsValid() bool {
	if len(c) != 3 {
		return false
	}
	_, err := currency.ParseISO(string(c))
	return err == nil
}

// Decimals returns the number of minor-unit digits for the code.
// Unknown codes default to 2.
func (c Code) Decimals() int {
	unit, err := currency.ParseISO(string(c))
	if err != nil {
		return 2
	}
	scale, _ := currency.Standard.Rounding(unit)
	return scale
}

// String returns the string representation of the currency code.
func (c Code) String() string {
	return string(c)
}
