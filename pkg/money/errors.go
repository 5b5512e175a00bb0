package money

import "errors"

// Common money package errors
var (
	// ErrInvalidAmount is returned when an amount cannot be parsed.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidCurrency is returned for unknown or malformed currency codes.
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrMismatchedCurrencies is returned when performing operations on money with
	// different currencies
	ErrMismatchedCurrencies = errors.New("mismatched currencies")

	// ErrAmountOverflow is returned when an amount does not fit in a float64.
	ErrAmountOverflow = errors.New("amount exceeds float64 range")

	// ErrPrecisionLoss is returned by strict conversions when the float64
	// value is not exactly equal to the decimal amount.
	ErrPrecisionLoss = errors.New("amount cannot be represented exactly as float64")
)
