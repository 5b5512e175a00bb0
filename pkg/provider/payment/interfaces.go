// Package payment declares the payment processing abstraction that checkout
// code programs against. Concrete processors live under infra/provider.
package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// Processor processes a monetary amount.
//
// Implementations decide how and whether a call can fail; callers must not
// assume anything beyond "the payment was processed" when nil is returned.
type Processor interface {
	ProcessPayment(ctx context.Context, amount decimal.Decimal) error
}

// ProcessorFunc allows an ordinary function to be used as a Processor.
type ProcessorFunc func(ctx context.Context, amount decimal.Decimal) error

// ProcessPayment calls f(ctx, amount).
func (f ProcessorFunc) ProcessPayment(ctx context.Context, amount decimal.Decimal) error {
	return f(ctx, amount)
}
