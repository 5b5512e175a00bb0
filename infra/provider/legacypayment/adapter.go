// Package legacypayment adapts the legacy payment system to payment.Processor.
package legacypayment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/legacypay/pkg/legacy"
	"github.com/amirasaad/legacypay/pkg/money"
	"github.com/amirasaad/legacypay/pkg/provider/payment"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency every payment is sent to the legacy system in
// unless WithCurrency says otherwise.
const DefaultCurrency = money.DefaultCode

// ErrNilLegacySystem is returned by NewAdapter when no legacy system is given.
var ErrNilLegacySystem = errors.New("legacy payment adapter: legacy system dependency is required")

// Option modifies adapter behaviour.
type Option func(*Adapter)

// WithCurrency overrides the currency code passed to the legacy system.
// Invalid codes are ignored; use money.ParseCode beforehand to surface them.
func WithCurrency(code money.Code) Option {
	return func(a *Adapter) {
		if code.IsValid() {
			a.currency = code
		}
	}
}

// WithStrictPrecision makes ProcessPayment reject amounts that do not
// convert to float64 exactly.
func WithStrictPrecision() Option {
	return func(a *Adapter) {
		a.strict = true
	}
}

// WithLogger sets the adapter logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// Adapter implements payment.Processor on top of a legacy.Transactor.
type Adapter struct {
	legacy   legacy.Transactor
	currency money.Code
	strict   bool
	logger   *slog.Logger
}

var _ payment.Processor = (*Adapter)(nil)

// NewAdapter wraps the legacy system.
func NewAdapter(sys legacy.Transactor, opts ...Option) (*Adapter, error) {
	if sys == nil {
		return nil, ErrNilLegacySystem
	}
	a := &Adapter{
		legacy:   sys,
		currency: DefaultCurrency,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a, nil
}

// Currency returns the code sent with every legacy transaction.
func (a *Adapter) Currency() money.Code {
	return a.currency
}

// ProcessPayment converts amount to the legacy (currency, float64) pair and
// makes exactly one legacy transaction. Nothing is sent when the amount
// overflows float64, or, in strict mode, when the conversion is lossy.
func (a *Adapter) ProcessPayment(ctx context.Context, amount decimal.Decimal) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := money.New(amount, a.currency)
	if err != nil {
		return fmt.Errorf("legacy payment adapter: %w", err)
	}

	var value float64
	if a.strict {
		value, err = m.StrictFloat64()
	} else {
		var exact bool
		value, exact, err = m.Float64()
		if err == nil && !exact {
			a.logger.Debug("Amount converted with precision loss", "amount", money.FormatAmount(amount), "converted", value)
		}
	}
	if err != nil {
		a.logger.Debug("Amount cannot be sent to legacy system", "amount", money.FormatAmount(amount), "error", err)
		return fmt.Errorf("legacy payment adapter: %w", err)
	}

	a.logger.Debug("Delegating to legacy payment system", "currency", a.currency.String(), "value", value)
	a.legacy.MakeTransaction(a.currency.String(), value)
	return nil
}
