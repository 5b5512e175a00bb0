package initializer

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/legacypay/infra/provider/legacypayment"
	"github.com/amirasaad/legacypay/infra/provider/mockpayment"
	"github.com/amirasaad/legacypay/pkg/app"
	"github.com/amirasaad/legacypay/pkg/config"
	"github.com/amirasaad/legacypay/pkg/decorator"
	"github.com/amirasaad/legacypay/pkg/legacy"
	"github.com/amirasaad/legacypay/pkg/provider/payment"
)

// ErrUnknownProvider is returned for an unsupported PAYMENT_PROVIDER value.
var ErrUnknownProvider = errors.New("unknown payment provider")

type processorFactory func(cfg *config.App, out io.Writer, logger *slog.Logger) (payment.Processor, error)

var processorFactories = map[string]processorFactory{
	"legacy": newLegacyProcessor,
	"mock": func(*config.App, io.Writer, *slog.Logger) (payment.Processor, error) {
		return mockpayment.NewProcessor(), nil
	},
}

// InitializeDependencies initializes all the application dependencies.
// Checkout output goes to out (stdout when nil) and logs to logOut (stderr when nil).
func InitializeDependencies(cfg *config.App, out, logOut io.Writer) (*app.Deps, error) {
	if out == nil {
		out = os.Stdout
	}
	logger := setupLogger(cfg.Log, logOut)

	factory, ok := processorFactories[cfg.Payment.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Payment.Provider)
	}
	processor, err := factory(cfg, out, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize payment processor: %w", err)
	}
	logger.Debug("Payment processor initialized", "provider", cfg.Payment.Provider)

	return &app.Deps{
		Processor: decorator.NewLoggingProcessor(processor, cfg.Payment.Provider, logger),
		Output:    out,
		Logger:    logger,
	}, nil
}

func newLegacyProcessor(cfg *config.App, out io.Writer, logger *slog.Logger) (payment.Processor, error) {
	opts := []legacypayment.Option{legacypayment.WithLogger(logger)}
	if lp := cfg.Payment.Legacy; lp != nil {
		opts = append(opts, legacypayment.WithCurrency(lp.Currency))
		if lp.StrictPrecision {
			opts = append(opts, legacypayment.WithStrictPrecision())
		}
	}
	adapter, err := legacypayment.NewAdapter(legacy.NewPaymentSystem(out), opts...)
	if err != nil {
		return nil, err
	}
	return adapter, nil
}
