// Package decorator provides decorators for cross-cutting concerns around
// payment processing: structured logging of each call and panic recovery.
package decorator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/legacypay/pkg/money"
	"github.com/amirasaad/legacypay/pkg/provider/payment"
	"github.com/shopspring/decimal"
)

// ErrProcessorPanic is returned when the wrapped processor panics.
var ErrProcessorPanic = errors.New("payment processor panicked")

// LoggingProcessor wraps a payment.Processor so every call is logged with its
// amount, outcome and duration. A panic inside the wrapped processor is
// recovered, logged and returned as ErrProcessorPanic.
//
// Example:
//
//	adapter, _ := legacypayment.NewAdapter(legacy.NewPaymentSystem(nil))
//	processor := decorator.NewLoggingProcessor(adapter, "legacy", logger)
//	cart, _ := checkout.NewCart(processor)
type LoggingProcessor struct {
	next   payment.Processor
	name   string
	logger *slog.Logger
}

var _ payment.Processor = (*LoggingProcessor)(nil)

// NewLoggingProcessor decorates next. name identifies the processor in logs.
func NewLoggingProcessor(next payment.Processor, name string, logger *slog.Logger) *LoggingProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingProcessor{next: next, name: name, logger: logger}
}

// Unwrap returns the decorated processor.
func (p *LoggingProcessor) Unwrap() payment.Processor {
	return p.next
}

// ProcessPayment delegates to the wrapped processor exactly once.
func (p *LoggingProcessor) ProcessPayment(ctx context.Context, amount decimal.Decimal) (err error) {
	logger := p.logger.With("provider", p.name, "amount", money.FormatAmount(amount))
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Payment processor panicked", "panic", r)
			err = fmt.Errorf("%w: %s: %v", ErrProcessorPanic, p.name, r)
		}
	}()

	logger.Debug("Processing payment")
	if err = p.next.ProcessPayment(ctx, amount); err != nil {
		logger.Warn("Payment processing failed", "error", err, "duration", time.Since(start))
		return err
	}
	logger.Debug("Payment processed", "duration", time.Since(start))
	return nil
}
