// Package checkout drives a payment through any payment.Processor.
//
// The cart only knows the payment.Processor abstraction; which system ends
// up moving the money is decided by whoever constructs it.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/amirasaad/legacypay/pkg/money"
	"github.com/amirasaad/legacypay/pkg/provider/payment"
	"github.com/shopspring/decimal"
)

// Notification lines written around the payment.
const (
	MsgCheckoutStarted   = "Начинаем оформление заказа..."
	MsgCheckoutCompleted = "Заказ оформлен."
)

var (
	// ErrNilProcessor is returned by NewCart when no processor is given.
	ErrNilProcessor = errors.New("checkout: payment processor dependency is required")
	// ErrPaymentFailed wraps any error returned by the processor.
	ErrPaymentFailed = errors.New("checkout: payment failed")
)

// CartOption modifies cart behaviour.
type CartOption func(*Cart)

// WithOutput sets where notifications are written. Defaults to stdout.
func WithOutput(w io.Writer) CartOption {
	return func(c *Cart) {
		if w != nil {
			c.out = w
		}
	}
}

// WithLogger sets the cart logger.
func WithLogger(logger *slog.Logger) CartOption {
	return func(c *Cart) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Cart is the checkout client.
type Cart struct {
	processor payment.Processor
	out       io.Writer
	logger    *slog.Logger
	now       func() time.Time
}

// NewCart creates a cart that pays through processor.
func NewCart(processor payment.Processor, opts ...CartOption) (*Cart, error) {
	if processor == nil {
		return nil, ErrNilProcessor
	}
	c := &Cart{
		processor: processor,
		out:       os.Stdout,
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// Checkout announces the checkout, processes totalAmount exactly once and
// announces completion. When the processor fails the completion line is not
// written and the returned session is marked failed.
func (c *Cart) Checkout(ctx context.Context, totalAmount decimal.Decimal) (*Session, error) {
	session := newSession(totalAmount, c.now())
	logger := c.logger.With("session_id", session.ID.String(), "amount", money.FormatAmount(totalAmount))
	logger.Info("Checkout started")

	c.notify(MsgCheckoutStarted)

	if err := c.processor.ProcessPayment(ctx, totalAmount); err != nil {
		session.fail()
		logger.Error("Payment failed", "error", err)
		return session, fmt.Errorf("%w: %w", ErrPaymentFailed, err)
	}

	c.notify(MsgCheckoutCompleted)
	session.complete(c.now())
	logger.Info("Checkout completed", "status", string(session.Status))
	return session, nil
}

func (c *Cart) notify(line string) {
	if _, err := fmt.Fprintln(c.out, line); err != nil {
		c.logger.Warn("Failed to write checkout notification", "error", err)
	}
}
