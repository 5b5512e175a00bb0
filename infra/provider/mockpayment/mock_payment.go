package mockpayment

import (
	"context"
	"sync"
	"time"

	"github.com/amirasaad/legacypay/pkg/provider/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Processor simulates a payment processor for tests and local development.
//
// Usage:
// - ProcessPayment records every amount it receives and completes immediately.
// - FailWith makes subsequent calls record a failed payment and return the error.
// - Payments returns a snapshot of what was recorded.
//
// This is NOT for production use; it never moves money.
type Processor struct {
	mu       sync.Mutex
	payments []payment.Record
	failErr  error
	now      func() time.Time
}

// NewProcessor creates a new instance of Processor.
func NewProcessor() *Processor {
	return &Processor{now: time.Now}
}

// FailWith makes every following ProcessPayment call fail with err.
// Passing nil restores success.
func (p *Processor) FailWith(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failErr = err
}

// ProcessPayment simulates processing a payment.
func (p *Processor) ProcessPayment(ctx context.Context, amount decimal.Decimal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	rec := payment.Record{
		ID:          uuid.New(),
		Amount:      amount,
		Status:      payment.PaymentCompleted,
		ProcessedAt: p.now().UTC(),
	}
	if p.failErr != nil {
		rec.Status = payment.PaymentFailed
	}
	p.payments = append(p.payments, rec)
	return p.failErr
}

// Payments returns a copy of the recorded payments in call order.
func (p *Processor) Payments() []payment.Record {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]payment.Record, len(p.payments))
	copy(out, p.payments)
	return out
}

// Count returns the number of ProcessPayment calls seen.
func (p *Processor) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.payments)
}
