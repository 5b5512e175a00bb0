package checkout

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a checkout session.
type Status string

const (
	// StatusCreated means the checkout has started and no payment has settled.
	StatusCreated Status = "created"
	// StatusCompleted means the payment was processed and completion announced.
	StatusCompleted Status = "completed"
	// StatusFailed means the processor returned an error.
	StatusFailed Status = "failed"
)

// Session represents a single checkout with its metadata.
// It lives only for the duration of the process.
type Session struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	CompletedAt time.Time       `json:"completed_at,omitempty"`
}

func newSession(amount decimal.Decimal, now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		Amount:    amount,
		Status:    StatusCreated,
		CreatedAt: now.UTC(),
	}
}

func (s *Session) complete(now time.Time) {
	s.Status = StatusCompleted
	s.CompletedAt = now.UTC()
}

func (s *Session) fail() {
	s.Status = StatusFailed
}
