// Package legacy holds the pre-existing payment system. Its API predates the
// payment.Processor abstraction and takes a currency code plus a float
// value; new code reaches it only through an adapter.
package legacy

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// Transactor is the shape of the legacy payment API.
type Transactor interface {
	MakeTransaction(currency string, value float64)
}

// PaymentSystem is the legacy transaction executor. It has no state and
// reports every transaction as a single line on its writer.
type PaymentSystem struct {
	out io.Writer
}

// NewPaymentSystem creates a PaymentSystem writing to w, or to stdout when w is nil.
func NewPaymentSystem(w io.Writer) *PaymentSystem {
	if w == nil {
		w = os.Stdout
	}
	return &PaymentSystem{out: w}
}

// MakeTransaction executes a transaction of value in currency.
func (s *PaymentSystem) MakeTransaction(currency string, value float64) {
	_, _ = fmt.Fprintf(s.out, "Обработан платеж: %s %s\n", currency, FormatValue(value))
}

// FormatValue renders value with the fewest digits that round-trip,
// without exponent notation (150.75, 100, 0).
func FormatValue(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
