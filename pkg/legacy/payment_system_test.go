package legacy_test

import (
	"bytes"
	"testing"

	"github.com/amirasaad/legacypay/pkg/legacy"
	"github.com/stretchr/testify/assert"
)

func TestPaymentSystem_MakeTransaction(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		value    float64
		want     string
	}{
		{"fractional", "USD", 150.75, "Обработан платеж: USD 150.75\n"},
		{"whole", "USD", 100, "Обработан платеж: USD 100\n"},
		{"zero", "EUR", 0, "Обработан платеж: EUR 0\n"},
		{"large without exponent", "USD", 1234567.5, "Обработан платеж: USD 1234567.5\n"},
		{"negative", "USD", -3.25, "Обработан платеж: USD -3.25\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			legacy.NewPaymentSystem(&buf).MakeTransaction(tt.currency, tt.value)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPaymentSystem_OneLinePerTransaction(t *testing.T) {
	var buf bytes.Buffer
	sys := legacy.NewPaymentSystem(&buf)
	sys.MakeTransaction("USD", 1)
	sys.MakeTransaction("USD", 2)
	assert.Equal(t, "Обработан платеж: USD 1\nОбработан платеж: USD 2\n", buf.String())
}

func TestNewPaymentSystem_NilWriter(t *testing.T) {
	assert.NotNil(t, legacy.NewPaymentSystem(nil))
}
