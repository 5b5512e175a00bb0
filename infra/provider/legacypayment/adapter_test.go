package legacypayment_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/amirasaad/legacypay/infra/provider/legacypayment"
	"github.com/amirasaad/legacypay/pkg/legacy"
	"github.com/amirasaad/legacypay/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTransactor struct {
	mock.Mock
}

func (m *mockTransactor) MakeTransaction(currency string, value float64) {
	m.Called(currency, value)
}

func TestNewAdapter_RequiresLegacySystem(t *testing.T) {
	a, err := legacypayment.NewAdapter(nil)
	require.ErrorIs(t, err, legacypayment.ErrNilLegacySystem)
	assert.Nil(t, a)
}

func TestAdapter_DelegatesWithUSD(t *testing.T) {
	tests := []struct {
		amount string
		want   float64
	}{
		{"0", 0},
		{"1", 1},
		{"100", 100},
		{"150.75", 150.75},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			tr := &mockTransactor{}
			tr.On("MakeTransaction", "USD", tt.want).Return().Once()

			a, err := legacypayment.NewAdapter(tr)
			require.NoError(t, err)

			err = a.ProcessPayment(context.Background(), decimal.RequireFromString(tt.amount))
			require.NoError(t, err)
			tr.AssertExpectations(t)
			tr.AssertNumberOfCalls(t, "MakeTransaction", 1)
		})
	}
}

func TestAdapter_LenientPrecisionLoss(t *testing.T) {
	tr := &mockTransactor{}
	tr.On("MakeTransaction", "USD", mock.AnythingOfType("float64")).Return().Once()

	a, err := legacypayment.NewAdapter(tr)
	require.NoError(t, err)

	require.NoError(t, a.ProcessPayment(context.Background(), decimal.RequireFromString("0.1")))
	tr.AssertExpectations(t)

	value := tr.Calls[0].Arguments.Get(1).(float64)
	assert.InDelta(t, 0.1, value, 1e-12)
}

func TestAdapter_StrictPrecisionRejects(t *testing.T) {
	tr := &mockTransactor{}

	a, err := legacypayment.NewAdapter(tr, legacypayment.WithStrictPrecision())
	require.NoError(t, err)

	err = a.ProcessPayment(context.Background(), decimal.RequireFromString("0.1"))
	require.ErrorIs(t, err, money.ErrPrecisionLoss)
	tr.AssertNotCalled(t, "MakeTransaction", mock.Anything, mock.Anything)
}

func TestAdapter_StrictPrecisionAcceptsExact(t *testing.T) {
	tr := &mockTransactor{}
	tr.On("MakeTransaction", "USD", 150.75).Return().Once()

	a, err := legacypayment.NewAdapter(tr, legacypayment.WithStrictPrecision())
	require.NoError(t, err)

	require.NoError(t, a.ProcessPayment(context.Background(), decimal.RequireFromString("150.75")))
	tr.AssertExpectations(t)
}

func TestAdapter_Overflow(t *testing.T) {
	tr := &mockTransactor{}

	a, err := legacypayment.NewAdapter(tr)
	require.NoError(t, err)

	err = a.ProcessPayment(context.Background(), decimal.RequireFromString("1e400"))
	require.ErrorIs(t, err, money.ErrAmountOverflow)
	tr.AssertNotCalled(t, "MakeTransaction", mock.Anything, mock.Anything)
}

func TestAdapter_ExtremeExponents(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		strict  bool
		wantErr error
		want    float64
	}{
		{name: "huge exponent overflows", amount: "1e20000000", wantErr: money.ErrAmountOverflow},
		{name: "huge negative overflows", amount: "-7e20000000", wantErr: money.ErrAmountOverflow},
		{name: "just past float range", amount: "1e309", wantErr: money.ErrAmountOverflow},
		{name: "tiny exponent rounds to zero", amount: "1e-20000000", want: 0},
		{name: "tiny exponent rejected when strict", amount: "1e-20000000", strict: true, wantErr: money.ErrPrecisionLoss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &mockTransactor{}
			if tt.wantErr == nil {
				tr.On("MakeTransaction", "USD", tt.want).Return().Once()
			}

			var opts []legacypayment.Option
			if tt.strict {
				opts = append(opts, legacypayment.WithStrictPrecision())
			}
			a, err := legacypayment.NewAdapter(tr, opts...)
			require.NoError(t, err)

			err = a.ProcessPayment(context.Background(), decimal.RequireFromString(tt.amount))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Less(t, len(err.Error()), 200)
				tr.AssertNotCalled(t, "MakeTransaction", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			tr.AssertExpectations(t)
		})
	}
}

func TestAdapter_RejectionLoggedAtDebug(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	a, err := legacypayment.NewAdapter(&mockTransactor{}, legacypayment.WithLogger(logger))
	require.NoError(t, err)

	err = a.ProcessPayment(context.Background(), decimal.RequireFromString("1e20000000"))
	require.ErrorIs(t, err, money.ErrAmountOverflow)

	assert.Contains(t, logs.String(), "level=DEBUG")
	assert.Contains(t, logs.String(), "amount=1e20000000")
	assert.NotContains(t, logs.String(), "level=ERROR")
	assert.NotContains(t, logs.String(), "level=WARN")
}

func TestAdapter_CancelledContext(t *testing.T) {
	tr := &mockTransactor{}

	a, err := legacypayment.NewAdapter(tr)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = a.ProcessPayment(ctx, decimal.NewFromInt(1))
	require.ErrorIs(t, err, context.Canceled)
	tr.AssertNotCalled(t, "MakeTransaction", mock.Anything, mock.Anything)
}

func TestAdapter_WithCurrency(t *testing.T) {
	tr := &mockTransactor{}
	tr.On("MakeTransaction", "EUR", 10.0).Return().Once()

	a, err := legacypayment.NewAdapter(tr, legacypayment.WithCurrency(money.EUR))
	require.NoError(t, err)
	assert.Equal(t, money.EUR, a.Currency())

	require.NoError(t, a.ProcessPayment(context.Background(), decimal.NewFromInt(10)))
	tr.AssertExpectations(t)
}

func TestDefaultCurrency(t *testing.T) {
	assert.Equal(t, money.DefaultCode, legacypayment.DefaultCurrency)
	assert.Equal(t, "USD", legacypayment.DefaultCurrency.String())
}

func TestAdapter_WithInvalidCurrencyKeepsDefault(t *testing.T) {
	a, err := legacypayment.NewAdapter(&mockTransactor{}, legacypayment.WithCurrency("nope"))
	require.NoError(t, err)
	assert.Equal(t, legacypayment.DefaultCurrency, a.Currency())
}

func TestAdapter_WithRealLegacySystem(t *testing.T) {
	var buf bytes.Buffer
	a, err := legacypayment.NewAdapter(legacy.NewPaymentSystem(&buf))
	require.NoError(t, err)

	require.NoError(t, a.ProcessPayment(context.Background(), decimal.RequireFromString("150.75")))
	assert.Equal(t, "Обработан платеж: USD 150.75\n", buf.String())
}
