package config

import (
	"github.com/amirasaad/legacypay/pkg/money"
	"github.com/shopspring/decimal"
)

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[legacypay]"`
}

type LegacyPayment struct {
	Currency        money.Code `envconfig:"CURRENCY" default:"USD"`
	StrictPrecision bool       `envconfig:"STRICT_PRECISION" default:"false"`
}

type Payment struct {
	Provider string         `envconfig:"PROVIDER" default:"legacy"`
	Legacy   *LegacyPayment `envconfig:"LEGACY"`
}

type Checkout struct {
	Amount decimal.Decimal `envconfig:"AMOUNT" default:"150.75"`
}

type App struct {
	Env      string    `envconfig:"APP_ENV" default:"development"`
	Log      *Log      `envconfig:"LOG"`
	Payment  *Payment  `envconfig:"PAYMENT"`
	Checkout *Checkout `envconfig:"CHECKOUT"`
}
