package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/amirasaad/legacypay/pkg/checkout"
	"github.com/amirasaad/legacypay/pkg/config"
	"github.com/amirasaad/legacypay/pkg/provider/payment"
)

// Deps contains the infrastructure the application is assembled from.
type Deps struct {
	Processor payment.Processor
	Output    io.Writer
	Logger    *slog.Logger
}

type App struct {
	Deps   *Deps
	Config *config.App
	Cart   *checkout.Cart
}

func New(deps *Deps, cfg *config.App) (*App, error) {
	cart, err := checkout.NewCart(
		deps.Processor,
		checkout.WithOutput(deps.Output),
		checkout.WithLogger(deps.Logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	return &App{
		Deps:   deps,
		Config: cfg,
		Cart:   cart,
	}, nil
}

// Run checks out the configured amount once.
func (a *App) Run(ctx context.Context) (*checkout.Session, error) {
	return a.Cart.Checkout(ctx, a.Config.Checkout.Amount)
}
