package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/amirasaad/legacypay/infra/initializer"
	"github.com/amirasaad/legacypay/pkg/app"
	"github.com/amirasaad/legacypay/pkg/config"
	log "github.com/charmbracelet/log"
)

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, stdout, stderr io.Writer) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg, stdout, stderr)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	a, err := app.New(deps, cfg)
	if err != nil {
		return fmt.Errorf("failed to create app: %w", err)
	}

	session, err := a.Run(ctx)
	if err != nil {
		return fmt.Errorf("checkout %s: %w", session.ID, err)
	}
	deps.Logger.Debug("Session finished", "session_id", session.ID.String(), "status", string(session.Status))
	return nil
}
