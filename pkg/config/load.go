package config

import (
	"fmt"
	"log/slog"

	"github.com/amirasaad/legacypay/pkg/money"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Debug("Loading environment variables")

	// If no specific paths provided, try default .env
	if len(envFilePath) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Debug("No .env file found in current directory")
		}
		return loadFromEnv()
	}

	// Try each provided path until we find a valid one
	for _, path := range envFilePath {
		foundPath, err := FindEnvFile(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		logger.Debug("Loading environment from file", "path", foundPath)
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}

		return loadFromEnv()
	}

	logger.Debug("No valid environment files found, using process environment")
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if cfg.Env == "" {
		cfg.Env = "development"
	}

	code, err := money.ParseCode(string(cfg.Payment.Legacy.Currency))
	if err != nil {
		return nil, fmt.Errorf("PAYMENT_LEGACY_CURRENCY: %w", err)
	}
	cfg.Payment.Legacy.Currency = code

	slog.Default().Debug("App config loaded",
		"env", cfg.Env,
		"payment_provider", cfg.Payment.Provider,
		"legacy_currency", cfg.Payment.Legacy.Currency.String(),
		"legacy_strict_precision", cfg.Payment.Legacy.StrictPrecision,
		"checkout_amount", money.FormatAmount(cfg.Checkout.Amount),
	)
	return &cfg, nil
}
