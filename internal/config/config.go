package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all kiosk configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Env string

	Catalog    CatalogConfig
	Membership MembershipConfig
}

// CatalogConfig points at the product and promotion catalog files.
type CatalogConfig struct {
	ProductsFile   string
	PromotionsFile string
}

// MembershipConfig controls the membership discount applied to the
// non-promotional part of a purchase.
type MembershipConfig struct {
	RatePercent int
	MaxDiscount int
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it is loaded first. It returns a populated Config
// or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if the file is missing so that
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Env = getEnv("ENV", "development")

	cfg.Catalog = CatalogConfig{
		ProductsFile:   getEnv("PRODUCTS_FILE", "data/products.csv"),
		PromotionsFile: getEnv("PROMOTIONS_FILE", "data/promotions.yaml"),
	}

	cfg.Membership = MembershipConfig{
		RatePercent: getEnvInt("MEMBERSHIP_RATE_PERCENT", 30),
		MaxDiscount: getEnvInt("MEMBERSHIP_DISCOUNT_MAX", 8000),
	}

	if cfg.Membership.RatePercent < 0 || cfg.Membership.RatePercent > 100 {
		return nil, fmt.Errorf("invalid MEMBERSHIP_RATE_PERCENT: must be between 0 and 100, got %d", cfg.Membership.RatePercent)
	}
	if cfg.Membership.MaxDiscount < 0 {
		return nil, fmt.Errorf("invalid MEMBERSHIP_DISCOUNT_MAX: must be >= 0, got %d", cfg.Membership.MaxDiscount)
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the value of an environment variable as an integer or a
// default if empty/invalid.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
