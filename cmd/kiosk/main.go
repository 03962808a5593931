package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wvmart/kiosk/internal/config"
	"github.com/wvmart/kiosk/internal/handler"
	"github.com/wvmart/kiosk/internal/repository"
	"github.com/wvmart/kiosk/internal/service"
)

// main is the application entrypoint for the store checkout kiosk.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting checkout kiosk")

	// 3. Load catalog
	repo := repository.NewCatalogRepository(cfg.Catalog.ProductsFile, cfg.Catalog.PromotionsFile)
	if err := repo.Load(); err != nil {
		log.Error().Err(err).Msg("catalog load failed")
		fmt.Fprintf(os.Stderr, "catalog load failed: %v\n", err)
		os.Exit(1)
	}

	// 4. Initialize services
	resolver := service.NewPromotionResolver(repo.Promotions(), nil)
	receipts := service.NewReceiptBuilder(cfg.Membership)
	checkout := service.NewCheckoutService(repo, resolver, receipts)

	// 5. Run the interactive console
	console := handler.NewConsole(checkout, repo, os.Stdin, os.Stdout)
	if err := console.Run(); err != nil && !errors.Is(err, io.EOF) {
		log.Fatal().Err(err).Msg("kiosk session aborted")
	}
	log.Info().Msg("kiosk stopped")
}

// setupLogger configures the global logger. Log output goes to stderr so it
// never interleaves with the customer-facing prompts on stdout.
func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
