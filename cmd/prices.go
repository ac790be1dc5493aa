package cmd

import (
	"context"
	"fmt"
	"time"

	"mtg-collector/core/config"
	"mtg-collector/core/database"
	"mtg-collector/core/logger"
	"mtg-collector/core/scryfall"
	"mtg-collector/feature/collection"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	priceVariant     string
	priceMinInterval time.Duration
	priceDryRun      bool
)

// pricesCmd refreshes the stored price of every copy in the collection.
var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Refresh stored prices from Scryfall",
	Long: `Prices walks the whole collection in insertion order and re-fetches each
copy's price, rate limited to stay inside Scryfall's request guidance
(50-100ms between calls).

Examples:
  mtg-collector prices
  mtg-collector prices --variant usd_foil --min-interval 100ms
  mtg-collector prices --dry-run`,
	RunE: runPrices,
}

func init() {
	pricesCmd.Flags().StringVar(&priceVariant, "variant", scryfall.VariantUSD, "Price variant to refresh (usd | usd_foil | usd_etched)")
	pricesCmd.Flags().DurationVar(&priceMinInterval, "min-interval", 80*time.Millisecond, "Minimum interval between API calls")
	pricesCmd.Flags().BoolVar(&priceDryRun, "dry-run", false, "Report changes without writing them")

	RootCmd.AddCommand(pricesCmd)
}

func runPrices(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	switch priceVariant {
	case scryfall.VariantUSD, scryfall.VariantUSDFoil, scryfall.VariantUSDEtched:
	default:
		return fmt.Errorf("invalid price variant %q (expected usd, usd_foil or usd_etched)", priceVariant)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	store := collection.NewStore(db)
	if err := store.Migrate(); err != nil {
		return err
	}

	refresher := collection.NewRefresher(
		store,
		scryfall.NewClient(cfg.Scryfall),
		scryfall.NewRateLimiter(priceMinInterval),
		priceVariant,
		priceDryRun,
		l,
	)

	l.Info("Refreshing prices", zap.String("variant", priceVariant), zap.Bool("dry_run", priceDryRun))

	report, err := refresher.Run(ctx)
	if err != nil {
		return err
	}

	l.Info("Price refresh finished",
		zap.Int("total", report.Total),
		zap.Int("updated", report.Updated),
		zap.Int("cleared", report.Cleared),
		zap.Int("unchanged", report.Unchanged),
		zap.Int("failed", report.Failed),
	)
	return nil
}
