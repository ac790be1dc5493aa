package cmd

import (
	"context"
	"fmt"

	"mtg-collector/core/config"
	"mtg-collector/core/database"
	"mtg-collector/core/logger"
	"mtg-collector/feature/collection"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// removeCmd records disposals: per CSV row it deletes up to quantity matching
// copies, oldest first.
var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove CSV rows from the collection (oldest copies first)",
	Long: `Remove reads an inventory CSV and deletes up to quantity matching copies
per row, lowest store id (oldest insertion) first. Fewer matches than
requested is reported as a shortfall, not an error.

An absent or empty language column matches only copies stored without a
language; it is not a wildcard.

Examples:
  mtg-collector remove --local-csv /tmp/sold.csv
  mtg-collector remove --bucket inventory --prefix exports/`,
	RunE: runRemove,
}

func init() {
	registerSourceFlags(removeCmd)
	registerColumnFlags(removeCmd)

	RootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
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

	name, rc, err := openSource(ctx, cfg, l)
	if err != nil {
		return fmt.Errorf("failed to resolve csv source: %w", err)
	}
	defer rc.Close()
	l.Info("Reading inventory csv", zap.String("source", name))

	reader, err := collection.NewReader(rc)
	if err != nil {
		return err
	}

	mapping, err := collection.ResolveColumns(reader.Header(), columnOverrides())
	if err != nil {
		return err
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

	remover := collection.NewRemover(store, l)

	report, runErr := remover.Run(ctx, reader, mapping)
	printRunReport(l, report)
	if runErr != nil {
		return runErr
	}
	return nil
}
