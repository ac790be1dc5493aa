package cmd

import (
	"context"
	"fmt"

	"mtg-collector/core/config"
	"mtg-collector/core/database"
	"mtg-collector/core/logger"
	"mtg-collector/core/scryfall"
	"mtg-collector/feature/collection"
	"mtg-collector/feature/collection/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var appendLocation string

// appendCmd records new acquisitions: one store row per physical copy.
var appendCmd = &cobra.Command{
	Use:   "append",
	Short: "Append CSV rows to the collection (one row per copy)",
	Long: `Append reads an inventory CSV, looks every row up on Scryfall, and inserts
one store row per unit of quantity.

The CSV comes either from --local-csv or from the newest .csv object in the
storage bucket. Column names are matched case-insensitively; defaults are
set_code, collector_number, language, foil and quantity.

Examples:
  # Append the newest CSV from the bucket, filing copies under "binder"
  mtg-collector append --location binder

  # Append a local CSV with custom column names
  mtg-collector append --local-csv /tmp/box.csv --set-col "Set code" --num-col "Collector number"`,
	RunE: runAppend,
}

func init() {
	registerSourceFlags(appendCmd)
	registerColumnFlags(appendCmd)
	appendCmd.Flags().StringVar(&appendLocation, "location", "bulk", "Location tag for new copies (binder | personal | bulk)")

	RootCmd.AddCommand(appendCmd)
}

func runAppend(cmd *cobra.Command, args []string) error {
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

	location, err := models.ParseLocation(appendLocation)
	if err != nil {
		return err
	}

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

	appender := collection.NewAppender(store, scryfall.NewClient(cfg.Scryfall), location, l)

	report, runErr := appender.Run(ctx, reader, mapping)
	printRunReport(l, report)
	if runErr != nil {
		return runErr
	}
	return nil
}

// printRunReport surfaces the end-of-run summary and every row worth
// flagging. Row-level issues are reported here, never as a non-zero exit.
func printRunReport(l *zap.Logger, report *collection.RunReport) {
	s := report.Summary()
	l.Info("Run finished",
		zap.Int("rows", s.Rows),
		zap.Int("appended", s.Appended),
		zap.Int("removed", s.Removed),
		zap.Int("partial", s.Partial),
		zap.Int("skipped", s.Skipped),
		zap.Int("failed", s.Failed),
		zap.Int("copies_applied", s.CopiesApplied),
	)

	for _, issue := range report.Issues() {
		l.Warn("Row issue",
			zap.Int("line", issue.Line),
			zap.String("status", string(issue.Status)),
			zap.String("set_code", issue.SetCode),
			zap.String("collector_number", issue.CollectorNumber),
			zap.String("lang", issue.Lang),
			zap.Int("requested", issue.Requested),
			zap.Int("applied", issue.Applied),
			zap.String("reason", issue.Reason),
		)
	}
}
