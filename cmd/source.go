package cmd

import (
	"context"
	"io"

	"mtg-collector/core/config"
	"mtg-collector/core/storage"
	"mtg-collector/feature/collection"
	"mtg-collector/feature/source"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Flags shared by the append and remove commands. Cobra runs one command per
// invocation, so sharing the variables is safe.
var (
	localCSV     string
	sourceBucket string
	sourcePrefix string
	setColumn    string
	numberColumn string
	langColumn   string
	foilColumn   string
	qtyColumn    string
)

// registerSourceFlags adds the CSV source selection flags.
func registerSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&localCSV, "local-csv", "", "Path to a local CSV; if provided, storage is not used")
	cmd.Flags().StringVar(&sourceBucket, "bucket", "", "Storage bucket to search for the newest CSV (defaults to config)")
	cmd.Flags().StringVar(&sourcePrefix, "prefix", "", "Folder prefix inside the bucket (defaults to config)")
}

// registerColumnFlags adds the column-name override flags. Empty means "use
// the default name" (set_code, collector_number, language, foil, quantity).
func registerColumnFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&setColumn, "set-col", "", "CSV column for set code")
	cmd.Flags().StringVar(&numberColumn, "num-col", "", "CSV column for collector number")
	cmd.Flags().StringVar(&langColumn, "lang-col", "", "CSV column for language")
	cmd.Flags().StringVar(&foilColumn, "foil-col", "", "CSV column for finish (normal | foil | etched)")
	cmd.Flags().StringVar(&qtyColumn, "qty-col", "", "CSV column for quantity")
}

func columnOverrides() collection.Overrides {
	return collection.Overrides{
		SetCode:         setColumn,
		CollectorNumber: numberColumn,
		Language:        langColumn,
		Foil:            foilColumn,
		Quantity:        qtyColumn,
	}
}

// openSource resolves the CSV source: the local path when given, otherwise
// the newest CSV in the storage bucket. Failures here are fatal for the run.
func openSource(ctx context.Context, cfg *config.Config, l *zap.Logger) (string, io.ReadCloser, error) {
	if localCSV != "" {
		return source.Local(localCSV)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return "", nil, err
	}

	bucket := sourceBucket
	if bucket == "" {
		bucket = cfg.Storage.Bucket
	}
	prefix := sourcePrefix
	if prefix == "" {
		prefix = cfg.Storage.Prefix
	}

	return source.NewSelector(client, bucket, l).Newest(ctx, prefix)
}
