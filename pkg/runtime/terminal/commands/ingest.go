package commands

import (
	"fmt"

	"github.com/de-tools/sku-atlas/pkg/services/config"
	"github.com/de-tools/sku-atlas/pkg/services/dataset"
	"github.com/de-tools/sku-atlas/pkg/services/ingest"
	"github.com/de-tools/sku-atlas/pkg/services/sources"
	"github.com/de-tools/sku-atlas/pkg/store/duckdb"
	orderstore "github.com/de-tools/sku-atlas/pkg/store/duckdb/orders"
	"github.com/spf13/cobra"
)

type IngestCmd struct {
	source        sourceFlags
	configPath    string
	dbPath        string
	datasetName   string
	skipMalformed bool
	registry      sources.Registry
}

func NewIngestCmd(registry sources.Registry) *cobra.Command {
	ic := &IngestCmd{registry: registry}
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Normalize a source into the local analytical store",
		RunE:  ic.run,
	}

	ic.source.register(cmd)
	cmd.Flags().StringVar(&ic.configPath, "config", "", "Path to the analysis config (mapping, window)")
	cmd.Flags().StringVar(&ic.dbPath, "db", "sku-atlas.db", "Path to the local DuckDB database")
	cmd.Flags().StringVar(&ic.datasetName, "dataset", "", "Name to store the dataset under")
	cmd.Flags().BoolVar(&ic.skipMalformed, "skip-malformed", false, "Skip rows that fail validation instead of aborting")

	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("dataset")

	return cmd
}

func (ic *IngestCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadAnalysisConfig(ic.configPath)
	if err != nil {
		return err
	}
	window, err := cfg.ParseWindow()
	if err != nil {
		return err
	}

	src, err := ic.source.resolve(ctx, ic.registry)
	if err != nil {
		return err
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ic.dbPath})
	if err != nil {
		return fmt.Errorf("failed to open local store %s: %w", ic.dbPath, err)
	}
	defer db.Close()

	store, err := orderstore.NewStore(db)
	if err != nil {
		return err
	}
	loader, err := dataset.NewLoader(db, store)
	if err != nil {
		return err
	}

	result, err := loader.Load(ctx, ic.datasetName, src, ingest.Options{
		Mapping:       cfg.Mapping,
		Window:        window,
		SkipMalformed: ic.skipMalformed,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"Dataset %q loaded from %s: %d rows stored (%d read, %d out of window, %d skipped)\n",
		result.Dataset.Name, result.Dataset.Source, result.Dataset.Rows,
		result.Stats.RowsRead, result.Stats.OutOfWindow, result.Stats.SkippedMalformed)

	return nil
}
