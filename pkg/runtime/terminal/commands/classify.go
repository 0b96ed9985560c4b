package commands

import (
	"encoding/json"
	"fmt"

	"github.com/de-tools/sku-atlas/pkg/adapters"
	"github.com/de-tools/sku-atlas/pkg/models/domain"
	"github.com/de-tools/sku-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/sku-atlas/pkg/services/classify"
	"github.com/de-tools/sku-atlas/pkg/services/config"
	"github.com/de-tools/sku-atlas/pkg/services/ingest"
	"github.com/de-tools/sku-atlas/pkg/services/sources"
	"github.com/spf13/cobra"
)

type ClassifyCmd struct {
	source        sourceFlags
	configPath    string
	from          string
	to            string
	granularity   string
	format        string
	outDir        string
	skipMalformed bool
	registry      sources.Registry
	reporter      *export.Reporter
}

func NewClassifyCmd(registry sources.Registry, reporter *export.Reporter) *cobra.Command {
	cc := &ClassifyCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Run ABC-XYZ classification over an order line dataset",
		RunE:  cc.run,
	}

	cc.source.register(cmd)
	cmd.Flags().StringVar(&cc.configPath, "config", "", "Path to the analysis config (mapping, window, thresholds)")
	cmd.Flags().StringVar(&cc.from, "from", "", "Analysis window start (YYYY-MM-DD), overrides config")
	cmd.Flags().StringVar(&cc.to, "to", "", "Analysis window end, exclusive, overrides config")
	cmd.Flags().StringVar(&cc.granularity, "granularity", "", "Sub-period granularity: day, month or quarter")
	cmd.Flags().StringVar(&cc.format, "format", "table", "Output format: table or json")
	cmd.Flags().StringVar(&cc.outDir, "out", "", "Directory for CSV export of the result tables")
	cmd.Flags().BoolVar(&cc.skipMalformed, "skip-malformed", false, "Skip rows that fail validation instead of aborting")

	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func (cc *ClassifyCmd) run(cmd *cobra.Command, args []string) error {
	cls, err := cc.classify(cmd)
	if err != nil {
		return err
	}

	if cc.outDir != "" {
		exporter, err := export.NewCSVExporter(cc.outDir)
		if err != nil {
			return err
		}
		if err := exporter.WriteClassification(cls); err != nil {
			return err
		}
	}

	switch cc.format {
	case "table":
		return cc.reporter.Handle(export.BuildClassificationReport(cls))
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(adapters.MapClassificationDomainToApi(cls))
	default:
		return fmt.Errorf("unsupported format %q (want table or json)", cc.format)
	}
}

func (cc *ClassifyCmd) classify(cmd *cobra.Command) (*domain.Classification, error) {
	ctx := cmd.Context()

	cfg, err := config.LoadAnalysisConfig(cc.configPath)
	if err != nil {
		return nil, err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}
	if err := applyWindowFlags(&settings, cc.from, cc.to); err != nil {
		return nil, err
	}
	if cc.granularity != "" {
		g, err := domain.ParseGranularity(cc.granularity)
		if err != nil {
			return nil, err
		}
		settings.Granularity = g
	}

	src, err := cc.source.resolve(ctx, cc.registry)
	if err != nil {
		return nil, err
	}
	table, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch source %s: %w", src.Name(), err)
	}

	lines, _, err := ingest.Normalize(ctx, table, ingest.Options{
		Mapping:       cfg.Mapping,
		Window:        settings.Window,
		SkipMalformed: cc.skipMalformed,
	})
	if err != nil {
		return nil, err
	}

	classifier, err := classify.NewClassifier(settings)
	if err != nil {
		return nil, err
	}
	return classifier.Run(ctx, lines)
}
