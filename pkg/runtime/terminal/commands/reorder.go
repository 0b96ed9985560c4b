package commands

import (
	"encoding/json"
	"fmt"

	"github.com/de-tools/sku-atlas/pkg/adapters"
	"github.com/de-tools/sku-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/sku-atlas/pkg/services/config"
	"github.com/de-tools/sku-atlas/pkg/services/ingest"
	"github.com/de-tools/sku-atlas/pkg/services/reorder"
	"github.com/de-tools/sku-atlas/pkg/services/sources"
	"github.com/spf13/cobra"
)

type ReorderCmd struct {
	source       sourceFlags
	configPath   string
	from         string
	to           string
	leadTime     int
	serviceLevel float64
	format       string
	outDir       string
	registry     sources.Registry
	reporter     *export.Reporter
}

func NewReorderCmd(registry sources.Registry, reporter *export.Reporter) *cobra.Command {
	rc := &ReorderCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "Compute per-item reorder points from daily demand",
		RunE:  rc.run,
	}

	rc.source.register(cmd)
	cmd.Flags().StringVar(&rc.configPath, "config", "", "Path to the analysis config (mapping, window)")
	cmd.Flags().StringVar(&rc.from, "from", "", "Analysis window start (YYYY-MM-DD), overrides config")
	cmd.Flags().StringVar(&rc.to, "to", "", "Analysis window end, exclusive, overrides config")
	cmd.Flags().IntVar(&rc.leadTime, "lead-time", 7, "Replenishment lead time in days")
	cmd.Flags().Float64Var(&rc.serviceLevel, "service-level", 0.95, "Demand coverage target during lead time")
	cmd.Flags().StringVar(&rc.format, "format", "table", "Output format: table or json")
	cmd.Flags().StringVar(&rc.outDir, "out", "", "Directory for CSV export of the reorder table")

	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func (rc *ReorderCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadAnalysisConfig(rc.configPath)
	if err != nil {
		return err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return err
	}
	if err := applyWindowFlags(&settings, rc.from, rc.to); err != nil {
		return err
	}

	src, err := rc.source.resolve(ctx, rc.registry)
	if err != nil {
		return err
	}
	table, err := src.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch source %s: %w", src.Name(), err)
	}

	lines, _, err := ingest.Normalize(ctx, table, ingest.Options{
		Mapping: cfg.Mapping,
		Window:  settings.Window,
	})
	if err != nil {
		return err
	}

	reorderSettings := reorder.Settings{
		LeadTimeDays: rc.leadTime,
		ServiceLevel: rc.serviceLevel,
	}
	points, err := reorder.Compute(ctx, lines, settings.Window, reorderSettings)
	if err != nil {
		return err
	}

	if rc.outDir != "" {
		exporter, err := export.NewCSVExporter(rc.outDir)
		if err != nil {
			return err
		}
		if err := exporter.WriteReorder(points); err != nil {
			return err
		}
	}

	switch rc.format {
	case "table":
		report := export.BuildReorderReport(settings.Window, rc.leadTime, rc.serviceLevel, points)
		return rc.reporter.Handle(report)
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(adapters.MapReorderPointsDomainToApi(settings.Window, rc.leadTime, rc.serviceLevel, points))
	default:
		return fmt.Errorf("unsupported format %q (want table or json)", rc.format)
	}
}
