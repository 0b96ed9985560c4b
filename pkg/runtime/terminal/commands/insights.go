package commands

import (
	"encoding/json"
	"fmt"

	"github.com/de-tools/sku-atlas/pkg/adapters"
	"github.com/de-tools/sku-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/sku-atlas/pkg/services/insights"
	"github.com/de-tools/sku-atlas/pkg/services/sources"
	"github.com/spf13/cobra"
)

type InsightsCmd struct {
	classify ClassifyCmd
	format   string
	reporter *export.Reporter
}

func NewInsightsCmd(registry sources.Registry, reporter *export.Reporter) *cobra.Command {
	ic := &InsightsCmd{reporter: reporter}
	ic.classify.registry = registry

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Generate portfolio findings from the classification",
		RunE:  ic.run,
	}

	ic.classify.source.register(cmd)
	cmd.Flags().StringVar(&ic.classify.configPath, "config", "", "Path to the analysis config (mapping, window, thresholds)")
	cmd.Flags().StringVar(&ic.classify.from, "from", "", "Analysis window start (YYYY-MM-DD), overrides config")
	cmd.Flags().StringVar(&ic.classify.to, "to", "", "Analysis window end, exclusive, overrides config")
	cmd.Flags().StringVar(&ic.format, "format", "table", "Output format: table or json")

	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func (ic *InsightsCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cls, err := ic.classify.classify(cmd)
	if err != nil {
		return err
	}

	src := ic.classify.source.filePath
	if src == "" {
		src = ic.classify.source.profileName
	}
	report := insights.Generate(ctx, src, cls, insights.DefaultSettings())

	switch ic.format {
	case "table":
		return ic.reporter.Handle(export.BuildInsightReport(report))
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(adapters.MapInsightReportDomainToApi(report))
	default:
		return fmt.Errorf("unsupported format %q (want table or json)", ic.format)
	}
}
