package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/de-tools/sku-atlas/pkg/models/domain"
)

// CSVExporter writes analysis tables as delimited files into one directory,
// one file per table. Files are overwritten on every run.
type CSVExporter struct {
	dir string
}

func NewCSVExporter(dir string) (*CSVExporter, error) {
	if dir == "" {
		return nil, fmt.Errorf("export directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}
	return &CSVExporter{dir: dir}, nil
}

// WriteClassification writes abc.csv, xyz.csv, classes.csv and summary.csv.
func (e *CSVExporter) WriteClassification(cls *domain.Classification) error {
	abc := [][]string{{"item_id", "total_quantity", "total_revenue", "cumulative_revenue", "revenue_share_pct", "cumulative_revenue_pct", "abc_tier"}}
	for _, r := range cls.Ranking {
		abc = append(abc, []string{
			string(r.Item),
			formatFloat(r.TotalQuantity),
			formatFloat(r.TotalRevenue),
			formatFloat(r.CumulativeRevenue),
			formatFloat(r.RevenueShare),
			formatFloat(r.CumulativePct),
			string(r.Tier),
		})
	}

	xyz := [][]string{{"item_id", "mean_demand", "std_demand", "cov", "undefined", "xyz_tier"}}
	for _, v := range cls.Variability {
		xyz = append(xyz, []string{
			string(v.Item),
			formatFloat(v.MeanDemand),
			formatFloat(v.StdDemand),
			formatFloat(v.CV),
			strconv.FormatBool(v.Undefined),
			string(v.Tier),
		})
	}

	classes := [][]string{{"item_id", "abc_tier", "xyz_tier", "class", "total_quantity", "total_revenue", "cov"}}
	for _, ci := range cls.Items {
		classes = append(classes, []string{
			string(ci.Item),
			string(ci.ABC),
			string(ci.XYZ),
			ci.Label,
			formatFloat(ci.TotalQuantity),
			formatFloat(ci.TotalRevenue),
			formatFloat(ci.CV),
		})
	}

	summary := [][]string{{"class", "item_count", "total_demand", "avg_demand", "total_revenue"}}
	for _, s := range cls.Summaries {
		summary = append(summary, []string{
			s.Label,
			strconv.Itoa(s.ItemCount),
			formatFloat(s.TotalDemand),
			formatFloat(s.AvgDemand),
			formatFloat(s.TotalRevenue),
		})
	}

	files := map[string][][]string{
		"abc.csv":     abc,
		"xyz.csv":     xyz,
		"classes.csv": classes,
		"summary.csv": summary,
	}
	for name, records := range files {
		if err := e.writeFile(name, records); err != nil {
			return err
		}
	}
	return nil
}

// WriteReorder writes reorder.csv.
func (e *CSVExporter) WriteReorder(points []domain.ReorderPoint) error {
	records := [][]string{{"item_id", "total_demand", "mean_daily_demand", "std_daily_demand", "safety_stock", "reorder_point", "no_demand"}}
	for _, p := range points {
		records = append(records, []string{
			string(p.Item),
			formatFloat(p.TotalDemand),
			formatFloat(p.MeanDailyDemand),
			formatFloat(p.StdDailyDemand),
			formatFloat(p.SafetyStock),
			formatFloat(p.Point),
			strconv.FormatBool(p.NoDemand),
		})
	}
	return e.writeFile("reorder.csv", records)
}

func (e *CSVExporter) writeFile(name string, records [][]string) error {
	path := filepath.Join(e.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
