package export

import (
	"fmt"

	"github.com/de-tools/sku-atlas/pkg/models/domain"
)

// BuildClassificationReport shapes a classification into the generic report
// model the table reporter renders.
func BuildClassificationReport(cls *domain.Classification) *domain.Report {
	ranking := domain.ReportSection{
		Title: "ABC Revenue Ranking",
		Summary: map[string]interface{}{
			"grand_total_revenue": fmt.Sprintf("%.2f", cls.GrandTotalRevenue),
			"items":               len(cls.Ranking),
		},
	}
	for _, r := range cls.Ranking {
		ranking.Details = append(ranking.Details, domain.ReportDetail{
			Name:  string(r.Item),
			Value: fmt.Sprintf("%.2f", r.TotalRevenue),
			Unit:  string(r.Tier),
			Description: fmt.Sprintf("share %.1f%%, cumulative %.1f%%",
				r.RevenueShare, r.CumulativePct),
		})
	}

	variability := domain.ReportSection{
		Title: "XYZ Demand Variability",
		Summary: map[string]interface{}{
			"sub_periods":      cls.Periods,
			"granularity":      string(cls.Granularity),
			"undefined_items":  len(cls.UndefinedItems),
			"items_classified": len(cls.Variability),
		},
	}
	for _, v := range cls.Variability {
		desc := fmt.Sprintf("mean %.2f, std %.2f per %s", v.MeanDemand, v.StdDemand, cls.Granularity)
		value := fmt.Sprintf("%.3f", v.CV)
		if v.Undefined {
			desc = "no demand recorded in the window"
			value = "n/a"
		}
		variability.Details = append(variability.Details, domain.ReportDetail{
			Name:        string(v.Item),
			Value:       value,
			Unit:        string(v.Tier),
			Description: desc,
		})
	}

	classes := domain.ReportSection{
		Title:   "Composite Classes",
		Summary: map[string]interface{}{},
	}
	for _, s := range cls.Summaries {
		classes.Details = append(classes.Details, domain.ReportDetail{
			Name:  s.Label,
			Value: s.ItemCount,
			Unit:  "items",
			Description: fmt.Sprintf("demand %.0f (avg %.1f), revenue %.2f",
				s.TotalDemand, s.AvgDemand, s.TotalRevenue),
		})
	}

	return &domain.Report{
		Title:    "ABC-XYZ Classification",
		Period:   periodOf(cls.Window),
		Sections: []domain.ReportSection{ranking, variability, classes},
	}
}

func BuildReorderReport(window domain.Window, leadTimeDays int, serviceLevel float64, points []domain.ReorderPoint) *domain.Report {
	section := domain.ReportSection{
		Title: "Reorder Points",
		Summary: map[string]interface{}{
			"lead_time_days": leadTimeDays,
			"service_level":  serviceLevel,
			"items":          len(points),
		},
	}
	for _, p := range points {
		desc := fmt.Sprintf("daily mean %.2f, std %.2f, safety stock %.1f",
			p.MeanDailyDemand, p.StdDailyDemand, p.SafetyStock)
		if p.NoDemand {
			desc = "no demand in the window"
		}
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        string(p.Item),
			Value:       fmt.Sprintf("%.1f", p.Point),
			Unit:        "units",
			Description: desc,
		})
	}

	return &domain.Report{
		Title:    "Reorder Point Analysis",
		Period:   periodOf(window),
		Sections: []domain.ReportSection{section},
	}
}

func BuildInsightReport(r domain.InsightReport) *domain.Report {
	section := domain.ReportSection{
		Title:   "Findings",
		Summary: r.Summary,
	}
	for _, f := range r.Findings {
		name := f.Issue
		if f.Item != "" {
			name = string(f.Item)
		}
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        name,
			Value:       severityLabel(f.Severity),
			Unit:        f.Class,
			Description: f.Description + " " + f.Recommendation,
		})
	}

	return &domain.Report{
		Title:    fmt.Sprintf("Inventory Insights: %s", r.Dataset),
		Period:   r.Period,
		Sections: []domain.ReportSection{section},
	}
}

func severityLabel(s domain.Severity) string {
	switch s {
	case domain.SeverityHigh:
		return "high"
	case domain.SeverityMedium:
		return "medium"
	default:
		return "low"
	}
}

func periodOf(w domain.Window) domain.TimePeriod {
	return domain.TimePeriod{
		Start:    w.Start,
		End:      w.End,
		Duration: w.Days(),
	}
}
