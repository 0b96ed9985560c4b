package insights

import (
	"context"
	"fmt"

	"github.com/de-tools/sku-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Settings contains configurable thresholds for portfolio insight analysis
type Settings struct {
	// VolatileRevenueSharePct flags A/B items in the Z variability tier whose
	// revenue share reaches this percentage (default: 5.0)
	VolatileRevenueSharePct float64
	// LongTailSharePct flags the portfolio when C items make up at least
	// this percentage of all items (default: 50.0)
	LongTailSharePct float64
}

// DefaultSettings returns the default configuration for insight analysis
func DefaultSettings() Settings {
	return Settings{
		VolatileRevenueSharePct: 5.0,
		LongTailSharePct:        50.0,
	}
}

// Generate turns a classification into actionable findings: high-value items
// with erratic demand, items without any demand movement, and a portfolio
// level check for an oversized C tail.
func Generate(ctx context.Context, dataset string, cls *domain.Classification, settings Settings) domain.InsightReport {
	logger := zerolog.Ctx(ctx)

	report := domain.InsightReport{
		Dataset: dataset,
		Period: domain.TimePeriod{
			Start:    cls.Window.Start,
			End:      cls.Window.End,
			Duration: cls.Window.Days(),
		},
		Summary:  map[string]any{},
		Findings: []domain.Finding{},
	}

	if len(cls.Items) == 0 {
		report.Summary["no_activity"] = "No classified items in the selected period"
		report.Findings = append(report.Findings, domain.Finding{
			ID:             "no_activity",
			Issue:          "no_activity",
			Description:    "No items were classified in the selected time window.",
			Recommendation: "Verify the dataset mapping and analysis window cover the intended order lines.",
			Severity:       domain.SeverityMedium,
		})
		return report
	}

	shareByItem := make(map[domain.ItemID]float64, len(cls.Ranking))
	for _, r := range cls.Ranking {
		shareByItem[r.Item] = r.RevenueShare
	}

	volatileFindings := generateVolatileItemFindings(cls, shareByItem, settings)
	report.Findings = append(report.Findings, volatileFindings...)

	undefinedFindings := generateUndefinedDemandFindings(cls)
	report.Findings = append(report.Findings, undefinedFindings...)

	if tail := generateLongTailFinding(cls, settings); tail != nil {
		report.Findings = append(report.Findings, *tail)
	}

	updateSummary(&report, cls, len(volatileFindings))

	logger.Debug().
		Str("dataset", dataset).
		Int("findings", len(report.Findings)).
		Msg("insight analysis complete")

	return report
}

// generateVolatileItemFindings flags revenue-critical items whose demand is
// too erratic to forecast reliably.
func generateVolatileItemFindings(cls *domain.Classification, shareByItem map[domain.ItemID]float64, settings Settings) []domain.Finding {
	var findings []domain.Finding

	for _, ci := range cls.Items {
		if ci.XYZ != domain.XYZTierZ {
			continue
		}
		if ci.ABC != domain.ABCTierA && ci.ABC != domain.ABCTierB {
			continue
		}
		share := shareByItem[ci.Item]
		if share < settings.VolatileRevenueSharePct {
			continue
		}

		findings = append(findings, domain.Finding{
			ID:    fmt.Sprintf("%s_volatile_high_value", ci.Item),
			Item:  ci.Item,
			Class: ci.Label,
			Issue: "volatile_high_value",
			Description: fmt.Sprintf("Item carries %.1f%% of revenue but its demand varies strongly (cov %.2f).",
				share, ci.CV),
			Recommendation: "Hold safety stock for this item and review it manually each planning cycle, statistical forecasts will miss its swings.",
			Severity:       domain.SeverityHigh,
		})
	}

	return findings
}

// generateUndefinedDemandFindings flags items that earned revenue without
// any recorded quantity movement.
func generateUndefinedDemandFindings(cls *domain.Classification) []domain.Finding {
	var findings []domain.Finding

	labelByItem := make(map[domain.ItemID]string, len(cls.Items))
	for _, ci := range cls.Items {
		labelByItem[ci.Item] = ci.Label
	}

	for _, item := range cls.UndefinedItems {
		findings = append(findings, domain.Finding{
			ID:             fmt.Sprintf("%s_no_demand_movement", item),
			Item:           item,
			Class:          labelByItem[item],
			Issue:          "no_demand_movement",
			Description:    "Item recorded revenue but zero quantity in every sub-period, so demand variability is undefined.",
			Recommendation: "Check the quantity column mapping for this item or exclude fee-like records from demand analysis.",
			Severity:       domain.SeverityLow,
		})
	}

	return findings
}

// generateLongTailFinding checks whether the C tier dominates the portfolio.
func generateLongTailFinding(cls *domain.Classification, settings Settings) *domain.Finding {
	var cItems int
	for _, ci := range cls.Items {
		if ci.ABC == domain.ABCTierC {
			cItems++
		}
	}

	cShare := float64(cItems) / float64(len(cls.Items)) * 100
	if cShare < settings.LongTailSharePct {
		return nil
	}

	return &domain.Finding{
		ID:    "portfolio_long_tail",
		Issue: "long_tail",
		Description: fmt.Sprintf("%d of %d items (%.0f%%) sit in the C tier and contribute little revenue.",
			cItems, len(cls.Items), cShare),
		Recommendation: "Review the C tier for delisting candidates, consolidated ordering or made-to-order handling.",
		Severity:       domain.SeverityMedium,
	}
}

func updateSummary(report *domain.InsightReport, cls *domain.Classification, volatileCount int) {
	classCounts := make(map[string]int, len(cls.Summaries))
	var stableCore int
	for _, s := range cls.Summaries {
		classCounts[s.Label] = s.ItemCount
		if s.Label == "AX" || s.Label == "BX" {
			stableCore += s.ItemCount
		}
	}

	report.Summary["items_evaluated"] = len(cls.Items)
	report.Summary["class_counts"] = classCounts
	report.Summary["grand_total_revenue"] = cls.GrandTotalRevenue
	report.Summary["stable_core_items"] = stableCore
	report.Summary["volatile_high_value_items"] = volatileCount
	report.Summary["undefined_variability_items"] = len(cls.UndefinedItems)
}
