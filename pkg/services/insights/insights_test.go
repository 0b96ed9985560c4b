package insights

import (
	"context"
	"testing"
	"time"

	"github.com/de-tools/sku-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classification() *domain.Classification {
	return &domain.Classification{
		Window: domain.Window{
			Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		Granularity:       domain.GranularityMonth,
		Periods:           12,
		GrandTotalRevenue: 1000,
		Ranking: []domain.RankedItem{
			{Item: "hero", RevenueShare: 40, Tier: domain.ABCTierA},
			{Item: "swing", RevenueShare: 30, Tier: domain.ABCTierA},
			{Item: "minor", RevenueShare: 20, Tier: domain.ABCTierB},
			{Item: "tail-1", RevenueShare: 6, Tier: domain.ABCTierC},
			{Item: "tail-2", RevenueShare: 4, Tier: domain.ABCTierC},
		},
		Items: []domain.ClassifiedItem{
			{Item: "hero", ABC: domain.ABCTierA, XYZ: domain.XYZTierX, Label: "AX", CV: 0.1},
			{Item: "swing", ABC: domain.ABCTierA, XYZ: domain.XYZTierZ, Label: "AZ", CV: 1.8},
			{Item: "minor", ABC: domain.ABCTierB, XYZ: domain.XYZTierY, Label: "BY", CV: 0.8},
			{Item: "tail-1", ABC: domain.ABCTierC, XYZ: domain.XYZTierZ, Label: "CZ", CV: 2.2},
			{Item: "tail-2", ABC: domain.ABCTierC, XYZ: domain.XYZTierUndefined, Label: "CU"},
		},
		Summaries: []domain.ClassSummary{
			{Label: "AX", ItemCount: 1},
			{Label: "AZ", ItemCount: 1},
			{Label: "BY", ItemCount: 1},
			{Label: "CU", ItemCount: 1},
			{Label: "CZ", ItemCount: 1},
		},
		UndefinedItems: []domain.ItemID{"tail-2"},
	}
}

func findingByID(t *testing.T, report domain.InsightReport, id string) domain.Finding {
	t.Helper()
	for _, f := range report.Findings {
		if f.ID == id {
			return f
		}
	}
	t.Fatalf("finding %q not present in %+v", id, report.Findings)
	return domain.Finding{}
}

func TestGenerate_VolatileHighValueItem(t *testing.T) {
	report := Generate(context.Background(), "orders", classification(), DefaultSettings())

	f := findingByID(t, report, "swing_volatile_high_value")
	assert.Equal(t, domain.SeverityHigh, f.Severity)
	assert.Equal(t, domain.ItemID("swing"), f.Item)
	assert.Equal(t, "AZ", f.Class)
	assert.Contains(t, f.Description, "30.0%")

	// The CZ item is volatile too, but C items are not revenue critical.
	for _, f := range report.Findings {
		assert.NotEqual(t, "tail-1_volatile_high_value", f.ID)
	}
}

func TestGenerate_VolatileItemBelowShareThresholdIgnored(t *testing.T) {
	cls := classification()
	cls.Ranking[1].RevenueShare = 2 // swing now carries too little revenue

	report := Generate(context.Background(), "orders", cls, DefaultSettings())

	for _, f := range report.Findings {
		assert.NotEqual(t, "swing_volatile_high_value", f.ID)
	}
}

func TestGenerate_UndefinedDemandFinding(t *testing.T) {
	report := Generate(context.Background(), "orders", classification(), DefaultSettings())

	f := findingByID(t, report, "tail-2_no_demand_movement")
	assert.Equal(t, domain.SeverityLow, f.Severity)
	assert.Equal(t, "CU", f.Class)
	assert.Equal(t, "no_demand_movement", f.Issue)
}

func TestGenerate_LongTailFinding(t *testing.T) {
	t.Run("below threshold", func(t *testing.T) {
		report := Generate(context.Background(), "orders", classification(), DefaultSettings())
		for _, f := range report.Findings {
			assert.NotEqual(t, "portfolio_long_tail", f.ID, "2 of 5 items is not a long tail")
		}
	})

	t.Run("at threshold", func(t *testing.T) {
		settings := DefaultSettings()
		settings.LongTailSharePct = 40

		report := Generate(context.Background(), "orders", classification(), settings)
		f := findingByID(t, report, "portfolio_long_tail")
		assert.Equal(t, domain.SeverityMedium, f.Severity)
		assert.Empty(t, f.Item)
	})
}

func TestGenerate_Summary(t *testing.T) {
	report := Generate(context.Background(), "orders", classification(), DefaultSettings())

	assert.Equal(t, 5, report.Summary["items_evaluated"])
	assert.Equal(t, 1, report.Summary["stable_core_items"])
	assert.Equal(t, 1, report.Summary["volatile_high_value_items"])
	assert.Equal(t, 1, report.Summary["undefined_variability_items"])
	assert.Equal(t, 1000.0, report.Summary["grand_total_revenue"])

	counts, ok := report.Summary["class_counts"].(map[string]int)
	require.True(t, ok)
	assert.Equal(t, 1, counts["AZ"])

	assert.Equal(t, "orders", report.Dataset)
	assert.Equal(t, 366, report.Period.Duration)
}

func TestGenerate_EmptyClassification(t *testing.T) {
	cls := &domain.Classification{
		Window: domain.Window{
			Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	report := Generate(context.Background(), "orders", cls, DefaultSettings())

	require.Len(t, report.Findings, 1)
	assert.Equal(t, "no_activity", report.Findings[0].ID)
	assert.Contains(t, report.Summary, "no_activity")
}
