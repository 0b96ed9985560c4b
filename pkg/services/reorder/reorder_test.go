package reorder

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/de-tools/sku-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func week(t *testing.T) domain.Window {
	t.Helper()
	return domain.Window{
		Start: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
	}
}

func demand(item string, day time.Time, qty float64) domain.OrderLine {
	return domain.OrderLine{
		Item:      domain.ItemID(item),
		OrderedAt: day,
		Quantity:  qty,
		Revenue:   qty,
	}
}

func TestCompute_SteadyDemandNeedsNoSafetyStock(t *testing.T) {
	w := week(t)

	var lines []domain.OrderLine
	for d := 0; d < 7; d++ {
		lines = append(lines, demand("steady", w.Start.AddDate(0, 0, d), 10))
	}

	points, err := Compute(context.Background(), lines, w, DefaultSettings())
	require.NoError(t, err)

	require.Len(t, points, 1)
	p := points[0]
	assert.Equal(t, 10.0, p.MeanDailyDemand)
	assert.Equal(t, 0.0, p.StdDailyDemand)
	assert.Equal(t, 0.0, p.SafetyStock)
	assert.Equal(t, 70.0, p.Point, "mean demand over the lead time")
	assert.False(t, p.NoDemand)
}

func TestCompute_VariableDemandAddsSafetyStock(t *testing.T) {
	w := domain.Window{
		Start: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
	}

	// Daily demand 10, 0, 10, 0: mean 5, population std 5.
	lines := []domain.OrderLine{
		demand("spiky", w.Start, 10),
		demand("spiky", w.Start.AddDate(0, 0, 2), 10),
	}

	points, err := Compute(context.Background(), lines, w, DefaultSettings())
	require.NoError(t, err)

	require.Len(t, points, 1)
	p := points[0]
	assert.Equal(t, 5.0, p.MeanDailyDemand)
	assert.Equal(t, 5.0, p.StdDailyDemand)

	wantSafety := 1.645 * 5 * math.Sqrt(7)
	assert.InDelta(t, wantSafety, p.SafetyStock, 1e-9)
	assert.InDelta(t, 35+wantSafety, p.Point, 1e-9)
}

func TestCompute_NoDemandItemIsFlagged(t *testing.T) {
	w := week(t)

	lines := []domain.OrderLine{
		demand("active", w.Start, 5),
		{Item: "dormant", OrderedAt: w.Start, Quantity: 0, Revenue: 12},
	}

	points, err := Compute(context.Background(), lines, w, DefaultSettings())
	require.NoError(t, err)

	require.Len(t, points, 2)
	assert.Equal(t, domain.ItemID("active"), points[0].Item)

	dormant := points[1]
	assert.Equal(t, domain.ItemID("dormant"), dormant.Item)
	assert.True(t, dormant.NoDemand)
	assert.Equal(t, 0.0, dormant.Point)
}

func TestCompute_SortedByPointDescending(t *testing.T) {
	w := week(t)

	var lines []domain.OrderLine
	for d := 0; d < 7; d++ {
		day := w.Start.AddDate(0, 0, d)
		lines = append(lines, demand("slow", day, 1), demand("fast", day, 50))
	}

	points, err := Compute(context.Background(), lines, w, DefaultSettings())
	require.NoError(t, err)

	require.Len(t, points, 2)
	assert.Equal(t, domain.ItemID("fast"), points[0].Item)
	assert.Equal(t, domain.ItemID("slow"), points[1].Item)
}

func TestCompute_UnsupportedServiceLevel(t *testing.T) {
	settings := Settings{LeadTimeDays: 7, ServiceLevel: 0.93}

	_, err := Compute(context.Background(), nil, week(t), settings)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported service level")
}

func TestSettings_Validate(t *testing.T) {
	assert.NoError(t, DefaultSettings().Validate())
	assert.Error(t, Settings{LeadTimeDays: 0, ServiceLevel: 0.95}.Validate())
	assert.Error(t, Settings{LeadTimeDays: 7, ServiceLevel: 0.5}.Validate())
}

func TestSupportedServiceLevels_Sorted(t *testing.T) {
	levels := SupportedServiceLevels()
	require.NotEmpty(t, levels)
	assert.IsNonDecreasing(t, levels)
}
