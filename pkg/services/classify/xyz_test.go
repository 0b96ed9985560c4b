package classify

import (
	"testing"
	"time"

	"github.com/de-tools/sku-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quarterWindow(t *testing.T) *domain.Bucketer {
	t.Helper()
	b, err := domain.NewBucketer(domain.Window{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}, domain.GranularityMonth)
	require.NoError(t, err)
	return b
}

func testXYZScale(t *testing.T) *Scale {
	t.Helper()
	scale, err := NewScale([]float64{0.5, 1.0}, []string{"X", "Y", "Z"})
	require.NoError(t, err)
	return scale
}

func TestMeasureVariability_SteadyDemandIsX(t *testing.T) {
	lines := []domain.OrderLine{
		orderLine("steady", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), 10, 100),
		orderLine("steady", time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), 10, 100),
		orderLine("steady", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), 10, 100),
	}

	variability, undefined, err := measureVariability(lines, quarterWindow(t), testXYZScale(t))
	require.NoError(t, err)
	require.Empty(t, undefined)

	require.Len(t, variability, 1)
	v := variability[0]
	assert.Equal(t, 10.0, v.MeanDemand)
	assert.Equal(t, 0.0, v.StdDemand)
	assert.Equal(t, 0.0, v.CV)
	assert.Equal(t, domain.XYZTierX, v.Tier)
}

func TestMeasureVariability_ZeroFillsMissingPeriods(t *testing.T) {
	// One order in January only. February and March must still count as
	// zero-demand buckets, giving a high coefficient of variation.
	lines := []domain.OrderLine{
		orderLine("sparse", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), 1, 1),
	}

	variability, _, err := measureVariability(lines, quarterWindow(t), testXYZScale(t))
	require.NoError(t, err)

	require.Len(t, variability, 1)
	v := variability[0]
	assert.InDelta(t, 1.0/3.0, v.MeanDemand, 1e-9)
	assert.InDelta(t, 0.4714, v.StdDemand, 1e-4)
	assert.InDelta(t, 1.4142, v.CV, 1e-4)
	assert.Equal(t, domain.XYZTierZ, v.Tier)
}

func TestMeasureVariability_MultipleLinesSameBucketAreSummed(t *testing.T) {
	lines := []domain.OrderLine{
		orderLine("bulk", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), 4, 40),
		orderLine("bulk", time.Date(2024, 1, 28, 0, 0, 0, 0, time.UTC), 6, 60),
		orderLine("bulk", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), 10, 100),
		orderLine("bulk", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), 10, 100),
	}

	variability, _, err := measureVariability(lines, quarterWindow(t), testXYZScale(t))
	require.NoError(t, err)

	require.Len(t, variability, 1)
	assert.Equal(t, 10.0, variability[0].MeanDemand)
	assert.Equal(t, domain.XYZTierX, variability[0].Tier)
}

func TestMeasureVariability_ZeroMeanDemandIsUndefined(t *testing.T) {
	// Revenue without quantity, e.g. a service fee row. The mean demand is
	// zero and the coefficient of variation has no value.
	lines := []domain.OrderLine{
		orderLine("fee-only", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), 0, 25),
	}

	variability, undefined, err := measureVariability(lines, quarterWindow(t), testXYZScale(t))
	require.NoError(t, err)

	require.Len(t, variability, 1)
	v := variability[0]
	assert.True(t, v.Undefined)
	assert.Equal(t, domain.XYZTierUndefined, v.Tier)
	assert.Equal(t, 0.0, v.CV)
	assert.Equal(t, []domain.ItemID{"fee-only"}, undefined)
}

func TestMeasureVariability_SortedByItem(t *testing.T) {
	jan := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	lines := []domain.OrderLine{
		orderLine("zulu", jan, 1, 1),
		orderLine("alpha", jan, 1, 1),
	}

	variability, _, err := measureVariability(lines, quarterWindow(t), testXYZScale(t))
	require.NoError(t, err)

	require.Len(t, variability, 2)
	assert.Equal(t, domain.ItemID("alpha"), variability[0].Item)
	assert.Equal(t, domain.ItemID("zulu"), variability[1].Item)
}

func TestMeasureVariability_RejectsOutOfWindowLines(t *testing.T) {
	lines := []domain.OrderLine{
		orderLine("stray", time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), 1, 1),
	}

	_, _, err := measureVariability(lines, quarterWindow(t), testXYZScale(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside window")
}
