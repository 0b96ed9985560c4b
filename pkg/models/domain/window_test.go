package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_Contains(t *testing.T) {
	w := Window{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, w.Contains(w.Start), "start is inclusive")
	assert.False(t, w.Contains(w.End), "end is exclusive")
	assert.True(t, w.Contains(time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)))
}

func TestWindow_Validate(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Error(t, (Window{}).Validate())
	assert.Error(t, (Window{Start: start, End: start}).Validate())
	assert.Error(t, (Window{Start: start.AddDate(0, 1, 0), End: start}).Validate())
	assert.NoError(t, (Window{Start: start, End: start.AddDate(1, 0, 0)}).Validate())
}

func TestWindow_Days(t *testing.T) {
	assert.Equal(t, 366, Window{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}.Days(), "2024 is a leap year")

	assert.Equal(t, 1, Window{
		Start: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
	}.Days())
}

func TestBucketer_MonthlyPeriodsAndIndex(t *testing.T) {
	w := Window{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	b, err := NewBucketer(w, GranularityMonth)
	require.NoError(t, err)
	assert.Equal(t, 12, b.Periods())

	i, err := b.Index(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	i, err = b.Index(time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 11, i)

	_, err = b.Index(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Error(t, err)
}

func TestBucketer_PartialTrailingPeriodCounts(t *testing.T) {
	// Window ends mid-February, January and the partial February both count.
	w := Window{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
	}

	b, err := NewBucketer(w, GranularityMonth)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Periods())
}

func TestBucketer_QuarterlyAcrossYears(t *testing.T) {
	w := Window{
		Start: time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	}

	b, err := NewBucketer(w, GranularityQuarter)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Periods())

	i, err := b.Index(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	i, err = b.Index(time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2, i)
}

func TestBucketer_Daily(t *testing.T) {
	w := Window{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
	}

	b, err := NewBucketer(w, GranularityDay)
	require.NoError(t, err)
	assert.Equal(t, 7, b.Periods())

	i, err := b.Index(time.Date(2024, 3, 3, 15, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2, i)
}

func TestParseGranularity(t *testing.T) {
	g, err := ParseGranularity("month")
	require.NoError(t, err)
	assert.Equal(t, GranularityMonth, g)

	_, err = ParseGranularity("fortnight")
	assert.Error(t, err)
}
