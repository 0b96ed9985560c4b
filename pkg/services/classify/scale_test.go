package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScale_ClosedBounds(t *testing.T) {
	scale, err := NewScale([]float64{0.5, 1.0}, []string{"X", "Y", "Z"})
	require.NoError(t, err)

	tests := []struct {
		value float64
		want  string
	}{
		{0, "X"},
		{0.25, "X"},
		{0.5, "X"}, // bound belongs to the lower band
		{0.50001, "Y"},
		{1.0, "Y"},
		{1.00001, "Z"},
		{100, "Z"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, scale.Of(tt.value), "value %v", tt.value)
	}
}

func TestScale_OpenBounds(t *testing.T) {
	scale, err := NewOpenScale([]float64{80, 95}, []string{"A", "B", "C"})
	require.NoError(t, err)

	tests := []struct {
		value float64
		want  string
	}{
		{0, "A"},
		{79.999999, "A"},
		{80, "B"}, // bound belongs to the upper band
		{94.999999, "B"},
		{95, "C"},
		{100, "C"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, scale.Of(tt.value), "value %v", tt.value)
	}
}

func TestNewScale_Validation(t *testing.T) {
	_, err := NewScale([]float64{80, 95}, []string{"A", "B"})
	assert.Error(t, err)

	_, err = NewScale([]float64{95, 80}, []string{"A", "B", "C"})
	assert.Error(t, err)

	_, err = NewScale([]float64{80, 80}, []string{"A", "B", "C"})
	assert.Error(t, err)
}
