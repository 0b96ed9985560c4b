package reorder

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// zScores holds one-sided standard normal quantiles for the supported
// service levels. Interpolation is deliberately not offered, callers pick
// one of the published levels.
var zScores = map[float64]float64{
	0.90:  1.282,
	0.95:  1.645,
	0.975: 1.960,
	0.99:  2.326,
}

func zScore(serviceLevel float64) (float64, error) {
	z, ok := zScores[serviceLevel]
	if !ok {
		return 0, fmt.Errorf("unsupported service level %v (supported: %v)", serviceLevel, SupportedServiceLevels())
	}
	return z, nil
}

func SupportedServiceLevels() []float64 {
	levels := maps.Keys(zScores)
	slices.Sort(levels)
	return levels
}
