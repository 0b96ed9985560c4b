package classify

import (
	"math"
	"slices"

	"github.com/de-tools/sku-atlas/pkg/models/domain"
	"golang.org/x/exp/maps"
)

// measureVariability builds a fixed-length demand series per item (one
// bucket per sub-period, zero-filled) and tiers items by the coefficient of
// variation of that series. Items with zero mean demand get the undefined
// tier instead of a NaN, the caller decides how to surface them.
func measureVariability(lines []domain.OrderLine, bucketer *domain.Bucketer, scale *Scale) ([]domain.ItemVariability, []domain.ItemID, error) {
	periods := bucketer.Periods()

	series := make(map[domain.ItemID][]float64)
	for _, l := range lines {
		i, err := bucketer.Index(l.OrderedAt)
		if err != nil {
			return nil, nil, err
		}
		s, ok := series[l.Item]
		if !ok {
			s = make([]float64, periods)
			series[l.Item] = s
		}
		s[i] += l.Quantity
	}

	items := maps.Keys(series)
	slices.Sort(items)

	result := make([]domain.ItemVariability, 0, len(items))
	var undefined []domain.ItemID

	for _, item := range items {
		buckets := series[item]

		var total float64
		for _, q := range buckets {
			total += q
		}
		mean := total / float64(periods)

		v := domain.ItemVariability{Item: item, MeanDemand: mean}
		if mean == 0 {
			v.Undefined = true
			v.Tier = domain.XYZTierUndefined
			undefined = append(undefined, item)
			result = append(result, v)
			continue
		}

		var sq float64
		for _, q := range buckets {
			d := q - mean
			sq += d * d
		}
		v.StdDemand = math.Sqrt(sq / float64(periods))
		v.CV = v.StdDemand / mean
		v.Tier = domain.XYZTier(scale.Of(v.CV))
		result = append(result, v)
	}

	return result, undefined, nil
}
