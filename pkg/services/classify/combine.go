package classify

import (
	"slices"

	"github.com/de-tools/sku-atlas/pkg/models/domain"
	"golang.org/x/exp/maps"
)

// combineClasses joins the two per-item views into composite classes. The
// join must be total in both directions. Items keep the ranking order,
// summaries are sorted by label.
func combineClasses(ranking []domain.RankedItem, variability []domain.ItemVariability) ([]domain.ClassifiedItem, []domain.ClassSummary, error) {
	varByItem := make(map[domain.ItemID]domain.ItemVariability, len(variability))
	for _, v := range variability {
		varByItem[v.Item] = v
	}
	rankedItems := make(map[domain.ItemID]struct{}, len(ranking))
	for _, r := range ranking {
		rankedItems[r.Item] = struct{}{}
	}

	var missingFromVariability, missingFromRanking []domain.ItemID
	for _, r := range ranking {
		if _, ok := varByItem[r.Item]; !ok {
			missingFromVariability = append(missingFromVariability, r.Item)
		}
	}
	for _, v := range variability {
		if _, ok := rankedItems[v.Item]; !ok {
			missingFromRanking = append(missingFromRanking, v.Item)
		}
	}
	if len(missingFromVariability) > 0 || len(missingFromRanking) > 0 {
		return nil, nil, &SchemaMismatchError{
			MissingFromRanking:     missingFromRanking,
			MissingFromVariability: missingFromVariability,
		}
	}

	items := make([]domain.ClassifiedItem, 0, len(ranking))
	for _, r := range ranking {
		v := varByItem[r.Item]
		items = append(items, domain.ClassifiedItem{
			Item:          r.Item,
			ABC:           r.Tier,
			XYZ:           v.Tier,
			Label:         string(r.Tier) + string(v.Tier),
			TotalQuantity: r.TotalQuantity,
			TotalRevenue:  r.TotalRevenue,
			CV:            v.CV,
		})
	}

	groups := make(map[string]*domain.ClassSummary)
	for _, ci := range items {
		g, ok := groups[ci.Label]
		if !ok {
			g = &domain.ClassSummary{Label: ci.Label}
			groups[ci.Label] = g
		}
		g.ItemCount++
		g.TotalDemand += ci.TotalQuantity
		g.TotalRevenue += ci.TotalRevenue
	}

	labels := maps.Keys(groups)
	slices.Sort(labels)

	summaries := make([]domain.ClassSummary, 0, len(groups))
	for _, label := range labels {
		g := groups[label]
		g.AvgDemand = g.TotalDemand / float64(g.ItemCount)
		summaries = append(summaries, *g)
	}

	return items, summaries, nil
}
