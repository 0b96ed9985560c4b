package classify

import (
	"cmp"
	"slices"

	"github.com/de-tools/sku-atlas/pkg/models/domain"
)

// rankByRevenue groups order lines by item, ranks items by total revenue
// descending (ties broken by item id ascending for reproducibility) and
// assigns ABC tiers. An item's tier comes from the cumulative share reached
// before it, so the item that crosses a threshold still belongs to the tier
// its revenue started in, and an item whose own cumulative share lands
// exactly on a threshold stays in the lower tier.
func rankByRevenue(lines []domain.OrderLine, scale *Scale) ([]domain.RankedItem, float64, error) {
	type itemTotals struct {
		quantity float64
		revenue  float64
	}

	totals := make(map[domain.ItemID]*itemTotals)
	for _, l := range lines {
		t, ok := totals[l.Item]
		if !ok {
			t = &itemTotals{}
			totals[l.Item] = t
		}
		t.quantity += l.Quantity
		t.revenue += l.Revenue
	}

	if len(totals) == 0 {
		return nil, 0, &DegenerateInputError{Reason: "no order lines in window"}
	}

	ranking := make([]domain.RankedItem, 0, len(totals))
	var grandTotal float64
	for item, t := range totals {
		grandTotal += t.revenue
		ranking = append(ranking, domain.RankedItem{
			Item:          item,
			TotalQuantity: t.quantity,
			TotalRevenue:  t.revenue,
		})
	}

	if grandTotal == 0 {
		return nil, 0, &DegenerateInputError{Reason: "grand total revenue is zero"}
	}

	slices.SortFunc(ranking, func(a, b domain.RankedItem) int {
		if a.TotalRevenue != b.TotalRevenue {
			return cmp.Compare(b.TotalRevenue, a.TotalRevenue)
		}
		return cmp.Compare(a.Item, b.Item)
	})

	var running float64
	for i := range ranking {
		startPct := running / grandTotal * 100
		running += ranking[i].TotalRevenue
		ranking[i].CumulativeRevenue = running
		ranking[i].RevenueShare = ranking[i].TotalRevenue / grandTotal * 100
		ranking[i].CumulativePct = running / grandTotal * 100
		ranking[i].Tier = domain.ABCTier(scale.Of(startPct))
	}

	return ranking, grandTotal, nil
}
