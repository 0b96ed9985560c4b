package adapters

import (
	"github.com/de-tools/sku-atlas/pkg/models/api"
	"github.com/de-tools/sku-atlas/pkg/models/domain"
)

func MapTimePeriodDomainToApi(p domain.TimePeriod) api.TimePeriod {
	return api.TimePeriod{
		Start:    p.Start,
		End:      p.End,
		Duration: p.Duration,
	}
}

func MapWindowDomainToApi(w domain.Window) api.TimePeriod {
	return api.TimePeriod{
		Start:    w.Start,
		End:      w.End,
		Duration: w.Days(),
	}
}

func MapRankedItemDomainToApi(r domain.RankedItem) api.RankedItem {
	return api.RankedItem{
		Item:              string(r.Item),
		TotalQuantity:     r.TotalQuantity,
		TotalRevenue:      r.TotalRevenue,
		CumulativeRevenue: r.CumulativeRevenue,
		RevenueShare:      r.RevenueShare,
		CumulativePct:     r.CumulativePct,
		Tier:              string(r.Tier),
	}
}

func MapItemVariabilityDomainToApi(v domain.ItemVariability) api.ItemVariability {
	return api.ItemVariability{
		Item:       string(v.Item),
		MeanDemand: v.MeanDemand,
		StdDemand:  v.StdDemand,
		CV:         v.CV,
		Undefined:  v.Undefined,
		Tier:       string(v.Tier),
	}
}

func MapClassifiedItemDomainToApi(ci domain.ClassifiedItem) api.ClassifiedItem {
	return api.ClassifiedItem{
		Item:          string(ci.Item),
		ABC:           string(ci.ABC),
		XYZ:           string(ci.XYZ),
		Label:         ci.Label,
		TotalQuantity: ci.TotalQuantity,
		TotalRevenue:  ci.TotalRevenue,
		CV:            ci.CV,
	}
}

func MapClassSummaryDomainToApi(s domain.ClassSummary) api.ClassSummary {
	return api.ClassSummary{
		Label:        s.Label,
		ItemCount:    s.ItemCount,
		TotalDemand:  s.TotalDemand,
		AvgDemand:    s.AvgDemand,
		TotalRevenue: s.TotalRevenue,
	}
}

func MapClassificationDomainToApi(c *domain.Classification) api.Classification {
	res := api.Classification{
		Period:            MapWindowDomainToApi(c.Window),
		Granularity:       string(c.Granularity),
		Periods:           c.Periods,
		GrandTotalRevenue: c.GrandTotalRevenue,
		Ranking:           make([]api.RankedItem, 0, len(c.Ranking)),
		Variability:       make([]api.ItemVariability, 0, len(c.Variability)),
		Items:             make([]api.ClassifiedItem, 0, len(c.Items)),
		Summaries:         make([]api.ClassSummary, 0, len(c.Summaries)),
	}

	for _, r := range c.Ranking {
		res.Ranking = append(res.Ranking, MapRankedItemDomainToApi(r))
	}
	for _, v := range c.Variability {
		res.Variability = append(res.Variability, MapItemVariabilityDomainToApi(v))
	}
	for _, ci := range c.Items {
		res.Items = append(res.Items, MapClassifiedItemDomainToApi(ci))
	}
	for _, s := range c.Summaries {
		res.Summaries = append(res.Summaries, MapClassSummaryDomainToApi(s))
	}
	for _, item := range c.UndefinedItems {
		res.UndefinedItems = append(res.UndefinedItems, string(item))
	}

	return res
}
