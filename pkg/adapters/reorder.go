package adapters

import (
	"github.com/de-tools/sku-atlas/pkg/models/api"
	"github.com/de-tools/sku-atlas/pkg/models/domain"
)

func MapReorderPointDomainToApi(rp domain.ReorderPoint) api.ReorderPoint {
	return api.ReorderPoint{
		Item:            string(rp.Item),
		TotalDemand:     rp.TotalDemand,
		MeanDailyDemand: rp.MeanDailyDemand,
		StdDailyDemand:  rp.StdDailyDemand,
		SafetyStock:     rp.SafetyStock,
		Point:           rp.Point,
		NoDemand:        rp.NoDemand,
	}
}

func MapReorderPointsDomainToApi(window domain.Window, leadTimeDays int, serviceLevel float64, points []domain.ReorderPoint) api.ReorderReport {
	res := api.ReorderReport{
		Period:       MapWindowDomainToApi(window),
		LeadTimeDays: leadTimeDays,
		ServiceLevel: serviceLevel,
		Points:       make([]api.ReorderPoint, 0, len(points)),
	}

	for _, rp := range points {
		res.Points = append(res.Points, MapReorderPointDomainToApi(rp))
	}

	return res
}
