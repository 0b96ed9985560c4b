package adapters

import (
	"github.com/de-tools/sku-atlas/pkg/models/api"
	"github.com/de-tools/sku-atlas/pkg/models/domain"
)

func MapDatasetDomainToApi(d domain.Dataset) api.Dataset {
	return api.Dataset{
		Name:       d.Name,
		Source:     d.Source,
		IngestedAt: d.IngestedAt,
		Rows:       d.Rows,
	}
}

func MapDatasetStatsDomainToApi(stats *domain.DatasetStats) api.DatasetStats {
	if stats == nil {
		return api.DatasetStats{}
	}

	return api.DatasetStats{
		RecordsCount:   stats.RecordsCount,
		FirstOrderTime: stats.FirstOrderTime,
		LastOrderTime:  stats.LastOrderTime,
	}
}
