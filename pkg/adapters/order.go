package adapters

import (
	"github.com/de-tools/sku-atlas/pkg/models/domain"
	"github.com/de-tools/sku-atlas/pkg/models/store"
)

func MapStoreOrderLineToDomain(rec store.OrderLineRecord) domain.OrderLine {
	return domain.OrderLine{
		Item:      domain.ItemID(rec.ItemID),
		OrderedAt: rec.OrderedAt,
		Quantity:  rec.Quantity,
		UnitPrice: rec.UnitPrice,
		Revenue:   rec.Revenue,
	}
}

func MapDomainOrderLineToStore(dataset string, lineNo int64, line domain.OrderLine) store.OrderLineRecord {
	return store.OrderLineRecord{
		Dataset:   dataset,
		LineNo:    lineNo,
		ItemID:    string(line.Item),
		OrderedAt: line.OrderedAt,
		Quantity:  line.Quantity,
		UnitPrice: line.UnitPrice,
		Revenue:   line.Revenue,
	}
}

func MapStoreDatasetToDomain(rec store.DatasetRecord) domain.Dataset {
	return domain.Dataset{
		Name:       rec.Name,
		Source:     rec.Source,
		IngestedAt: rec.IngestedAt,
		Rows:       rec.Rows,
	}
}

func MapDatasetStatsStoreToDomain(stats *store.DatasetStats) *domain.DatasetStats {
	if stats == nil {
		return nil
	}

	return &domain.DatasetStats{
		RecordsCount:   stats.RecordsCount,
		FirstOrderTime: stats.FirstOrderTime,
		LastOrderTime:  stats.LastOrderTime,
	}
}
