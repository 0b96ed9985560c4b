package dataset

import (
	"context"
	"fmt"

	"github.com/de-tools/sku-atlas/pkg/adapters"
	"github.com/de-tools/sku-atlas/pkg/models/domain"
	orderstore "github.com/de-tools/sku-atlas/pkg/store/duckdb/orders"
)

// Explorer reads ingested datasets back as domain entities for analysis.
type Explorer interface {
	ListDatasets(ctx context.Context) ([]domain.Dataset, error)
	GetStats(ctx context.Context, name string) (*domain.DatasetStats, error)
	GetOrderLines(ctx context.Context, name string, window domain.Window) ([]domain.OrderLine, error)
}

type explorer struct {
	store orderstore.Store
}

func NewExplorer(store orderstore.Store) (Explorer, error) {
	if store == nil {
		return nil, fmt.Errorf("order store is nil")
	}
	return &explorer{store: store}, nil
}

func (e *explorer) ListDatasets(ctx context.Context) ([]domain.Dataset, error) {
	records, err := e.store.ListDatasets(ctx)
	if err != nil {
		return nil, err
	}

	datasets := make([]domain.Dataset, 0, len(records))
	for _, r := range records {
		datasets = append(datasets, adapters.MapStoreDatasetToDomain(r))
	}
	return datasets, nil
}

func (e *explorer) GetStats(ctx context.Context, name string) (*domain.DatasetStats, error) {
	if _, err := e.store.GetDataset(ctx, name); err != nil {
		return nil, err
	}

	stats, err := e.store.GetStats(ctx, name)
	if err != nil {
		return nil, err
	}
	return adapters.MapDatasetStatsStoreToDomain(stats), nil
}

func (e *explorer) GetOrderLines(
	ctx context.Context,
	name string,
	window domain.Window,
) ([]domain.OrderLine, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}
	if _, err := e.store.GetDataset(ctx, name); err != nil {
		return nil, err
	}

	records, err := e.store.GetWindow(ctx, name, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.OrderLine, 0, len(records))
	for _, r := range records {
		lines = append(lines, adapters.MapStoreOrderLineToDomain(r))
	}
	return lines, nil
}
