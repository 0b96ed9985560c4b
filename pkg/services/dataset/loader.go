package dataset

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/sku-atlas/pkg/adapters"
	"github.com/de-tools/sku-atlas/pkg/models/domain"
	"github.com/de-tools/sku-atlas/pkg/models/store"
	"github.com/de-tools/sku-atlas/pkg/services/ingest"
	"github.com/de-tools/sku-atlas/pkg/services/sources"
	"github.com/de-tools/sku-atlas/pkg/store/duckdb"
	orderstore "github.com/de-tools/sku-atlas/pkg/store/duckdb/orders"
	"github.com/rs/zerolog"
)

const defaultBatchSize = 1000

// Loader normalizes a dataset source into the local store. The whole load
// runs in one transaction: a failed load leaves no partial dataset behind.
type Loader struct {
	db        *sql.DB
	store     orderstore.Store
	batchSize int
}

type LoadResult struct {
	Dataset domain.Dataset
	Stats   *ingest.Stats
}

func NewLoader(db *sql.DB, store orderstore.Store) (*Loader, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if store == nil {
		return nil, fmt.Errorf("order store is nil")
	}
	return &Loader{db: db, store: store, batchSize: defaultBatchSize}, nil
}

func (l *Loader) Load(
	ctx context.Context,
	name string,
	src sources.Source,
	opts ingest.Options,
) (*LoadResult, error) {
	logger := zerolog.Ctx(ctx)

	table, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch source %s: %w", src.Name(), err)
	}

	lines, stats, err := ingest.Normalize(ctx, table, opts)
	if err != nil {
		return nil, err
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	txCtx := duckdb.WithTransaction(ctx, tx)
	if err := l.store.CreateDataset(txCtx, name, src.Name()); err != nil {
		return nil, err
	}

	batch := make([]store.OrderLineRecord, 0, l.batchSize)
	flushed := 0
	for i, line := range lines {
		batch = append(batch, adapters.MapDomainOrderLineToStore(name, int64(i), line))
		if len(batch) == l.batchSize {
			if err := l.store.Add(txCtx, name, batch); err != nil {
				return nil, err
			}
			flushed += len(batch)
			batch = batch[:0]
			logger.Debug().
				Str("dataset", name).
				Int("stored", flushed).
				Int("total", len(lines)).
				Msg("load progress")
		}
	}
	if err := l.store.Add(txCtx, name, batch); err != nil {
		return nil, err
	}

	if err := l.store.FinishDataset(txCtx, name, int64(len(lines))); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit load: %w", err)
	}

	logger.Info().
		Str("dataset", name).
		Str("source", src.Name()).
		Int("rows_read", stats.RowsRead).
		Int("ingested", stats.Ingested).
		Int("out_of_window", stats.OutOfWindow).
		Int("skipped_malformed", stats.SkippedMalformed).
		Msg("dataset loaded")

	ds, err := l.store.GetDataset(ctx, name)
	if err != nil {
		return nil, err
	}

	return &LoadResult{
		Dataset: adapters.MapStoreDatasetToDomain(*ds),
		Stats:   stats,
	}, nil
}
