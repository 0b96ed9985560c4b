package localdb

import (
	"context"
	"fmt"

	"github.com/de-tools/sku-atlas/pkg/services/config"
	"github.com/de-tools/sku-atlas/pkg/services/sources"
	"github.com/de-tools/sku-atlas/pkg/services/sources/warehouse"
	"github.com/de-tools/sku-atlas/pkg/store/duckdb"
)

const query = `
	SELECT item_id, ordered_at, quantity, unit_price, revenue
	FROM order_lines
	WHERE dataset = ?
	ORDER BY line_no`

// Factory reads a previously ingested dataset back out of the local DuckDB
// database. Keys: db (path, required), dataset (required). The result uses
// the canonical column names, so ingest.DefaultMapping applies.
func Factory(_ context.Context, profile config.Profile) (sources.Source, error) {
	dbPath := profile.Key("db")
	if dbPath == "" {
		return nil, fmt.Errorf("profile %q has no db path", profile.Name)
	}
	dataset := profile.Key("dataset")
	if dataset == "" {
		return nil, fmt.Errorf("profile %q has no dataset", profile.Name)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: dbPath})
	if err != nil {
		return nil, fmt.Errorf("failed to open local store %s: %w", dbPath, err)
	}

	return warehouse.NewQuerySource(profile.Name, db, query, dataset), nil
}
