package orders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/sku-atlas/pkg/models/store"
	"github.com/de-tools/sku-atlas/pkg/store/duckdb"
)

// ErrDatasetNotFound marks lookups of datasets that were never loaded.
var ErrDatasetNotFound = errors.New("dataset not found")

// Store supports both ingestion (CreateDataset/Add/FinishDataset) and read
// operations over the local order line tables. Write methods honor a
// transaction travelling in the context via duckdb.WithTransaction.
type Store interface {
	CreateDataset(ctx context.Context, name, source string) error
	Add(ctx context.Context, dataset string, records []store.OrderLineRecord) error
	FinishDataset(ctx context.Context, name string, rows int64) error
	ListDatasets(ctx context.Context) ([]store.DatasetRecord, error)
	GetDataset(ctx context.Context, name string) (*store.DatasetRecord, error)
	GetWindow(ctx context.Context, dataset string, startTime, endTime time.Time) ([]store.OrderLineRecord, error)
	GetStats(ctx context.Context, dataset string) (*store.DatasetStats, error)
}

type orderStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &orderStore{db: db}, nil
}

// CreateDataset registers a dataset and clears any lines left from an
// earlier load, so re-ingesting a source replaces rather than duplicates.
func (s *orderStore) CreateDataset(ctx context.Context, name, source string) error {
	if name == "" {
		return fmt.Errorf("dataset name is required")
	}

	statements := []struct {
		query string
		args  []any
	}{
		{`DELETE FROM order_lines WHERE dataset = ?`, []any{name}},
		{`DELETE FROM datasets WHERE name = ?`, []any{name}},
		{`INSERT INTO datasets (name, source, ingested_at, rows) VALUES (?, ?, ?, ?)`,
			[]any{name, source, time.Now().UTC(), int64(0)}},
	}

	for _, st := range statements {
		if err := s.exec(ctx, st.query, st.args...); err != nil {
			return fmt.Errorf("create dataset %q: %w", name, err)
		}
	}
	return nil
}

func (s *orderStore) Add(ctx context.Context, dataset string, records []store.OrderLineRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx := duckdb.GetTransaction(ctx)
	query := `
		INSERT INTO order_lines (
			dataset, line_no, item_id, ordered_at, quantity, unit_price, revenue
		) VALUES (?, ?, ?, ?, ?, ?, ?)`

	var stmt *sql.Stmt
	var err error
	if tx == nil {
		stmt, err = s.db.PrepareContext(ctx, query)
	} else {
		stmt, err = tx.PrepareContext(ctx, query)
	}

	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		_, err = stmt.ExecContext(ctx,
			dataset,
			record.LineNo,
			record.ItemID,
			record.OrderedAt,
			record.Quantity,
			record.UnitPrice,
			record.Revenue,
		)

		if err != nil {
			return fmt.Errorf("insert order line %d: %w", record.LineNo, err)
		}
	}

	return nil
}

func (s *orderStore) FinishDataset(ctx context.Context, name string, rows int64) error {
	if err := s.exec(ctx, `UPDATE datasets SET rows = ? WHERE name = ?`, rows, name); err != nil {
		return fmt.Errorf("finish dataset %q: %w", name, err)
	}
	return nil
}

func (s *orderStore) ListDatasets(ctx context.Context) ([]store.DatasetRecord, error) {
	query := `SELECT name, source, ingested_at, rows FROM datasets ORDER BY name`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list datasets: %w", err)
	}
	defer rows.Close()

	datasets := make([]store.DatasetRecord, 0)
	for rows.Next() {
		var d store.DatasetRecord
		if err := rows.Scan(&d.Name, &d.Source, &d.IngestedAt, &d.Rows); err != nil {
			return nil, err
		}
		datasets = append(datasets, d)
	}
	return datasets, rows.Err()
}

func (s *orderStore) GetDataset(ctx context.Context, name string) (*store.DatasetRecord, error) {
	query := `SELECT name, source, ingested_at, rows FROM datasets WHERE name = ?`
	var d store.DatasetRecord
	err := s.db.QueryRowContext(ctx, query, name).Scan(&d.Name, &d.Source, &d.IngestedAt, &d.Rows)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("dataset %q: %w", name, ErrDatasetNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get dataset %q: %w", name, err)
	}
	return &d, nil
}

func (s *orderStore) GetWindow(
	ctx context.Context,
	dataset string,
	startTime, endTime time.Time,
) ([]store.OrderLineRecord, error) {
	query := `
		SELECT dataset, line_no, item_id, ordered_at, quantity, unit_price, revenue
		FROM order_lines
		WHERE dataset = ? AND ordered_at >= ? AND ordered_at < ?
		ORDER BY line_no
	`
	rows, err := s.db.QueryContext(ctx, query, dataset, startTime, endTime)
	if err != nil {
		return nil, fmt.Errorf("query order lines: %w", err)
	}
	defer rows.Close()

	records := make([]store.OrderLineRecord, 0)
	for rows.Next() {
		var r store.OrderLineRecord
		if err := rows.Scan(&r.Dataset, &r.LineNo, &r.ItemID, &r.OrderedAt,
			&r.Quantity, &r.UnitPrice, &r.Revenue); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *orderStore) GetStats(ctx context.Context, dataset string) (*store.DatasetStats, error) {
	query := `
		SELECT COUNT(*) as total_records, MIN(ordered_at) as first_order, MAX(ordered_at) as last_order
		FROM order_lines
		WHERE dataset = ?`
	var total int64
	var first, last sql.NullTime
	if err := s.db.QueryRowContext(ctx, query, dataset).Scan(&total, &first, &last); err != nil {
		return nil, fmt.Errorf("get dataset stats: %w", err)
	}

	stats := &store.DatasetStats{RecordsCount: total}
	if first.Valid {
		t := first.Time
		stats.FirstOrderTime = &t
	}
	if last.Valid {
		t := last.Time
		stats.LastOrderTime = &t
	}
	return stats, nil
}

func (s *orderStore) exec(ctx context.Context, query string, args ...any) error {
	if tx := duckdb.GetTransaction(ctx); tx != nil {
		_, err := tx.ExecContext(ctx, query, args...)
		return err
	}
	_, err := s.db.ExecContext(ctx, query, args...)
	return err
}
