package ingest

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/sku-atlas/pkg/models/domain"
	"github.com/de-tools/sku-atlas/pkg/models/store"
	"github.com/rs/zerolog"
)

const (
	fieldItem      = "item"
	fieldQuantity  = "quantity"
	fieldRevenue   = "revenue"
	fieldUnitPrice = "unit_price"
	fieldTimestamp = "timestamp"
)

// Options control how a raw table is normalized.
type Options struct {
	Mapping FieldMapping
	Window  domain.Window
	// SkipMalformed drops rows that fail validation instead of aborting the
	// run. Dropped rows are counted and their errors collected in Stats.
	SkipMalformed bool
}

// Stats describes what happened to the rows of one table.
type Stats struct {
	RowsRead         int
	Ingested         int
	OutOfWindow      int
	SkippedMalformed int
	RowErrors        []error
}

// Normalize validates a raw table against the field mapping and produces
// order lines ready for aggregation. Rows with timestamps outside the window
// are dropped and counted, never reported as errors.
func Normalize(ctx context.Context, table *store.RawTable, opts Options) ([]domain.OrderLine, *Stats, error) {
	logger := zerolog.Ctx(ctx)

	if table == nil {
		return nil, nil, fmt.Errorf("raw table is nil")
	}
	if err := opts.Mapping.Validate(); err != nil {
		return nil, nil, err
	}
	if err := opts.Window.Validate(); err != nil {
		return nil, nil, err
	}

	idx, err := resolveColumns(table.Columns, opts.Mapping)
	if err != nil {
		return nil, nil, err
	}

	layout := opts.Mapping.layout()
	stats := &Stats{}
	lines := make([]domain.OrderLine, 0, len(table.Rows))

	for i, row := range table.Rows {
		stats.RowsRead++

		line, err := parseRow(i+1, row, idx, layout)
		if err != nil {
			if opts.SkipMalformed {
				stats.SkippedMalformed++
				stats.RowErrors = append(stats.RowErrors, err)
				continue
			}
			return nil, nil, err
		}

		if !opts.Window.Contains(line.OrderedAt) {
			stats.OutOfWindow++
			continue
		}

		lines = append(lines, line)
		stats.Ingested++
	}

	logger.Debug().
		Int("rows_read", stats.RowsRead).
		Int("ingested", stats.Ingested).
		Int("out_of_window", stats.OutOfWindow).
		Int("skipped_malformed", stats.SkippedMalformed).
		Msg("normalized raw table")

	return lines, stats, nil
}

// columnIndex holds resolved column positions, -1 for unmapped fields.
type columnIndex struct {
	item      int
	quantity  int
	timestamp int
	revenue   int
	unitPrice int
}

func resolveColumns(columns []string, m FieldMapping) (*columnIndex, error) {
	lookup := make(map[string]int, len(columns))
	for i, c := range columns {
		lookup[strings.ToLower(strings.TrimSpace(c))] = i
	}

	find := func(name string) (int, error) {
		if name == "" {
			return -1, nil
		}
		i, ok := lookup[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, fmt.Errorf("column %q not found in input (have %v)", name, columns)
		}
		return i, nil
	}

	idx := &columnIndex{}
	var err error
	if idx.item, err = find(m.Item); err != nil {
		return nil, err
	}
	if idx.quantity, err = find(m.Quantity); err != nil {
		return nil, err
	}
	if idx.timestamp, err = find(m.Timestamp); err != nil {
		return nil, err
	}
	if idx.revenue, err = find(m.Revenue); err != nil {
		return nil, err
	}
	if idx.unitPrice, err = find(m.UnitPrice); err != nil {
		return nil, err
	}
	return idx, nil
}

func parseRow(row int, cells []string, idx *columnIndex, layout string) (domain.OrderLine, error) {
	var line domain.OrderLine

	item, err := cellAt(row, cells, idx.item, fieldItem)
	if err != nil {
		return line, err
	}
	if item == "" {
		return line, &MalformedRecordError{Row: row, Field: fieldItem, Value: "", Err: errEmptyCell}
	}

	rawTS, err := cellAt(row, cells, idx.timestamp, fieldTimestamp)
	if err != nil {
		return line, err
	}
	ts, err := time.Parse(layout, rawTS)
	if err != nil {
		return line, &InvalidTimestampError{Row: row, Value: rawTS, Layout: layout, Err: err}
	}

	qty, err := amountAt(row, cells, idx.quantity, fieldQuantity, true)
	if err != nil {
		return line, err
	}

	// Revenue comes from the revenue column when mapped, otherwise it is
	// derived from unit price.
	var revenue, unitPrice float64
	if idx.unitPrice >= 0 {
		required := idx.revenue < 0
		unitPrice, err = amountAt(row, cells, idx.unitPrice, fieldUnitPrice, required)
		if err != nil {
			return line, err
		}
	}
	if idx.revenue >= 0 {
		revenue, err = amountAt(row, cells, idx.revenue, fieldRevenue, true)
		if err != nil {
			return line, err
		}
	} else {
		revenue = unitPrice * qty
	}

	line = domain.OrderLine{
		Item:      domain.ItemID(item),
		OrderedAt: ts,
		Quantity:  qty,
		UnitPrice: unitPrice,
		Revenue:   revenue,
	}
	return line, nil
}

func cellAt(row int, cells []string, i int, field string) (string, error) {
	if i >= len(cells) {
		return "", &MalformedRecordError{Row: row, Field: field, Value: "", Err: errMissingCell}
	}
	return strings.TrimSpace(cells[i]), nil
}

// amountAt parses a non-negative numeric cell. Optional fields may be empty
// and default to zero.
func amountAt(row int, cells []string, i int, field string, required bool) (float64, error) {
	raw, err := cellAt(row, cells, i, field)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		if required {
			return 0, &MalformedRecordError{Row: row, Field: field, Value: "", Err: errEmptyCell}
		}
		return 0, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &MalformedRecordError{Row: row, Field: field, Value: raw, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &MalformedRecordError{Row: row, Field: field, Value: raw, Err: errNotFinite}
	}
	if v < 0 {
		return 0, &MalformedRecordError{Row: row, Field: field, Value: raw, Err: errNegative}
	}
	return v, nil
}
