package store

import "time"

// RawTable is an untyped tabular payload as returned by a dataset source.
// Every cell is a string, parsing and validation happen during ingestion.
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// OrderLineRecord is one normalized order line as persisted locally.
// LineNo is assigned sequentially during load and keeps reads in source
// order; reloading a dataset replaces its lines wholesale.
type OrderLineRecord struct {
	Dataset   string
	LineNo    int64
	ItemID    string
	OrderedAt time.Time
	Quantity  float64
	UnitPrice float64
	Revenue   float64
}

type DatasetRecord struct {
	Name       string
	Source     string
	IngestedAt time.Time
	Rows       int64
}

type DatasetStats struct {
	RecordsCount   int64
	FirstOrderTime *time.Time
	LastOrderTime  *time.Time
}
