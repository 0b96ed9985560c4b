package domain

import "time"

// Dataset is a named batch of order lines loaded into the local store.
type Dataset struct {
	Name       string
	Source     string // profile or path the lines were loaded from
	IngestedAt time.Time
	Rows       int64
}

type DatasetStats struct {
	RecordsCount   int64
	FirstOrderTime *time.Time
	LastOrderTime  *time.Time
}
