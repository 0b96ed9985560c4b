package api

import "time"

type Dataset struct {
	Name       string    `json:"name"`
	Source     string    `json:"source"`
	IngestedAt time.Time `json:"ingested_at"`
	Rows       int64     `json:"rows"`
}

type DatasetStats struct {
	RecordsCount   int64      `json:"records_count"`
	FirstOrderTime *time.Time `json:"first_order_time,omitempty"`
	LastOrderTime  *time.Time `json:"last_order_time,omitempty"`
}
