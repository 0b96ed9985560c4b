package api

import "time"

type TimePeriod struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration int       `json:"duration_days"`
}

type RankedItem struct {
	Item              string  `json:"item_id"`
	TotalQuantity     float64 `json:"total_quantity"`
	TotalRevenue      float64 `json:"total_revenue"`
	CumulativeRevenue float64 `json:"cumulative_revenue"`
	RevenueShare      float64 `json:"revenue_share_pct"`
	CumulativePct     float64 `json:"cumulative_revenue_pct"`
	Tier              string  `json:"abc_tier"`
}

type ItemVariability struct {
	Item       string  `json:"item_id"`
	MeanDemand float64 `json:"mean_demand"`
	StdDemand  float64 `json:"std_demand"`
	CV         float64 `json:"cov"`
	Undefined  bool    `json:"undefined,omitempty"`
	Tier       string  `json:"xyz_tier"`
}

type ClassifiedItem struct {
	Item          string  `json:"item_id"`
	ABC           string  `json:"abc_tier"`
	XYZ           string  `json:"xyz_tier"`
	Label         string  `json:"class"`
	TotalQuantity float64 `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
	CV            float64 `json:"cov"`
}

type ClassSummary struct {
	Label        string  `json:"class"`
	ItemCount    int     `json:"item_count"`
	TotalDemand  float64 `json:"total_demand"`
	AvgDemand    float64 `json:"avg_demand"`
	TotalRevenue float64 `json:"total_revenue"`
}

type Classification struct {
	Period            TimePeriod        `json:"period"`
	Granularity       string            `json:"granularity"`
	Periods           int               `json:"periods"`
	GrandTotalRevenue float64           `json:"grand_total_revenue"`
	Ranking           []RankedItem      `json:"ranking"`
	Variability       []ItemVariability `json:"variability"`
	Items             []ClassifiedItem  `json:"items"`
	Summaries         []ClassSummary    `json:"summaries"`
	UndefinedItems    []string          `json:"undefined_items,omitempty"`
}
