package api

type ReorderPoint struct {
	Item            string  `json:"item_id"`
	TotalDemand     float64 `json:"total_demand"`
	MeanDailyDemand float64 `json:"mean_daily_demand"`
	StdDailyDemand  float64 `json:"std_daily_demand"`
	SafetyStock     float64 `json:"safety_stock"`
	Point           float64 `json:"reorder_point"`
	NoDemand        bool    `json:"no_demand,omitempty"`
}

type ReorderReport struct {
	Period       TimePeriod     `json:"period"`
	LeadTimeDays int            `json:"lead_time_days"`
	ServiceLevel float64        `json:"service_level"`
	Points       []ReorderPoint `json:"points"`
}
