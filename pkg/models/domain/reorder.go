package domain

// ReorderPoint is the replenishment trigger level for one item, derived
// from daily demand over the analysis window.
type ReorderPoint struct {
	Item            ItemID
	TotalDemand     float64
	MeanDailyDemand float64
	StdDailyDemand  float64
	SafetyStock     float64
	Point           float64 // MeanDailyDemand * lead time + SafetyStock
	NoDemand        bool    // item had no movement inside the window
}
