package domain

// ABCTier buckets items by their share of total revenue.
type ABCTier string

const (
	ABCTierA ABCTier = "A"
	ABCTierB ABCTier = "B"
	ABCTierC ABCTier = "C"
)

// XYZTier buckets items by demand variability.
type XYZTier string

const (
	XYZTierX XYZTier = "X"
	XYZTierY XYZTier = "Y"
	XYZTierZ XYZTier = "Z"
	// XYZTierUndefined marks items whose mean demand in the window is zero,
	// the coefficient of variation has no value for them.
	XYZTierUndefined XYZTier = "U"
)

// RankedItem is one row of the revenue ranking. Items are ordered by
// TotalRevenue descending, ties broken by item id ascending.
type RankedItem struct {
	Item              ItemID
	TotalQuantity     float64
	TotalRevenue      float64
	CumulativeRevenue float64
	RevenueShare      float64 // percent of grand total
	CumulativePct     float64 // running percent at this rank
	Tier              ABCTier
}

// ItemVariability describes demand regularity over the window's sub-periods.
type ItemVariability struct {
	Item       ItemID
	MeanDemand float64 // average quantity per sub-period, zero buckets included
	StdDemand  float64 // population standard deviation
	CV         float64 // StdDemand / MeanDemand, zero when Undefined
	Undefined  bool
	Tier       XYZTier
}

// ClassifiedItem joins the revenue and variability views of one item.
// Label is the two letter composite, e.g. "AX" or "CU".
type ClassifiedItem struct {
	Item          ItemID
	ABC           ABCTier
	XYZ           XYZTier
	Label         string
	TotalQuantity float64
	TotalRevenue  float64
	CV            float64
}

// ClassSummary aggregates all items sharing one composite label.
type ClassSummary struct {
	Label        string
	ItemCount    int
	TotalDemand  float64
	AvgDemand    float64
	TotalRevenue float64
}

// Classification is the complete result of one analysis run.
type Classification struct {
	Window            Window
	Granularity       Granularity
	Periods           int
	GrandTotalRevenue float64
	Ranking           []RankedItem
	Variability       []ItemVariability
	Items             []ClassifiedItem
	Summaries         []ClassSummary
	// UndefinedItems lists items assigned XYZTierUndefined, kept separately
	// so callers can surface them without scanning Variability.
	UndefinedItems []ItemID
}
