package domain

import "time"

// ItemID identifies a stock keeping unit. Inputs may carry numeric codes,
// they are kept verbatim as opaque strings.
type ItemID string

// OrderLine is a single validated order record. Revenue is always resolved:
// when the source carried a unit price instead, Revenue = UnitPrice * Quantity.
type OrderLine struct {
	Item      ItemID
	OrderedAt time.Time
	Quantity  float64
	UnitPrice float64
	Revenue   float64
}
