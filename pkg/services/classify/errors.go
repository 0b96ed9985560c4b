package classify

import (
	"fmt"

	"github.com/de-tools/sku-atlas/pkg/models/domain"
)

// DegenerateInputError means no meaningful ranking exists, either because
// the window holds no order lines at all or because every line has zero
// revenue. Assigning tiers in that state would be arbitrary.
type DegenerateInputError struct {
	Reason string
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("degenerate input: %s", e.Reason)
}

// SchemaMismatchError reports that the revenue and variability views cover
// different item universes. The join between them must be total, an item
// present on one side only is a bug upstream, never dropped silently.
type SchemaMismatchError struct {
	MissingFromRanking     []domain.ItemID
	MissingFromVariability []domain.ItemID
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("classification views disagree: %d items missing from revenue ranking, %d missing from variability",
		len(e.MissingFromRanking), len(e.MissingFromVariability))
}
