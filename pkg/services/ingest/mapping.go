package ingest

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// DefaultTimeLayout accepts plain dates like 2024-03-01.
const DefaultTimeLayout = "2006-01-02"

// FieldMapping binds the canonical order line fields to column names of the
// incoming table. Column matching is case-insensitive. Either Revenue or
// UnitPrice must be mapped; when only UnitPrice is present, revenue is
// derived as unit price times quantity.
type FieldMapping struct {
	Item       string `mapstructure:"item" validate:"required"`
	Quantity   string `mapstructure:"quantity" validate:"required"`
	Timestamp  string `mapstructure:"timestamp" validate:"required"`
	Revenue    string `mapstructure:"revenue"`
	UnitPrice  string `mapstructure:"unit_price"`
	TimeLayout string `mapstructure:"time_layout"`
}

// DefaultMapping matches the canonical column set used by the local store.
func DefaultMapping() FieldMapping {
	return FieldMapping{
		Item:       "item_id",
		Quantity:   "quantity",
		Timestamp:  "ordered_at",
		Revenue:    "revenue",
		UnitPrice:  "unit_price",
		TimeLayout: time.RFC3339,
	}
}

func (m FieldMapping) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("invalid field mapping: %w", err)
	}
	if m.Revenue == "" && m.UnitPrice == "" {
		return fmt.Errorf("invalid field mapping: one of revenue or unit_price must be mapped")
	}
	return nil
}

func (m FieldMapping) layout() string {
	if m.TimeLayout == "" {
		return DefaultTimeLayout
	}
	return m.TimeLayout
}
