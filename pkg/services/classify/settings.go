package classify

import (
	"fmt"

	"github.com/de-tools/sku-atlas/pkg/models/domain"
)

// Settings control one classification run. Thresholds are upper bounds,
// ascending, inclusive on the lower tier.
type Settings struct {
	Window      domain.Window
	Granularity domain.Granularity
	// ABCThresholds split cumulative revenue percent into A, B and C.
	ABCThresholds [2]float64
	// XYZThresholds split the coefficient of variation into X, Y and Z.
	XYZThresholds [2]float64
}

func DefaultSettings(window domain.Window) Settings {
	return Settings{
		Window:        window,
		Granularity:   domain.GranularityMonth,
		ABCThresholds: [2]float64{80, 95},
		XYZThresholds: [2]float64{0.5, 1.0},
	}
}

func (s Settings) Validate() error {
	if err := s.Window.Validate(); err != nil {
		return err
	}
	if _, err := domain.ParseGranularity(string(s.Granularity)); err != nil {
		return err
	}
	if s.ABCThresholds[0] <= 0 || s.ABCThresholds[0] >= s.ABCThresholds[1] || s.ABCThresholds[1] > 100 {
		return fmt.Errorf("abc thresholds must satisfy 0 < low < high <= 100, got %v", s.ABCThresholds)
	}
	if s.XYZThresholds[0] <= 0 || s.XYZThresholds[0] >= s.XYZThresholds[1] {
		return fmt.Errorf("xyz thresholds must satisfy 0 < low < high, got %v", s.XYZThresholds)
	}
	return nil
}
