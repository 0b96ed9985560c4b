package reorder

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/de-tools/sku-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
)

// Settings contains configurable parameters for reorder point analysis
type Settings struct {
	// LeadTimeDays is the expected replenishment lead time (default: 7)
	LeadTimeDays int
	// ServiceLevel is the demand coverage target during lead time, must be
	// one of the supported levels (default: 0.95)
	ServiceLevel float64
}

// DefaultSettings returns the default configuration for reorder point analysis
func DefaultSettings() Settings {
	return Settings{
		LeadTimeDays: 7,
		ServiceLevel: 0.95,
	}
}

func (s Settings) Validate() error {
	if s.LeadTimeDays <= 0 {
		return fmt.Errorf("lead time must be positive, got %d days", s.LeadTimeDays)
	}
	if _, err := zScore(s.ServiceLevel); err != nil {
		return err
	}
	return nil
}

// Compute derives a reorder point per item from daily demand over the
// window: safety stock = z * std(daily demand) * sqrt(lead time), reorder
// point = mean daily demand * lead time + safety stock. Results are sorted
// by reorder point descending, ties broken by item id.
func Compute(ctx context.Context, lines []domain.OrderLine, window domain.Window, settings Settings) ([]domain.ReorderPoint, error) {
	logger := zerolog.Ctx(ctx)

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	z, err := zScore(settings.ServiceLevel)
	if err != nil {
		return nil, err
	}

	bucketer, err := domain.NewBucketer(window, domain.GranularityDay)
	if err != nil {
		return nil, err
	}
	days := bucketer.Periods()

	series := make(map[domain.ItemID][]float64)
	for _, l := range lines {
		i, err := bucketer.Index(l.OrderedAt)
		if err != nil {
			return nil, err
		}
		s, ok := series[l.Item]
		if !ok {
			s = make([]float64, days)
			series[l.Item] = s
		}
		s[i] += l.Quantity
	}

	items := maps.Keys(series)
	slices.Sort(items)

	lead := float64(settings.LeadTimeDays)
	points := make([]domain.ReorderPoint, 0, len(items))

	for _, item := range items {
		buckets := series[item]

		var total float64
		for _, q := range buckets {
			total += q
		}

		rp := domain.ReorderPoint{Item: item, TotalDemand: total}
		if total == 0 {
			rp.NoDemand = true
			points = append(points, rp)
			continue
		}

		mean := total / float64(days)
		var sq float64
		for _, q := range buckets {
			d := q - mean
			sq += d * d
		}
		std := math.Sqrt(sq / float64(days))

		rp.MeanDailyDemand = mean
		rp.StdDailyDemand = std
		rp.SafetyStock = z * std * math.Sqrt(lead)
		rp.Point = mean*lead + rp.SafetyStock
		points = append(points, rp)
	}

	slices.SortFunc(points, func(a, b domain.ReorderPoint) int {
		if a.Point != b.Point {
			return cmp.Compare(b.Point, a.Point)
		}
		return cmp.Compare(a.Item, b.Item)
	})

	logger.Info().
		Int("items", len(points)).
		Int("window_days", days).
		Int("lead_time_days", settings.LeadTimeDays).
		Float64("service_level", settings.ServiceLevel).
		Msg("reorder point analysis complete")

	return points, nil
}
