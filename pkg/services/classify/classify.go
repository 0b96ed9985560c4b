package classify

import (
	"context"
	"fmt"

	"github.com/de-tools/sku-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Classifier runs the revenue and variability aggregations over one
// validated order line sequence and joins the results into composite
// classes. A Classifier is immutable after construction and safe for
// concurrent use.
type Classifier struct {
	settings Settings
	abcScale *Scale
	xyzScale *Scale
	bucketer *domain.Bucketer
}

func NewClassifier(settings Settings) (*Classifier, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid classification settings: %w", err)
	}

	// The revenue scale is open: the item crossing a threshold belongs to
	// the tier its revenue started in, so its start share is compared with
	// strict upper bounds.
	abcScale, err := NewOpenScale(settings.ABCThresholds[:], []string{
		string(domain.ABCTierA), string(domain.ABCTierB), string(domain.ABCTierC),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build abc scale: %w", err)
	}

	xyzScale, err := NewScale(settings.XYZThresholds[:], []string{
		string(domain.XYZTierX), string(domain.XYZTierY), string(domain.XYZTierZ),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build xyz scale: %w", err)
	}

	bucketer, err := domain.NewBucketer(settings.Window, settings.Granularity)
	if err != nil {
		return nil, fmt.Errorf("failed to build sub-period bucketer: %w", err)
	}

	return &Classifier{
		settings: settings,
		abcScale: abcScale,
		xyzScale: xyzScale,
		bucketer: bucketer,
	}, nil
}

func (c *Classifier) Settings() Settings { return c.settings }

// Run computes the full classification. The two aggregations read the same
// immutable input and produce disjoint outputs, so they run on independent
// goroutines with a join barrier before combining.
func (c *Classifier) Run(ctx context.Context, lines []domain.OrderLine) (*domain.Classification, error) {
	logger := zerolog.Ctx(ctx)

	var (
		ranking     []domain.RankedItem
		grandTotal  float64
		variability []domain.ItemVariability
		undefined   []domain.ItemID
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ranking, grandTotal, err = rankByRevenue(lines, c.abcScale)
		return err
	})
	g.Go(func() error {
		var err error
		variability, undefined, err = measureVariability(lines, c.bucketer, c.xyzScale)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items, summaries, err := combineClasses(ranking, variability)
	if err != nil {
		return nil, err
	}

	for _, item := range undefined {
		logger.Warn().
			Str("item", string(item)).
			Msg("zero mean demand in window, variability undefined")
	}
	logger.Info().
		Int("items", len(items)).
		Int("periods", c.bucketer.Periods()).
		Float64("grand_total_revenue", grandTotal).
		Msg("classification complete")

	return &domain.Classification{
		Window:            c.settings.Window,
		Granularity:       c.settings.Granularity,
		Periods:           c.bucketer.Periods(),
		GrandTotalRevenue: grandTotal,
		Ranking:           ranking,
		Variability:       variability,
		Items:             items,
		Summaries:         summaries,
		UndefinedItems:    undefined,
	}, nil
}
