package classify

import "fmt"

// Scale maps a value onto ordered bands separated by ascending bounds.
// A closed scale treats bounds as inclusive upper bounds, a value equal to
// bounds[i] belongs to labels[i]. An open scale treats bounds as exclusive,
// a value equal to bounds[i] already belongs to labels[i+1].
type Scale struct {
	bounds []float64
	labels []string
	open   bool
}

// NewScale builds a closed scale.
func NewScale(bounds []float64, labels []string) (*Scale, error) {
	return newScale(bounds, labels, false)
}

// NewOpenScale builds an open scale.
func NewOpenScale(bounds []float64, labels []string) (*Scale, error) {
	return newScale(bounds, labels, true)
}

func newScale(bounds []float64, labels []string, open bool) (*Scale, error) {
	if len(labels) != len(bounds)+1 {
		return nil, fmt.Errorf("want %d labels for %d bounds, got %d", len(bounds)+1, len(bounds), len(labels))
	}
	for i := 1; i < len(bounds); i++ {
		if bounds[i] <= bounds[i-1] {
			return nil, fmt.Errorf("bounds must be strictly ascending, got %v", bounds)
		}
	}
	return &Scale{bounds: bounds, labels: labels, open: open}, nil
}

// Of is total over finite values: every input maps to exactly one label.
func (s *Scale) Of(v float64) string {
	for i, b := range s.bounds {
		if v < b || (!s.open && v == b) {
			return s.labels[i]
		}
	}
	return s.labels[len(s.labels)-1]
}
