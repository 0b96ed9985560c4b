package domain

import (
	"fmt"
	"time"
)

// Window is a half-open analysis range: Start is included, End is not.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

func (w Window) Validate() error {
	if w.Start.IsZero() || w.End.IsZero() {
		return fmt.Errorf("window start and end must both be set")
	}
	if !w.End.After(w.Start) {
		return fmt.Errorf("window end %s must be after start %s",
			w.End.Format(time.RFC3339), w.Start.Format(time.RFC3339))
	}
	return nil
}

// Days returns the number of calendar days the window touches.
func (w Window) Days() int {
	return dayIndex(w.Start, w.End.Add(-time.Nanosecond)) + 1
}

func (w Window) String() string {
	return fmt.Sprintf("[%s, %s)", w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
}

// Granularity selects the sub-period length used when a window is
// split into demand buckets.
type Granularity string

const (
	GranularityDay     Granularity = "day"
	GranularityMonth   Granularity = "month"
	GranularityQuarter Granularity = "quarter"
)

func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityDay, GranularityMonth, GranularityQuarter:
		return Granularity(s), nil
	default:
		return "", fmt.Errorf("unsupported granularity %q (want day, month or quarter)", s)
	}
}

// Bucketer assigns order timestamps to consecutive sub-periods of a window.
// The number of sub-periods is fixed up front so that buckets without any
// demand still count towards variability.
type Bucketer struct {
	window      Window
	granularity Granularity
	periods     int
}

func NewBucketer(w Window, g Granularity) (*Bucketer, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	last := w.End.Add(-time.Nanosecond)
	var periods int
	switch g {
	case GranularityDay:
		periods = dayIndex(w.Start, last) + 1
	case GranularityMonth:
		periods = monthIndex(w.Start, last) + 1
	case GranularityQuarter:
		periods = quarterIndex(w.Start, last) + 1
	default:
		return nil, fmt.Errorf("unsupported granularity %q", g)
	}
	return &Bucketer{window: w, granularity: g, periods: periods}, nil
}

func (b *Bucketer) Periods() int { return b.periods }

func (b *Bucketer) Granularity() Granularity { return b.granularity }

// Index returns the zero-based sub-period t falls into. Timestamps outside
// the window are an error, callers are expected to filter first.
func (b *Bucketer) Index(t time.Time) (int, error) {
	if !b.window.Contains(t) {
		return 0, fmt.Errorf("timestamp %s outside window %s", t.Format(time.RFC3339), b.window)
	}
	switch b.granularity {
	case GranularityDay:
		return dayIndex(b.window.Start, t), nil
	case GranularityQuarter:
		return quarterIndex(b.window.Start, t), nil
	default:
		return monthIndex(b.window.Start, t), nil
	}
}

// dayIndex counts calendar days between the dates of start and t. Dates are
// compared in UTC so the count is stable across DST transitions.
func dayIndex(start, t time.Time) int {
	return int(civilDate(t).Sub(civilDate(start)).Hours() / 24)
}

func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func monthIndex(start, t time.Time) int {
	return (t.Year()-start.Year())*12 + int(t.Month()) - int(start.Month())
}

func quarterIndex(start, t time.Time) int {
	return (t.Year()-start.Year())*4 + (int(t.Month())-1)/3 - (int(start.Month())-1)/3
}
