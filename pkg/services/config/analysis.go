package config

import (
	"fmt"
	"time"

	"github.com/de-tools/sku-atlas/pkg/models/domain"
	"github.com/de-tools/sku-atlas/pkg/services/classify"
	"github.com/de-tools/sku-atlas/pkg/services/ingest"
	"github.com/spf13/viper"
)

// AnalysisConfig is the file-backed configuration of one classification run:
// where the canonical order line fields live in the source table, the
// analysis window, and optional threshold overrides.
type AnalysisConfig struct {
	Mapping       ingest.FieldMapping `mapstructure:"mapping"`
	Window        WindowConfig        `mapstructure:"window"`
	ABCThresholds []float64           `mapstructure:"abc_thresholds"`
	XYZThresholds []float64           `mapstructure:"xyz_thresholds"`
	Granularity   string              `mapstructure:"granularity"`
}

type WindowConfig struct {
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`
}

func LoadAnalysisConfig(path string) (*AnalysisConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AnalysisConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse analysis config: %w", err)
	}
	return &cfg, nil
}

// ParseTime accepts a plain date or an RFC3339 timestamp.
func ParseTime(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse %q as date or RFC3339 timestamp", s)
	}
	return t, nil
}

// ParseWindow resolves the configured window bounds.
func (c *AnalysisConfig) ParseWindow() (domain.Window, error) {
	if c.Window.Start == "" || c.Window.End == "" {
		return domain.Window{}, fmt.Errorf("window start and end must both be configured")
	}
	start, err := ParseTime(c.Window.Start)
	if err != nil {
		return domain.Window{}, fmt.Errorf("invalid window start: %w", err)
	}
	end, err := ParseTime(c.Window.End)
	if err != nil {
		return domain.Window{}, fmt.Errorf("invalid window end: %w", err)
	}
	return domain.Window{Start: start, End: end}, nil
}

// Settings converts the file values into classification settings, keeping
// defaults for everything left unset.
func (c *AnalysisConfig) Settings() (classify.Settings, error) {
	window, err := c.ParseWindow()
	if err != nil {
		return classify.Settings{}, err
	}

	settings := classify.DefaultSettings(window)

	switch len(c.ABCThresholds) {
	case 0:
	case 2:
		settings.ABCThresholds = [2]float64{c.ABCThresholds[0], c.ABCThresholds[1]}
	default:
		return classify.Settings{}, fmt.Errorf("abc_thresholds wants exactly two values, got %d", len(c.ABCThresholds))
	}

	switch len(c.XYZThresholds) {
	case 0:
	case 2:
		settings.XYZThresholds = [2]float64{c.XYZThresholds[0], c.XYZThresholds[1]}
	default:
		return classify.Settings{}, fmt.Errorf("xyz_thresholds wants exactly two values, got %d", len(c.XYZThresholds))
	}

	if c.Granularity != "" {
		g, err := domain.ParseGranularity(c.Granularity)
		if err != nil {
			return classify.Settings{}, err
		}
		settings.Granularity = g
	}

	return settings, nil
}
