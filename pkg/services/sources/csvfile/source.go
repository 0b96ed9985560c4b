package csvfile

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/sku-atlas/pkg/models/store"
	"github.com/de-tools/sku-atlas/pkg/services/config"
	"github.com/de-tools/sku-atlas/pkg/services/sources"
)

type source struct {
	name  string
	path  string
	comma rune
}

// Factory creates a local-file source from a profile.
// Keys: path (required), delimiter (optional, single character).
func Factory(_ context.Context, profile config.Profile) (sources.Source, error) {
	path := profile.Key("path")
	if path == "" {
		return nil, fmt.Errorf("profile %q has no path", profile.Name)
	}

	comma, err := sources.Delimiter(profile)
	if err != nil {
		return nil, err
	}

	return New(profile.Name, path, comma), nil
}

// New creates a source reading a delimited file from the local filesystem.
func New(name, path string, comma rune) sources.Source {
	return &source{name: name, path: path, comma: comma}
}

func (s *source) Name() string { return s.name }

func (s *source) Fetch(_ context.Context) (*store.RawTable, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	table, err := sources.ReadCSV(f, s.comma)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	return table, nil
}
