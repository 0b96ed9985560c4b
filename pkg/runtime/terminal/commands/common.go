package commands

import (
	"context"
	"fmt"

	"github.com/de-tools/sku-atlas/pkg/models/domain"
	"github.com/de-tools/sku-atlas/pkg/services/classify"
	"github.com/de-tools/sku-atlas/pkg/services/config"
	"github.com/de-tools/sku-atlas/pkg/services/sources"
	"github.com/de-tools/sku-atlas/pkg/services/sources/csvfile"
	"github.com/spf13/cobra"
)

// sourceFlags pick where a command reads its order lines from: either a
// local file directly, or a named profile from the sources registry.
type sourceFlags struct {
	filePath    string
	profilePath string
	profileName string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.filePath, "file", "", "Path to a local CSV file with order lines")
	cmd.Flags().StringVar(&f.profilePath, "profiles", "sources.ini", "Path to the source profiles file")
	cmd.Flags().StringVar(&f.profileName, "source", "", "Name of the source profile to read from")
}

func (f *sourceFlags) resolve(ctx context.Context, registry sources.Registry) (sources.Source, error) {
	if f.filePath != "" && f.profileName != "" {
		return nil, fmt.Errorf("--file and --source are mutually exclusive")
	}

	if f.filePath != "" {
		return csvfile.New("csv:"+f.filePath, f.filePath, ','), nil
	}

	if f.profileName == "" {
		return nil, fmt.Errorf("either --file or --source is required")
	}

	profiles, err := config.NewRegistry(f.profilePath)
	if err != nil {
		return nil, err
	}
	profile, err := profiles.GetProfile(ctx, f.profileName)
	if err != nil {
		return nil, err
	}
	return registry.Create(ctx, profile)
}

// applyWindowFlags overrides the configured analysis window from --from/--to.
func applyWindowFlags(settings *classify.Settings, from, to string) error {
	if from == "" && to == "" {
		return nil
	}
	if from == "" || to == "" {
		return fmt.Errorf("--from and --to must be passed together")
	}

	start, err := config.ParseTime(from)
	if err != nil {
		return fmt.Errorf("invalid --from: %w", err)
	}
	end, err := config.ParseTime(to)
	if err != nil {
		return fmt.Errorf("invalid --to: %w", err)
	}

	settings.Window = domain.Window{Start: start, End: end}
	return settings.Window.Validate()
}
