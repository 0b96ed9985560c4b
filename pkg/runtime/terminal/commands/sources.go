package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/sku-atlas/pkg/services/config"
	"github.com/de-tools/sku-atlas/pkg/services/sources"
	"github.com/spf13/cobra"
)

type SourcesCmd struct {
	profilePath string
	registry    sources.Registry
}

func NewSourcesCmd(registry sources.Registry) *cobra.Command {
	sc := &SourcesCmd{registry: registry}
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List configured dataset source profiles",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.profilePath, "profiles", "sources.ini", "Path to the source profiles file")

	return cmd
}

func (sc *SourcesCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	profiles, err := config.NewRegistry(sc.profilePath)
	if err != nil {
		return err
	}

	list, err := profiles.GetProfiles(ctx)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No profiles found in %s\n", sc.profilePath)
		return nil
	}

	for _, p := range list {
		fmt.Fprintln(cmd.OutOrStdout(), p.String())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nRegistered platforms: %s\n",
		strings.Join(sc.registry.ListPlatforms(), ", "))

	return nil
}
