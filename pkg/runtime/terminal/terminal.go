package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/sku-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/sku-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/sku-atlas/pkg/services/sources"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	registry sources.Registry
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry sources.Registry
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		registry: opts.Registry,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skuatlas",
		Short: "ABC-XYZ inventory analysis tool",
	}

	cmd.AddCommand(commands.NewClassifyCmd(cli.registry, cli.reporter))
	cmd.AddCommand(commands.NewReorderCmd(cli.registry, cli.reporter))
	cmd.AddCommand(commands.NewInsightsCmd(cli.registry, cli.reporter))
	cmd.AddCommand(commands.NewIngestCmd(cli.registry))
	cmd.AddCommand(commands.NewSourcesCmd(cli.registry))

	return cmd
}
