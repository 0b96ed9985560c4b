package main

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/sku-atlas/pkg/runtime/terminal"
	"github.com/de-tools/sku-atlas/pkg/services/sources"
	"github.com/de-tools/sku-atlas/pkg/services/sources/azblob"
	"github.com/de-tools/sku-atlas/pkg/services/sources/csvfile"
	"github.com/de-tools/sku-atlas/pkg/services/sources/localdb"
	"github.com/de-tools/sku-atlas/pkg/services/sources/s3"
	"github.com/de-tools/sku-atlas/pkg/services/sources/warehouse"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger()

	registry := sources.NewRegistry()
	factories := map[string]sources.Factory{
		"csv":        csvfile.Factory,
		"s3":         s3.Factory,
		"azblob":     azblob.Factory,
		"databricks": warehouse.DatabricksFactory,
		"snowflake":  warehouse.SnowflakeFactory,
		"duckdb":     localdb.Factory,
	}
	for platform, factory := range factories {
		if err := registry.Register(platform, factory); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	cli := terminal.NewCLI(terminal.Options{
		Registry: registry,
		Output:   os.Stdout,
	})

	if err := cli.Execute(logger.WithContext(context.Background())); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
