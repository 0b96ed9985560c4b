package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/sku-atlas/pkg/server"
	"github.com/de-tools/sku-atlas/pkg/services/dataset"
	"github.com/de-tools/sku-atlas/pkg/store/duckdb"
	orderstore "github.com/de-tools/sku-atlas/pkg/store/duckdb/orders"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var dbPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the Sku Atlas web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&dbPath, "db", "d", "sku-atlas.db",
		"Path to the local DuckDB database holding ingested datasets")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if envPath := os.Getenv("SKU_ATLAS_DB"); envPath != "" && !cmd.Flags().Changed("db") {
		dbPath = envPath
	}

	db, err := duckdb.NewDB(duckdb.Settings{
		DbPath: dbPath,
	})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}

	store, err := orderstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create order line store: %w", err)
	}

	explorer, err := dataset.NewExplorer(store)
	if err != nil {
		return fmt.Errorf("failed to create dataset explorer: %w", err)
	}

	datasets, err := explorer.ListDatasets(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list datasets: %w", err)
	}
	logger.Info().Msgf("Database `%s` holds %d dataset(s).", dbPath, len(datasets))
	for _, ds := range datasets {
		logger.Info().Msgf("Name: `%s`, Source: `%s`, Rows: %d", ds.Name, ds.Source, ds.Rows)
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Explorer: explorer,
			Logger:   logger,
		},
	})

	return api.Start()
}
