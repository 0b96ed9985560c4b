package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const DatasetsSchema = `
	CREATE TABLE IF NOT EXISTS datasets (
		name VARCHAR NOT NULL,
		source VARCHAR NOT NULL,
		ingested_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		rows BIGINT NOT NULL DEFAULT 0,
		PRIMARY KEY (name)
	);
`

const OrderLinesSchema = `
	CREATE TABLE IF NOT EXISTS order_lines (
		dataset VARCHAR NOT NULL,
		line_no BIGINT NOT NULL,
		item_id VARCHAR NOT NULL,
		ordered_at TIMESTAMP NOT NULL,
		quantity DOUBLE NOT NULL,
		unit_price DOUBLE NOT NULL,
		revenue DOUBLE NOT NULL,
		PRIMARY KEY (dataset, line_no)
	);
`

var bootQueries = []string{
	DatasetsSchema,
	OrderLinesSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		bootQueries := append([]string{}, bootQueries...)

		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
