package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/databricks/databricks-sql-go"
	"github.com/de-tools/sku-atlas/pkg/services/config"
	"github.com/de-tools/sku-atlas/pkg/services/sources"
)

// DatabricksFactory opens a SQL warehouse connection from a profile.
// Keys: host, token, http_path (required), catalog, schema (optional),
// plus table or query.
func DatabricksFactory(_ context.Context, profile config.Profile) (sources.Source, error) {
	cfg, err := config.DatabricksConfig(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to load databricks config: %w", err)
	}

	httpPath := profile.Key("http_path")
	if httpPath == "" {
		return nil, fmt.Errorf("profile %q has no http_path", profile.Name)
	}

	query, err := queryFor(profile)
	if err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("token:%s@%s%s", cfg.Token, cfg.Host, httpPath)

	params := url.Values{}
	if catalog := profile.Key("catalog"); catalog != "" {
		params.Set("catalog", catalog)
	}
	if schema := profile.Key("schema"); schema != "" {
		params.Set("schema", schema)
	}
	if qp := params.Encode(); qp != "" {
		dsn = dsn + "?" + qp
	}

	db, err := sql.Open("databricks", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Databricks: %w", err)
	}

	return NewQuerySource(profile.Name, db, query), nil
}
