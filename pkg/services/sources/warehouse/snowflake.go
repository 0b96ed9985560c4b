package warehouse

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/sku-atlas/pkg/services/config"
	"github.com/de-tools/sku-atlas/pkg/services/sources"
	sf "github.com/snowflakedb/gosnowflake"
	"github.com/spf13/viper"
)

// SnowflakeFactory opens a Snowflake connection from a profile.
// Keys: config_file (required, a yaml/json file that unmarshals into
// gosnowflake.Config), plus table or query.
func SnowflakeFactory(_ context.Context, profile config.Profile) (sources.Source, error) {
	configPath := profile.Key("config_file")
	if configPath == "" {
		return nil, fmt.Errorf("profile %q has no config_file", profile.Name)
	}

	cfg, err := loadSnowflakeConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load snowflake config: %w", err)
	}

	query, err := queryFor(profile)
	if err != nil {
		return nil, err
	}

	dsn, err := sf.DSN(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build snowflake DSN: %w", err)
	}

	db, err := sql.Open("snowflake", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Snowflake: %w", err)
	}

	return NewQuerySource(profile.Name, db, query), nil
}

func loadSnowflakeConfig(path string) (*sf.Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg sf.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse snowflake config: %w", err)
	}
	return &cfg, nil
}
