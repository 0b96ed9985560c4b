package config

import (
	"fmt"

	dbcfg "github.com/databricks/databricks-sdk-go/config"
)

// DatabricksConfig maps a profile onto the Databricks SDK credentials carrier.
// Profiles keep the same key names as a ~/.databrickscfg section, so an existing
// section can be pasted into the source registry unchanged.
func DatabricksConfig(profile Profile) (*dbcfg.Config, error) {
	host := profile.Key("host")
	token := profile.Key("token")

	if host == "" || token == "" {
		return nil, fmt.Errorf("profile %q is missing host or token", profile.Name)
	}

	return &dbcfg.Config{
		Host:  host,
		Token: token,
	}, nil
}
