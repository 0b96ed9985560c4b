package domain

import "fmt"

// SourceProfile names a configured dataset source and the platform that
// serves it (csv, s3, azblob, databricks, snowflake, duckdb).
type SourceProfile struct {
	Name     string
	Platform string
}

func (p SourceProfile) String() string {
	return fmt.Sprintf("%s:%s", p.Platform, p.Name)
}
