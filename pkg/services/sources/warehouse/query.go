package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/de-tools/sku-atlas/pkg/models/store"
	"github.com/de-tools/sku-atlas/pkg/services/config"
	"github.com/de-tools/sku-atlas/pkg/services/sources"
	"github.com/rs/zerolog"
)

// querySource runs one SQL statement against a warehouse connection and
// materializes the result set as a raw table. Cells are rendered to strings;
// the ingestor re-parses them against the field mapping like any other
// tabular input, so every warehouse shares the same validation path.
type querySource struct {
	name  string
	db    *sql.DB
	query string
	args  []any
}

// NewQuerySource wraps an open connection; callers own the driver choice.
func NewQuerySource(name string, db *sql.DB, query string, args ...any) sources.Source {
	return &querySource{name: name, db: db, query: query, args: args}
}

func (s *querySource) Name() string { return s.name }

func (s *querySource) Fetch(ctx context.Context) (*store.RawTable, error) {
	rows, err := s.db.QueryContext(ctx, s.query, s.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run query for %s: %w", s.name, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	table := &store.RawTable{Columns: columns}
	for rows.Next() {
		cells := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row %d: %w", len(table.Rows)+1, err)
		}

		record := make([]string, len(columns))
		for i, cell := range cells {
			record[i] = renderCell(cell)
		}
		table.Rows = append(table.Rows, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to drain result set: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("source", s.name).
		Int("rows", len(table.Rows)).
		Msg("warehouse query materialized")

	return table, nil
}

// renderCell turns a driver value into the string form the field mapping
// parsers expect. Timestamps render as RFC 3339, floats keep full precision.
func renderCell(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case []byte:
		return string(c)
	case time.Time:
		return c.UTC().Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(c), 'f', -1, 32)
	case int64:
		return strconv.FormatInt(c, 10)
	case bool:
		return strconv.FormatBool(c)
	default:
		return fmt.Sprint(c)
	}
}

// queryFor resolves the statement a profile asks for: an explicit query key
// wins, otherwise the table key expands to a full scan.
func queryFor(profile config.Profile) (string, error) {
	if q := profile.Key("query"); q != "" {
		return q, nil
	}
	if t := profile.Key("table"); t != "" {
		return fmt.Sprintf("SELECT * FROM %s", t), nil
	}
	return "", fmt.Errorf("profile %q needs a table or query key", profile.Name)
}
