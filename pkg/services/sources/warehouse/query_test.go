package warehouse

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/de-tools/sku-atlas/pkg/services/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuerySource_Fetch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{"item_id", "ordered_at", "quantity", "revenue"}
	orderedAt := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT \\* FROM sales.order_lines").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("widget-1", orderedAt, 10.0, 100.5).
			AddRow([]byte("widget-2"), orderedAt, int64(5), nil))

	src := NewQuerySource("orders", db, "SELECT * FROM sales.order_lines")
	table, err := src.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, cols, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"widget-1", "2024-03-01T12:30:00Z", "10", "100.5"}, table.Rows[0])
	assert.Equal(t, []string{"widget-2", "2024-03-01T12:30:00Z", "5", ""}, table.Rows[1])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuerySource_FetchQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT \\* FROM missing").
		WillReturnError(assert.AnError)

	src := NewQuerySource("orders", db, "SELECT * FROM missing")
	_, err = src.Fetch(context.Background())
	assert.Error(t, err)
}

func TestQueryFor_RequiresTableOrQuery(t *testing.T) {
	_, err := queryFor(config.Profile{Name: "empty"})
	assert.Error(t, err)
}
