package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/de-tools/sku-atlas/pkg/models/api"
	"github.com/de-tools/sku-atlas/pkg/models/domain"
	orderstore "github.com/de-tools/sku-atlas/pkg/store/duckdb/orders"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockExplorer struct {
	mock.Mock
}

func (m *mockExplorer) ListDatasets(ctx context.Context) ([]domain.Dataset, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Dataset), args.Error(1)
}

func (m *mockExplorer) GetStats(ctx context.Context, name string) (*domain.DatasetStats, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DatasetStats), args.Error(1)
}

func (m *mockExplorer) GetOrderLines(
	ctx context.Context,
	name string,
	window domain.Window,
) ([]domain.OrderLine, error) {
	args := m.Called(ctx, name, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderLine), args.Error(1)
}

func serveWithParam(h http.HandlerFunc, dataset string, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()

	ctx := chi.NewRouteContext()
	ctx.URLParams.Add("dataset", dataset)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, ctx))

	h(rec, req)
	return rec
}

// threeItemYear carries the worked scenario: one dominant item, one steady
// small item, one single-shot item.
func threeItemYear() []domain.OrderLine {
	var lines []domain.OrderLine
	for month := time.January; month <= time.March; month++ {
		ts := time.Date(2024, month, 15, 0, 0, 0, 0, time.UTC)
		lines = append(lines,
			domain.OrderLine{Item: "item-1", OrderedAt: ts, Quantity: 10, Revenue: 100},
			domain.OrderLine{Item: "item-2", OrderedAt: ts, Quantity: 1, Revenue: 10},
		)
	}
	lines = append(lines, domain.OrderLine{
		Item: "item-3", OrderedAt: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), Quantity: 1, Revenue: 3,
	})
	return lines
}

func TestListDatasets(t *testing.T) {
	explorer := new(mockExplorer)
	explorer.On("ListDatasets", mock.Anything).Return([]domain.Dataset{
		{Name: "orders-2024", Source: "csv:orders", Rows: 3},
	}, nil)

	handler := NewHandler(explorer)
	req := httptest.NewRequest("GET", "/datasets", nil)
	rec := httptest.NewRecorder()

	handler.ListDatasets(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response []api.Dataset
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	require.Len(t, response, 1)
	assert.Equal(t, "orders-2024", response[0].Name)
	assert.Equal(t, int64(3), response[0].Rows)

	explorer.AssertExpectations(t)
}

func TestGetStats(t *testing.T) {
	first := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	last := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		setupMock      func(*mockExplorer)
		expectedStatus int
	}{
		{
			name: "successful response",
			setupMock: func(m *mockExplorer) {
				m.On("GetStats", mock.Anything, "orders-2024").Return(&domain.DatasetStats{
					RecordsCount:   7,
					FirstOrderTime: &first,
					LastOrderTime:  &last,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown dataset",
			setupMock: func(m *mockExplorer) {
				m.On("GetStats", mock.Anything, "orders-2024").
					Return(nil, fmt.Errorf("dataset %q: %w", "orders-2024", orderstore.ErrDatasetNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			explorer := new(mockExplorer)
			tt.setupMock(explorer)
			handler := NewHandler(explorer)

			req := httptest.NewRequest("GET", "/datasets/orders-2024/stats", nil)
			rec := serveWithParam(handler.GetStats, "orders-2024", req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			explorer.AssertExpectations(t)
		})
	}
}

func TestGetClassification(t *testing.T) {
	window := domain.Window{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}

	explorer := new(mockExplorer)
	explorer.On("GetOrderLines", mock.Anything, "orders-2024", window).
		Return(threeItemYear(), nil)

	handler := NewHandler(explorer)
	req := httptest.NewRequest("GET", "/datasets/orders-2024/classification?from=2024-01-01&to=2024-04-01", nil)
	rec := serveWithParam(handler.GetClassification, "orders-2024", req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response api.Classification
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))

	assert.Equal(t, 3, response.Periods)
	assert.Equal(t, 333.0, response.GrandTotalRevenue)
	require.Len(t, response.Items, 3)

	byItem := make(map[string]api.ClassifiedItem)
	for _, ci := range response.Items {
		byItem[ci.Item] = ci
	}
	assert.Equal(t, "AX", byItem["item-1"].Label)
	assert.Equal(t, "BX", byItem["item-2"].Label)
	assert.Equal(t, "CZ", byItem["item-3"].Label)

	explorer.AssertExpectations(t)
}

func TestGetClassification_DefaultWindowFromStats(t *testing.T) {
	first := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	last := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	window := domain.Window{Start: first, End: last.AddDate(0, 0, 1)}

	explorer := new(mockExplorer)
	explorer.On("GetStats", mock.Anything, "orders-2024").Return(&domain.DatasetStats{
		RecordsCount:   7,
		FirstOrderTime: &first,
		LastOrderTime:  &last,
	}, nil)
	explorer.On("GetOrderLines", mock.Anything, "orders-2024", window).
		Return(threeItemYear(), nil)

	handler := NewHandler(explorer)
	req := httptest.NewRequest("GET", "/datasets/orders-2024/classification", nil)
	rec := serveWithParam(handler.GetClassification, "orders-2024", req)

	assert.Equal(t, http.StatusOK, rec.Code)
	explorer.AssertExpectations(t)
}

func TestGetClassification_RejectsHalfWindow(t *testing.T) {
	handler := NewHandler(new(mockExplorer))
	req := httptest.NewRequest("GET", "/datasets/orders-2024/classification?from=2024-01-01", nil)
	rec := serveWithParam(handler.GetClassification, "orders-2024", req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetReorder(t *testing.T) {
	window := domain.Window{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}

	explorer := new(mockExplorer)
	explorer.On("GetOrderLines", mock.Anything, "orders-2024", window).
		Return(threeItemYear(), nil)

	handler := NewHandler(explorer)
	req := httptest.NewRequest("GET",
		"/datasets/orders-2024/reorder?from=2024-01-01&to=2024-04-01&lead_time=14&service_level=0.99", nil)
	rec := serveWithParam(handler.GetReorder, "orders-2024", req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response api.ReorderReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, 14, response.LeadTimeDays)
	assert.Equal(t, 0.99, response.ServiceLevel)
	require.Len(t, response.Points, 3)
	assert.Equal(t, "item-1", response.Points[0].Item)

	explorer.AssertExpectations(t)
}

func TestGetReorder_RejectsUnsupportedServiceLevel(t *testing.T) {
	handler := NewHandler(new(mockExplorer))
	req := httptest.NewRequest("GET",
		"/datasets/orders-2024/reorder?from=2024-01-01&to=2024-04-01&service_level=0.42", nil)
	rec := serveWithParam(handler.GetReorder, "orders-2024", req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetInsights(t *testing.T) {
	window := domain.Window{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}

	explorer := new(mockExplorer)
	explorer.On("GetOrderLines", mock.Anything, "orders-2024", window).
		Return(threeItemYear(), nil)

	handler := NewHandler(explorer)
	req := httptest.NewRequest("GET", "/datasets/orders-2024/insights?from=2024-01-01&to=2024-04-01", nil)
	rec := serveWithParam(handler.GetInsights, "orders-2024", req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response api.InsightReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, "orders-2024", response.Dataset)
	assert.NotEmpty(t, response.Summary)

	explorer.AssertExpectations(t)
}
