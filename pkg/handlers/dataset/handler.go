package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/de-tools/sku-atlas/pkg/adapters"
	"github.com/de-tools/sku-atlas/pkg/models/api"
	"github.com/de-tools/sku-atlas/pkg/models/domain"
	"github.com/de-tools/sku-atlas/pkg/services/classify"
	"github.com/de-tools/sku-atlas/pkg/services/config"
	"github.com/de-tools/sku-atlas/pkg/services/dataset"
	"github.com/de-tools/sku-atlas/pkg/services/insights"
	"github.com/de-tools/sku-atlas/pkg/services/reorder"
	orderstore "github.com/de-tools/sku-atlas/pkg/store/duckdb/orders"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	explorer dataset.Explorer
}

func NewHandler(explorer dataset.Explorer) *Handler {
	return &Handler{explorer: explorer}
}

func (h *Handler) ListDatasets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	datasets, err := h.explorer.ListDatasets(ctx)
	if err != nil {
		respondError(w, r, err)
		return
	}

	response := make([]api.Dataset, 0, len(datasets))
	for _, d := range datasets {
		response = append(response, adapters.MapDatasetDomainToApi(d))
	}
	respondJSON(w, r, response)
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "dataset")

	stats, err := h.explorer.GetStats(ctx, name)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, adapters.MapDatasetStatsDomainToApi(stats))
}

func (h *Handler) GetClassification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "dataset")

	cls, err := h.classify(ctx, r, name)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, adapters.MapClassificationDomainToApi(cls))
}

func (h *Handler) GetReorder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "dataset")

	window, err := h.resolveWindow(ctx, r, name)
	if err != nil {
		respondError(w, r, err)
		return
	}

	settings := reorder.DefaultSettings()
	if v := r.URL.Query().Get("lead_time"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, r, badRequest("invalid lead_time"))
			return
		}
		settings.LeadTimeDays = days
	}
	if v := r.URL.Query().Get("service_level"); v != "" {
		level, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondError(w, r, badRequest("invalid service_level"))
			return
		}
		settings.ServiceLevel = level
	}
	if err := settings.Validate(); err != nil {
		respondError(w, r, badRequest(err.Error()))
		return
	}

	lines, err := h.explorer.GetOrderLines(ctx, name, window)
	if err != nil {
		respondError(w, r, err)
		return
	}

	points, err := reorder.Compute(ctx, lines, window, settings)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, adapters.MapReorderPointsDomainToApi(window, settings.LeadTimeDays, settings.ServiceLevel, points))
}

func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "dataset")

	cls, err := h.classify(ctx, r, name)
	if err != nil {
		respondError(w, r, err)
		return
	}

	report := insights.Generate(ctx, name, cls, insights.DefaultSettings())
	respondJSON(w, r, adapters.MapInsightReportDomainToApi(report))
}

func (h *Handler) classify(
	ctx context.Context,
	r *http.Request,
	name string,
) (*domain.Classification, error) {
	window, err := h.resolveWindow(ctx, r, name)
	if err != nil {
		return nil, err
	}

	settings := classify.DefaultSettings(window)
	if g := r.URL.Query().Get("granularity"); g != "" {
		granularity, err := domain.ParseGranularity(g)
		if err != nil {
			return nil, badRequest(err.Error())
		}
		settings.Granularity = granularity
	}

	classifier, err := classify.NewClassifier(settings)
	if err != nil {
		return nil, badRequest(err.Error())
	}

	lines, err := h.explorer.GetOrderLines(ctx, name, window)
	if err != nil {
		return nil, err
	}

	return classifier.Run(ctx, lines)
}

// resolveWindow reads from/to query parameters; when both are absent the
// window spans the dataset's recorded order times, end exclusive on the day
// after the last order.
func (h *Handler) resolveWindow(ctx context.Context, r *http.Request, name string) (domain.Window, error) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	if from == "" && to == "" {
		stats, err := h.explorer.GetStats(ctx, name)
		if err != nil {
			return domain.Window{}, err
		}
		if stats.FirstOrderTime == nil || stats.LastOrderTime == nil {
			return domain.Window{}, badRequest("dataset has no order lines, pass from/to explicitly")
		}
		return domain.Window{
			Start: *stats.FirstOrderTime,
			End:   stats.LastOrderTime.AddDate(0, 0, 1),
		}, nil
	}

	if from == "" || to == "" {
		return domain.Window{}, badRequest("from and to must be passed together")
	}

	start, err := config.ParseTime(from)
	if err != nil {
		return domain.Window{}, badRequest(err.Error())
	}
	end, err := config.ParseTime(to)
	if err != nil {
		return domain.Window{}, badRequest(err.Error())
	}

	window := domain.Window{Start: start, End: end}
	if err := window.Validate(); err != nil {
		return domain.Window{}, badRequest(err.Error())
	}
	return window, nil
}

type httpError struct {
	status int
	msg    string
}

func (e *httpError) Error() string { return e.msg }

func badRequest(msg string) error {
	return &httpError{status: http.StatusBadRequest, msg: msg}
}

func respondJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
	}
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())

	status := http.StatusInternalServerError
	var httpErr *httpError
	switch {
	case errors.As(err, &httpErr):
		status = httpErr.status
	case errors.Is(err, orderstore.ErrDatasetNotFound):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		logger.Debug().Err(err).Str("path", r.URL.Path).Msg("request rejected")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
