package http

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"flightpulse/internal/charts"
	apierrors "flightpulse/internal/errors"
	"flightpulse/internal/infrastructure"
	"flightpulse/internal/otp"
	"flightpulse/internal/services"
)

// ChartHandler renders analytics charts as self-contained HTML pages
type ChartHandler struct {
	service      AnalyticsServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewChartHandler creates a new chart handler
func NewChartHandler(service AnalyticsServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ChartHandler {
	return &ChartHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "chart_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the chart routes
func (h *ChartHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/dashboard", h.GetDashboard)
	r.Get("/{name}", h.GetChart)

	return r
}

// chartBuilders maps chart names to their render functions over a summary.
var chartBuilders = map[string]func(s *otp.Summary) interface{ Render(io.Writer) error }{
	"cancellations": func(s *otp.Summary) interface{ Render(io.Writer) error } {
		return charts.CancellationsPie(s.Cancellations, s.Airline)
	},
	"delay-metrics": func(s *otp.Summary) interface{ Render(io.Writer) error } {
		return charts.DelayMetricsBar(s.DelayMetrics, s.Airline)
	},
	"distribution": func(s *otp.Summary) interface{ Render(io.Writer) error } {
		return charts.DistributionHeatMap(s.Distribution, s.Airline)
	},
	"relative-delay": func(s *otp.Summary) interface{ Render(io.Writer) error } {
		return charts.RelativeDelayBar(s.RelativeDelay, s.Airline)
	},
	"routes-domestic": func(s *otp.Summary) interface{ Render(io.Writer) error } {
		return charts.TopRoutesBar(s.DomesticRoutes, "domestic", s.Airline)
	},
	"routes-international": func(s *otp.Summary) interface{ Render(io.Writer) error } {
		return charts.TopRoutesBar(s.InternationalRoutes, "international", s.Airline)
	},
	"hourly-delays": func(s *otp.Summary) interface{ Render(io.Writer) error } {
		return charts.HourlyDelayChart(s.HourlyDelays, s.HourlyTotals, s.Airline)
	},
	"weekday-volume": func(s *otp.Summary) interface{ Render(io.Writer) error } {
		return charts.WeekdayVolumeBar(s.WeekdayVolume, s.Airline, otp.RegionWorld)
	},
	"arrivals": func(s *otp.Summary) interface{ Render(io.Writer) error } {
		return charts.ArrivalsGeo(s.Arrivals, s.Airline)
	},
}

// GetDashboard handles GET /charts/dashboard, rendering every chart on one page
func (h *ChartHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	q, ok := h.chartQuery(w, r)
	if !ok {
		return
	}

	summary, err := h.service.Summarize(r.Context(), q)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to compute dashboard summary",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID),
		)
		h.errorHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = charts.RenderDashboard(summary, w)
	infrastructure.RecordChartRender(r.Context(), infrastructure.AppMetricsFromContext(r.Context()), "dashboard", err)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render dashboard",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID),
		)
	}
}

// GetChart handles GET /charts/{name}, rendering a single chart
func (h *ChartHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())
	name := chi.URLParam(r, "name")

	build, known := chartBuilders[name]
	if !known {
		h.errorHandler.HandleError(w, r, apierrors.NotFoundError("chart "+name))
		return
	}

	q, ok := h.chartQuery(w, r)
	if !ok {
		return
	}

	summary, err := h.service.Summarize(r.Context(), q)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "rendering chart",
		slog.String("request_id", reqID),
		slog.String("chart", name),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = build(summary).Render(w)
	infrastructure.RecordChartRender(r.Context(), infrastructure.AppMetricsFromContext(r.Context()), name, err)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render chart",
			slog.String("error", err.Error()),
			slog.String("chart", name),
			slog.String("request_id", reqID),
		)
	}
}

// chartQuery parses the common chart query parameters
func (h *ChartHandler) chartQuery(w http.ResponseWriter, r *http.Request) (q services.Query, ok bool) {
	return NewAnalyticsHandler(h.service, h.logger, h.errorHandler).queryFromRequest(w, r)
}
