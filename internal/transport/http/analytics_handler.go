package http

import (
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	apierrors "flightpulse/internal/errors"
	customMiddleware "flightpulse/internal/middleware"
	"flightpulse/internal/otp"
	"flightpulse/internal/services"
)

// AnalyticsHandler handles analytics HTTP requests with RFC 7807 compliance
type AnalyticsHandler struct {
	service      AnalyticsServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	validator    *customMiddleware.ValidationMiddleware
	queryParams  *customMiddleware.QueryParamValidator
}

// NewAnalyticsHandler creates a new analytics handler with RFC 7807 error handling
func NewAnalyticsHandler(service AnalyticsServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *AnalyticsHandler {
	return &AnalyticsHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "analytics_handler")),
		errorHandler: errorHandler,
		validator:    customMiddleware.NewValidationMiddleware(logger, errorHandler),
		queryParams:  customMiddleware.NewQueryParamValidator(logger, errorHandler),
	}
}

// Routes returns the analytics routes with proper Chi patterns
func (h *AnalyticsHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/overview", h.GetOverview)
	r.Get("/delay-metrics", h.GetDelayMetrics)
	r.Get("/cancellations", h.GetCancellations)
	r.Get("/distribution", h.GetDistribution)
	r.Get("/relative-delay", h.GetRelativeDelay)
	r.Get("/routes", h.GetTopRoutes)
	r.Get("/hourly-delays", h.GetHourlyDelays)
	r.Get("/weekday-volume", h.GetWeekdayVolume)
	r.Get("/arrivals", h.GetArrivals)
	r.Get("/summary", h.GetSummary)

	return r
}

// analyticsQueryParams carries the common query parameters through struct
// tag validation before they become a services.Query.
type analyticsQueryParams struct {
	Airline      string   `json:"airline" validate:"omitempty,max=100"`
	From         string   `json:"from" validate:"omitempty,iso8601"`
	To           string   `json:"to" validate:"omitempty,iso8601"`
	GroupBy      []string `json:"group_by" validate:"omitempty,dive,required,dimension"`
	Dimension    string   `json:"dimension" validate:"omitempty,dimension"`
	Region       string   `json:"region" validate:"omitempty,region_selector"`
	Destinations []string `json:"destinations"`
}

// queryFromRequest builds an analytics query from common query parameters.
// Returns false when a parameter is invalid; the error response has
// already been written in that case.
func (h *AnalyticsHandler) queryFromRequest(w http.ResponseWriter, r *http.Request) (services.Query, bool) {
	var q services.Query

	params := analyticsQueryParams{
		Airline:   r.URL.Query().Get("airline"),
		From:      r.URL.Query().Get("from"),
		To:        r.URL.Query().Get("to"),
		Dimension: r.URL.Query().Get("dimension"),
		Region:    strings.ToLower(r.URL.Query().Get("region")),
	}

	if groupBy := r.URL.Query().Get("group_by"); groupBy != "" {
		for _, name := range strings.Split(groupBy, ",") {
			params.GroupBy = append(params.GroupBy, strings.TrimSpace(name))
		}
	}

	if dests := r.URL.Query().Get("destinations"); dests != "" {
		for _, code := range strings.Split(dests, ",") {
			if code = strings.TrimSpace(code); code != "" {
				params.Destinations = append(params.Destinations, code)
			}
		}
	}

	if err := h.validator.ValidateStruct(params); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return q, false
	}

	q.Airline = params.Airline
	if params.From != "" {
		q.From, _ = time.Parse("2006-01-02", params.From)
	}
	if params.To != "" {
		q.To, _ = time.Parse("2006-01-02", params.To)
	}
	for _, name := range params.GroupBy {
		q.GroupBy = append(q.GroupBy, otp.Dimension(name))
	}
	q.Dimension = otp.Dimension(params.Dimension)
	q.Destinations = params.Destinations
	q.Region = params.Region

	return q, true
}

// GetOverview handles GET /api/analytics/overview
func (h *AnalyticsHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	q, ok := h.queryFromRequest(w, r)
	if !ok {
		return
	}

	counts, err := h.service.Overview(r.Context(), q)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   counts,
	})
}

// GetDelayMetrics handles GET /api/analytics/delay-metrics
func (h *AnalyticsHandler) GetDelayMetrics(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	q, ok := h.queryFromRequest(w, r)
	if !ok {
		return
	}

	h.logger.InfoContext(r.Context(), "fetching delay metrics",
		slog.String("request_id", reqID),
		slog.String("airline", q.Airline),
		slog.Int("dimensions", len(q.GroupBy)),
	)

	rows, err := h.service.DelayMetrics(r.Context(), q)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to compute delay metrics",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID),
		)
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   rows,
		"count":  len(rows),
	})
}

// GetCancellations handles GET /api/analytics/cancellations
func (h *AnalyticsHandler) GetCancellations(w http.ResponseWriter, r *http.Request) {
	q, ok := h.queryFromRequest(w, r)
	if !ok {
		return
	}

	rows, err := h.service.Cancellations(r.Context(), q)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   rows,
		"count":  len(rows),
	})
}

// GetDistribution handles GET /api/analytics/distribution
func (h *AnalyticsHandler) GetDistribution(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	q, ok := h.queryFromRequest(w, r)
	if !ok {
		return
	}

	rows, err := h.service.Distribution(r.Context(), q)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to compute delay distribution",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID),
		)
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   rows,
		"count":  len(rows),
		"bins":   otp.DelayBinLabels,
	})
}

// relativeDelayDTO mirrors otp.AirportDelayIndex with a nullable ratio.
// encoding/json cannot marshal NaN, so an undefined ratio becomes null.
type relativeDelayDTO struct {
	DepAirport string   `json:"dep_airport"`
	MeanDelay  float64  `json:"mean_delay"`
	DelayRatio *float64 `json:"delay_ratio"`
}

func toRelativeDelayDTOs(rows []otp.AirportDelayIndex) []relativeDelayDTO {
	out := make([]relativeDelayDTO, 0, len(rows))
	for _, row := range rows {
		dto := relativeDelayDTO{
			DepAirport: row.DepAirport,
			MeanDelay:  row.MeanDelay,
		}
		if !math.IsNaN(row.DelayRatio) {
			ratio := row.DelayRatio
			dto.DelayRatio = &ratio
		}
		out = append(out, dto)
	}
	return out
}

// GetRelativeDelay handles GET /api/analytics/relative-delay
func (h *AnalyticsHandler) GetRelativeDelay(w http.ResponseWriter, r *http.Request) {
	q, ok := h.queryFromRequest(w, r)
	if !ok {
		return
	}

	rows, err := h.service.RelativeDelay(r.Context(), q)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	dtos := toRelativeDelayDTOs(rows)
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   dtos,
		"count":  len(dtos),
	})
}

// GetTopRoutes handles GET /api/analytics/routes
func (h *AnalyticsHandler) GetTopRoutes(w http.ResponseWriter, r *http.Request) {
	q, ok := h.queryFromRequest(w, r)
	if !ok {
		return
	}

	scope, ok := h.queryParams.ValidateEnum(w, r, "scope", []string{"domestic", "international"}, "domestic")
	if !ok {
		return
	}
	q.Domestic = scope == "domestic"

	ranking, err := h.service.TopRoutes(r.Context(), q)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   ranking,
		"scope":  scope,
		"count":  len(ranking.Routes),
	})
}

// GetHourlyDelays handles GET /api/analytics/hourly-delays
func (h *AnalyticsHandler) GetHourlyDelays(w http.ResponseWriter, r *http.Request) {
	q, ok := h.queryFromRequest(w, r)
	if !ok {
		return
	}

	delayed, totals, err := h.service.HourlyDelays(r.Context(), q)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data": map[string]interface{}{
			"delayed": delayed,
			"totals":  totals,
		},
	})
}

// GetWeekdayVolume handles GET /api/analytics/weekday-volume
func (h *AnalyticsHandler) GetWeekdayVolume(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	q, ok := h.queryFromRequest(w, r)
	if !ok {
		return
	}

	rows, err := h.service.WeekdayVolume(r.Context(), q)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to compute weekday volume",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID),
			slog.String("region", q.Region),
		)
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   rows,
		"region": q.Region,
	})
}

// GetArrivals handles GET /api/analytics/arrivals
func (h *AnalyticsHandler) GetArrivals(w http.ResponseWriter, r *http.Request) {
	q, ok := h.queryFromRequest(w, r)
	if !ok {
		return
	}

	rows, err := h.service.Arrivals(r.Context(), q)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   rows,
		"count":  len(rows),
	})
}

// summaryDTO mirrors otp.Summary with NaN-safe relative delay rows.
type summaryDTO struct {
	Airline string          `json:"airline"`
	From    time.Time       `json:"from"`
	To      time.Time       `json:"to"`
	GroupBy []otp.Dimension `json:"group_by"`

	Overview            otp.OverviewCounts         `json:"overview"`
	DelayMetrics        []otp.DelayMetricRow       `json:"delay_metrics"`
	Cancellations       []otp.AirportCancellations `json:"cancellations"`
	Distribution        []otp.DistributionRow      `json:"delay_distribution"`
	RelativeDelay       []relativeDelayDTO         `json:"relative_delay"`
	DomesticRoutes      otp.RouteRanking           `json:"domestic_routes"`
	InternationalRoutes otp.RouteRanking           `json:"international_routes"`
	HourlyDelays        []otp.HourlyDelayRow       `json:"hourly_delays"`
	HourlyTotals        []otp.HourlyTotalRow       `json:"hourly_totals"`
	WeekdayVolume       []otp.WeekdayCount         `json:"weekday_volume"`
	Arrivals            []otp.ArrivalPoint         `json:"arrivals"`
}

func toSummaryDTO(s *otp.Summary) *summaryDTO {
	return &summaryDTO{
		Airline:             s.Airline,
		From:                s.From,
		To:                  s.To,
		GroupBy:             s.GroupBy,
		Overview:            s.Overview,
		DelayMetrics:        s.DelayMetrics,
		Cancellations:       s.Cancellations,
		Distribution:        s.Distribution,
		RelativeDelay:       toRelativeDelayDTOs(s.RelativeDelay),
		DomesticRoutes:      s.DomesticRoutes,
		InternationalRoutes: s.InternationalRoutes,
		HourlyDelays:        s.HourlyDelays,
		HourlyTotals:        s.HourlyTotals,
		WeekdayVolume:       s.WeekdayVolume,
		Arrivals:            s.Arrivals,
	}
}

// GetSummary handles GET /api/analytics/summary
func (h *AnalyticsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	q, ok := h.queryFromRequest(w, r)
	if !ok {
		return
	}

	h.logger.InfoContext(r.Context(), "computing full summary",
		slog.String("request_id", reqID),
		slog.String("airline", q.Airline),
	)

	summary, err := h.service.Summarize(r.Context(), q)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to compute summary",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID),
		)
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   toSummaryDTO(summary),
	})
}
