package http

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"flightpulse/internal/charts"
	"flightpulse/internal/config"
	apierrors "flightpulse/internal/errors"
	"flightpulse/internal/exporter"
	"flightpulse/internal/infrastructure"
	customMiddleware "flightpulse/internal/middleware"
)

// ReportHandler exports analytics summaries to CSV, XLSX, and HTML files
type ReportHandler struct {
	service      AnalyticsServiceInterface
	paths        *config.Paths
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	validator    *customMiddleware.ValidationMiddleware
}

// NewReportHandler creates a new report handler
func NewReportHandler(service AnalyticsServiceInterface, paths *config.Paths, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ReportHandler {
	return &ReportHandler{
		service:      service,
		paths:        paths,
		logger:       logger.With(slog.String("component", "report_handler")),
		errorHandler: errorHandler,
		validator:    customMiddleware.NewValidationMiddleware(logger, errorHandler),
	}
}

// Routes returns the report routes
func (h *ReportHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/export", h.Export)
	r.Get("/files", h.ListFiles)
	r.Get("/download/{filename}", h.Download)

	return r
}

// Export handles POST /api/reports/export. It computes a full summary for
// the requested window and writes the CSV set, the XLSX workbook, and the
// chart HTML pages to the reports directory.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	q, ok := NewAnalyticsHandler(h.service, h.logger, h.errorHandler).queryFromRequest(w, r)
	if !ok {
		return
	}

	h.logger.InfoContext(r.Context(), "exporting reports",
		slog.String("request_id", reqID),
		slog.String("airline", q.Airline),
	)

	summary, err := h.service.Summarize(r.Context(), q)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	if err := h.paths.EnsureDirectories(); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.FileSystemError("create report directories", err))
		return
	}

	metrics := infrastructure.AppMetricsFromContext(r.Context())

	start := time.Now()
	err = exporter.NewSummaryExporter(h.paths).ExportAll(summary)
	infrastructure.RecordExportMetrics(r.Context(), metrics, "csv", time.Since(start), err)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "CSV export failed",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID),
		)
		h.errorHandler.HandleError(w, r, apierrors.ExportError("csv", err))
		return
	}

	start = time.Now()
	err = exporter.NewWorkbookExporter(h.paths).Export(summary, h.paths.SummaryWorkbook)
	infrastructure.RecordExportMetrics(r.Context(), metrics, "xlsx", time.Since(start), err)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "workbook export failed",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID),
		)
		h.errorHandler.HandleError(w, r, apierrors.ExportError("xlsx", err))
		return
	}

	start = time.Now()
	err = charts.ExportHTML(summary, h.paths.ChartsDir)
	infrastructure.RecordExportMetrics(r.Context(), metrics, "charts", time.Since(start), err)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "chart export failed",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID),
		)
		h.errorHandler.HandleError(w, r, apierrors.ExportError("charts", err))
		return
	}

	files, _ := h.reportFiles()

	render.JSON(w, r, map[string]interface{}{
		"status":  "success",
		"airline": summary.Airline,
		"files":   files,
		"count":   len(files),
	})
}

// ListFiles handles GET /api/reports/files
func (h *ReportHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	files, err := h.reportFiles()
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.FileSystemError("list reports", err))
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"files":  files,
		"count":  len(files),
	})
}

// downloadParams is validated before any filesystem access. The filename
// rule rejects empty names, separators, and parent references.
type downloadParams struct {
	Filename string `json:"filename" validate:"required,filename"`
}

// Download handles GET /api/reports/download/{filename}
func (h *ReportHandler) Download(w http.ResponseWriter, r *http.Request) {
	params := downloadParams{Filename: chi.URLParam(r, "filename")}
	if err := h.validator.ValidateStruct(params); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	filename := params.Filename

	path := h.paths.GetReportPath(filename)
	if !config.FileExists(path) {
		h.errorHandler.HandleError(w, r, apierrors.NotFoundError("report "+filename))
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	http.ServeFile(w, r, path)
}

// reportFiles lists the files currently in the reports directory
func (h *ReportHandler) reportFiles() ([]string, error) {
	entries, err := os.ReadDir(h.paths.ReportsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, e.Name())
		}
	}
	return files, nil
}
