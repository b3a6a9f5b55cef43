package http

import (
	"net/http"

	"log-analyzer/internal/reporters"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/metrics"
	"log-analyzer/internal/stores"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(reportService reporters.ReportService, reportStore stores.ReportStore, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	reports := newReportHandler(reportService, reportStore)

	// Routes
	router.Get("/healthz", healthz)
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)
	router.Get("/reports", errorHandlingAdapter(AppHttpHandlerFunc(reports.List)))
	router.Get("/reports/{name}", errorHandlingAdapter(AppHttpHandlerFunc(reports.Get)))
	router.Post("/runs", errorHandlingAdapter(AppHttpHandlerFunc(reports.Run)))

	return router
}
