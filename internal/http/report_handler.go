package http

import (
	"errors"
	"io"
	"net/http"

	"log-analyzer/internal/reporters"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/stores"

	"github.com/go-chi/chi/v5"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// AppHttpHandlerFunc adapts a function to AppHttpHandler.
type AppHttpHandlerFunc func(w http.ResponseWriter, r *http.Request) error

func (f AppHttpHandlerFunc) Handle(w http.ResponseWriter, r *http.Request) error {
	return f(w, r)
}

// ReportListResponse is the body of GET /reports.
type ReportListResponse struct {
	Reports []string `json:"reports"`
}

type reportHandler struct {
	reportService reporters.ReportService
	reportStore   stores.ReportStore
}

func newReportHandler(reportService reporters.ReportService, reportStore stores.ReportStore) *reportHandler {
	return &reportHandler{reportService: reportService, reportStore: reportStore}
}

// List processes GET /reports.
func (h *reportHandler) List(w http.ResponseWriter, r *http.Request) error {
	keys, err := h.reportStore.List(r.Context())
	if err != nil {
		return errInternalReportListFailed(err)
	}
	writeJSON(w, http.StatusOK, ReportListResponse{Reports: keys})
	return nil
}

// Get processes GET /reports/{name}.
func (h *reportHandler) Get(w http.ResponseWriter, r *http.Request) error {
	rc, err := h.reportStore.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrInvalidReportKey):
			return errInvalidReportName(err)
		case errors.Is(err, stores.ErrReportNotFound):
			return errReportNotFound(err)
		default:
			return errInternalReportReadFailed(err)
		}
	}
	defer rc.Close()

	w.Header().Set(headerContentType, contentTypeHTML)
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		// headers are already sent
		loggers.Ctx(r.Context()).Warn().Err(err).Msg("failed to stream report")
	}
	return nil
}

// Run processes POST /runs: one synchronous pipeline run.
func (h *reportHandler) Run(w http.ResponseWriter, r *http.Request) error {
	result, err := h.reportService.Run(r.Context())
	if err != nil {
		return err
	}
	annotate(w, func(aw *appResponseWriter) { aw.SetRunID(result.RunID) })
	writeJSON(w, http.StatusCreated, result)
	return nil
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
