package http

import (
	"net/http"

	"log-analyzer/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter carries what handlers learned about a request (service error, run ID)
// back up to the logging and metrics middleware.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
	runID    string
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

// annotate applies fn when w came through mwAppResponseWriter; otherwise it is a no-op.
func annotate(w http.ResponseWriter, fn func(*appResponseWriter)) {
	if appWriter, ok := w.(*appResponseWriter); ok {
		fn(appWriter)
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError == nil {
		return ""
	}
	return w.svcError.Code
}

func (w *appResponseWriter) SetRunID(runID string) {
	w.runID = runID
}

func (w *appResponseWriter) RunID() string {
	return w.runID
}
