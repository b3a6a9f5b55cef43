package http

import (
	"log-analyzer/internal/shared/svcerrors"
)

// Report handler errors
const (
	codeInvalidReportName = "HTTP_1000"
	codeReportNotFound    = "HTTP_1001"

	codeInternalReportListFailed = "HTTP_9000"
	codeInternalReportReadFailed = "HTTP_9001"
)

func errInvalidReportName(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidReportName, "report name must look like report-YYYY.MM.DD.html", cause)
}

func errReportNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeReportNotFound, "report not found", cause)
}

func errInternalReportListFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportListFailed, cause)
}

func errInternalReportReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportReadFailed, cause)
}
