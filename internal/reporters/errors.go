package reporters

import (
	"fmt"

	"log-analyzer/internal/shared/svcerrors"
)

// ReportService errors
const (
	codeSourceNotFound      = "RPT_1001"
	codeReportAlreadyExists = "RPT_1002"
	codeTooManyParseErrors  = "RPT_1003"
	codeNoSamples           = "RPT_1004"

	codeInternalReportStoreFailed = "RPT_9000"
	codeInternalLogReadFailed     = "RPT_9001"
	codeInternalStatisticsFailed  = "RPT_9002"
	codeInternalRenderFailed      = "RPT_9003"
	codeInternalReportPutFailed   = "RPT_9004"
)

// errSourceNotFound returns an error when no log file can be analyzed.
func errSourceNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeSourceNotFound, "no log file to analyze", cause)
}

// errReportAlreadyExists returns an error when the report for the latest log was already produced.
func errReportAlreadyExists(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeReportAlreadyExists, "report already exists", cause)
}

// errTooManyParseErrors returns an error when the share of parsed lines is below the minimum.
func errTooManyParseErrors(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnprocessableError(codeTooManyParseErrors, "too many unparsable lines", cause)
}

// errNoSamples returns an error when the log holds no parsable line.
func errNoSamples(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnprocessableError(codeNoSamples, "log file has no samples", cause)
}

func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}

func errInternalLogReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogReadFailed, fmt.Errorf("logReadFailed: %w", cause))
}

func errInternalStatisticsFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStatisticsFailed, fmt.Errorf("statisticsFailed: %w", cause))
}

func errInternalRenderFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRenderFailed, fmt.Errorf("renderFailed: %w", cause))
}

func errInternalReportPutFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportPutFailed, fmt.Errorf("reportPutFailed: %w", cause))
}
