package aggregators

import "errors"

var (
	// ErrInvalidReportSize is returned by ComputeStats for a negative report size.
	ErrInvalidReportSize = errors.New("report size must be >= 0")
	// ErrStatisticsPrecondition is returned by ComputeStats when the aggregate has no samples
	// or no total latency. Callers must not compute statistics for an empty read.
	ErrStatisticsPrecondition = errors.New("statistics precondition violated")
)
