package ingestors

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is wrapped by every LineParser failure.
	ErrMalformedLine = errors.New("malformed log line")
	// ErrLineTooLong marks a line over the reader's size limit; it counts as a failed line.
	ErrLineTooLong = fmt.Errorf("%w: line too long", ErrMalformedLine)
	// ErrTooManyParseErrors is reported by a SampleStream after exhaustion when the
	// success rate is below the configured minimum, or when no line was read at all.
	ErrTooManyParseErrors = errors.New("too many parse errors")
	// ErrUnsupportedCompression is returned by LogReader.Read for an unknown compression.
	ErrUnsupportedCompression = errors.New("unsupported compression")
)
