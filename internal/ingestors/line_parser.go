package ingestors

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"log-analyzer/internal/models"
)

const (
	fieldSeparator = " "
	urlFieldIndex  = 7
	// the user agent is the third double-quoted field: "$request" "$http_referer" "$http_user_agent"
	userAgentQuotedIndex = 5
)

//go:generate mockgen -source=line_parser.go -destination=./mocks/line_parser_mock.go -package=mocks
type LineParser interface {
	// Parse extracts a Sample from one access log record. Every failure wraps ErrMalformedLine.
	Parse(line string) (models.Sample, error)
}

type lineParser struct{}

func NewLineParser() LineParser {
	return &lineParser{}
}

func (p *lineParser) Parse(line string) (models.Sample, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) <= urlFieldIndex {
		return models.Sample{}, fmt.Errorf("%w: expected more than %d fields, got %d", ErrMalformedLine, urlFieldIndex, len(fields))
	}

	url := fields[urlFieldIndex]
	if !strings.HasPrefix(url, "/") {
		return models.Sample{}, fmt.Errorf("%w: request path %q does not start with /", ErrMalformedLine, url)
	}

	raw := strings.TrimSpace(fields[len(fields)-1])
	latency, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.Sample{}, fmt.Errorf("%w: invalid request time %q", ErrMalformedLine, raw)
	}
	if math.IsNaN(latency) || math.IsInf(latency, 0) || latency < 0 {
		return models.Sample{}, fmt.Errorf("%w: request time %q out of range", ErrMalformedLine, raw)
	}

	return models.Sample{
		URL:       url,
		Latency:   latency,
		UserAgent: userAgent(line),
	}, nil
}

func userAgent(line string) string {
	parts := strings.Split(line, `"`)
	if len(parts) <= userAgentQuotedIndex+1 {
		return ""
	}
	ua := parts[userAgentQuotedIndex]
	if ua == "-" {
		return ""
	}
	return ua
}
