package ingestors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLine = `1.199.4.96 -  - [29/Jun/2017:03:50:22 +0300] "GET /api/v2/slot/4705/groups HTTP/1.1" 200 2613 "-" "Lynx/2.8.8dev.9" "-" "1498697422-3800516057-4708-9752745" "2a828197ae235b0b3cb" 0.704`

func TestLineParser_Parse(t *testing.T) {
	t.Parallel()

	parser := NewLineParser()

	sample, err := parser.Parse(sampleLine)
	require.NoError(t, err)
	assert.Equal(t, "/api/v2/slot/4705/groups", sample.URL)
	assert.InDelta(t, 0.704, sample.Latency, 1e-12)
	assert.Equal(t, "Lynx/2.8.8dev.9", sample.UserAgent)
}

func TestLineParser_Parse_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		line      string
		url       string
		latency   float64
		userAgent string
	}{
		{
			name:      "trailing carriage return",
			line:      `1.196.116.32 -  - [29/Jun/2017:03:50:22 +0300] "GET /api/v2/banner/25019354 HTTP/1.1" 200 927 "-" "Lynx/2.8.8dev.9 libwww-FM/2.14" "-" "1498697422-2190034393-4708-9752759" "dc7161be3" 0.390` + "\r",
			url:       "/api/v2/banner/25019354",
			latency:   0.390,
			userAgent: "Lynx/2.8.8dev.9 libwww-FM/2.14",
		},
		{
			name:    "zero latency and no user agent",
			line:    `1.169.137.128 -  - [29/Jun/2017:03:50:23 +0300] "GET /api/v2/group/1769230/banners HTTP/1.1" 200 1020 "-" "-" "-" "1498697423-2118016444-4708-9752769" "712e90144abee9" 0`,
			url:     "/api/v2/group/1769230/banners",
			latency: 0,
		},
		{
			name:      "query string kept in url",
			line:      `1.194.135.240 -  - [29/Jun/2017:03:50:23 +0300] "GET /api/v2/group/7786679/statistic/sites/?date_type=day HTTP/1.1" 200 22 "-" "python-requests/2.13.0" "-" "1498697423-3979856266-4708-9752772" "8a7741a54297568b" 0.067`,
			url:       "/api/v2/group/7786679/statistic/sites/?date_type=day",
			latency:   0.067,
			userAgent: "python-requests/2.13.0",
		},
		{
			name:    "minimal record",
			line:    "a b c d e f g /x 1.5",
			url:     "/x",
			latency: 1.5,
		},
	}

	parser := NewLineParser()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sample, err := parser.Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.url, sample.URL)
			assert.InDelta(t, tt.latency, sample.Latency, 1e-12)
			assert.Equal(t, tt.userAgent, sample.UserAgent)
		})
	}
}

func TestLineParser_Parse_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
	}{
		{name: "empty line", line: ""},
		{name: "whitespace only", line: "   "},
		{name: "too few fields", line: "1.2.3.4 - - [29/Jun/2017:03:50:22 +0300] GET"},
		{name: "path without leading slash", line: `1.199.4.96 -  - [29/Jun/2017:03:50:22 +0300] "GET api/v2/slot HTTP/1.1" 200 2613 0.704`},
		{name: "request with collapsed spaces", line: `1.199.4.96 - - [29/Jun/2017:03:50:22 +0300] "GET /api/v2/slot HTTP/1.1" 200 2613 0.704`},
		{name: "non numeric latency", line: `1.199.4.96 -  - [29/Jun/2017:03:50:22 +0300] "GET /api/v2/slot HTTP/1.1" 200 2613 "-" fast`},
		{name: "negative latency", line: `1.199.4.96 -  - [29/Jun/2017:03:50:22 +0300] "GET /api/v2/slot HTTP/1.1" 200 2613 "-" -0.5`},
		{name: "nan latency", line: `1.199.4.96 -  - [29/Jun/2017:03:50:22 +0300] "GET /api/v2/slot HTTP/1.1" 200 2613 "-" NaN`},
		{name: "infinite latency", line: `1.199.4.96 -  - [29/Jun/2017:03:50:22 +0300] "GET /api/v2/slot HTTP/1.1" 200 2613 "-" +Inf`},
		{name: "trailing separator leaves empty latency", line: `1.199.4.96 -  - [29/Jun/2017:03:50:22 +0300] "GET /api/v2/slot HTTP/1.1" 200 2613 "-" 0.704 `},
	}

	parser := NewLineParser()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parser.Parse(tt.line)
			assert.ErrorIs(t, err, ErrMalformedLine)
		})
	}
}
