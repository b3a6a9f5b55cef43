package reporters_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"log-analyzer/internal/aggregators"
	aggregatormocks "log-analyzer/internal/aggregators/mocks"
	"log-analyzer/internal/ingestors"
	ingestormocks "log-analyzer/internal/ingestors/mocks"
	"log-analyzer/internal/models"
	"log-analyzer/internal/reporters"
	reportermocks "log-analyzer/internal/reporters/mocks"
	"log-analyzer/internal/shared/svcerrors"
	storemocks "log-analyzer/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var stagesLogFile = &models.LogFile{
	Path:        "/var/log/nginx/nginx-access-ui.log-20170630.gz",
	Date:        time.Date(2017, 6, 30, 0, 0, 0, 0, time.UTC),
	Compression: models.CompressionGzip,
}

type trackedSource struct {
	io.Reader
	closed bool
}

func (s *trackedSource) Close() error {
	s.closed = true
	return nil
}

type stageMocks struct {
	finder      *storemocks.MockLogFileFinder
	reportStore *storemocks.MockReportStore
	reader      *ingestormocks.MockLogReader
	stream      *ingestormocks.MockSampleStream
	aggregator  *aggregatormocks.MockURLAggregator
	engine      *aggregatormocks.MockStatisticsEngine
	renderer    *reportermocks.MockReportRenderer
	source      *trackedSource
}

// newStagedService wires every pipeline stage to a mock, and expects the source to be
// selected, opened and handed to the reader.
func newStagedService(t *testing.T, opts reporters.ReportServiceOptions) (reporters.ReportService, stageMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := stageMocks{
		finder:      storemocks.NewMockLogFileFinder(ctrl),
		reportStore: storemocks.NewMockReportStore(ctrl),
		reader:      ingestormocks.NewMockLogReader(ctrl),
		stream:      ingestormocks.NewMockSampleStream(ctrl),
		aggregator:  aggregatormocks.NewMockURLAggregator(ctrl),
		engine:      aggregatormocks.NewMockStatisticsEngine(ctrl),
		renderer:    reportermocks.NewMockReportRenderer(ctrl),
		source:      &trackedSource{Reader: strings.NewReader("")},
	}
	m.reportStore.EXPECT().KeyFor(gomock.Any()).Return("report-2017.06.30.html").AnyTimes()
	m.finder.EXPECT().FindLatest(gomock.Any()).Return(stagesLogFile, nil)
	m.reportStore.EXPECT().Exists(gomock.Any(), stagesLogFile.Date).Return(false, nil)
	m.finder.EXPECT().Open(gomock.Any(), stagesLogFile).Return(m.source, nil)

	service := reporters.NewReportService(m.finder, m.reportStore, m.reader, m.aggregator, m.engine, m.renderer, opts)
	return service, m
}

func buildAggregate(samples ...models.Sample) *models.URLAggregate {
	builder := models.NewURLAggregateBuilder()
	for _, s := range samples {
		builder.Add(s)
	}
	return builder.Build()
}

func readSummary(t *testing.T, total, parsed int) models.ReadSummary {
	t.Helper()
	summary, err := models.NewReadSummary(total, parsed)
	require.NoError(t, err)
	return summary
}

func assertServiceError(t *testing.T, err error, code string) {
	t.Helper()
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError, got %v", err)
	assert.Equal(t, code, svcErr.Code)
}

func TestReportService_Run_PassesOptionsToStages(t *testing.T) {
	t.Parallel()

	minRate := 0.75
	service, m := newStagedService(t, reporters.ReportServiceOptions{MinSuccessRate: &minRate, ReportSize: 7, TopClients: 1})

	agg := buildAggregate(
		models.Sample{URL: "/a", Latency: 0.5, UserAgent: "Lynx/2.8.8dev.9"},
		models.Sample{URL: "/b", Latency: 0.25},
	)
	data := models.ReportData{{URL: "/a", Count: 1}}

	gomock.InOrder(
		m.reader.EXPECT().Read(gomock.Any(), m.source, models.CompressionGzip, ingestors.ReadOptions{MinSuccessRate: &minRate}).
			Return(m.stream, nil),
		m.aggregator.EXPECT().Aggregate(m.stream, gomock.Any(), gomock.Any()).Return(agg, nil),
		m.stream.EXPECT().Summary().Return(readSummary(t, 3, 2)),
		m.engine.EXPECT().ComputeStats(agg, 7).Return(data, nil),
		m.renderer.EXPECT().Render(data).Return([]byte("<html/>"), nil),
		m.reportStore.EXPECT().Put(gomock.Any(), stagesLogFile.Date, []byte("<html/>")).Return("report-2017.06.30.html", nil),
	)
	m.stream.EXPECT().Close().Return(nil)

	result, err := service.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, result.Summary.Total())
	assert.Equal(t, 2, result.Summary.Parsed())
	assert.Equal(t, 2, result.URLCount)
	assert.Equal(t, 1, result.RowsWritten)
	assert.True(t, m.source.closed)
}

func TestReportService_Run_StageFailures(t *testing.T) {
	t.Parallel()

	ioErr := errors.New("unexpected EOF in gzip member")
	agg := buildAggregate(models.Sample{URL: "/a", Latency: 0.5})

	tests := []struct {
		name        string
		setup       func(m stageMocks)
		wantCode    string
		wantErrIs   error
		streamOpens bool
	}{
		{
			name: "reader rejects the source",
			setup: func(m stageMocks) {
				m.reader.EXPECT().Read(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, ioErr)
			},
			wantCode:  "RPT_9001",
			wantErrIs: ioErr,
		},
		{
			name: "source fails mid-stream",
			setup: func(m stageMocks) {
				m.reader.EXPECT().Read(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(m.stream, nil)
				m.aggregator.EXPECT().Aggregate(m.stream, gomock.Any(), gomock.Any()).
					Return(agg, fmt.Errorf("failed to read log source at line 42: %w", ioErr))
			},
			wantCode:    "RPT_9001",
			wantErrIs:   ioErr,
			streamOpens: true,
		},
		{
			name: "run cancelled while reading",
			setup: func(m stageMocks) {
				m.reader.EXPECT().Read(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(m.stream, nil)
				m.aggregator.EXPECT().Aggregate(m.stream, gomock.Any(), gomock.Any()).
					Return(agg, fmt.Errorf("read cancelled: %w", context.Canceled))
			},
			wantCode:    "RPT_9001",
			wantErrIs:   context.Canceled,
			streamOpens: true,
		},
		{
			name: "statistics precondition",
			setup: func(m stageMocks) {
				m.reader.EXPECT().Read(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(m.stream, nil)
				m.aggregator.EXPECT().Aggregate(m.stream, gomock.Any(), gomock.Any()).Return(agg, nil)
				m.stream.EXPECT().Summary().Return(models.ReadSummary{})
				m.engine.EXPECT().ComputeStats(agg, gomock.Any()).Return(nil, aggregators.ErrStatisticsPrecondition)
			},
			wantCode:    "RPT_9002",
			wantErrIs:   aggregators.ErrStatisticsPrecondition,
			streamOpens: true,
		},
		{
			name: "render failure",
			setup: func(m stageMocks) {
				m.reader.EXPECT().Read(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(m.stream, nil)
				m.aggregator.EXPECT().Aggregate(m.stream, gomock.Any(), gomock.Any()).Return(agg, nil)
				m.stream.EXPECT().Summary().Return(models.ReadSummary{})
				m.engine.EXPECT().ComputeStats(agg, gomock.Any()).Return(models.ReportData{{URL: "/a"}}, nil)
				m.renderer.EXPECT().Render(gomock.Any()).Return(nil, ioErr)
			},
			wantCode:    "RPT_9003",
			wantErrIs:   ioErr,
			streamOpens: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service, m := newStagedService(t, reporters.ReportServiceOptions{ReportSize: 10})
			tt.setup(m)
			if tt.streamOpens {
				m.stream.EXPECT().Close().Return(nil)
			}

			result, err := service.Run(context.Background())
			assert.Nil(t, result)
			assertServiceError(t, err, tt.wantCode)
			assert.ErrorIs(t, err, tt.wantErrIs)
			assert.True(t, m.source.closed, "source is closed on every path")
		})
	}
}

// A stream that fails after yielding samples, drained by the real aggregator.
func TestReportService_Run_StreamErrorDiscardsPartialAggregate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	finder := storemocks.NewMockLogFileFinder(ctrl)
	reportStore := storemocks.NewMockReportStore(ctrl)
	reader := ingestormocks.NewMockLogReader(ctrl)
	stream := ingestormocks.NewMockSampleStream(ctrl)
	engine := aggregatormocks.NewMockStatisticsEngine(ctrl)
	renderer := reportermocks.NewMockReportRenderer(ctrl)
	source := &trackedSource{Reader: strings.NewReader("")}

	finder.EXPECT().FindLatest(gomock.Any()).Return(stagesLogFile, nil)
	reportStore.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)
	finder.EXPECT().Open(gomock.Any(), stagesLogFile).Return(source, nil)
	reader.EXPECT().Read(gomock.Any(), source, gomock.Any(), gomock.Any()).Return(stream, nil)

	diskErr := errors.New("input/output error")
	gomock.InOrder(
		stream.EXPECT().Next().Return(true),
		stream.EXPECT().Sample().Return(models.Sample{URL: "/a", Latency: 0.5}),
		stream.EXPECT().Next().Return(true),
		stream.EXPECT().Sample().Return(models.Sample{URL: "/b", Latency: 0.25}),
		stream.EXPECT().Next().Return(false),
		stream.EXPECT().Err().Return(fmt.Errorf("failed to read log source at line 3: %w", diskErr)),
		stream.EXPECT().Close().Return(nil),
	)
	// engine, renderer and Put are never reached

	service := reporters.NewReportService(finder, reportStore, reader, aggregators.NewURLAggregator(), engine, renderer, reporters.ReportServiceOptions{ReportSize: 10})
	result, err := service.Run(context.Background())
	assert.Nil(t, result)
	assertServiceError(t, err, "RPT_9001")
	assert.ErrorIs(t, err, diskErr)
	assert.True(t, source.closed)
}
