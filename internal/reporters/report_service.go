package reporters

import (
	"context"
	"errors"
	"sync"
	"time"

	"log-analyzer/internal/aggregators"
	"log-analyzer/internal/ingestors"
	"log-analyzer/internal/models"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/metrics"
	"log-analyzer/internal/shared/svcerrors"
	"log-analyzer/internal/shared/ulid"
	"log-analyzer/internal/stores"
)

const defaultTopClients = 5

// RunResult describes one completed run.
type RunResult struct {
	RunID       string                   `json:"runId"`
	LogFile     *models.LogFile          `json:"logFile"`
	ReportKey   string                   `json:"reportKey"`
	Summary     models.ReadSummary       `json:"summary"`
	URLCount    int                      `json:"urlCount"`
	RowsWritten int                      `json:"rowsWritten"`
	Latency     *models.LatencyQuantiles `json:"latency,omitempty"`
	TopClients  []models.ClientCount     `json:"topClients,omitempty"`
	DurationMs  int64                    `json:"durationMs"`
}

type ReportServiceOptions struct {
	MinSuccessRate *float64
	ReportSize     int
	TopClients     int // families kept in RunResult; 0 means the default
}

//go:generate mockgen -source=report_service.go -destination=./mocks/report_service_mock.go -package=mocks
type ReportService interface {
	// Run analyzes the latest log and writes its report. Concurrent calls are serialized.
	// Every failure is a *svcerrors.ServiceError and leaves no report behind.
	Run(ctx context.Context) (*RunResult, error)
}

type reportService struct {
	finder      stores.LogFileFinder
	reportStore stores.ReportStore
	reader      ingestors.LogReader
	aggregator  aggregators.URLAggregator
	engine      aggregators.StatisticsEngine
	renderer    ReportRenderer
	opts        ReportServiceOptions

	mu sync.Mutex
}

func NewReportService(
	finder stores.LogFileFinder,
	reportStore stores.ReportStore,
	reader ingestors.LogReader,
	aggregator aggregators.URLAggregator,
	engine aggregators.StatisticsEngine,
	renderer ReportRenderer,
	opts ReportServiceOptions,
) ReportService {
	if opts.TopClients <= 0 {
		opts.TopClients = defaultTopClients
	}
	return &reportService{
		finder:      finder,
		reportStore: reportStore,
		reader:      reader,
		aggregator:  aggregator,
		engine:      engine,
		renderer:    renderer,
		opts:        opts,
	}
}

func (s *reportService) Run(ctx context.Context) (*RunResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	runID := ulid.NewULIDAt(start)
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldRunID, runID).Logger()
	ctx = logger.WithContext(ctx)

	result, err := s.run(ctx, runID)

	elapsed := time.Since(start)
	code := metrics.ValueNoError
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		code = svcErr.Code
	}
	metricRunsTotal.WithLabelValues(code).Inc()
	metricRunDurationSeconds.WithLabelValues(code).Observe(elapsed.Seconds())

	if err != nil {
		return nil, err
	}
	result.DurationMs = elapsed.Milliseconds()
	logger.Info().
		Str(loggers.FieldReportKey, result.ReportKey).
		Int("urls", result.URLCount).
		Int("rows", result.RowsWritten).
		Dur(loggers.FieldDuration, elapsed).
		Msg("report written")
	return result, nil
}

func (s *reportService) run(ctx context.Context, runID string) (*RunResult, error) {
	logger := loggers.Ctx(ctx)

	logFile, err := s.finder.FindLatest(ctx)
	if err != nil {
		if errors.Is(err, stores.ErrSourceNotFound) {
			return nil, errSourceNotFound(err)
		}
		return nil, errInternalLogReadFailed(err)
	}
	logger.Info().Str(loggers.FieldLogFile, logFile.Path).Msg("selected latest log file")

	exists, err := s.reportStore.Exists(ctx, logFile.Date)
	if err != nil {
		return nil, errInternalReportStoreFailed(err)
	}
	if exists {
		return nil, errReportAlreadyExists(errors.New(s.reportStore.KeyFor(logFile.Date)))
	}

	a, err := s.analyze(ctx, logFile)
	if err != nil {
		return nil, err
	}
	if a.agg.IsEmpty() {
		return nil, errNoSamples(errors.New(logFile.Path))
	}

	data, err := s.engine.ComputeStats(a.agg, s.opts.ReportSize)
	if err != nil {
		return nil, errInternalStatisticsFailed(err)
	}

	content, err := s.renderer.Render(data)
	if err != nil {
		return nil, errInternalRenderFailed(err)
	}

	key, err := s.reportStore.Put(ctx, logFile.Date, content)
	if err != nil {
		if errors.Is(err, stores.ErrReportAlreadyExists) {
			return nil, errReportAlreadyExists(err)
		}
		return nil, errInternalReportPutFailed(err)
	}

	result := &RunResult{
		RunID:       runID,
		LogFile:     logFile,
		ReportKey:   key,
		Summary:     a.summary,
		URLCount:    a.agg.Len(),
		RowsWritten: len(data),
		TopClients:  a.tally.Top(s.opts.TopClients),
	}
	if q, ok := a.digest.Quantiles(); ok {
		result.Latency = &q
		metricLastLatencySeconds.WithLabelValues("0.5").Set(q.P50)
		metricLastLatencySeconds.WithLabelValues("0.95").Set(q.P95)
		metricLastLatencySeconds.WithLabelValues("0.99").Set(q.P99)
	}
	metricLastReportRows.Set(float64(len(data)))

	return result, nil
}

// analysis is everything one read pass produces.
type analysis struct {
	agg     *models.URLAggregate
	summary models.ReadSummary
	digest  *aggregators.LatencyDigest
	tally   *aggregators.ClientTally
}

// analyze reads the whole log file. A terminal read error discards the partial aggregate.
func (s *reportService) analyze(ctx context.Context, logFile *models.LogFile) (*analysis, error) {
	source, err := s.finder.Open(ctx, logFile)
	if err != nil {
		if errors.Is(err, stores.ErrSourceNotFound) {
			return nil, errSourceNotFound(err)
		}
		return nil, errInternalLogReadFailed(err)
	}
	defer source.Close()

	stream, err := s.reader.Read(ctx, source, logFile.Compression, ingestors.ReadOptions{MinSuccessRate: s.opts.MinSuccessRate})
	if err != nil {
		return nil, errInternalLogReadFailed(err)
	}
	defer stream.Close()

	a := &analysis{
		digest: aggregators.NewLatencyDigest(),
		tally:  aggregators.NewClientTally(),
	}
	agg, err := s.aggregator.Aggregate(stream, a.digest, a.tally)
	if err != nil {
		if errors.Is(err, ingestors.ErrTooManyParseErrors) {
			return nil, errTooManyParseErrors(err)
		}
		return nil, errInternalLogReadFailed(err)
	}
	a.agg = agg
	a.summary = stream.Summary()
	return a, nil
}
