package schedulers

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"log-analyzer/internal/reporters"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/metrics"
	"log-analyzer/internal/shared/svcerrors"
)

//go:generate mockgen -source=run_scheduler.go -destination=./mocks/run_scheduler_mock.go -package=mocks
type RunScheduler interface {
	Start(ctx context.Context)
	// Trigger requests a run as soon as the worker is idle. Requests made while one is
	// already pending are coalesced; Trigger reports whether the request was queued.
	Trigger() bool
	Stop()
}

type SchedulerOptions struct {
	Interval   time.Duration // <= 0 disables periodic runs
	RunOnStart bool
}

type runScheduler struct {
	reportService reporters.ReportService
	opts          SchedulerOptions

	triggerCh chan struct{}

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewRunScheduler(reportService reporters.ReportService, opts SchedulerOptions, logger loggers.Logger) RunScheduler {
	return &runScheduler{
		reportService: reportService,
		opts:          opts,
		triggerCh:     make(chan struct{}, 1),
		stopCh:        make(chan struct{}),
		logger:        logger,
	}
}

// Start spawns the single worker goroutine. Runs never overlap.
func (s *runScheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runWorker(ctx)
	}()
}

func (s *runScheduler) Trigger() bool {
	select {
	case s.triggerCh <- struct{}{}:
		return true
	default:
		return false
	}
}

// Stop waits for the worker to finish its current run (best called during app shutdown).
func (s *runScheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func (s *runScheduler) runWorker(ctx context.Context) {
	var tick <-chan time.Time
	if s.opts.Interval > 0 {
		ticker := time.NewTicker(s.opts.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	if s.opts.RunOnStart {
		s.runOnce(ctx, triggerStartup)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-tick:
			s.runOnce(ctx, triggerInterval)
		case <-s.triggerCh:
			s.runOnce(ctx, triggerManual)
		}
	}
}

func (s *runScheduler) runOnce(ctx context.Context, trigger string) {
	ctx = s.logger.With().Str("trigger", trigger).Logger().WithContext(ctx)
	logger := loggers.Ctx(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("scheduled run panic recovered: %v", r)

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}
			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricScheduledRunsTotal.WithLabelValues(trigger, svcErr.Code).Inc()
		}
	}()

	_, err := s.reportService.Run(ctx)
	if err == nil {
		metricScheduledRunsTotal.WithLabelValues(trigger, metrics.ValueNoError).Inc()
		return
	}

	svcErr, ok := svcerrors.AsServiceError(err)
	if !ok {
		svcErr = svcerrors.NewInternalErrorUndefined(err)
	}
	metricScheduledRunsTotal.WithLabelValues(trigger, svcErr.Code).Inc()

	switch {
	case svcErr.IsResourceConflict():
		logger.Info().Str(loggers.FieldErrorCode, svcErr.Code).Msg("report already up to date")
	case svcErr.IsInternalError():
		logger.Error().Err(err).Str(loggers.FieldErrorCode, svcErr.Code).Msg("scheduled run failed")
	default:
		logger.Warn().Err(err).Str(loggers.FieldErrorCode, svcErr.Code).Msg("scheduled run produced no report")
	}
}
