package schedulers

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"log-analyzer/internal/reporters"
	reportermocks "log-analyzer/internal/reporters/mocks"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const waitTimeout = 2 * time.Second

func newTestLogger(t *testing.T) loggers.Logger {
	t.Helper()
	logger, err := loggers.New("info", io.Discard)
	require.NoError(t, err)
	return logger
}

func waitFor(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(waitTimeout):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestRunScheduler_RunOnStart(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	service := reportermocks.NewMockReportService(ctrl)

	ran := make(chan struct{})
	service.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) (*reporters.RunResult, error) {
		close(ran)
		return &reporters.RunResult{ReportKey: "report-2017.06.30.html"}, nil
	})

	scheduler := NewRunScheduler(service, SchedulerOptions{RunOnStart: true}, newTestLogger(t))
	scheduler.Start(context.Background())
	waitFor(t, ran, "startup run")
	scheduler.Stop()
}

func TestRunScheduler_TriggerCoalescesPendingRequests(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	service := reportermocks.NewMockReportService(ctrl)

	started := make(chan struct{}, 2)
	release := make(chan struct{})
	service.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) (*reporters.RunResult, error) {
		started <- struct{}{}
		<-release
		return nil, svcerrors.NewResourceConflictError("RPT_1002", "report already exists", nil)
	}).Times(2)

	scheduler := NewRunScheduler(service, SchedulerOptions{}, newTestLogger(t))
	scheduler.Start(context.Background())

	require.True(t, scheduler.Trigger())
	waitFor(t, started, "first run")

	assert.True(t, scheduler.Trigger(), "one request may wait while a run is in progress")
	assert.False(t, scheduler.Trigger(), "further requests are coalesced")

	release <- struct{}{}
	waitFor(t, started, "second run")
	release <- struct{}{}

	scheduler.Stop()
}

func TestRunScheduler_Interval(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	service := reportermocks.NewMockReportService(ctrl)

	ticks := make(chan struct{}, 8)
	service.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) (*reporters.RunResult, error) {
		select {
		case ticks <- struct{}{}:
		default:
		}
		return nil, errors.New("boom")
	}).MinTimes(2)

	scheduler := NewRunScheduler(service, SchedulerOptions{Interval: 5 * time.Millisecond}, newTestLogger(t))
	scheduler.Start(context.Background())
	waitFor(t, ticks, "first tick")
	waitFor(t, ticks, "second tick")
	scheduler.Stop()
}

func TestRunScheduler_RecoversFromPanic(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	service := reportermocks.NewMockReportService(ctrl)

	done := make(chan struct{})
	gomock.InOrder(
		service.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) (*reporters.RunResult, error) {
			panic("template exploded")
		}),
		service.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) (*reporters.RunResult, error) {
			close(done)
			return &reporters.RunResult{}, nil
		}),
	)

	scheduler := NewRunScheduler(service, SchedulerOptions{RunOnStart: true}, newTestLogger(t))
	scheduler.Start(context.Background())
	require.Eventually(t, func() bool { return scheduler.Trigger() }, waitTimeout, time.Millisecond)
	waitFor(t, done, "run after panic")
	scheduler.Stop()
}

func TestRunScheduler_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	service := reportermocks.NewMockReportService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	scheduler := NewRunScheduler(service, SchedulerOptions{Interval: time.Hour}, newTestLogger(t))
	scheduler.Start(ctx)
	cancel()

	stopped := make(chan struct{})
	go func() {
		scheduler.Stop()
		close(stopped)
	}()
	waitFor(t, stopped, "worker exit")

	// Stop is idempotent
	scheduler.Stop()
}
