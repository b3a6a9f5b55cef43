package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"log-analyzer/internal/aggregators"
	internalhttp "log-analyzer/internal/http"
	"log-analyzer/internal/ingestors"
	"log-analyzer/internal/reporters"
	"log-analyzer/internal/schedulers"
	"log-analyzer/internal/shared/configs"
	"log-analyzer/internal/shared/filestorages"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/metrics"
	"log-analyzer/internal/shared/svcerrors"
	"log-analyzer/internal/stores"

	"github.com/spf13/afero"
)

const appName = "log-analyzer"

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	logOutput io.WriteCloser

	reportService reporters.ReportService
	scheduler     schedulers.RunScheduler
	server        *http.Server

	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	logOutput, err := loggers.OpenOutput(config.Log.File)
	if err != nil {
		return nil, err
	}

	appLogger, err := loggers.New(config.Log.Level, logOutput)
	if err != nil {
		_ = logOutput.Close()
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	app, err := build(config, appLogger)
	if err != nil {
		_ = logOutput.Close()
		return nil, err
	}
	app.logOutput = logOutput
	return app, nil
}

func build(config *configs.Config, appLogger loggers.Logger) (*App, error) {
	fs := afero.NewOsFs()

	// Initialize report storage
	fileStorage, err := filestorages.NewFileStorage(config.Report.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize report storage: %w", err)
	}
	reportStore := stores.NewReportStore(fileStorage)

	// Initialize source selection
	finder, err := stores.NewLogFileFinder(fs, config.Analysis.LogDir, config.Analysis.LogFilePattern)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize log file finder: %w", err)
	}

	renderer, err := reporters.NewReportRenderer(fs, config.Report.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize report renderer: %w", err)
	}

	// Initialize pipeline
	reader := ingestors.NewLogReader(ingestors.NewLineParser())
	reportService := reporters.NewReportService(
		finder,
		reportStore,
		reader,
		aggregators.NewURLAggregator(),
		aggregators.NewStatisticsEngine(),
		renderer,
		reporters.ReportServiceOptions{
			MinSuccessRate: config.Analysis.MinSuccessRate,
			ReportSize:     config.Analysis.ReportSize,
			TopClients:     config.Report.TopClients,
		},
	)

	schedulerLogger := appLogger.With().Str(loggers.FieldComponent, "scheduler").Logger()
	scheduler := schedulers.NewRunScheduler(reportService, schedulers.SchedulerOptions{
		Interval:   config.Scheduler.Interval,
		RunOnStart: config.Scheduler.RunOnStart,
	}, schedulerLogger)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(reportService, reportStore, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:        config,
		appLogger:     appLogger,
		reportService: reportService,
		scheduler:     scheduler,
		server:        server,
	}, nil
}

// Run performs one analysis run and, when configured, exports the metrics textfile.
func (app *App) Run(ctx context.Context) (*reporters.RunResult, error) {
	runLogger := app.appLogger.With().Str(loggers.FieldComponent, "batch").Logger()
	ctx = runLogger.WithContext(ctx)

	result, err := app.reportService.Run(ctx)

	if path := app.config.Metrics.TextfilePath; path != "" {
		if writeErr := metrics.WriteTextfile(path); writeErr != nil {
			runLogger.Warn().Err(writeErr).Msg("failed to export metrics textfile")
		}
	}
	return result, err
}

// Handler exposes the HTTP handler, mainly for tests.
func (app *App) Handler() http.Handler {
	return app.server.Handler
}

// Start starts the scheduler and the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting %s server on port %d (log_level=%s, log_dir=%s, report_dir=%s, interval=%s)",
			appName,
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Analysis.LogDir,
			app.config.Report.Dir,
			app.config.Scheduler.Interval)

	// start background scheduler
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.scheduler.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// TriggerRun asks the scheduler for a run; false means one is already pending.
func (app *App) TriggerRun() bool {
	return app.scheduler.Trigger()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Cancel the scheduler and wait for an in-flight run
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}
	app.scheduler.Stop()
	app.appLogger.Info().Msg("Scheduler stopped")

	return nil
}

// Close releases the log output.
func (app *App) Close() error {
	if app.logOutput == nil {
		return nil
	}
	return app.logOutput.Close()
}

// ExitCode maps a run outcome to the process exit status. An existing report counts as success.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if svcErr, ok := svcerrors.AsServiceError(err); ok && svcErr.IsResourceConflict() {
		return 0
	}
	return 1
}
