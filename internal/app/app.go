// Package app wires configuration, logging, metrics and tracing around the
// demo steps and is the single place where step errors are recovered.
package app

import (
	"context"
	"errors"
	"io"

	"github.com/agbru/snippets/internal/config"
	apperrors "github.com/agbru/snippets/internal/errors"
	"github.com/agbru/snippets/internal/logging"
	"github.com/agbru/snippets/internal/metrics"
	"github.com/agbru/snippets/internal/pattern"
	"github.com/agbru/snippets/internal/series"
	"github.com/agbru/snippets/internal/unify"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Version is the application version, set at build time with -ldflags.
var Version = "dev"

// Step names used in logs, metrics and spans.
const (
	StepSeries  = "series"
	StepLocal   = "local"
	StepLibrary = "library"
	StepParse   = "parse"
)

const tracerName = "github.com/agbru/snippets/internal/app"

// Application represents one snippets run.
type Application struct {
	Config   config.AppConfig
	Reporter Reporter
	Logger   logging.Logger
	Metrics  *metrics.Recorder
	Out      io.Writer
	ErrOut   io.Writer
	RunID    string

	tracerProvider trace.TracerProvider
	tracer         trace.Tracer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithMetrics sets the metrics recorder. The default is a fresh recorder.
func WithMetrics(m *metrics.Recorder) AppOption {
	return func(a *Application) { a.Metrics = m }
}

// WithRunID overrides the generated run identifier.
func WithRunID(id string) AppOption {
	return func(a *Application) { a.RunID = id }
}

// WithTracerProvider sets where spans go. The default is the global
// provider, which drops spans unless one has been installed.
func WithTracerProvider(tp trace.TracerProvider) AppOption {
	return func(a *Application) { a.tracerProvider = tp }
}

// New creates an Application. out and errOut receive the text the steps
// print themselves; everything else goes through reporter. Every log entry
// written through a.Logger carries the run id.
func New(cfg config.AppConfig, reporter Reporter, out, errOut io.Writer, opts ...AppOption) *Application {
	a := &Application{
		Config:   cfg,
		Reporter: reporter,
		Out:      out,
		ErrOut:   errOut,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Logger == nil {
		a.Logger = logging.Nop()
	}
	if a.Metrics == nil {
		a.Metrics = metrics.NewRecorder()
	}
	if a.RunID == "" {
		a.RunID = uuid.NewString()
	}
	if a.tracerProvider == nil {
		a.tracerProvider = otel.GetTracerProvider()
	}
	a.tracer = a.tracerProvider.Tracer(tracerName)
	a.Logger = a.Logger.With(logging.String("run_id", a.RunID))
	return a
}

// Run executes every step in order. Step failures are reported and never
// change the exit code.
func (a *Application) Run(ctx context.Context) int {
	ctx, span := a.tracer.Start(ctx, "run")
	defer span.End()
	span.SetAttributes(attribute.String("run_id", a.RunID))
	a.Logger.Debug("run started",
		logging.Int("n", a.Config.N),
		logging.Bool("fail_local", a.Config.FailLocal),
		logging.Bool("fail_library", a.Config.FailLibrary),
	)

	a.RunSeries(ctx)
	a.RunErrors(ctx)
	a.RunParse(ctx, a.Config.Input)
	return a.Finish()
}

// RunSeries computes and reports the series both ways.
func (a *Application) RunSeries(ctx context.Context) {
	a.step(ctx, StepSeries, func() error {
		n := a.Config.N
		iterative := series.Harmonic(n)
		functional := series.HarmonicFunctional(n)
		a.Metrics.SeriesValue("iterative", iterative)
		a.Metrics.SeriesValue("functional", functional)
		a.Logger.Debug("series computed",
			logging.Int("n", n),
			logging.Float64("iterative", iterative),
			logging.Float64("functional", functional),
		)
		a.Reporter.ReportSeries(n, iterative, functional)
		return nil
	})
}

// RunErrors runs both error-producing computations.
func (a *Application) RunErrors(ctx context.Context) {
	opts := a.Config.UnifyOptions()
	a.step(ctx, StepLocal, func() error {
		return unify.ComputeWithLocalError(a.Out, opts)
	})
	a.step(ctx, StepLibrary, func() error {
		return unify.ComputeWithLibraryError(a.Out, a.ErrOut, opts)
	})
}

// RunParse parses input into a Record and reports it.
func (a *Application) RunParse(ctx context.Context, input string) {
	a.step(ctx, StepParse, func() error {
		rec, err := pattern.ParseRecord(input)
		if err != nil {
			return err
		}
		a.Logger.Debug("record parsed",
			logging.Uint64("number", rec.Number),
			logging.Bool("flag", rec.Flag),
			logging.String("token", rec.Token),
		)
		a.Reporter.ReportRecord(rec)
		return nil
	})
}

// Finish reports metrics when enabled and returns the exit code.
func (a *Application) Finish() int {
	if !a.Config.Metrics {
		return apperrors.ExitSuccess
	}
	samples, err := a.Metrics.Snapshot()
	if err != nil {
		a.Logger.Error("gather metrics", err)
		return apperrors.ExitSuccess
	}
	a.Reporter.ReportMetrics(samples)
	return apperrors.ExitSuccess
}

// step runs fn inside a span and routes its error to the reporter.
func (a *Application) step(ctx context.Context, name string, fn func() error) {
	_, span := a.tracer.Start(ctx, name)
	defer span.End()

	a.Metrics.StepRun(name)
	a.Logger.Debug("step started", logging.String("step", name))

	err := fn()
	if err == nil {
		return
	}

	kind := apperrors.Kind(err)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.SetAttributes(attribute.String("error.kind", kind))
	a.Metrics.ErrorReported(name, kind)
	if kind == apperrors.KindUnknown {
		a.Logger.Warn("unclassified error", errorFields(name, kind, err)...)
	} else {
		a.Logger.Info("step reported error", errorFields(name, kind, err)...)
	}
	a.Reporter.ReportError(name, err)
}

// errorFields describes err for the log, including any values a library
// error carries.
func errorFields(step, kind string, err error) []logging.Field {
	fields := []logging.Field{
		logging.String("step", step),
		logging.String("kind", kind),
		logging.Err(err),
	}
	var lib *goerr.Error
	if errors.As(err, &lib) {
		for key, value := range lib.Values() {
			fields = append(fields, logging.Field{Key: key, Value: value})
		}
	}
	return fields
}
