package process

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/kbukum/gocmd/process"

// Span and instrument names.
const (
	SpanRun          = "process.run"
	MetricExecutions = "process.executions"
	MetricDuration   = "process.duration"
)

// Attribute keys and outcome values.
const (
	AttrMode     = "process.mode"
	AttrCommand  = "process.command"
	AttrHandleID = "process.handle_id"
	AttrExitCode = "process.exit_code"
	AttrOutcome  = "process.outcome"

	OutcomeSuccess     = "success"
	OutcomeNonZeroExit = "nonzero_exit"
	OutcomeError       = "error"
)

type telemetry struct {
	tracer     trace.Tracer
	executions metric.Int64Counter
	duration   metric.Float64Histogram
}

func newTelemetry(tp trace.TracerProvider, mp metric.MeterProvider) *telemetry {
	meter := mp.Meter(instrumentationName)
	noop := metricnoop.NewMeterProvider().Meter(instrumentationName)

	executions, err := meter.Int64Counter(MetricExecutions,
		metric.WithDescription("Number of process executions by mode and outcome."))
	if err != nil {
		executions, _ = noop.Int64Counter(MetricExecutions)
	}
	duration, err := meter.Float64Histogram(MetricDuration,
		metric.WithDescription("Wall time from launch to collected result."),
		metric.WithUnit("ms"))
	if err != nil {
		duration, _ = noop.Float64Histogram(MetricDuration)
	}

	return &telemetry{
		tracer:     tp.Tracer(instrumentationName),
		executions: executions,
		duration:   duration,
	}
}

func (t *telemetry) start(ctx context.Context, mode Mode, command string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, SpanRun, trace.WithAttributes(
		attribute.String(AttrMode, string(mode)),
		attribute.String(AttrCommand, command),
	))
}

func (t *telemetry) finish(ctx context.Context, span trace.Span, mode Mode, h *Handle, res *Result, err error, elapsed time.Duration) {
	defer span.End()

	outcome := OutcomeSuccess
	switch {
	case err != nil:
		outcome = OutcomeError
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	case !res.Success():
		outcome = OutcomeNonZeroExit
	}

	if h != nil {
		span.SetAttributes(attribute.String(AttrHandleID, h.id))
	}
	if res != nil {
		span.SetAttributes(attribute.Int(AttrExitCode, int(res.ExitCode)))
	}
	span.SetAttributes(attribute.String(AttrOutcome, outcome))

	attrs := metric.WithAttributes(
		attribute.String(AttrMode, string(mode)),
		attribute.String(AttrOutcome, outcome),
	)
	t.executions.Add(ctx, 1, attrs)
	t.duration.Record(ctx, float64(elapsed.Microseconds())/1000, attrs)
}
