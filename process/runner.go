package process

import (
	"context"
	stderrors "errors"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/gocmd/errors"
	"github.com/kbukum/gocmd/logger"
	"github.com/kbukum/gocmd/resilience"
)

// Runner launches and collects processes. It holds configuration only, so a
// single Runner can serve concurrent callers; every execution gets its own
// Handle and pipes.
type Runner struct {
	config    Config
	log       *logger.Logger
	fs        afero.Fs
	telemetry *telemetry
	slots     *resilience.Bulkhead
}

// Option configures a Runner.
type Option func(*runnerOptions)

type runnerOptions struct {
	log            *logger.Logger
	fs             afero.Fs
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// WithLogger sets the execution logger. A disabled logger (see
// logger.Config.Disabled) silences the per-run log lines. Without this option
// the runner resolves logger.Get(cfg.Name) on every run.
func WithLogger(l *logger.Logger) Option {
	return func(o *runnerOptions) { o.log = l }
}

// WithFs sets the filesystem used by the strict executable check.
func WithFs(fs afero.Fs) Option {
	return func(o *runnerOptions) { o.fs = fs }
}

// WithTracerProvider sets the tracer provider. Defaults to the global one.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *runnerOptions) { o.tracerProvider = tp }
}

// WithMeterProvider sets the meter provider. Defaults to the global one.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *runnerOptions) { o.meterProvider = mp }
}

// NewRunner creates a Runner. Unset config fields get their defaults.
func NewRunner(cfg Config, opts ...Option) *Runner {
	cfg.ApplyDefaults()

	o := runnerOptions{
		fs:             afero.NewOsFs(),
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Runner{
		config:    cfg,
		log:       o.log,
		fs:        o.fs,
		telemetry: newTelemetry(o.tracerProvider, o.meterProvider),
		slots:     resilience.NewBulkhead(cfg.MaxConcurrent),
	}
}

// Config returns the runner configuration.
func (r *Runner) Config() Config {
	return r.config
}

func (r *Runner) logger() *logger.Logger {
	if r.log != nil {
		return r.log
	}
	return logger.Get(r.config.Name)
}

// Start launches path with args, wiring stdout and stderr to two independent
// pipes that are drained in the background from this point on.
func (r *Runner) Start(path string, args []string) (*Handle, error) {
	if path == "" {
		return nil, errors.InvalidInput("path", "executable path must not be empty")
	}
	if r.config.StrictPathCheck {
		if err := r.checkExecutable(path); err != nil {
			return nil, err
		}
	}

	retry := r.config.LaunchRetry
	retry.RetryIf = isTransientLaunchError
	retry.OnRetry = func(attempt int, err error, backoff time.Duration) {
		r.logger().WithError(err).Debug("retrying launch", logger.Fields(
			logger.FieldCommand, path,
			"attempt", attempt,
			"backoff", backoff.String(),
		))
	}
	return resilience.Retry(context.Background(), retry, func() (*Handle, error) {
		return launch(path, args)
	})
}

func launch(path string, args []string) (*Handle, error) {
	cmd := exec.Command(path, args...) //nolint:gosec // running caller-supplied commands is the purpose of this package

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.LaunchFailed(path, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		_ = stdout.Close()
		return nil, errors.LaunchFailed(path, err)
	}

	// Start closes both pipes itself when it fails.
	if err := cmd.Start(); err != nil {
		return nil, errors.LaunchFailed(path, err)
	}

	return &Handle{
		id:      uuid.NewString(),
		path:    path,
		args:    append([]string{}, args...),
		started: time.Now(),
		cmd:     cmd,
		stdout:  startDrain(stdout),
		stderr:  startDrain(stderr),
	}, nil
}

// isTransientLaunchError reports whether a launch failed for a reason that
// may clear on its own.
func isTransientLaunchError(err error) bool {
	appErr, ok := errors.AsAppError(err)
	return ok && appErr.Code == errors.ErrCodeLaunchFailed && appErr.Retryable
}

// Collect blocks until the process behind h has exited and both of its pipes
// are drained, then builds the Result. A Handle can be collected once.
func (r *Runner) Collect(h *Handle) (*Result, error) {
	if h == nil {
		return nil, errors.InvalidInput("handle", "no process handle to collect")
	}
	if !h.collected.CompareAndSwap(false, true) {
		return nil, errors.Conflict("process handle already collected").
			WithDetail(logger.FieldHandleID, h.id)
	}

	// os/exec requires every read from the pipes to finish before Wait.
	outBytes, outErr := h.stdout.wait()
	errBytes, errErr := h.stderr.wait()
	r.logDrainError(h, logger.FieldStdout, outErr)
	r.logDrainError(h, logger.FieldStderr, errErr)

	if err := h.cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !stderrors.As(err, &exitErr) {
			return nil, errors.Internal(err).WithDetail(logger.FieldHandleID, h.id)
		}
	}

	return &Result{
		ExitCode: int32(h.cmd.ProcessState.ExitCode()),
		Output:   splitLines(outBytes),
		Error:    splitLines(errBytes),
	}, nil
}

func (r *Runner) logDrainError(h *Handle, stream string, err error) {
	if err == nil {
		return
	}
	r.logger().WithError(err).Warn("stream drain interrupted", logger.Fields(
		logger.FieldHandleID, h.id,
		"stream", stream,
	))
}

// checkExecutable verifies path names an existing non-directory file.
// Bare names are resolved through $PATH like os/exec does.
func (r *Runner) checkExecutable(path string) error {
	if !strings.Contains(path, "/") {
		if _, err := exec.LookPath(path); err != nil {
			return errors.NotFound("executable", path).WithCause(err)
		}
		return nil
	}

	info, err := r.fs.Stat(path)
	if err != nil {
		return errors.NotFound("executable", path).WithCause(err)
	}
	if info.IsDir() {
		return errors.NotFound("executable", path).WithDetail("reason", "path is a directory")
	}
	return nil
}
