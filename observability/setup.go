package observability

import (
	"context"
	"errors"
)

// ShutdownFunc flushes and stops the installed providers.
type ShutdownFunc func(context.Context) error

// Setup installs tracer and meter providers when config.Enabled is set.
// It always returns a usable ShutdownFunc.
func Setup(ctx context.Context, config Config) (ShutdownFunc, error) {
	if !config.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	tp, err := InitTracer(ctx, config)
	if err != nil {
		return func(context.Context) error { return nil }, err
	}
	mp, err := InitMeter(ctx, config)
	if err != nil {
		return tp.Shutdown, err
	}

	return func(ctx context.Context) error {
		return errors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}, nil
}
