package process

import (
	"context"
	"sync"
)

var defaultRunner = sync.OnceValue(func() *Runner {
	return NewRunner(DefaultConfig())
})

// Default returns the Runner behind the package-level functions. It uses
// DefaultConfig, the global logger and the global OpenTelemetry providers.
func Default() *Runner {
	return defaultRunner()
}

// Start launches path with args using the default Runner.
func Start(path string, args []string) (*Handle, error) {
	return Default().Start(path, args)
}

// Collect waits for h and builds its Result using the default Runner.
func Collect(h *Handle) (*Result, error) {
	return Default().Collect(h)
}

// Run executes command using the default Runner. See Runner.Run.
func Run(ctx context.Context, command string, args []string) (*Result, error) {
	return Default().Run(ctx, command, args)
}

// Exec runs path directly with args using the default Runner.
func Exec(ctx context.Context, path string, args ...string) (*Result, error) {
	return Default().Exec(ctx, path, args...)
}

// Shell runs script through /bin/sh using the default Runner.
func Shell(ctx context.Context, script string) (*Result, error) {
	return Default().Shell(ctx, script)
}

// OutputText runs script through /bin/sh and returns its output text.
func OutputText(ctx context.Context, script string) (string, error) {
	return Default().OutputText(ctx, script)
}

// ErrorText runs script through /bin/sh and returns its error text.
func ErrorText(ctx context.Context, script string) (string, error) {
	return Default().ErrorText(ctx, script)
}
