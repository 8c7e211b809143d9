package process

import (
	"context"
	"strings"
	"time"

	"github.com/kbukum/gocmd/errors"
	"github.com/kbukum/gocmd/logger"
)

// Mode tells how Run interpreted its command string.
type Mode string

const (
	// ModeDirect executes the command string as an executable path.
	ModeDirect Mode = "direct"
	// ModeShell hands the command string to the shell as a script.
	ModeShell Mode = "shell"
)

// ModeFor returns the mode Run uses for args: ModeShell when args is nil,
// ModeDirect otherwise, including for an empty non-nil slice.
func ModeFor(args []string) Mode {
	if args == nil {
		return ModeShell
	}
	return ModeDirect
}

// Run executes command to completion and returns its Result.
//
// With non-nil args (an empty slice counts) command is the executable path
// and args are passed to it unchanged. With nil args command is a shell
// script run as `<ShellPath> -c command`. The script is not escaped: never
// build it from untrusted input.
//
// A non-zero exit code is reported through Result, not as an error. Errors
// mean the command could not be run at all.
func (r *Runner) Run(ctx context.Context, command string, args []string) (*Result, error) {
	mode := ModeFor(args)
	if command == "" {
		return nil, errors.InvalidInput("command", "command must not be empty")
	}

	path, argv := command, args
	if mode == ModeShell {
		path, argv = r.config.ShellPath, []string{"-c", command}
	}

	ctx, span := r.telemetry.start(ctx, mode, command)
	started := time.Now()

	var (
		h   *Handle
		res *Result
	)
	release, err := r.slots.Acquire(ctx)
	if err != nil {
		err = errors.Canceled(err).WithDetail(logger.FieldCommand, command)
	} else {
		h, err = r.Start(path, argv)
		if err == nil {
			res, err = r.Collect(h)
		}
		release()
	}

	r.telemetry.finish(ctx, span, mode, h, res, err, time.Since(started))
	r.logRun(ctx, command, args, h, res, err)
	return res, err
}

// Exec runs path directly with args; no shell is involved even when args is empty.
func (r *Runner) Exec(ctx context.Context, path string, args ...string) (*Result, error) {
	if args == nil {
		args = []string{}
	}
	return r.Run(ctx, path, args)
}

// Shell runs script through the configured shell.
func (r *Runner) Shell(ctx context.Context, script string) (*Result, error) {
	return r.Run(ctx, script, nil)
}

// OutputText runs script through the shell and returns its output lines
// joined by newlines.
func (r *Runner) OutputText(ctx context.Context, script string) (string, error) {
	res, err := r.Shell(ctx, script)
	if err != nil {
		return "", err
	}
	return res.OutputString(), nil
}

// ErrorText runs script through the shell and returns its error lines
// joined by newlines.
func (r *Runner) ErrorText(ctx context.Context, script string) (string, error) {
	res, err := r.Shell(ctx, script)
	if err != nil {
		return "", err
	}
	return res.ErrorString(), nil
}

// logRun writes the execution log. It only observes; nothing it does feeds
// back into the Result.
func (r *Runner) logRun(ctx context.Context, command string, args []string, h *Handle, res *Result, err error) {
	log := r.logger()
	if !log.Enabled() {
		return
	}
	log = log.WithContext(ctx)

	fields := logger.Fields(
		logger.FieldCommand, command,
		logger.FieldArgs, strings.Join(args, " "),
		logger.FieldMode, string(ModeFor(args)),
	)
	if h != nil {
		fields[logger.FieldHandleID] = h.id
	}
	log.Info("executed command", fields)

	if err != nil {
		log.WithError(err).Warn("command could not be run")
		return
	}
	log.Info("exit code", logger.Fields(logger.FieldExitCode, res.ExitCode))
	log.Info("output", logger.Fields(logger.FieldStdout, res.OutputString()))
	log.Info("error", logger.Fields(logger.FieldStderr, res.ErrorString()))
}
