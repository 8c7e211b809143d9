// Package process launches executables or shell scripts, captures their
// standard output and standard error, waits for them to exit, and returns a
// Result holding the exit code and the captured lines.
//
// The lifecycle is split in two steps that can be used separately:
//
//	h, err := process.Start("/usr/bin/uname", []string{"-a"}) // launch + pipe wiring
//	res, err := process.Collect(h)                            // wait + drain + result
//
// Run combines both and adds the shell fallback: when args is nil the
// command string is handed to /bin/sh -c, otherwise it is executed directly.
//
//	res, err := process.Run(ctx, "/bin/echo", []string{"hello"}) // direct
//	res, err := process.Run(ctx, "ls | wc -l", nil)              // via /bin/sh -c
//
// Both pipes are drained by dedicated goroutines from the moment the process
// starts, so children that write more than a pipe buffer never block.
//
// All calls block for the lifetime of the child. A running child is never
// canceled or timed out. The context passed to Run carries tracing and
// logging metadata, and bounds the wait for a slot when Config.MaxConcurrent
// is set.
package process
