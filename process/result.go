package process

import "slices"

// Result holds the exit status and captured output of a completed process.
// Output and Error are never nil on a Result returned by Collect.
type Result struct {
	// ExitCode is the process exit status. -1 if the process was killed by a signal.
	ExitCode int32 `json:"exit_code" yaml:"exit_code" toml:"exit_code"`
	// Output holds the standard output lines in emission order.
	Output []string `json:"output" yaml:"output" toml:"output"`
	// Error holds the standard error lines in emission order.
	Error []string `json:"error" yaml:"error" toml:"error"`
}

// Success reports whether the process exited with status 0.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// OutputString returns the output lines joined by newlines.
func (r *Result) OutputString() string {
	return joinLines(r.Output)
}

// ErrorString returns the error lines joined by newlines.
func (r *Result) ErrorString() string {
	return joinLines(r.Error)
}

// Equal reports whether both results have the same exit code and lines.
func (r *Result) Equal(other *Result) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.ExitCode == other.ExitCode &&
		slices.Equal(r.Output, other.Output) &&
		slices.Equal(r.Error, other.Error)
}
