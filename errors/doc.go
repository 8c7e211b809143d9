// Package errors provides the error channel for gocmd.
//
// Every failure surfaced by the library is an *AppError carrying a
// machine-readable ErrorCode, so callers can tell "the command could not be
// run" (an error) apart from "the command ran and failed" (a Result with a
// non-zero exit code).
//
// # Usage
//
//	res, err := process.Run(ctx, "/usr/bin/uname", []string{"-a"})
//	if errors.HasCode(err, errors.ErrCodeLaunchFailed) {
//	    // binary could not be started
//	}
package errors
