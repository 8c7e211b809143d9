package app

import (
	"fmt"

	"github.com/kbukum/gocmd/errors"
)

// Exit codes for failures that never produced a child exit status.
const (
	ExitFailure       = 1
	ExitInvalidInput  = 2
	ExitCannotExecute = 127
)

// exitStatus carries a child's non-zero exit code out of RunE.
type exitStatus struct {
	code int32
}

func (e *exitStatus) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// exitCode maps an error returned by a command to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if st, ok := err.(*exitStatus); ok {
		if st.code < 0 {
			return ExitFailure
		}
		return int(st.code)
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		return ExitFailure
	}
	switch appErr.Code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeMissingField:
		return ExitInvalidInput
	case errors.ErrCodeLaunchFailed, errors.ErrCodeNotFound:
		return ExitCannotExecute
	default:
		return ExitFailure
	}
}
