package errors

import (
	stderrors "errors"
)

// ErrorResponse is the structured envelope written by tools that report
// errors as data.
type ErrorResponse struct {
	Error ErrorBody `json:"error" yaml:"error" toml:"error"`
}

// ErrorBody contains the error details.
type ErrorBody struct {
	Code      ErrorCode              `json:"code" yaml:"code" toml:"code"`
	Message   string                 `json:"message" yaml:"message" toml:"message"`
	Retryable bool                   `json:"retryable" yaml:"retryable" toml:"retryable"`
	Details   map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty" toml:"details,omitempty"`
}

// ToResponse converts an AppError to an ErrorResponse for serialization.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{
		Error: ErrorBody{
			Code:      e.Code,
			Message:   e.Message,
			Retryable: e.Retryable,
			Details:   e.Details,
		},
	}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is, or wraps, an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// Wrap converts any error into an AppError. AppErrors anywhere in the chain
// are returned as-is; other errors become INTERNAL_ERROR.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return Internal(err)
}
