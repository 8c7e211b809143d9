package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"
	"syscall"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeNotFound, "not found")
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "not found" {
		t.Errorf("expected message 'not found', got %q", err.Message)
	}
	if err.Retryable {
		t.Error("NOT_FOUND should not be retryable")
	}
}

func TestAppError_New_Retryable(t *testing.T) {
	err := New(ErrCodeLaunchFailed, "could not start")
	if !err.Retryable {
		t.Error("LAUNCH_FAILED should be retryable")
	}
}

func TestAppError_NotFound_Success(t *testing.T) {
	err := NotFound("executable", "/no/such/binary")
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %s", err.Code)
	}
	if err.Details["resource"] != "executable" {
		t.Errorf("expected resource=executable, got %v", err.Details["resource"])
	}
	if err.Details["id"] != "/no/such/binary" {
		t.Errorf("expected id=/no/such/binary, got %v", err.Details["id"])
	}
}

func TestAppError_NotFound_EmptyID(t *testing.T) {
	err := NotFound("executable", "")
	if _, ok := err.Details["id"]; ok {
		t.Error("expected no 'id' key in details when id is empty")
	}
}

func TestAppError_LaunchFailed_Success(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := LaunchFailed("/usr/bin/thing", cause)
	if err.Code != ErrCodeLaunchFailed {
		t.Errorf("expected LAUNCH_FAILED, got %s", err.Code)
	}
	if err.Details["path"] != "/usr/bin/thing" {
		t.Errorf("expected path detail, got %v", err.Details["path"])
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected cause in chain")
	}
}

func TestAppError_LaunchFailed_RetryableFollowsCause(t *testing.T) {
	tests := []struct {
		name  string
		cause error
		want  bool
	}{
		{"text file busy", &fs.PathError{Op: "fork/exec", Path: "/x", Err: syscall.ETXTBSY}, true},
		{"resource unavailable", syscall.EAGAIN, true},
		{"out of memory", syscall.ENOMEM, true},
		{"missing binary", &fs.PathError{Op: "fork/exec", Path: "/x", Err: syscall.ENOENT}, false},
		{"permission denied", &fs.PathError{Op: "fork/exec", Path: "/x", Err: syscall.EACCES}, false},
		{"no cause", nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := LaunchFailed("/x", tc.cause).Retryable; got != tc.want {
				t.Errorf("Retryable = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAppError_InvalidInput_Success(t *testing.T) {
	err := InvalidInput("path", "must not be empty")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
	if err.Details["field"] != "path" {
		t.Errorf("expected field=path, got %v", err.Details["field"])
	}
	if !strings.Contains(err.Message, "must not be empty") {
		t.Errorf("unexpected message %q", err.Message)
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Conflict("handle already collected").WithCause(cause)
	if err.Cause != cause {
		t.Error("expected cause to be set via WithCause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
}

func TestAppError_WithDetails_Merge(t *testing.T) {
	err := NotFound("item", "1").WithDetails(map[string]any{"extra": "info"})
	if err.Details["extra"] != "info" {
		t.Errorf("expected extra=info in details")
	}
	if err.Details["resource"] != "item" {
		t.Error("expected original details to be preserved")
	}
}

func TestAppError_WithDetails_Nil(t *testing.T) {
	err := Internal(nil).WithDetails(nil)
	if err.Details == nil {
		t.Fatal("expected Details map to be initialized even with nil input")
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := &AppError{}
	err.WithDetail("key", "value")
	if err.Details["key"] != "value" {
		t.Errorf("expected key=value, got %v", err.Details["key"])
	}
}

func TestAppError_Unwrap_Success(t *testing.T) {
	cause := fmt.Errorf("underlying")
	if Internal(cause).Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
	if NotFound("x", "").Unwrap() != nil {
		t.Error("Unwrap should return nil when no cause")
	}
}

func TestAppError_Constructors_Table(t *testing.T) {
	tests := []struct {
		name      string
		err       *AppError
		code      ErrorCode
		retryable bool
	}{
		{"Conflict", Conflict("already collected"), ErrCodeConflict, false},
		{"MissingField", MissingField("shell_path"), ErrCodeMissingField, false},
		{"Validation", Validation("bad input"), ErrCodeInvalidInput, false},
		{"LaunchFailed", LaunchFailed("x", nil), ErrCodeLaunchFailed, false},
		{"Canceled", Canceled(nil), ErrCodeCanceled, false},
		{"Internal", Internal(nil), ErrCodeInternal, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, tc.err.Code)
			}
			if tc.err.Retryable != tc.retryable {
				t.Errorf("expected retryable=%v, got %v", tc.retryable, tc.err.Retryable)
			}
		})
	}
}

func TestAppError_ToResponse_Success(t *testing.T) {
	resp := NotFound("executable", "/bin/nope").ToResponse()
	if resp.Error.Code != ErrCodeNotFound {
		t.Errorf("expected code NOT_FOUND in response, got %s", resp.Error.Code)
	}
	if resp.Error.Details["resource"] != "executable" {
		t.Error("expected resource=executable in response details")
	}
}

func TestAppError_AsAppError_Success(t *testing.T) {
	wrapped := fmt.Errorf("wrap: %w", Internal(nil))

	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed for wrapped AppError")
	}
	if got.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", got.Code)
	}

	if _, ok := AsAppError(fmt.Errorf("not an app error")); ok {
		t.Error("expected AsAppError to return false for non-AppError")
	}
	if IsAppError(fmt.Errorf("plain")) {
		t.Error("expected IsAppError to return false for plain error")
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", LaunchFailed("/bin/x", nil))
	if !HasCode(err, ErrCodeLaunchFailed) {
		t.Error("expected HasCode to find LAUNCH_FAILED through wrapping")
	}
	if HasCode(err, ErrCodeNotFound) {
		t.Error("expected HasCode to reject a different code")
	}
	if HasCode(nil, ErrCodeInternal) {
		t.Error("expected HasCode(nil) to be false")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil) != nil {
		t.Error("Wrap(nil) should return nil")
	}

	orig := NotFound("item", "1")
	if Wrap(fmt.Errorf("outer: %w", orig)) != orig {
		t.Error("Wrap should return the AppError found in the chain")
	}

	plain := fmt.Errorf("something broke")
	got := Wrap(plain)
	if got.Code != ErrCodeInternal || got.Cause != plain {
		t.Errorf("expected INTERNAL_ERROR wrapping the plain error, got %v", got)
	}
}
