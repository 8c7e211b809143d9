package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/gocmd/errors"
)

type sample struct {
	ShellPath string `mapstructure:"shell_path" validate:"required,startswith=/"`
	Format    string `mapstructure:"format" validate:"omitempty,oneof=json yaml"`
	NoTag     string `validate:"max=3"`
}

func TestValidateOK(t *testing.T) {
	if err := Validate(sample{ShellPath: "/bin/sh", Format: "json"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateFieldErrors(t *testing.T) {
	err := Validate(sample{ShellPath: "sh", Format: "xml", NoTag: "toolong"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}
	for _, want := range []string{"shell_path: must start with /", "format: must be one of: json yaml", "no_tag: must be at most 3"} {
		if !strings.Contains(appErr.Message, want) {
			t.Errorf("expected message to contain %q, got %q", want, appErr.Message)
		}
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 3 {
		t.Errorf("expected 3 field errors in details, got %v", appErr.Details["fields"])
	}
}

func TestValidateRequired(t *testing.T) {
	err := Validate(sample{})
	if err == nil || !strings.Contains(err.Error(), "shell_path: is required") {
		t.Fatalf("expected required error, got %v", err)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{"ShellPath": "shell_path", "Name": "name", "X": "x"}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
