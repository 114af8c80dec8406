package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ExitError
		wantCode int
		wantMsg  string
	}{
		{
			name:     "user error",
			err:      NewUserError("unknown flag: --bogus"),
			wantCode: ExitUserError,
			wantMsg:  "unknown flag: --bogus",
		},
		{
			name:     "system error",
			err:      NewSystemErrorWithCause("writing output failed", errors.New("disk full")),
			wantCode: ExitSystemError,
			wantMsg:  "writing output failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestExitErrorWrapping(t *testing.T) {
	underlying := errors.New("permission denied")

	sysErr := NewSystemErrorWithCause("writing out.md failed", underlying)
	if sysErr.Code != ExitSystemError {
		t.Errorf("Code = %d, want %d", sysErr.Code, ExitSystemError)
	}
	if !errors.Is(sysErr, underlying) {
		t.Error("errors.Is should find underlying error")
	}

	userErr := NewUserErrorWithCause("reading notes.txt failed", underlying)
	if userErr.Code != ExitUserError {
		t.Errorf("Code = %d, want %d", userErr.Code, ExitUserError)
	}
	if !errors.Is(userErr, underlying) {
		t.Error("errors.Is should find underlying error")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: ExitSuccess},
		{name: "user error", err: NewUserError("bad input"), expected: ExitUserError},
		{name: "system error", err: NewSystemErrorWithCause("listen failed", errors.New("in use")), expected: ExitSystemError},
		{name: "wrapped system error", err: fmt.Errorf("serve: %w", NewSystemErrorWithCause("x", errors.New("y"))), expected: ExitSystemError},
		{name: "plain error", err: errors.New("boom"), expected: ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetExitCode(tt.err)
			if got != tt.expected {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}
