package errors

import (
	"fmt"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(ErrNotFound, ExitUser),
			want: "not found",
		},
		{
			name: "with wrapped error",
			err:  NewExitError(fmt.Errorf("installing alias: %w", ErrConflict), ExitUser),
			want: "installing alias: alias already exists",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ExitError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	err := NewUserError(Wrap(ErrFetchFailed, "cloning repository"), "check the URL")

	if !Is(err, ErrFetchFailed) {
		t.Error("expected errors.Is to find ErrFetchFailed in chain")
	}

	var exitErr *ExitError
	if !As(err, &exitErr) {
		t.Fatal("expected errors.As to find ExitError in chain")
	}
	if exitErr.Code != ExitUser {
		t.Errorf("Code = %d, want %d", exitErr.Code, ExitUser)
	}
	if exitErr.Suggestion != "check the URL" {
		t.Errorf("Suggestion = %q, want %q", exitErr.Suggestion, "check the URL")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *ExitError
		wantCode int
	}{
		{"user error", NewUserError(ErrInvalidName, ""), ExitUser},
		{"system error", NewSystemError(ErrFetchFailed, ""), ExitSystem},
		{"config error", NewConfigError(ErrInvalidConfig), ExitUser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}
