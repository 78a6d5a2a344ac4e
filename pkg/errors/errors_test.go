// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/wheelhouse-build/wheelhouse/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "readme file not found",
			wantStr: "[NOT_FOUND] readme file not found",
		},
		{
			name:    "already_exists_error",
			code:    errors.ErrAlreadyExists,
			message: "wheel already present",
			wantStr: "[ALREADY_EXISTS] wheel already present",
		},
		{
			name:    "config_invalid_error",
			code:    errors.ErrConfigInvalid,
			message: "project name is required",
			wantStr: "[CONFIG_INVALID] project name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("permission denied")
	err := errors.Wrap(inner, errors.ErrFileAccess, "cannot read source file")

	if err.Code != errors.ErrFileAccess {
		t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrFileAccess)
	}

	if !stderrors.Is(err, inner) {
		t.Error("Wrap() should preserve the wrapped error for errors.Is")
	}

	want := "[FILE_ACCESS] cannot read source file: permission denied"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if errors.Wrap(nil, errors.ErrFileAccess, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapf(t *testing.T) {
	inner := stderrors.New("no such file")
	err := errors.Wrapf(inner, errors.ErrFileNotFound, "cannot stage %s", "src/pkg.py")

	if err.Message != "cannot stage src/pkg.py" {
		t.Errorf("Wrapf() message = %q", err.Message)
	}

	if errors.Wrapf(nil, errors.ErrFileNotFound, "ignored") != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrAlreadyExists, "wheel already present").
		WithDetail("path", "/dist/pkg-1.0-py3-none-any.whl")

	if err.Details["path"] != "/dist/pkg-1.0-py3-none-any.whl" {
		t.Errorf("WithDetail() did not record the detail, got %v", err.Details)
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrConfigParse, "invalid TOML at line %d", 4)

	if !errors.IsErrorCode(err, errors.ErrConfigParse) {
		t.Error("IsErrorCode() should match the error's own code")
	}

	if errors.IsErrorCode(err, errors.ErrConfigLoad) {
		t.Error("IsErrorCode() should not match a different code")
	}

	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrConfigParse) {
		t.Error("IsErrorCode() should not match plain errors")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrDirCreate, "mkdir failed")); got != errors.ErrDirCreate {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrDirCreate)
	}

	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v for plain errors", got, errors.ErrUnknown)
	}
}

func TestIs(t *testing.T) {
	a := errors.New(errors.ErrAlreadyExists, "first")
	b := errors.New(errors.ErrAlreadyExists, "second")

	if !stderrors.Is(a, b) {
		t.Error("errors with the same code should satisfy errors.Is")
	}

	c := errors.New(errors.ErrNotFound, "other")
	if stderrors.Is(a, c) {
		t.Error("errors with different codes should not satisfy errors.Is")
	}
}
