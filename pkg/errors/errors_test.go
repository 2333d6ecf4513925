package errors_test

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/arthur-debert/dotf/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_initialized",
			code:    errors.ErrNotInitialized,
			message: "root missing",
			wantStr: "[NOT_INITIALIZED] root missing",
		},
		{
			name:    "invalid_input",
			code:    errors.ErrInvalidInput,
			message: "key cannot be empty",
			wantStr: "[INVALID_INPUT] key cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
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

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrDirectiveUnknown, "Unrecognized command: %s @ %s:%d", "frob", "bashrc", 3)
	if err.Message != "Unrecognized command: frob @ bashrc:3" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFileWrite, "could not write tags")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[FILE_WRITE] could not write tags: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrSymlinkCreate, "cannot link").
		WithDetail("path", "/home/u/.bashrc")

	if err.Details["path"] != "/home/u/.bashrc" {
		t.Errorf("WithDetail() path = %v", err.Details["path"])
	}
	if got := errors.GetErrorDetails(err)["path"]; got != "/home/u/.bashrc" {
		t.Errorf("GetErrorDetails() path = %v", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrConfigLoad, "error 1")
	err2 := errors.New(errors.ErrConfigLoad, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrDirRead, "x"), errors.ErrDirRead, true},
		{"different_code", errors.New(errors.ErrDirRead, "x"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(fs.ErrPermission, errors.ErrFileRead, "denied"), errors.ErrFileRead, true},
		{"standard_error", stderrors.New("standard error"), errors.ErrFileRead, false},
		{"nil_error", nil, errors.ErrFileRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
	if got := errors.GetErrorCode(nil); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(nil) = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := fs.ErrNotExist
	fileErr := errors.Wrap(rootCause, errors.ErrFileRead, "cannot read tags")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "could not get tags")

	if !errors.IsErrorCode(configErr, errors.ErrConfigLoad) {
		t.Error("top level should have ErrConfigLoad code")
	}

	var middle *errors.DotfError
	if !stderrors.As(configErr.Unwrap(), &middle) || middle.Code != errors.ErrFileRead {
		t.Error("middle error should have ErrFileRead code")
	}

	if !stderrors.Is(configErr, rootCause) {
		t.Error("should find root cause with errors.Is")
	}
}
