package errors

import (
	stderrors "errors"
	"testing"
)

func TestWrapPreservesCodeAndCause(t *testing.T) {
	cause := stderrors.New("connection refused")

	wrapped := Wrapf(cause, "failed to upsert %d assignments", 4)
	if got := GetCode(wrapped); got != CodeInternalError {
		t.Errorf("plain cause wraps to code %s, want %s", got, CodeInternalError)
	}
	if !stderrors.Is(wrapped, cause) {
		t.Error("wrapped error lost its cause")
	}
	if want := "failed to upsert 4 assignments: connection refused"; wrapped.Error() != want {
		t.Errorf("Error() = %q, want %q", wrapped.Error(), want)
	}

	// Wrapping an AppError keeps its code.
	inner := ValidationError("rating must be between 1 and 5")
	outer := Wrap(inner, "review rejected")
	if got := GetCode(outer); got != CodeValidationError {
		t.Errorf("AppError wraps to code %s, want %s", got, CodeValidationError)
	}
}

func TestWithCode(t *testing.T) {
	cause := stderrors.New("bad connection")

	err := WithCode(CodeDatabaseError, Wrap(cause, "failed to query assignments"))
	if got := GetCode(err); got != CodeDatabaseError {
		t.Errorf("code = %s, want %s", got, CodeDatabaseError)
	}
	if !stderrors.Is(err, cause) {
		t.Error("WithCode dropped the cause chain")
	}

	// Applying a code to a plain error promotes it to an AppError.
	plain := WithCode(CodeDatabaseError, cause)
	if got := GetCode(plain); got != CodeDatabaseError {
		t.Errorf("plain error code = %s, want %s", got, CodeDatabaseError)
	}
}

func TestNilErrorsStayNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) must be nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) must be nil")
	}
	if WithCode(CodeDatabaseError, nil) != nil {
		t.Error("WithCode(nil) must be nil")
	}
}

func TestGetCodeUnknown(t *testing.T) {
	if got := GetCode(stderrors.New("plain")); got != "UNKNOWN" {
		t.Errorf("plain error code = %s, want UNKNOWN", got)
	}
}
