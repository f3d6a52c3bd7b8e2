package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppErrorString(t *testing.T) {
	err := New(ErrCodeInternal, "something broke")
	if got := err.Error(); got != "INTERNAL_ERROR: something broke" {
		t.Errorf("unexpected error string: %q", got)
	}

	cause := stderrors.New("disk full")
	err = New(ErrCodeLoadFailed, "hook failed").WithCause(cause)
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("expected cause in error string, got %q", err.Error())
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := AsyncFailure(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestDuplicateRegistration(t *testing.T) {
	err := DuplicateRegistration("worker-1")
	if err.Code != ErrCodeDuplicateRegistration {
		t.Errorf("unexpected code: %s", err.Code)
	}
	if err.Details["task_id"] != "worker-1" {
		t.Errorf("expected task_id detail, got %v", err.Details)
	}
}

func TestLoadFailed(t *testing.T) {
	cause := stderrors.New("boom")
	err := LoadFailed("units/db", "app", cause)
	if err.Code != ErrCodeLoadFailed {
		t.Errorf("unexpected code: %s", err.Code)
	}
	if err.Details["unit"] != "units/db" || err.Details["kind"] != "app" {
		t.Errorf("unexpected details: %v", err.Details)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected wrapped cause")
	}
}

func TestNormalize(t *testing.T) {
	if Normalize(nil) != nil {
		t.Error("expected nil for nil input")
	}

	orig := stderrors.New("already an error")
	if Normalize(orig) != orig {
		t.Error("expected errors to pass through unchanged")
	}

	err := Normalize("panic message")
	if err == nil || err.Error() != "panic message" {
		t.Errorf("unexpected normalized error: %v", err)
	}

	err = Normalize(42)
	if err == nil || err.Error() != "42" {
		t.Errorf("unexpected normalized error: %v", err)
	}
}

func TestCodeOf(t *testing.T) {
	if CodeOf(BarrierClosed("x")) != ErrCodeBarrierClosed {
		t.Error("expected BARRIER_CLOSED")
	}
	if CodeOf(stderrors.New("plain")) != ErrCodeInternal {
		t.Error("expected INTERNAL_ERROR for plain errors")
	}

	// Codes survive wrapping.
	wrapped := fmt.Errorf("outer: %w", Configuration("bad dir"))
	if CodeOf(wrapped) != ErrCodeConfigurationInvalid {
		t.Error("expected code through wrapping")
	}
	if !IsCode(wrapped, ErrCodeConfigurationInvalid) {
		t.Error("expected IsCode through wrapping")
	}
}
