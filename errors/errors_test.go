package errors

import (
	"fmt"
	"testing"
)

func TestPatrolError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeRootNotFound, "root not found")
	if err.Code != ErrCodeRootNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeRootNotFound, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeCommandFailed, "command failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeCommandFailed) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeRootNotFound) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("path", "/tmp/projects").WithDetail("depth", 10)
	if detailed.Details["path"] != "/tmp/projects" {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	// Test RootNotFound
	err := RootNotFound("/missing")
	if err.Code != ErrCodeRootNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeRootNotFound, err.Code)
	}
	if err.Details["path"] != "/missing" {
		t.Error("RootNotFound should include path detail")
	}

	// Test ProbeFailed
	err = ProbeFailed("/repo", fmt.Errorf("boom"))
	if err.Code != ErrCodeProbeFailed {
		t.Errorf("expected code %s, got %s", ErrCodeProbeFailed, err.Code)
	}
	if err.Details["path"] != "/repo" {
		t.Error("ProbeFailed should include path detail")
	}
	if err.Unwrap() == nil {
		t.Error("ProbeFailed should carry its cause")
	}

	// Test GetCode through a wrapped chain
	outer := fmt.Errorf("context: %w", NotARepository("/not-a-repo"))
	if GetCode(outer) != ErrCodeNotARepository {
		t.Errorf("expected code %s, got %s", ErrCodeNotARepository, GetCode(outer))
	}
}
