package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusAndCodeOf(t *testing.T) {
	cause := errors.New("no rows")
	wrapped := fmt.Errorf("load: %w", NotFound("diet_intro_not_found", cause))

	if got := StatusOf(wrapped); got != http.StatusNotFound {
		t.Fatalf("StatusOf: want=%d got=%d", http.StatusNotFound, got)
	}
	if got := CodeOf(wrapped); got != "diet_intro_not_found" {
		t.Fatalf("CodeOf: want=%q got=%q", "diet_intro_not_found", got)
	}
	if !errors.Is(wrapped, cause) {
		t.Fatalf("errors.Is: expected cause to be reachable")
	}

	plain := errors.New("boom")
	if got := StatusOf(plain); got != http.StatusInternalServerError {
		t.Fatalf("StatusOf (plain): want=%d got=%d", http.StatusInternalServerError, got)
	}
	if got := CodeOf(plain); got != "internal_error" {
		t.Fatalf("CodeOf (plain): want=%q got=%q", "internal_error", got)
	}
}

func TestErrorMessageFallbacks(t *testing.T) {
	if got := New(http.StatusBadRequest, "invalid_week", nil).Error(); got != "invalid_week" {
		t.Fatalf("Error (code): got=%q", got)
	}
	if got := New(http.StatusTeapot, "", nil).Error(); got != "api error (418)" {
		t.Fatalf("Error (status): got=%q", got)
	}
}
