package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorStatusPerClass(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		want int
	}{
		{"validation", Validation("missing_fields", errors.New("x")), http.StatusBadRequest},
		{"reference", Reference("bad_fk", errors.New("x")), http.StatusUnprocessableEntity},
		{"not found", NotFound("gone", errors.New("x")), http.StatusNotFound},
		{"storage", Storage("db_down", errors.New("x")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Status != tc.want {
				t.Fatalf("status: want=%d got=%d", tc.want, tc.err.Status)
			}
		})
	}
}

func TestFromUnwrapsThroughChain(t *testing.T) {
	inner := NotFound("program_not_found", errors.New("program 7 not found"))
	wrapped := fmt.Errorf("delete program: %w", inner)

	got := From(wrapped)
	if got.Status != http.StatusNotFound || got.Code != "program_not_found" {
		t.Fatalf("From(wrapped): got status=%d code=%q", got.Status, got.Code)
	}
}

func TestFromDefaultsToStorage(t *testing.T) {
	got := From(errors.New("connection refused"))
	if got.Status != http.StatusInternalServerError || got.Code != "internal_error" {
		t.Fatalf("From(plain): got status=%d code=%q", got.Status, got.Code)
	}
}

func TestErrorMessageFallbacks(t *testing.T) {
	if msg := New(0, "", nil).Error(); msg != "api error" {
		t.Fatalf("empty error message: got=%q", msg)
	}
	if msg := New(http.StatusTeapot, "", nil).Error(); msg != "api error (418)" {
		t.Fatalf("status-only message: got=%q", msg)
	}
	if msg := New(0, "some_code", nil).Error(); msg != "some_code" {
		t.Fatalf("code-only message: got=%q", msg)
	}
}
