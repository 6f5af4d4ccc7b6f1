package domain

import (
	"errors"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("date", "required")

	if got := err.Error(); got != "validation: date: required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestFieldErrors_Collects(t *testing.T) {
	t.Parallel()

	var fe FieldErrors
	if fe.Err() != nil {
		t.Fatal("empty FieldErrors should produce nil error")
	}

	fe.Add("title", "max 200 characters")
	fe.Add("items[2].method", "unknown actuation method")

	err := fe.Err()
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
	if got := err.Error(); got != "validation: 2 errors (title, items[2].method)" {
		t.Fatalf("unexpected Error(): %q", got)
	}

	var ve *ValidationError
	if !errors.As(err, &ve) || len(ve.Errors) != 2 {
		t.Fatalf("expected ValidationError with 2 entries, got %v", err)
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNotFound, ErrAlreadyExists, ErrValidation,
		ErrUnauthorized, ErrForbidden, ErrConflict,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}
