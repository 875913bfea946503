package testutil

import (
	"errors"
	"math"
	"testing"

	apperrors "dia/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertMoneyEqual fails if two money figures differ beyond a sub-cent epsilon.
func AssertMoneyEqual(t *testing.T, want, got float64, label string) {
	t.Helper()

	if math.Abs(want-got) > 1e-9 {
		t.Errorf("%s: expected %.2f, got %v", label, want, got)
	}
}
