package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestGetType(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"validation", Validationf("planetsCount must be between %d and %d", 1, 15), ErrorTypeValidation},
		{"not found", NotFoundf("system %s not found", "abc"), ErrorTypeNotFound},
		{"conflict", Conflictf("system %s was modified concurrently", "abc"), ErrorTypeConflict},
		{"forbidden", Forbidden("not your system"), ErrorTypeForbidden},
		{"external", WrapExternal("redis unavailable", cause), ErrorTypeExternal},
		{"wrapped with fmt", fmt.Errorf("advance: %w", Validation("years must not be negative")), ErrorTypeValidation},
		{"plain error", cause, ErrorTypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetType(tt.err); got != tt.want {
				t.Errorf("GetType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("pq: relation does not exist")
	err := WrapInternal("failed to load system", cause)

	if !errors.Is(err, cause) {
		t.Fatal("wrapped cause should be reachable through errors.Is")
	}
	if got, want := err.Error(), "failed to load system: pq: relation does not exist"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIsType(t *testing.T) {
	if IsType(nil, ErrorTypeInternal) {
		t.Error("nil error should not match any type")
	}
	if !IsType(Conflictf("stale version"), ErrorTypeConflict) {
		t.Error("conflict error should match conflict type")
	}
}
