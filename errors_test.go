package rbfnet

import (
	"errors"
	"fmt"
	"testing"
)

func TestStructuredErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType ErrorType
		wantOp   string
		wantMsg  string
		checkFn  func(error) bool
		sentinel error
	}{
		{
			name:     "Dimension Mismatch",
			err:      NewDimensionMismatchError("Evaluate", "3 rows but 2 weights"),
			wantType: ErrTypeDimensionMismatch,
			wantOp:   "Evaluate",
			wantMsg:  "3 rows but 2 weights",
			checkFn:  IsDimensionMismatch,
			sentinel: ErrDimensionMismatch,
		},
		{
			name:     "Domain Error",
			err:      NewDomainError("Evaluate", "bandwidth must be positive"),
			wantType: ErrTypeDomain,
			wantOp:   "Evaluate",
			wantMsg:  "bandwidth must be positive",
			checkFn:  IsDomainError,
			sentinel: ErrDomain,
		},
		{
			name:     "Numeric Anomaly",
			err:      NewNumericAnomalyError("Evaluate32", "weight 4 is NaN", AnomalyLocation{Input: "weights", Row: 4, Col: -1}),
			wantType: ErrTypeNumericAnomaly,
			wantOp:   "Evaluate32",
			wantMsg:  "weight 4 is NaN",
			checkFn:  IsNumericAnomaly,
			sentinel: ErrNumericAnomaly,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rbfErr *Error
			if !errors.As(tt.err, &rbfErr) {
				t.Fatalf("Expected *Error, got %T", tt.err)
			}

			if rbfErr.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", rbfErr.Type, tt.wantType)
			}
			if rbfErr.Op != tt.wantOp {
				t.Errorf("Op = %v, want %v", rbfErr.Op, tt.wantOp)
			}
			if rbfErr.Message != tt.wantMsg {
				t.Errorf("Message = %v, want %v", rbfErr.Message, tt.wantMsg)
			}
			if !tt.checkFn(tt.err) {
				t.Errorf("Type check function returned false")
			}
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.sentinel)
			}

			// Wrapping keeps the classification
			wrapped := fmt.Errorf("driver: %w", tt.err)
			if !tt.checkFn(wrapped) || !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("classification lost through wrapping")
			}
		})
	}
}

func TestSentinelsDoNotCrossMatch(t *testing.T) {
	err := NewDomainError("Evaluate", "bad bandwidth")

	if errors.Is(err, ErrDimensionMismatch) {
		t.Error("domain error matched ErrDimensionMismatch")
	}
	if errors.Is(err, ErrNumericAnomaly) {
		t.Error("domain error matched ErrNumericAnomaly")
	}
	if IsDimensionMismatch(err) || IsNumericAnomaly(err) {
		t.Error("predicate matched the wrong type")
	}
	if IsDomainError(errors.New("plain")) {
		t.Error("plain error classified as domain error")
	}
	if IsDomainError(nil) {
		t.Error("nil classified as domain error")
	}
}

func TestErrorUnwrap(t *testing.T) {
	baseErr := errors.New("base error")
	err := &Error{Type: ErrTypeDomain, Op: "Test", Message: "wrapped error", Err: baseErr}

	if err.Unwrap() != baseErr {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), baseErr)
	}
	if !errors.Is(err, baseErr) {
		t.Error("errors.Is() should return true for wrapped error")
	}

	want := "rbfnet Domain error in Test: wrapped error (caused by: base error)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestErrorTypeString(t *testing.T) {
	tests := []struct {
		errType ErrorType
		want    string
	}{
		{ErrTypeDimensionMismatch, "DimensionMismatch"},
		{ErrTypeDomain, "Domain"},
		{ErrTypeNumericAnomaly, "NumericAnomaly"},
		{ErrorType(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.errType.String(); got != tt.want {
			t.Errorf("ErrorType(%d).String() = %v, want %v", tt.errType, got, tt.want)
		}
	}
}
