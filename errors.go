// Package rbfnet structured error types for precondition failures
package rbfnet

import (
	"errors"
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Point matrix rows and weight vector length disagree, or the backing
	// slice does not cover the declared shape
	ErrTypeDimensionMismatch ErrorType = iota
	// Bandwidth non-positive or non-finite, or D < 1
	ErrTypeDomain
	// NaN or Inf found by the opt-in finite check
	ErrTypeNumericAnomaly
)

// Error represents a structured error with context
type Error struct {
	Type    ErrorType
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error if any
	Context any    // Additional context, e.g. an AnomalyLocation
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rbfnet %s error in %s: %s (caused by: %v)",
			e.Type, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("rbfnet %s error in %s: %s", e.Type, e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is one of the sentinel errors of the same type.
// A sentinel is an *Error with an empty Op.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Op != "" {
		return false
	}
	return t.Type == e.Type
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeDimensionMismatch:
		return "DimensionMismatch"
	case ErrTypeDomain:
		return "Domain"
	case ErrTypeNumericAnomaly:
		return "NumericAnomaly"
	default:
		return "Unknown"
	}
}

// AnomalyLocation identifies the first non-finite input value.
type AnomalyLocation struct {
	Input string // "points" or "weights"
	Row   int
	Col   int // -1 for weights
	Value float64
}

// Sentinels for errors.Is matching. They carry no operation.
var (
	ErrDimensionMismatch = &Error{Type: ErrTypeDimensionMismatch, Message: "dimension mismatch"}
	ErrDomain            = &Error{Type: ErrTypeDomain, Message: "argument outside domain"}
	ErrNumericAnomaly    = &Error{Type: ErrTypeNumericAnomaly, Message: "non-finite input"}
)

// NewDimensionMismatchError creates a shape error
func NewDimensionMismatchError(op string, message string) error {
	return &Error{
		Type:    ErrTypeDimensionMismatch,
		Op:      op,
		Message: message,
	}
}

// NewDomainError creates an error for an argument outside its valid range
func NewDomainError(op string, message string) error {
	return &Error{
		Type:    ErrTypeDomain,
		Op:      op,
		Message: message,
	}
}

// NewNumericAnomalyError creates an error for a non-finite input value
func NewNumericAnomalyError(op string, message string, loc AnomalyLocation) error {
	return &Error{
		Type:    ErrTypeNumericAnomaly,
		Op:      op,
		Message: message,
		Context: loc,
	}
}

// IsDimensionMismatch checks if an error is a dimension mismatch
func IsDimensionMismatch(err error) bool {
	return hasType(err, ErrTypeDimensionMismatch)
}

// IsDomainError checks if an error is a domain error
func IsDomainError(err error) bool {
	return hasType(err, ErrTypeDomain)
}

// IsNumericAnomaly checks if an error reports a non-finite input
func IsNumericAnomaly(err error) bool {
	return hasType(err, ErrTypeNumericAnomaly)
}

func hasType(err error, t ErrorType) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}
