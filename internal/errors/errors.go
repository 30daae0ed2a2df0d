// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrUnknownVarga    = errors.New("unknown divisional chart type")
	ErrNoChart         = errors.New("no chart computed or loaded")
	ErrChartNotFound   = errors.New("chart not found")
	ErrNotConfigured   = errors.New("interpreter not configured")
	ErrConfigInvalid   = errors.New("invalid configuration")
	ErrDatabaseError   = errors.New("database error")
	ErrInputValidation = errors.New("input validation failed")
)

// EphemerisError represents a failure obtaining a raw celestial position.
// Any such failure is fatal for the whole chart: there is no fallback
// position source.
type EphemerisError struct {
	Body    string
	Op      string
	Message string
	Err     error
}

func (e *EphemerisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ephemeris error [%s] %s: %s: %v", e.Body, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("ephemeris error [%s] %s: %s", e.Body, e.Op, e.Message)
}

func (e *EphemerisError) Unwrap() error {
	return e.Err
}

// NewEphemerisError creates a new EphemerisError.
func NewEphemerisError(body, op, message string, err error) *EphemerisError {
	return &EphemerisError{
		Body:    body,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// ChartError represents a failure assembling a chart.
type ChartError struct {
	Stage string
	Err   error
}

func (e *ChartError) Error() string {
	return fmt.Sprintf("chart error [%s]: %v", e.Stage, e.Err)
}

func (e *ChartError) Unwrap() error {
	return e.Err
}

// NewChartError creates a new ChartError.
func NewChartError(stage string, err error) *ChartError {
	return &ChartError{
		Stage: stage,
		Err:   err,
	}
}

// ValidationError represents a validation error.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// InterpreterError represents an error from the AI interpreter.
type InterpreterError struct {
	Operation string
	Err       error
}

func (e *InterpreterError) Error() string {
	return fmt.Sprintf("interpreter error [%s]: %v", e.Operation, e.Err)
}

func (e *InterpreterError) Unwrap() error {
	return e.Err
}

// NewInterpreterError creates a new InterpreterError.
func NewInterpreterError(operation string, err error) *InterpreterError {
	return &InterpreterError{
		Operation: operation,
		Err:       err,
	}
}

// StoreError represents a snapshot persistence error.
type StoreError struct {
	Op      string
	Name    string
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("store error [%s] %s: %s: %v", e.Op, e.Name, e.Message, e.Err)
	}
	return fmt.Sprintf("store error [%s] %s: %s", e.Op, e.Name, e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError.
func NewStoreError(op, name, message string, err error) *StoreError {
	return &StoreError{
		Op:      op,
		Name:    name,
		Message: message,
		Err:     err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
