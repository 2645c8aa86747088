// Package errors provides structured error types for filtergen operations.
package errors

import (
	"errors"
	"fmt"
)

// ErrorKind represents the category of an error.
type ErrorKind int

const (
	// KindSyntax represents filtergraph syntax errors.
	KindSyntax ErrorKind = iota
	// KindLabel represents link-label conservation errors.
	KindLabel
	// KindArity represents pad arity mismatches.
	KindArity
	// KindUnknownFilter represents filter names absent from the catalog.
	KindUnknownFilter
	// KindCommandLine represents command line splitting errors.
	KindCommandLine
	// KindConfig represents configuration validation errors.
	KindConfig
	// KindIO represents I/O errors.
	KindIO
)

// String returns a string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindSyntax:
		return "Syntax error"
	case KindLabel:
		return "Label error"
	case KindArity:
		return "Arity error"
	case KindUnknownFilter:
		return "Unknown filter"
	case KindCommandLine:
		return "Command line error"
	case KindConfig:
		return "Configuration error"
	case KindIO:
		return "I/O error"
	default:
		return "Unknown error"
	}
}

// CoreError is the main error type for filtergen operations.
type CoreError struct {
	Kind       ErrorKind
	Message    string
	Underlying error
}

func (e *CoreError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CoreError) Unwrap() error {
	return e.Underlying
}

// Is reports whether target matches this error's kind.
func (e *CoreError) Is(target error) bool {
	t, ok := target.(*CoreError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// SyntaxError describes a malformed filtergraph expression. Offset is the
// byte position of the offending substring within the expression.
type SyntaxError struct {
	Offset    int
	Remaining string
	Reason    string
}

func (e *SyntaxError) Error() string {
	if e.Remaining != "" {
		return fmt.Sprintf("%s at offset %d near %q", e.Reason, e.Offset, e.Remaining)
	}
	return fmt.Sprintf("%s at offset %d", e.Reason, e.Offset)
}

// ArityError describes a pad count mismatch on one side of a filter instance.
type ArityError struct {
	Filter   string
	ID       int
	Side     string
	Expected int
	Actual   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("filter %q (instance %d) expects %d %s pad(s), got %d",
		e.Filter, e.ID, e.Expected, e.Side, e.Actual)
}

// NewSyntaxError creates a filtergraph syntax error at the given offset.
func NewSyntaxError(reason string, offset int, remaining string) *CoreError {
	synErr := &SyntaxError{Offset: offset, Remaining: remaining, Reason: reason}
	return &CoreError{Kind: KindSyntax, Message: synErr.Error(), Underlying: synErr}
}

// NewLabelError creates a link-label conservation error.
func NewLabelError(label, reason string) *CoreError {
	return &CoreError{Kind: KindLabel, Message: fmt.Sprintf("label %q %s", label, reason)}
}

// NewArityError creates a pad arity mismatch error.
func NewArityError(filter string, id int, side string, expected, actual int) *CoreError {
	arityErr := &ArityError{Filter: filter, ID: id, Side: side, Expected: expected, Actual: actual}
	return &CoreError{Kind: KindArity, Message: arityErr.Error(), Underlying: arityErr}
}

// NewUnknownFilterError creates an error for a filter name absent from the catalog.
func NewUnknownFilterError(name string) *CoreError {
	return &CoreError{Kind: KindUnknownFilter, Message: fmt.Sprintf("no such filter: %q", name)}
}

// NewCommandLineError creates a command line splitting error.
func NewCommandLineError(message string) *CoreError {
	return &CoreError{Kind: KindCommandLine, Message: message}
}

// NewConfigError creates a configuration error.
func NewConfigError(message string) *CoreError {
	return &CoreError{Kind: KindConfig, Message: message}
}

// NewIOError creates an I/O error.
func NewIOError(message string, underlying error) *CoreError {
	return &CoreError{Kind: KindIO, Message: message, Underlying: underlying}
}

// IsKind checks if the error has the specified kind.
func IsKind(err error, kind ErrorKind) bool {
	var coreErr *CoreError
	if errors.As(err, &coreErr) {
		return coreErr.Kind == kind
	}
	return false
}

// IsSyntax checks if the error is a filtergraph syntax error.
func IsSyntax(err error) bool {
	return IsKind(err, KindSyntax)
}

// IsArity checks if the error is a pad arity error.
func IsArity(err error) bool {
	return IsKind(err, KindArity)
}

// IsUnknownFilter checks if the error is an unknown filter error.
func IsUnknownFilter(err error) bool {
	return IsKind(err, KindUnknownFilter)
}
