// Package errors provides the typed errors ci-report exits with.
package errors

import (
	"errors"
	"fmt"
)

// Kind is the category of a failure.
type Kind int

const (
	// KindConfig covers missing or malformed configuration and credentials.
	KindConfig Kind = iota
	// KindArgument covers command-line grammar failures.
	KindArgument
	// KindRemote covers failures talking to the database services.
	KindRemote
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindArgument:
		return "argument"
	case KindRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// Error is a categorized error with an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error.
func New(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// ConfigError creates a KindConfig error.
func ConfigError(message string, cause error) *Error {
	return New(KindConfig, message, cause)
}

// ArgumentError creates a KindArgument error.
func ArgumentError(message string, cause error) *Error {
	return New(KindArgument, message, cause)
}

// RemoteError creates a KindRemote error.
func RemoteError(message string, cause error) *Error {
	return New(KindRemote, message, cause)
}

// IsKind reports whether any error in err's chain is an *Error of kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
