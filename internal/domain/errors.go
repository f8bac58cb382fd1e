package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrInvalidInput  = errors.New("invalid input")
	ErrExecution     = errors.New("execution error")

	// ErrNegativeNumber is the failure of a delayed square over a negative input.
	// It is a comparable value, so errors.Is matches it and callers cannot alter
	// its message. errors.As to *DomainError yields a fresh copy.
	ErrNegativeNumber error = negativeNumberError{}
)

// NegativeNumberMsg is the fixed message of ErrNegativeNumber.
const NegativeNumberMsg = "Negative number not allowed"

type negativeNumberError struct{}

func (negativeNumberError) Error() string { return NegativeNumberMsg }

func (negativeNumberError) As(target any) bool {
	de, ok := target.(**DomainError)
	if !ok {
		return false
	}
	*de = &DomainError{Kind: KindInvalidInput, Msg: NegativeNumberMsg}
	return true
}

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindInvalidInput  ErrorKind = "invalid_input"
	KindExecution     ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DomainError is a rule violation raised by the domain itself (no I/O involved).
// Its message is user-facing and printed as-is.
type DomainError struct {
	Kind  ErrorKind
	Msg   string
	Cause error
}

func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) && oe.Kind == kind {
		return true
	}
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}
