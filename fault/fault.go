// Package fault defines the validation and composition failures raised while
// building patterns, and the ordered log that keeps recorded failures.
//
// Leaf code never decides what happens to a failure: it constructs an *Error
// and hands it to a router, which either records it in a Log or returns it
// to the caller.
package fault

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind uint8

const (
	// Unknown is used for errors that did not originate in this module.
	Unknown Kind = iota

	// EmptyInput means an empty literal, character, class or range was supplied.
	EmptyInput

	// EmptyPattern means a composite was built without any children.
	EmptyPattern

	// InvalidPattern means a malformed node value was supplied: a value outside
	// an enumeration, a malformed unicode escape or non-sequence alternation input.
	InvalidPattern

	// InvalidConfig means an unknown option or a value of the wrong type.
	InvalidConfig

	// InvalidDelimiter means the delimiter option could not be parsed.
	InvalidDelimiter

	// InvalidService means a collaborator could not be resolved.
	InvalidService

	// NullSubject means an operation was executed without a subject.
	NullSubject

	// EarlyAccess means a result was read before the operation was executed.
	EarlyAccess

	// Execution means the regex engine rejected the pattern or failed to run it.
	Execution
)

var kindNames = [...]string{
	Unknown:          "unknown",
	EmptyInput:       "empty input",
	EmptyPattern:     "empty pattern",
	InvalidPattern:   "invalid pattern",
	InvalidConfig:    "invalid config",
	InvalidDelimiter: "invalid delimiter",
	InvalidService:   "invalid service",
	NullSubject:      "null subject",
	EarlyAccess:      "early access",
	Execution:        "execution",
}

// String returns a human-readable kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Sentinel errors, one per kind. Any *Error matches the sentinel of its kind
// through errors.Is.
var (
	// ErrEmptyInput is returned when an empty input is passed as a pattern.
	ErrEmptyInput = &Error{Kind: EmptyInput, Message: "an empty input has been passed as a pattern"}

	// ErrEmptyPattern is returned when building a composite with no children.
	ErrEmptyPattern = &Error{Kind: EmptyPattern, Message: "can not build a pattern without adding any items to it"}

	// ErrInvalidPattern is returned for malformed node values.
	ErrInvalidPattern = &Error{Kind: InvalidPattern, Message: "an invalid pattern has been provided"}

	// ErrInvalidConfig is returned for unknown options or badly typed values.
	ErrInvalidConfig = &Error{Kind: InvalidConfig, Message: "an invalid configuration has been provided"}

	// ErrInvalidDelimiter is returned when the delimiter option is unusable.
	ErrInvalidDelimiter = &Error{Kind: InvalidDelimiter, Message: "an invalid delimiter has been provided"}

	// ErrInvalidService is returned when a collaborator can not be resolved.
	ErrInvalidService = &Error{Kind: InvalidService, Message: "the requested service can not be resolved"}

	// ErrNullSubject is returned when an operation has no subject.
	ErrNullSubject = &Error{Kind: NullSubject, Message: "no subject has been provided"}

	// ErrEarlyAccess is returned when results are read before execution.
	ErrEarlyAccess = &Error{Kind: EarlyAccess, Message: "the regex result is requested before the operation has been executed"}

	// ErrExecution is returned when the regex engine fails.
	ErrExecution = &Error{Kind: Execution, Message: "regex execution failed"}
)

// Error is a typed failure carrying its kind and a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an error of the given kind around a cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of err, or Unknown when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}
