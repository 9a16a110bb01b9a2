package protocol

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownAction       = errors.New("protocol: unknown action")
	ErrMalformedEnvelope   = errors.New("protocol: malformed envelope")
	ErrMissingField        = errors.New("protocol: missing field")
	ErrTypeMismatch        = errors.New("protocol: type mismatch")
	ErrInvalidEnumValue    = errors.New("protocol: invalid enum value")
	ErrMalformedTimestamp  = errors.New("protocol: malformed timestamp")
	ErrConstraintViolation = errors.New("protocol: constraint violation")
)

// UnknownActionError reports a schema lookup miss.
type UnknownActionError struct {
	Version   Version
	Action    string
	Direction Direction
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("protocol: unknown action %q (%s) for %s", e.Action, e.Direction, e.Version)
}

func (e *UnknownActionError) Is(target error) bool { return target == ErrUnknownAction }

// MalformedEnvelopeError reports a frame whose shape, length or message type
// id is not one of the three OCPP-J frames. UnsupportedType is set when the
// frame was readable but its message type id is not 2, 3 or 4.
type MalformedEnvelopeError struct {
	Received        any
	Reason          string
	UnsupportedType bool
}

func (e *MalformedEnvelopeError) Error() string {
	return fmt.Sprintf("protocol: malformed envelope: %s (received %s)", e.Reason, preview(e.Received))
}

func (e *MalformedEnvelopeError) Is(target error) bool { return target == ErrMalformedEnvelope }

// MissingFieldError reports a required field absent from a payload object.
// Path includes the field itself.
type MissingFieldError struct {
	Path  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("protocol: missing required field %q at %s", e.Field, displayPath(e.Path))
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

// TypeMismatchError reports a JSON value of the wrong native kind.
type TypeMismatchError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("protocol: type mismatch at %s: expected %s, got %s", displayPath(e.Path), e.Expected, e.Actual)
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// InvalidEnumValueError reports a string outside an enum's closed literal set.
type InvalidEnumValueError struct {
	Path     string
	Enum     string
	Received string
	Allowed  []string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf(
		"protocol: invalid %s value %q at %s (allowed: %s)",
		e.Enum, e.Received, displayPath(e.Path), strings.Join(e.Allowed, ", "),
	)
}

func (e *InvalidEnumValueError) Is(target error) bool { return target == ErrInvalidEnumValue }

// MalformedTimestampError reports an unparsable ISO-8601 string.
type MalformedTimestampError struct {
	Path     string
	Received string
	Err      error
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("protocol: malformed timestamp %q at %s", e.Received, displayPath(e.Path))
}

func (e *MalformedTimestampError) Is(target error) bool { return target == ErrMalformedTimestamp }

func (e *MalformedTimestampError) Unwrap() error { return e.Err }

// ConstraintViolationError reports a value of the right kind that breaks a
// field constraint (length, sign, character set, cardinality).
type ConstraintViolationError struct {
	Path       string
	Constraint string
	Value      any
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("protocol: constraint %s violated at %s (value %s)", e.Constraint, displayPath(e.Path), preview(e.Value))
}

func (e *ConstraintViolationError) Is(target error) bool { return target == ErrConstraintViolation }

// AtPath stamps path onto the path-carrying error classes. Other errors are
// returned unchanged. Primitive codecs report failures without a path; the
// structural codec annotates them on the way out.
func AtPath(err error, path string) error {
	var (
		missing    *MissingFieldError
		mismatch   *TypeMismatchError
		enum       *InvalidEnumValueError
		timestamp  *MalformedTimestampError
		constraint *ConstraintViolationError
	)
	switch {
	case errors.As(err, &missing):
		missing.Path = path
	case errors.As(err, &mismatch):
		mismatch.Path = path
	case errors.As(err, &enum):
		enum.Path = path
	case errors.As(err, &timestamp):
		timestamp.Path = path
	case errors.As(err, &constraint):
		constraint.Path = path
	}
	return err
}

// ErrorPath returns the field path carried by err, if any.
func ErrorPath(err error) (string, bool) {
	var (
		missing    *MissingFieldError
		mismatch   *TypeMismatchError
		enum       *InvalidEnumValueError
		timestamp  *MalformedTimestampError
		constraint *ConstraintViolationError
	)
	switch {
	case errors.As(err, &missing):
		return missing.Path, true
	case errors.As(err, &mismatch):
		return mismatch.Path, true
	case errors.As(err, &enum):
		return enum.Path, true
	case errors.As(err, &timestamp):
		return timestamp.Path, true
	case errors.As(err, &constraint):
		return constraint.Path, true
	}
	return "", false
}

// ErrorClass names the taxonomy class of err, or "" for foreign errors.
func ErrorClass(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnknownAction):
		return "UnknownAction"
	case errors.Is(err, ErrMalformedEnvelope):
		return "MalformedEnvelope"
	case errors.Is(err, ErrMissingField):
		return "MissingField"
	case errors.Is(err, ErrTypeMismatch):
		return "TypeMismatch"
	case errors.Is(err, ErrInvalidEnumValue):
		return "InvalidEnumValue"
	case errors.Is(err, ErrMalformedTimestamp):
		return "MalformedTimestamp"
	case errors.Is(err, ErrConstraintViolation):
		return "ConstraintViolation"
	default:
		return ""
	}
}

func displayPath(path string) string {
	if path == "" {
		return "<root>"
	}
	return path
}

const previewLimit = 64

func preview(v any) string {
	s := fmt.Sprintf("%v", v)
	if len(s) > previewLimit {
		return s[:previewLimit] + "..."
	}
	return s
}
