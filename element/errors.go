package element

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrorKind classifies codec failures.
type ErrorKind uint8

const (
	// ParseFailure means the input is not well-formed JSON.
	ParseFailure ErrorKind = iota + 1
	// MissingRequiredField means a required key is absent or null.
	MissingRequiredField
	// TypeMismatch means a key holds the wrong JSON kind.
	TypeMismatch
	// UnknownEnumValue means a code is outside its closed value set.
	UnknownEnumValue
	// AmbiguousChoice means more than one variant of a choice field is set.
	AmbiguousChoice
	// UnknownField means a key is not part of the type.
	UnknownField
	// InvalidValue means a primitive does not match its lexical format.
	InvalidValue
)

// Sentinels for errors.Is; every *Error unwraps to the one of its kind.
var (
	ErrParseFailure         = errors.New("document is not parseable")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrTypeMismatch         = errors.New("type mismatch")
	ErrUnknownEnumValue     = errors.New("unknown enum value")
	ErrAmbiguousChoice      = errors.New("ambiguous choice")
	ErrUnknownField         = errors.New("unknown field")
	ErrInvalidValue         = errors.New("invalid value")
)

func (k ErrorKind) String() string {
	switch k {
	case ParseFailure:
		return "ParseFailure"
	case MissingRequiredField:
		return "MissingRequiredField"
	case TypeMismatch:
		return "TypeMismatch"
	case UnknownEnumValue:
		return "UnknownEnumValue"
	case AmbiguousChoice:
		return "AmbiguousChoice"
	case UnknownField:
		return "UnknownField"
	case InvalidValue:
		return "InvalidValue"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case ParseFailure:
		return ErrParseFailure
	case MissingRequiredField:
		return ErrMissingRequiredField
	case TypeMismatch:
		return ErrTypeMismatch
	case UnknownEnumValue:
		return ErrUnknownEnumValue
	case AmbiguousChoice:
		return ErrAmbiguousChoice
	case UnknownField:
		return ErrUnknownField
	case InvalidValue:
		return ErrInvalidValue
	default:
		return nil
	}
}

// Error is a codec failure located at a path.
type Error struct {
	Kind ErrorKind
	Path Path
	// Raw is the offending value as found in the document, if any.
	Raw    string
	Detail string
}

func (e *Error) Error() string {
	msg := "codec error"
	if s := e.Kind.sentinel(); s != nil {
		msg = s.Error()
	}
	if e.Raw != "" {
		msg += fmt.Sprintf(" %q", e.Raw)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Path != "" {
		return string(e.Path) + ": " + msg
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

// AsError extracts the *Error from err, if any.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

func mismatch(p Path, want string, got Value) error {
	return &Error{Kind: TypeMismatch, Path: p, Detail: fmt.Sprintf("expected %s, got %s", want, kindOf(got))}
}

func kindOf(v Value) Kind {
	if v == nil {
		return KindNull
	}
	return v.Kind()
}
