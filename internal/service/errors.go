package service

import (
	"errors"
	"fmt"
)

// Kind classifies a failed gateway call.
type Kind int

const (
	// KindUnknown is an unclassified failure.
	KindUnknown Kind = iota

	// KindAuth covers bad credentials and expired or missing tokens.
	KindAuth

	// KindValidation covers missing or malformed required fields,
	// whether detected client- or server-side.
	KindValidation

	// KindNotFound covers unknown task identities.
	KindNotFound

	// KindConflict covers duplicate usernames at registration.
	KindConflict

	// KindNetwork covers transport-level failures with no usable response.
	KindNetwork
)

// String returns the kind label used in log output.
func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindNetwork:
		return "network"
	}
	return "unknown"
}

// Error is a classified gateway failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NewError creates a classified error with a plain message.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Errorf creates a classified error with a formatted message.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError classifies an underlying error.
func WrapError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from err, or KindUnknown if err is not
// a classified error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsAuth reports whether err is an auth failure.
func IsAuth(err error) bool { return KindOf(err) == KindAuth }

// IsNotFound reports whether err is a not-found failure.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }
