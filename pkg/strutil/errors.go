package strutil

import "errors"

// Kind classifies a helper failure independently of its message.
type Kind string

const (
	KindTypeMismatch      Kind = "type_mismatch"
	KindEmptyInput        Kind = "empty_input"
	KindNonDigitCharacter Kind = "non_digit_character"
	KindInvalidLength     Kind = "invalid_length"
	KindInvalidFormat     Kind = "invalid_format"
	KindInvalidInput      Kind = "invalid_input"
	KindExpired           Kind = "expired"
)

// Error is returned by every failing helper.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Kind)
}

// Is enables errors.Is() to match errors by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is. Only the Kind is compared.
var (
	ErrTypeMismatch      = &Error{Kind: KindTypeMismatch}
	ErrEmptyInput        = &Error{Kind: KindEmptyInput}
	ErrNonDigitCharacter = &Error{Kind: KindNonDigitCharacter}
	ErrInvalidLength     = &Error{Kind: KindInvalidLength}
	ErrInvalidFormat     = &Error{Kind: KindInvalidFormat}
	ErrInvalidInput      = &Error{Kind: KindInvalidInput}
	ErrExpired           = &Error{Kind: KindExpired}
)

const (
	msgStringNotProvided = "String not provided"
	msgNotAString        = "Not a string"
	msgNoDigits          = "No digits provided"
	msgNotAllDigits      = "Not all characters are digits"
	msgInvalidText       = "Invalid or No string provided"
	msgNegativeLimit     = "Limit must not be negative"
	msgUnknownFormat     = "Unknown format. Should be \"indian\" or \"international\""
)

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// KindOf returns the Kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
