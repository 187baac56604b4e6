package metastring

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the kind of codec failure. Codes are stable strings
// so that callers in other processes can tell failures apart.
type ErrorCode string

const (
	ErrCodeUnsupportedEncoding   ErrorCode = "UNSUPPORTED_ENCODING"
	ErrCodeStringTooLong         ErrorCode = "STRING_TOO_LONG"
	ErrCodeInvalidEncodingFlag   ErrorCode = "INVALID_ENCODING_FLAG"
	ErrCodeInvalidCharacterValue ErrorCode = "INVALID_CHARACTER_VALUE"
	ErrCodeUnsupportedCharacter  ErrorCode = "UNSUPPORTED_CHARACTER"
)

// Sentinels for errors.Is. Any *Error with the same Code matches.
var (
	ErrUnsupportedEncoding   = &Error{Code: ErrCodeUnsupportedEncoding, Message: "unsupported encoding"}
	ErrStringTooLong         = &Error{Code: ErrCodeStringTooLong, Message: "string too long"}
	ErrInvalidEncodingFlag   = &Error{Code: ErrCodeInvalidEncodingFlag, Message: "invalid encoding flag"}
	ErrInvalidCharacterValue = &Error{Code: ErrCodeInvalidCharacterValue, Message: "invalid character value"}
	ErrUnsupportedCharacter  = &Error{Code: ErrCodeUnsupportedCharacter, Message: "unsupported character"}
)

// Error is the single error type returned by the codec.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("metastring: %s: %v", e.Message, e.Cause)
	}
	return "metastring: " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Hint returns a short remedy for the caller.
func (e *Error) Hint() string {
	switch e.Code {
	case ErrCodeUnsupportedEncoding:
		return "Only lower_special output is produced by Encode; fall back to utf8 or use EncodeAs"
	case ErrCodeStringTooLong:
		return "Identifiers are limited to 32767 characters"
	case ErrCodeInvalidEncodingFlag:
		return "Valid encodings: utf8, lower_special, lower_upper_digit_special, first_to_lower_special, all_to_lower_special"
	case ErrCodeInvalidCharacterValue:
		return "Check that the encoding tag and special characters match the producer"
	case ErrCodeUnsupportedCharacter:
		return "The text contains a character outside the chosen alphabet"
	}
	return ""
}

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UnsupportedEncoding returns an error for a tag the encoder cannot produce.
func UnsupportedEncoding(enc Encoding) *Error {
	return &Error{
		Code:    ErrCodeUnsupportedEncoding,
		Message: fmt.Sprintf("encoding %s is not supported by the encoder", enc),
	}
}

// StringTooLong returns an error for input over MaxLength characters.
func StringTooLong(length int) *Error {
	return &Error{
		Code:    ErrCodeStringTooLong,
		Message: fmt.Sprintf("string of %d characters exceeds the %d character limit", length, MaxLength),
	}
}

// InvalidEncodingFlag returns an error for an unrecognised tag.
func InvalidEncodingFlag(enc Encoding) *Error {
	return &Error{
		Code:    ErrCodeInvalidEncodingFlag,
		Message: fmt.Sprintf("unexpected encoding flag 0x%02x", uint8(enc)),
	}
}

// InvalidCharacterValue returns an error for a decoded code with no mapping.
func InvalidCharacterValue(value byte, enc Encoding) *Error {
	return &Error{
		Code:    ErrCodeInvalidCharacterValue,
		Message: fmt.Sprintf("invalid character value %d for %s", value, enc),
	}
}

// UnsupportedCharacter returns an error for a character outside the alphabet.
func UnsupportedCharacter(r rune, enc Encoding) *Error {
	return &Error{
		Code:    ErrCodeUnsupportedCharacter,
		Message: fmt.Sprintf("unsupported character %q for %s", r, enc),
	}
}
