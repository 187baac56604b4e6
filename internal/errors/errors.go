// Package errors provides typed errors for the metastr command.
package errors

import "fmt"

// ErrorCode identifies the type of error.
type ErrorCode string

const (
	ErrConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigInvalid  ErrorCode = "CONFIG_INVALID"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrInvalidFlag    ErrorCode = "INVALID_FLAG"
	ErrCodecFailed    ErrorCode = "CODEC_FAILED"
)

// CLIError represents a typed error with a user-friendly hint.
type CLIError struct {
	Code    ErrorCode
	Message string
	Hint    string
	Cause   error
}

func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Cause
}

// New creates a new CLIError.
func New(code ErrorCode, message, hint string) *CLIError {
	return &CLIError{
		Code:    code,
		Message: message,
		Hint:    hint,
	}
}

// Wrap creates a new CLIError wrapping an existing error.
func Wrap(code ErrorCode, message, hint string, cause error) *CLIError {
	return &CLIError{
		Code:    code,
		Message: message,
		Hint:    hint,
		Cause:   cause,
	}
}

// ConfigNotFound returns an error for a missing config file.
func ConfigNotFound(path string) *CLIError {
	return &CLIError{
		Code:    ErrConfigNotFound,
		Message: fmt.Sprintf("config file not found: %s", path),
		Hint:    "Run `metastr config init` to create a configuration",
	}
}

// ConfigInvalid returns an error for an invalid config.
func ConfigInvalid(reason string) *CLIError {
	return &CLIError{
		Code:    ErrConfigInvalid,
		Message: fmt.Sprintf("invalid config: %s", reason),
		Hint:    "Check your config file at ~/.config/metastr/config.yaml",
	}
}

// InvalidPayload returns an error for a payload that cannot be parsed in
// the requested format.
func InvalidPayload(format string, cause error) *CLIError {
	return &CLIError{
		Code:    ErrInvalidInput,
		Message: fmt.Sprintf("payload is not valid %s", format),
		Hint:    "Pass the payload exactly as `metastr encode` printed it",
		Cause:   cause,
	}
}

// InvalidFlag returns an error for a flag value that cannot be used.
func InvalidFlag(name, reason string) *CLIError {
	return &CLIError{
		Code:    ErrInvalidFlag,
		Message: fmt.Sprintf("invalid --%s: %s", name, reason),
		Hint:    "Run `metastr help` for the accepted values",
	}
}

// CodecFailed wraps an encoder or decoder failure for text.
func CodecFailed(op, text string, cause error) *CLIError {
	e := &CLIError{
		Code:    ErrCodecFailed,
		Message: fmt.Sprintf("%s %q", op, text),
		Cause:   cause,
	}
	if h, ok := cause.(interface{ Hint() string }); ok {
		e.Hint = h.Hint()
	}
	return e
}
