package apperror

import "errors"

type Code string

const (
	CodeValidation Code = "validation"
	CodeNoFields   Code = "no_fields"
	CodeConflict   Code = "conflict"
	CodeNotFound   Code = "not_found"
	CodeInternal   Code = "internal"
)

// Error is the stable outcome type crossing the service boundary. Message is
// safe to show to callers; Err keeps the underlying cause for logs only.
type Error struct {
	Code    Code
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap attaches an underlying cause. The cause is never rendered to callers
// by the transport layer; it exists for logging.
func Wrap(code Code, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewValidation builds a validation failure carrying per-field detail.
func NewValidation(message string, fields map[string]string) *Error {
	return &Error{
		Code:    CodeValidation,
		Message: message,
		Fields:  fields,
	}
}

// GetCode extracts the outcome code, defaulting unknown errors to internal.
func GetCode(err error) Code {
	if err == nil {
		return ""
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return CodeInternal
}

// GetFields returns the field-level detail of a validation failure, or nil.
func GetFields(err error) map[string]string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}

// Message returns the caller-safe message. Unknown errors get a generic one
// so raw store error text is never echoed to untrusted callers.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var appErr *Error
	if errors.As(err, &appErr) && appErr.Code != CodeInternal {
		return appErr.Message
	}

	return "internal server error"
}
