package codec

import (
	"fmt"
)

// ErrorCode classifies a decode failure
type ErrorCode int

const (
	CodeUnknown ErrorCode = iota
	CodeInvalidLength
	CodeInvalidChecksum
	CodeInvalidContentType
	CodeUnknownIdentifier
	CodeMalformedInput
)

var errorCodeNames = map[ErrorCode]string{
	CodeUnknown:            "unknown",
	CodeInvalidLength:      "invalid length",
	CodeInvalidChecksum:    "invalid checksum",
	CodeInvalidContentType: "invalid content type",
	CodeUnknownIdentifier:  "unknown identifier",
	CodeMalformedInput:     "malformed input",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// Error is returned for every failure to decode a record or assemble a document.
// Context holds the raw line or field text that caused the failure.
type Error struct {
	Code    ErrorCode
	Message string
	Context string
	Line    int // 1-based line number, 0 when not known
}

func (e *Error) Error() string {
	msg := e.Code.String()
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Context != "" {
		msg += fmt.Sprintf(" (%q)", e.Context)
	}
	return msg
}

// Is reports whether target is an *Error with the same code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Common errors
var (
	ErrInvalidLength      = &Error{Code: CodeInvalidLength}
	ErrInvalidChecksum    = &Error{Code: CodeInvalidChecksum}
	ErrInvalidContentType = &Error{Code: CodeInvalidContentType}
	ErrUnknownIdentifier  = &Error{Code: CodeUnknownIdentifier}
	ErrMalformedInput     = &Error{Code: CodeMalformedInput}
)

// NewError creates an error of the given kind
func NewError(code ErrorCode, context, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Context: context,
	}
}

// Malformed creates a MalformedInput error for a structural violation
func Malformed(context, format string, args ...any) *Error {
	return NewError(CodeMalformedInput, context, format, args...)
}
