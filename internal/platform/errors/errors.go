// Package errors is the needle error taxonomy, import it as perr
//
// Search misses are values, not errors. Everything that does reach a
// transport carries an ErrorCode that picks the HTTP status and the
// numeric code clients branch on.
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode is the machine facing class of an error
// the numbers are on the wire, append new codes at the end
type ErrorCode uint16

const (
	// ErrorCodeUnknown is anything unclassified, it answers 500
	ErrorCodeUnknown ErrorCode = iota
	// ErrorCodePanic marks a panic turned into a response by middleware
	ErrorCodePanic
	// ErrorCodeUnavailable is a disabled or unreachable backend
	ErrorCodeUnavailable
	// ErrorCodeInvalidArgument is well formed input over a size limit
	ErrorCodeInvalidArgument
	// ErrorCodeValidation is input that failed a validate rule
	ErrorCodeValidation
	// ErrorCodeJSON is a body that does not decode into the request type
	ErrorCodeJSON
	ErrorCodeNotFound
	ErrorCodeDuplicateKey
	ErrorCodeDB
)

var codeTable = [...]struct {
	name   string
	status int
}{
	ErrorCodeUnknown:         {"unknown", http.StatusInternalServerError},
	ErrorCodePanic:           {"panic", http.StatusInternalServerError},
	ErrorCodeUnavailable:     {"unavailable", http.StatusServiceUnavailable},
	ErrorCodeInvalidArgument: {"invalid_argument", http.StatusUnprocessableEntity},
	ErrorCodeValidation:      {"validation", http.StatusBadRequest},
	ErrorCodeJSON:            {"json", http.StatusBadRequest},
	ErrorCodeNotFound:        {"not_found", http.StatusNotFound},
	ErrorCodeDuplicateKey:    {"duplicate_key", http.StatusConflict},
	ErrorCodeDB:              {"db", http.StatusInternalServerError},
}

// String names the code, e.g. invalid_argument
func (c ErrorCode) String() string {
	if int(c) < len(codeTable) {
		return codeTable[c].name
	}
	return fmt.Sprintf("code(%d)", uint16(c))
}

// Status is the HTTP status a transport answers with, codes past the table answer 500
func (c ErrorCode) Status() int {
	if int(c) < len(codeTable) {
		return codeTable[c].status
	}
	return http.StatusInternalServerError
}

// ErrNotFound is what single row reads return when nothing matched
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// Error carries a code, a client safe message and optional metadata
// field is the JSON field at fault, op tags the operation in logs
type Error struct {
	code  ErrorCode
	msg   string
	field string
	op    string
	orig  error
}

// Wire is the error part of the response envelope
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

// Error renders "op: msg: cause", parts that are unset are left out
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	s := e.msg
	if e.op != "" {
		s = e.op + ": " + s
	}
	if e.orig != nil {
		s += ": " + e.orig.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending JSON field, if any
func (e *Error) Field() string { return e.field }

// Op returns the operation label, if any
func (e *Error) Op() string { return e.op }

// ToWire drops the cause and op, neither goes to clients
func (e *Error) ToWire() Wire { return Wire{Code: e.code, Message: e.msg, Field: e.field} }

// WireFrom converts any error, foreign ones become ErrorCodeUnknown with their text
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// As finds the outermost *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Root follows Unwrap to the innermost cause
func Root(err error) error {
	for err != nil {
		next := stderrs.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}
	return err
}

// CodeOf is the code of the outermost *Error, ErrorCodeUnknown otherwise
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus is CodeOf(err).Status()
func HTTPStatus(err error) int { return CodeOf(err).Status() }

// WithField returns a copy naming the JSON field at fault, foreign errors pass through
func WithField(err error, field string) error {
	return edit(err, func(c *Error) { c.field = field })
}

// WithOp returns a copy tagged with op, foreign errors pass through
func WithOp(err error, op string) error {
	return edit(err, func(c *Error) { c.op = op })
}

func edit(err error, fn func(*Error)) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	fn(&c)
	return &c
}

func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap keeps orig reachable through errors.Is and As
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// WrapIf is Wrap for call sites that pass err straight through, nil stays nil
func WrapIf(err error, code ErrorCode, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, msg)
}

func NotFoundf(format string, a ...any) error    { return Newf(ErrorCodeNotFound, format, a...) }
func InvalidArgf(format string, a ...any) error  { return Newf(ErrorCodeInvalidArgument, format, a...) }
func Validationf(format string, a ...any) error  { return Newf(ErrorCodeValidation, format, a...) }
func DBf(format string, a ...any) error          { return Newf(ErrorCodeDB, format, a...) }
func JSONErrf(format string, a ...any) error     { return Newf(ErrorCodeJSON, format, a...) }
func PanicErrf(format string, a ...any) error    { return Newf(ErrorCodePanic, format, a...) }
func Unavailablef(format string, a ...any) error { return Newf(ErrorCodeUnavailable, format, a...) }
