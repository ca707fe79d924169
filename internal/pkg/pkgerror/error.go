package pkgerror

import (
	"errors"
	"net/http"
)

type Code int

const (
	CodeUnknown Code = iota
	CodeInvalidInput
	CodeNotFound
	CodeUpstream
)

// Error is an error whose message is safe to show to API clients.
type Error struct {
	msg  string
	code Code
	err  error
}

func NewBusiness(msg string, code Code) *Error {
	return &Error{msg: msg, code: code}
}

// Wrap keeps err reachable through errors.Is/As while exposing only msg.
func Wrap(err error, msg string, code Code) *Error {
	return &Error{msg: msg, code: code, err: err}
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Msg() string {
	return e.msg
}

func (e *Error) Code() Code {
	return e.code
}

// HTTPStatus maps any error to the status code the router responds with.
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.code {
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
