// Package errs provides the error type returned by HTTP handlers.
package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"
)

// ErrCode classifies an error and selects its HTTP status.
type ErrCode int

const (
	Internal ErrCode = iota + 1
	InternalOnlyLog
	InvalidArgument
	NotFound
	Unimplemented
)

var httpStatus = map[ErrCode]int{
	Internal:        http.StatusInternalServerError,
	InternalOnlyLog: http.StatusInternalServerError,
	InvalidArgument: http.StatusBadRequest,
	NotFound:        http.StatusNotFound,
	Unimplemented:   http.StatusMethodNotAllowed,
}

func (c ErrCode) String() string {
	switch c {
	case Internal:
		return "internal"
	case InternalOnlyLog:
		return "internal_only_log"
	case InvalidArgument:
		return "invalid_argument"
	case NotFound:
		return "not_found"
	case Unimplemented:
		return "unimplemented"
	default:
		return "unknown"
	}
}

// Error is an application error that also encodes itself as a response.
type Error struct {
	Code     ErrCode `json:"-"`
	Message  string  `json:"error"`
	FuncName string  `json:"-"`
	FileName string  `json:"-"`
}

// New wraps err with code, recording the caller.
func New(code ErrCode, err error) *Error {
	pc, file, line, _ := runtime.Caller(1)
	return &Error{
		Code:     code,
		Message:  err.Error(),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", file, line),
	}
}

// Newf builds an Error from a format string, recording the caller.
func Newf(code ErrCode, format string, v ...any) *Error {
	pc, file, line, _ := runtime.Caller(1)
	return &Error{
		Code:     code,
		Message:  fmt.Sprintf(format, v...),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", file, line),
	}
}

func (e *Error) Error() string {
	return e.Message
}

// Encode implements web.Encoder.
func (e *Error) Encode() ([]byte, string, error) {
	data, err := json.Marshal(e)
	return data, "application/json; charset=utf-8", err
}

func (e *Error) HTTPStatus() int {
	if s, ok := httpStatus[e.Code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// IsError reports whether err is an *Error.
func IsError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
