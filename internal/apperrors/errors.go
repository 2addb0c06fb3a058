// Package apperrors holds the error raised when application code breaks a
// convention the viewer relies on.
package apperrors

import (
	"errors"
	"fmt"
)

// ErrApplication matches any *ApplicationError through errors.Is.
var ErrApplication = errors.New("application error")

// ApplicationError indicates an error in the application code, essentially
// any invalid convention following. Both the message and the cause are
// optional.
type ApplicationError struct {
	msg   string
	cause error
}

func New() *ApplicationError {
	return &ApplicationError{}
}

func NewWithMessage(msg string) *ApplicationError {
	return &ApplicationError{msg: msg}
}

func Errorf(format string, args ...any) *ApplicationError {
	return &ApplicationError{msg: fmt.Sprintf(format, args...)}
}

func Wrap(cause error) *ApplicationError {
	return &ApplicationError{cause: cause}
}

func WrapWithMessage(msg string, cause error) *ApplicationError {
	return &ApplicationError{msg: msg, cause: cause}
}

func (e *ApplicationError) Error() string {
	msg := e.msg
	if msg == "" {
		msg = ErrApplication.Error()
	}

	if e.cause == nil {
		return msg
	}

	return msg + ": " + e.cause.Error()
}

func (e *ApplicationError) Message() string {
	return e.msg
}

func (e *ApplicationError) Unwrap() error {
	return e.cause
}

func (e *ApplicationError) Is(target error) bool {
	return target == ErrApplication
}
