// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import (
	"errors"
	"fmt"
)

// Exception is an error that carries a stable code. Codes are used by callers
// to distinguish misuse of an API (such as passing nil where a value is
// required) from other failures without matching on message text.
type Exception interface {
	error
	Code() string
	Message() string
}

type exc struct {
	code    string
	message string
}

func (e *exc) Error() string {
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *exc) Code() string {
	return e.code
}

func (e *exc) Message() string {
	return e.message
}

type excUnwrap struct {
	Exception
	cause error
}

func (e *excUnwrap) Unwrap() error {
	return e.cause
}

func New(code string, message string) Exception {
	return &exc{
		message: message,
		code:    code,
	}
}

func Wrap(code string, err error) Exception {
	if err == nil {
		return nil
	}
	if e, ok := err.(Exception); ok {
		return &excUnwrap{
			Exception: New(code, e.Message()),
			cause:     e,
		}
	}
	return &excUnwrap{
		cause:     err,
		Exception: New(code, err.Error()),
	}
}

// HasCode reports whether any Exception in the chain of err carries the
// given code.
func HasCode(err error, code string) bool {
	for err != nil {
		if e, ok := err.(Exception); ok && e.Code() == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
