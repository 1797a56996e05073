/*
Copyright 2026 The Druid-Go Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package druiderrors provides the error type used across the codebase.
//
// Errors created here carry a Code. Wrapping an error preserves the code of
// the wrapped error, so a failure keeps its classification while context is
// added on the way up the stack:
//
//	err := druiderrors.Errorf(druiderrors.CodeInvalidArgument, "no such table %q", name)
//	...
//	return druiderrors.Wrap(err, "planning failed")
//
// Code(err) extracts the code from anywhere in the wrap chain, returning
// CodeUnknown for errors that never carried one.
package druiderrors

import (
	"errors"
	"fmt"
)

// New returns an error with the supplied message and code.
func New(code ErrCode, message string) error {
	return &fundamental{
		msg:  message,
		code: code,
	}
}

// Errorf formats according to a format specifier and returns the string
// as a value that satisfies error, with the supplied code.
func Errorf(code ErrCode, format string, args ...any) error {
	return &fundamental{
		msg:  fmt.Sprintf(format, args...),
		code: code,
	}
}

// fundamental is an error that has a message and a code, but no caused-by.
type fundamental struct {
	msg  string
	code ErrCode
}

func (f *fundamental) Error() string { return f.msg }

func (f *fundamental) ErrorCode() ErrCode { return f.code }

// Wrap returns an error annotating err with the message. The code of err is
// preserved. If err is nil, Wrap returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrapping{
		cause: err,
		msg:   message,
	}
}

// Wrapf returns an error annotating err with the format specifier. The code
// of err is preserved. If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &wrapping{
		cause: err,
		msg:   fmt.Sprintf(format, args...),
	}
}

type wrapping struct {
	cause error
	msg   string
}

func (w *wrapping) Error() string { return w.msg + ": " + w.cause.Error() }

func (w *wrapping) Unwrap() error { return w.cause }

// Code returns the error code of the first error in the wrap chain that
// carries one. It returns CodeOK for nil and CodeUnknown for errors created
// outside this package.
func Code(err error) ErrCode {
	if err == nil {
		return CodeOK
	}
	for err != nil {
		if coded, ok := err.(interface{ ErrorCode() ErrCode }); ok {
			return coded.ErrorCode()
		}
		err = errors.Unwrap(err)
	}
	return CodeUnknown
}

// RootCause walks the wrap chain and returns the innermost error.
func RootCause(err error) error {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}
