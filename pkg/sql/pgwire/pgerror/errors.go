// Copyright 2026 The Calcite Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

// Package pgerror associates PostgreSQL SQLSTATE codes with errors and
// retrieves them on the way out, so that callers can branch on the error
// kind without depending on message text.
package pgerror

import (
	"github.com/Chen768959/calcite/pkg/sql/pgwire/pgcode"
	"github.com/cockroachdb/errors"
)

// New creates an error with a pg code.
func New(code pgcode.Code, msg string) error {
	return NewWithDepthf(1, code, "%s", msg)
}

// Newf creates an error with a pg code, with a format string.
func Newf(code pgcode.Code, format string, args ...interface{}) error {
	return NewWithDepthf(1, code, format, args...)
}

// NewWithDepthf creates an error with a pg code, with a format string,
// reporting the caller at the given depth for source context.
func NewWithDepthf(depth int, code pgcode.Code, format string, args ...interface{}) error {
	err := errors.NewWithDepthf(1+depth, format, args...)
	return WithCandidateCode(err, code)
}

// Wrapf wraps an error and adds a pg error code. See the doc on
// WrapWithDepthf for details.
func Wrapf(err error, code pgcode.Code, format string, args ...interface{}) error {
	return WrapWithDepthf(1, err, code, format, args...)
}

// WrapWithDepthf wraps an error. It also annotates the provided pg code
// as new candidate code, to be used if the underlying error does not
// have one already.
func WrapWithDepthf(
	depth int, err error, code pgcode.Code, format string, args ...interface{},
) error {
	err = errors.WrapWithDepthf(1+depth, err, format, args...)
	return WithCandidateCode(err, code)
}

// Wrap wraps an error and adds a pg error code. Only the code is added
// if the message is empty.
func Wrap(err error, code pgcode.Code, msg string) error {
	if msg == "" {
		return WithCandidateCode(err, code)
	}
	return WrapWithDepthf(1, err, code, "%s", msg)
}

// GetPGCode returns the code carried by the outermost candidate-code
// annotation in err's chain, or Uncategorized if there is none.
func GetPGCode(err error) pgcode.Code {
	for ; err != nil; err = errors.UnwrapOnce(err) {
		if w, ok := err.(*withCandidateCode); ok {
			return pgcode.MakeCode(w.code)
		}
	}
	return pgcode.Uncategorized
}

// HasCode reports whether err carries the given pg code.
func HasCode(err error, code pgcode.Code) bool {
	return err != nil && GetPGCode(err) == code
}
