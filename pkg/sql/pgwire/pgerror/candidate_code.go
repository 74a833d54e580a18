// Copyright 2026 The Calcite Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package pgerror

import (
	"fmt"

	"github.com/Chen768959/calcite/pkg/sql/pgwire/pgcode"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// withCandidateCode decorates an error with a candidate pg code. The
// annotation is transparent: Error(), causes and formatting all defer to
// the wrapped error.
type withCandidateCode struct {
	cause error
	code  string
}

var _ error = (*withCandidateCode)(nil)
var _ fmt.Formatter = (*withCandidateCode)(nil)
var _ errors.SafeFormatter = (*withCandidateCode)(nil)

// WithCandidateCode adds a candidate pg code to err. If err is nil, the
// annotation is a no-op.
func WithCandidateCode(err error, code pgcode.Code) error {
	if err == nil {
		return nil
	}
	return &withCandidateCode{cause: err, code: code.String()}
}

func (w *withCandidateCode) Error() string { return w.cause.Error() }
func (w *withCandidateCode) Cause() error  { return w.cause }
func (w *withCandidateCode) Unwrap() error { return w.cause }

func (w *withCandidateCode) Format(s fmt.State, verb rune) { errors.FormatError(w, s, verb) }

func (w *withCandidateCode) SafeFormatError(p errors.Printer) (next error) {
	if p.Detail() {
		p.Printf("candidate pg code: %s", redact.Safe(w.code))
	}
	return w.cause
}
