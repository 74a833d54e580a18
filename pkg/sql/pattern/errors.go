// Copyright 2026 The Calcite Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package pattern

import (
	"github.com/Chen768959/calcite/pkg/sql/pgwire/pgcode"
	"github.com/Chen768959/calcite/pkg/sql/pgwire/pgerror"
)

func invalidEscapeCharError(escape string) error {
	return pgerror.Newf(pgcode.InvalidEscapeCharacter,
		"invalid escape character '%s'", escape)
}

func invalidEscapeSequenceError(pat string, i int) error {
	return pgerror.Newf(pgcode.InvalidEscapeSequence,
		"invalid escape sequence '%s', %d", pat, i)
}

func invalidRegexpError(pat string, i int) error {
	return pgerror.Newf(pgcode.InvalidRegularExpression,
		"invalid regular expression '%s', index %d", pat, i)
}
