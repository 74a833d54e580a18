// Copyright 2026 The Calcite Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

// Package pgcode defines the PostgreSQL SQLSTATE codes raised by this
// module's pattern translators.
package pgcode

// Code is a wrapper around a string to ensure that pgcodes are used in
// different pgerror functions by avoiding accidental string input.
type Code struct {
	code string
}

// MakeCode converts a string into a Code.
func MakeCode(code string) Code {
	return Code{code: code}
}

// String implements the fmt.Stringer interface.
func (c Code) String() string {
	return c.code
}

// Class 22 - Data Exception.
var (
	InvalidEscapeCharacter   = MakeCode("22019")
	InvalidEscapeSequence    = MakeCode("22025")
	InvalidRegularExpression = MakeCode("2201B")
)

// Uncategorized is the code reported for errors that carry no candidate
// code of their own.
var Uncategorized = MakeCode("XXUUU")
