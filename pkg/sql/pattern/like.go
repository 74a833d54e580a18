// Copyright 2026 The Calcite Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

// Package pattern translates SQL LIKE and SIMILAR TO patterns into the
// regexp dialect understood by Go's regexp package. It is a pure
// compiler between the two pattern grammars: it never evaluates a match
// and holds no state across calls.
package pattern

import "strings"

// noEscape marks escaping as disabled. NUL cannot occur in a SQL
// string, so it never collides with a pattern character.
const noEscape rune = 0

// escapeRune validates an escape designator. The empty string disables
// escaping; anything longer than one character is rejected with
// pgcode.InvalidEscapeCharacter.
func escapeRune(escape string) (rune, error) {
	if escape == "" {
		return noEscape, nil
	}
	r := []rune(escape)
	if len(r) != 1 {
		return noEscape, invalidEscapeCharError(escape)
	}
	return r[0], nil
}

// TranslateLike translates a SQL LIKE pattern into a regexp string. An
// empty escape disables escape processing; otherwise it must be a
// single character.
//
// The translation maps '_' to '.' and '%' to '(?s:.*)', escapes every
// character that is regexp metasyntax, and resolves escape sequences to
// their literal character. The only characters an escape may precede
// are '_', '%', the escape character itself, and '\'.
func TranslateLike(pattern, escape string) (string, error) {
	esc, err := escapeRune(escape)
	if err != nil {
		return "", err
	}
	return likeToRegexp([]rune(pattern), esc)
}

func likeToRegexp(pat []rune, esc rune) (string, error) {
	var out strings.Builder
	out.Grow(2 * len(pat))
	for i := 0; i < len(pat); i++ {
		c := pat[i]
		// A regexp-special character always gets a backslash, before
		// SQL wildcard handling: when c turns out to be the escape
		// character, the backslash makes the escaped literal.
		if isRegexSpecial(c) {
			out.WriteByte('\\')
		}
		switch {
		case c == esc:
			if i == len(pat)-1 {
				return "", invalidEscapeSequenceError(string(pat), i)
			}
			next := pat[i+1]
			switch {
			case next == '_' || next == '%' || next == esc:
				out.WriteRune(next)
				i++
			case next == '\\':
				out.WriteString(`\\`)
				i++
			default:
				return "", invalidEscapeSequenceError(string(pat), i)
			}
		case c == '_':
			out.WriteByte('.')
		case c == '%':
			out.WriteString(`(?s:.*)`)
		default:
			out.WriteRune(c)
		}
	}
	return out.String(), nil
}
