// Copyright 2026 The Calcite Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package pattern

import "strings"

// regexSpecials are the characters that are metasyntax in the target
// regexp dialect; matching them literally requires a backslash escape.
const regexSpecials = `[]()|^-+*?{}$\.`

// similarSpecials are the characters that SQL SIMILAR TO reserves as
// pattern syntax.
const similarSpecials = `[]()|^-+*_%?{}`

func isRegexSpecial(c rune) bool {
	return c < 0x80 && strings.ContainsRune(regexSpecials, c)
}

func isSimilarSpecial(c rune) bool {
	return c < 0x80 && strings.ContainsRune(similarSpecials, c)
}

// similarClassEntry maps one SQL bracket-expression class marker to the
// regexp fragment emitted in its place. The fragment is only valid
// inside a character class, which is the only place markers can occur.
type similarClassEntry struct {
	name  string // the full [:NAME:] marker
	class string
}

// similarClasses is matched by exact prefix at the current scan
// position, first entry wins. The markers are fixed tokens (terminated
// by ":]") so no entry can shadow a longer one.
var similarClasses = []similarClassEntry{
	{`[:ALPHA:]`, `[:alpha:]`},
	{`[:alpha:]`, `[:alpha:]`},
	{`[:UPPER:]`, `[:upper:]`},
	{`[:upper:]`, `[:upper:]`},
	{`[:LOWER:]`, `[:lower:]`},
	{`[:lower:]`, `[:lower:]`},
	{`[:DIGIT:]`, `\d`},
	{`[:digit:]`, `\d`},
	{`[:SPACE:]`, ` `},
	{`[:space:]`, ` `},
	{`[:WHITESPACE:]`, `\s`},
	{`[:whitespace:]`, `\s`},
	{`[:ALNUM:]`, `[:alnum:]`},
	{`[:alnum:]`, `[:alnum:]`},
}

// matchesAt reports whether the ASCII token tok occurs in pat starting
// at position i.
func matchesAt(pat []rune, i int, tok string) bool {
	if i < 0 || i+len(tok) > len(pat) {
		return false
	}
	for j := 0; j < len(tok); j++ {
		if pat[i+j] != rune(tok[j]) {
			return false
		}
	}
	return true
}

// classAt returns the class table entry whose marker occurs in pat at
// position i, or nil.
func classAt(pat []rune, i int) *similarClassEntry {
	for j := range similarClasses {
		if matchesAt(pat, i, similarClasses[j].name) {
			return &similarClasses[j]
		}
	}
	return nil
}
