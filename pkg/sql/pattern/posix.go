// Copyright 2026 The Calcite Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package pattern

import (
	"regexp"
	"strings"
)

// posixClasses are the bare POSIX class keywords understood by
// CompileWithPosixClasses, with their replacement fragments. XDigit
// must stay ahead of Digit: replacing the shorter keyword first would
// corrupt the longer one. The fragments are ASCII-exact renditions of
// the POSIX classes and contain no keyword as a substring, so one
// replacement cannot feed another.
var posixClasses = []struct {
	name string
	repl string
}{
	{"Lower", `[a-z]`},
	{"Upper", `[A-Z]`},
	{"ASCII", `[\x00-\x7F]`},
	{"Alpha", `[A-Za-z]`},
	{"XDigit", `[0-9A-Fa-f]`},
	{"Digit", `\d`},
	{"Alnum", `[0-9A-Za-z]`},
	{"Punct", "[!-/:-@[-`{-~]"},
	{"Graph", `[!-~]`},
	{"Print", `[ -~]`},
	{"Blank", `[ \t]`},
	{"Cntrl", `[\x00-\x1F\x7F]`},
	{"Space", `[\t\n\v\f\r ]`},
}

// CompileWithPosixClasses compiles a regexp that may use bare POSIX
// class keywords ("digit", "xdigit", ...) in place of character
// classes. Every lower-cased keyword occurrence is substituted with an
// equivalent class fragment before the pattern is handed to the regexp
// engine; compilation errors from the engine are returned unchanged.
//
// With caseSensitive set to false the pattern is compiled
// case-insensitively by prefixing the (?i) flag.
func CompileWithPosixClasses(pattern string, caseSensitive bool) (*regexp.Regexp, error) {
	for _, c := range posixClasses {
		kw := strings.ToLower(c.name)
		if strings.Contains(pattern, kw) {
			pattern = strings.ReplaceAll(pattern, kw, c.repl)
		}
	}
	if !caseSensitive {
		pattern = "(?i)" + pattern
	}
	return regexp.Compile(pattern)
}
