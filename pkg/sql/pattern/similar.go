// Copyright 2026 The Calcite Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package pattern

import "strings"

// TranslateSimilar translates a SQL SIMILAR TO pattern into a regexp
// string. An empty escape disables escape processing; otherwise it must
// be a single character.
//
// SIMILAR TO keeps the regexp operators ( ) | ^ + * ? { } with their
// usual meaning, maps '_' to '.' and '%' to '(?s:.*)', and supports
// bracket expressions with [:NAME:] character classes. '$' and '\' are
// ordinary characters in SIMILAR TO and are escaped in the output.
func TranslateSimilar(pattern, escape string) (string, error) {
	esc, err := escapeRune(escape)
	if err != nil {
		return "", err
	}
	pat := []rune(pattern)
	if err := checkSimilarEscapeRules(pat, esc); err != nil {
		return "", err
	}
	return similarToRegexp(pat, esc)
}

// checkSimilarEscapeRules enforces SQL:2003 part 2 section 8.6 general
// rule 3 before translation starts.
func checkSimilarEscapeRules(pat []rune, esc rune) error {
	if esc == noEscape {
		return nil
	}
	if isSimilarSpecial(esc) {
		// Rule 3.b: an escape character that is itself special may only
		// precede another special character or itself.
		for i := 0; i < len(pat); i++ {
			if pat[i] != esc {
				continue
			}
			if i == len(pat)-1 {
				return invalidEscapeSequenceError(string(pat), i)
			}
			if next := pat[i+1]; !isSimilarSpecial(next) && next != esc {
				return invalidEscapeSequenceError(string(pat), i)
			}
		}
	}
	if esc == ':' {
		// Rule 3.c: a colon escape requires the pattern to contain a
		// bracketed class marker.
		s := string(pat)
		pos := strings.Index(s, "[:")
		if pos >= 0 {
			pos = strings.Index(s, ":]")
		}
		if pos < 0 {
			return invalidEscapeSequenceError(s, pos)
		}
	}
	return nil
}

func similarToRegexp(pat []rune, esc rune) (string, error) {
	var out strings.Builder
	out.Grow(2 * len(pat))
	insideBracket := false
	for i := 0; i < len(pat); i++ {
		c := pat[i]
		if c == esc {
			if i == len(pat)-1 {
				// Reachable only when the escape character is not
				// special; rule 3.b catches the rest beforehand.
				return "", invalidEscapeSequenceError(string(pat), i)
			}
			next := pat[i+1]
			switch {
			case isSimilarSpecial(next):
				if isRegexSpecial(next) {
					out.WriteByte('\\')
				}
				out.WriteRune(next)
			case next == esc:
				out.WriteRune(next)
			default:
				return "", invalidEscapeSequenceError(string(pat), i)
			}
			i++
			continue
		}
		switch c {
		case '_':
			out.WriteByte('.')
		case '%':
			out.WriteString(`(?s:.*)`)
		case '[':
			out.WriteByte('[')
			insideBracket = true
			var err error
			i, err = rewriteBracketExpr(pat, &out, i, esc)
			if err != nil {
				return "", err
			}
		case ']':
			if !insideBracket {
				return "", invalidRegexpError(string(pat), i)
			}
			insideBracket = false
			out.WriteByte(']')
		case '\\':
			out.WriteString(`\\`)
		case '$':
			// '$' anchors in the target dialect but is an ordinary
			// character in SIMILAR TO.
			out.WriteString(`\$`)
		default:
			out.WriteRune(c)
		}
	}
	if insideBracket {
		return "", invalidRegexpError(string(pat), len(pat))
	}
	return out.String(), nil
}

// rewriteBracketExpr rewrites the body of the bracket expression whose
// opening '[' sits at pos, starting with the character after it. It
// returns the index of the last character it consumed; the terminating
// ']' is left for the caller to re-emit.
func rewriteBracketExpr(pat []rune, out *strings.Builder, pos int, esc rune) (int, error) {
	// An expression whose body is itself a well-formed class marker, as
	// in '[:DIGIT:]', denotes the class directly; the marker's trailing
	// ']' doubles as the expression terminator.
	if cls := classAt(pat, pos); cls != nil {
		out.WriteString(cls.class)
		return pos + len(cls.name) - 2, nil
	}
	i := pos + 1
	for ; i < len(pat); i++ {
		c := pat[i]
		switch {
		case c == ']':
			return i - 1, nil
		case c == esc:
			if i == len(pat)-1 {
				return 0, invalidRegexpError(string(pat), i)
			}
			i++
			next := pat[i]
			switch {
			case isSimilarSpecial(next):
				if isRegexSpecial(next) {
					out.WriteByte('\\')
				}
				out.WriteRune(next)
			case next == esc:
				out.WriteRune(next)
			default:
				return 0, invalidRegexpError(string(pat), i)
			}
		case c == '-' || c == '^':
			// Range and negation syntax is shared between the dialects.
			out.WriteRune(c)
		case matchesAt(pat, i, "[:"):
			cls := classAt(pat, i)
			if cls == nil {
				return 0, invalidRegexpError(string(pat), i)
			}
			out.WriteString(cls.class)
			i += len(cls.name) - 1
		case isSimilarSpecial(c):
			return 0, invalidRegexpError(string(pat), i)
		default:
			out.WriteRune(c)
		}
	}
	return i - 1, nil
}
