// Copyright 2026 The Calcite Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package pattern

import (
	"testing"

	"github.com/Chen768959/calcite/pkg/sql/pgwire/pgcode"
	"github.com/Chen768959/calcite/pkg/sql/pgwire/pgerror"
	"github.com/stretchr/testify/require"
)

func TestCompileWithPosixClasses(t *testing.T) {
	testData := []struct {
		pattern string
		match   string
		noMatch string
	}{
		{`^lower+$`, `abc`, `aBc`},
		{`^upper+$`, `ABC`, `AbC`},
		{`^alpha+$`, `aZ`, `a1`},
		{`^digit+$`, `123`, `12a`},
		{`^xdigit+$`, `0aF9`, `0gF`},
		{`^alnum+$`, `a9Z`, `a_`},
		{`^punct+$`, `,;!`, `a,`},
		{`^graph+$`, `a!~`, `a b`},
		{`^print+$`, `a !~`, "a\tb"},
		{`^blank$`, "\t", "\n"},
		{`^cntrl$`, "\x01", `a`},
		{`^space+$`, " \t\n\v\f\r", `x`},
		{`^ascii+$`, `az09`, `aé`},
	}
	for _, d := range testData {
		re, err := CompileWithPosixClasses(d.pattern, true)
		require.NoError(t, err, "pattern %q", d.pattern)
		if !re.MatchString(d.match) {
			t.Errorf("%q: expected %q to match", d.pattern, d.match)
		}
		if re.MatchString(d.noMatch) {
			t.Errorf("%q: expected %q not to match", d.pattern, d.noMatch)
		}
	}
}

// The hex-digit keyword must be rewritten before the plain digit
// keyword; a digit-first rewrite would leave a stray 'x' behind and
// change what the class matches.
func TestCompileWithPosixClassesSubstitutionOrder(t *testing.T) {
	re, err := CompileWithPosixClasses(`^xdigit$`, true)
	require.NoError(t, err)
	require.True(t, re.MatchString("a"))
	require.True(t, re.MatchString("F"))
	require.False(t, re.MatchString("x5"))
}

func TestCompileWithPosixClassesCaseSensitivity(t *testing.T) {
	re, err := CompileWithPosixClasses(`^abc$`, false)
	require.NoError(t, err)
	require.True(t, re.MatchString("ABC"))
	require.True(t, re.MatchString("abc"))

	re, err = CompileWithPosixClasses(`^abc$`, true)
	require.NoError(t, err)
	require.False(t, re.MatchString("ABC"))
	require.True(t, re.MatchString("abc"))
}

// Compilation errors come straight from the regexp engine, without a
// pg code of their own.
func TestCompileWithPosixClassesEngineErrors(t *testing.T) {
	_, err := CompileWithPosixClasses(`(`, true)
	require.Error(t, err)
	require.Equal(t, pgcode.Uncategorized, pgerror.GetPGCode(err))
}
