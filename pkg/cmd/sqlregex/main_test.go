// Copyright 2026 The Calcite Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := makeSQLRegexCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLikeCommand(t *testing.T) {
	out, err := runCommand(t, "like", "a%b_c")
	require.NoError(t, err)
	require.Equal(t, "a(?s:.*)b.c\n", out)
}

func TestLikeCommandEscape(t *testing.T) {
	out, err := runCommand(t, "like", "a#%b", "--escape", "#")
	require.NoError(t, err)
	require.Equal(t, "a%b\n", out)
}

func TestLikeCommandMatch(t *testing.T) {
	out, err := runCommand(t, "like", "a%c", "--match", "abc", "--match", "abd")
	require.NoError(t, err)
	require.Equal(t, "a(?s:.*)c\nabc: true\nabd: false\n", out)
}

func TestSimilarCommand(t *testing.T) {
	out, err := runCommand(t, "similar", "[:ALPHA:]+", "--match", "hello", "--match", "h2o")
	require.NoError(t, err)
	require.Equal(t, "[[:alpha:]]+\nhello: true\nh2o: false\n", out)
}

func TestSimilarCommandError(t *testing.T) {
	_, err := runCommand(t, "similar", "[abc")
	require.EqualError(t, err, "invalid regular expression '[abc', index 4")
}

func TestPosixCommand(t *testing.T) {
	out, err := runCommand(t, "posix", "^xdigit+$", "--match", "BEEF", "--match", "xyz")
	require.NoError(t, err)
	require.Equal(t, "^[0-9A-Fa-f]+$\nBEEF: true\nxyz: false\n", out)
}

func TestPosixCommandCaseInsensitive(t *testing.T) {
	out, err := runCommand(t, "posix", "^abc$", "--case-insensitive", "--match", "ABC")
	require.NoError(t, err)
	require.Equal(t, "(?i)^abc$\nABC: true\n", out)
}
