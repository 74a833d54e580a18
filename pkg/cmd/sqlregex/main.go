// Copyright 2026 The Calcite Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

// sqlregex translates SQL LIKE and SIMILAR TO patterns to regexps from
// the command line, and optionally matches strings against the result.
package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/Chen768959/calcite/pkg/sql/pattern"
	"github.com/spf13/cobra"
)

func makeSQLRegexCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "sqlregex [command] (flags)",
		Short: "sqlregex translates SQL pattern dialects to regexps.",
		Long: `sqlregex translates SQL LIKE and SIMILAR TO patterns into the regexp
dialect understood by Go's regexp package.

Typical usage:
    sqlregex like 'a%b_c'
        Print the regexp a LIKE pattern translates to.

    sqlregex similar '[:ALPHA:]+' --match hello --match 42
        Translate a SIMILAR TO pattern, then report whether each operand
        matches it in full.

    sqlregex posix '^xdigit+$' --case-insensitive --match BEEF
        Compile a regexp that uses bare POSIX class keywords and match
        operands against it.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	command.AddCommand(makeLikeCommand())
	command.AddCommand(makeSimilarCommand())
	command.AddCommand(makePosixCommand())

	return command
}

func makeLikeCommand() *cobra.Command {
	var escape string
	var operands []string
	command := &cobra.Command{
		Use:   "like <pattern>",
		Short: "Translate a SQL LIKE pattern to a regexp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := pattern.TranslateLike(args[0], escape)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return matchOperands(cmd, out, operands)
		},
	}
	command.Flags().StringVar(&escape, "escape", "", "escape character (empty disables escaping)")
	command.Flags().StringArrayVar(&operands, "match", nil, "string to match against the translated pattern")
	return command
}

func makeSimilarCommand() *cobra.Command {
	var escape string
	var operands []string
	command := &cobra.Command{
		Use:   "similar <pattern>",
		Short: "Translate a SQL SIMILAR TO pattern to a regexp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := pattern.TranslateSimilar(args[0], escape)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return matchOperands(cmd, out, operands)
		},
	}
	command.Flags().StringVar(&escape, "escape", "", "escape character (empty disables escaping)")
	command.Flags().StringArrayVar(&operands, "match", nil, "string to match against the translated pattern")
	return command
}

func makePosixCommand() *cobra.Command {
	var caseInsensitive bool
	var operands []string
	command := &cobra.Command{
		Use:   "posix <pattern>",
		Short: "Compile a regexp that uses bare POSIX class keywords",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := pattern.CompileWithPosixClasses(args[0], !caseInsensitive)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), re.String())
			for _, s := range operands {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", s, re.MatchString(s))
			}
			return nil
		},
	}
	command.Flags().BoolVar(&caseInsensitive, "case-insensitive", false, "compile the pattern case-insensitively")
	command.Flags().StringArrayVar(&operands, "match", nil, "string to match against the compiled pattern")
	return command
}

// matchOperands compiles the translated pattern anchored at both ends,
// the way a LIKE predicate applies it, and reports per-operand results.
func matchOperands(cmd *cobra.Command, translated string, operands []string) error {
	if len(operands) == 0 {
		return nil
	}
	re, err := regexp.Compile(`^(?:` + translated + `)$`)
	if err != nil {
		return err
	}
	for _, s := range operands {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", s, re.MatchString(s))
	}
	return nil
}

func main() {
	if err := makeSQLRegexCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
