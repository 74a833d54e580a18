// Copyright 2026 The Calcite Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package pattern

import (
	"fmt"
	"testing"

	"github.com/Chen768959/calcite/pkg/sql/pgwire/pgerror"
	"github.com/cockroachdb/datadriven"
)

// TestTranslateDataDriven runs the translation corpus under testdata.
// Commands are "like" and "similar", with the SQL pattern as input and
// an optional escape=C argument; the expected output is the translated
// regexp, or "error (CODE): message" for rejected patterns.
func TestTranslateDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			var escape string
			if d.HasArg("escape") {
				d.ScanArgs(t, "escape", &escape)
			}
			var out string
			var err error
			switch d.Cmd {
			case "like":
				out, err = TranslateLike(d.Input, escape)
			case "similar":
				out, err = TranslateSimilar(d.Input, escape)
			default:
				d.Fatalf(t, "unknown command %s", d.Cmd)
			}
			if err != nil {
				return fmt.Sprintf("error (%s): %s", pgerror.GetPGCode(err), err)
			}
			return out
		})
	})
}
