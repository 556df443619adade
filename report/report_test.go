// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maraisr/hdx/report"
	"github.com/maraisr/hdx/source"
)

type errTest struct {
	span source.Span
	kind report.Kind
}

func (e errTest) Error() string { return "test error" }
func (e errTest) Kind() report.Kind { return e.kind }
func (e errTest) Diagnose(d *report.Diagnostic) {
	d.With(
		report.At(e.span),
		report.Got("colr"),
		report.Want("a property name"),
		report.Suggest("color"),
		report.Suggest(""),
	)
}

func TestReport(t *testing.T) {
	t.Parallel()

	var r report.Report
	r.Warn(errTest{source.Span{Start: 8, End: 12}, report.UnknownProperty})
	d := r.Error(errTest{source.Span{Start: 4, End: 6}, report.UnexpectedToken})
	assert.Equal(t, report.Error, d.Level)
	assert.True(t, r.HasErrors())

	r.Sort()
	assert.Equal(t, report.UnexpectedToken, r[0].Kind)
	assert.Equal(t, report.UnknownProperty, r[1].Kind)
	assert.Equal(t, "color", r[1].Suggestion)
	assert.Equal(t, []string{"a property name"}, r[1].Want)

	var target errTest
	assert.True(t, errors.As(&r[0], &target))
	assert.Equal(t, "unexpected-token", r[0].Kind.String())
}

func TestRender(t *testing.T) {
	t.Parallel()

	file := source.NewFile("a.css", "a {\n\tcolr: red;\n}\n")
	r := report.Report{}
	r.Warn(errTest{source.Span{Start: 5, End: 9}, report.UnknownProperty})

	var out strings.Builder
	errs, warns, err := report.Renderer{}.Render(file, r, &out)
	assert.NoError(t, err)
	assert.Equal(t, 0, errs)
	assert.Equal(t, 1, warns)
	assert.Equal(t, ""+
		"a.css:2:5: warning[unknown-property]: test error\n"+
		"  |     colr: red;\n"+
		"  |     ^^^^\n"+
		"  = expected a property name\n"+
		"  = help: did you mean `color`?\n",
		out.String(),
	)

	out.Reset()
	errs, _, _ = report.Renderer{Compact: true, WarningsAreErrors: true}.Render(file, r, &out)
	assert.Equal(t, 1, errs)
	assert.Equal(t, "a.css:2:5: error[unknown-property]: test error\n", out.String())
}
