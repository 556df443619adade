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

package css_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maraisr/hdx/css"
	"github.com/maraisr/hdx/css/media"
	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/report"
	"github.com/maraisr/hdx/source"
	"github.com/maraisr/hdx/values"
	"github.com/maraisr/hdx/writer"
)

func TestStyleSheets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text, canonical, minified string
	}{
		{
			text:      "a{color:red}",
			canonical: "a {\n  color: red;\n}\n",
			minified:  "a{color:red}",
		},
		{
			text:      "@media print {}",
			canonical: "@media print {\n\n}\n",
			minified:  "",
		},
		{
			text:      "@media print, (prefers-reduced-motion: reduce) {}",
			canonical: "@media print, (prefers-reduced-motion:reduce) {\n\n}\n",
			minified:  "",
		},
		{
			text:      "@media (hover) { a {} }",
			canonical: "@media (hover) {\n  a {\n\n  }\n}\n",
			minified:  "",
		},
		{
			text:      "a > b ~ c + d, [x] .y { --Gap :  1px   2px !IMPORTANT }",
			canonical: "a > b ~ c + d, [x] .y {\n  --Gap: 1px 2px !important;\n}\n",
			minified:  "a>b~c+d,[x] .y{--Gap:1px 2px!important}",
		},
		{
			text:      "p { MARGIN: 0px 0px; Top: 0 !important; }",
			canonical: "p {\n  margin: 0px;\n  top: 0 !important;\n}\n",
			minified:  "p{margin:0;top:0!important}",
		},
		{
			text:      "a/**/b { width: calc(1px + 2px) }",
			canonical: "a/**/b {\n  width: calc(1px + 2px);\n}\n",
			minified:  "a/**/b{width:calc(1px + 2px)}",
		},
		{
			text:      `@import url(x.css) screen;`,
			canonical: "@import url(x.css) screen;\n",
			minified:  "@import url(x.css) screen;",
		},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			sheet, report := css.Parse(test.text)
			assert.False(t, report.HasErrors(), "%v", report)
			assert.Equal(t, test.canonical, writer.CanonicalString(sheet))
			assert.Equal(t, test.minified, writer.MinifiedString(sheet))
		})
	}
}

func TestCharset(t *testing.T) {
	t.Parallel()

	for _, text := range []string{`@charset "utf-8";`, `@charset "UTF-8";`, "@charset\t'Utf-8' ;"} {
		rule, err := parser.Parse(text, css.ParseCharsetRule)
		require.NoError(t, err, text)
		assert.Equal(t, css.UTF8, rule.Charset)
		assert.Equal(t, `@charset "utf-8";`, writer.CanonicalString(rule))
		assert.Equal(t, `@charset "utf-8";`, writer.MinifiedString(rule))
	}

	var n int
	for c := range css.Charsets() {
		n++
		text := `@charset "` + c.String() + `";`
		rule, err := parser.Parse(text, css.ParseCharsetRule)
		require.NoError(t, err, text)
		assert.Equal(t, c, rule.Charset)
	}
	assert.Equal(t, 25, n)

	_, err := parser.Parse(`@charset"utf-8";`, css.ParseCharsetRule)
	assert.EqualError(t, err, "unexpected string `\"utf-8\"`, expected whitespace")

	_, err = parser.Parse(`@charset "utf-7";`, css.ParseCharsetRule)
	var kw parser.ErrUnexpectedKeyword
	require.ErrorAs(t, err, &kw)
	assert.Equal(t, "utf-8", kw.Suggestion)
	assert.Equal(t, source.Span{Start: 9, End: 16}, kw.Span)

	_, err = parser.Parse(`@charset "utf-8"`, css.ParseCharsetRule)
	assert.EqualError(t, err, "unexpected end of input, expected `;`")
}

func TestDeclarations(t *testing.T) {
	t.Parallel()

	sheet, rep := css.Parse("a { Color: Red; colr: blue; --X: { a: b }; }")
	require.Len(t, sheet.Rules, 1)
	rule, ok := sheet.Rules[0].Node.(css.StyleRule)
	require.True(t, ok)
	require.Len(t, rule.Declarations, 3)

	color := rule.Declarations[0].Node
	assert.True(t, color.Known)
	assert.Equal(t, values.PropColor, color.Property)
	assert.Equal(t, "color", color.Name.String())
	assert.Equal(t, source.Span{Start: 4, End: 14}, rule.Declarations[0].Span)

	unknown := rule.Declarations[1].Node
	assert.False(t, unknown.Known)
	assert.False(t, unknown.IsCustom())
	assert.IsType(t, css.Raw{}, unknown.Value)

	custom := rule.Declarations[2].Node
	assert.True(t, custom.IsCustom())
	assert.Equal(t, "--X", custom.Name.String())
	assert.Equal(t, "{ a: b }", writer.CanonicalString(custom.Value))
	assert.Equal(t, "{a:b}", writer.MinifiedString(custom.Value))

	require.Len(t, rep, 1)
	assert.Equal(t, report.UnknownProperty, rep[0].Kind)
	assert.Equal(t, report.Warning, rep[0].Level)
	assert.Equal(t, "color", rep[0].Suggestion)
	assert.Equal(t, source.Span{Start: 16, End: 20}, rep[0].Span)
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text     string
		minified string
		kinds    []report.Kind
	}{
		{
			text:     "a { color: 1px; top: 0 }",
			minified: "a{top:0}",
			kinds:    []report.Kind{report.BadDeclaration},
		},
		{
			text:     "a { top: 0 ) ; left: 0 }",
			minified: "a{left:0}",
			kinds:    []report.Kind{report.BadDeclaration},
		},
		{
			text:     "a { ) top: 0; left: 0 }",
			minified: "a{left:0}",
			kinds:    []report.Kind{report.BadDeclaration},
		},
		{
			text:     "a { top: 0",
			minified: "a{top:0}",
			kinds:    []report.Kind{report.StructuralMismatch},
		},
		{
			text:     ") a { top: 0 }",
			minified: "",
			kinds:    []report.Kind{report.UnexpectedToken},
		},
		{
			text:     "@media ((hover)) { a { top: 0 } } b { top: 0 }",
			minified: "b{top:0}",
			kinds:    []report.Kind{report.Unimplemented},
		},
		{
			text:     "@media screen, { a { top: 0 } }; b { top: 0 }",
			minified: "b{top:0}",
			kinds:    []report.Kind{report.UnexpectedToken, report.UnexpectedToken},
		},
		{
			text:     "a { top: 0 } @charset \"utf-8\";",
			minified: "a{top:0}",
			kinds:    []report.Kind{report.MisplacedCharset},
		},
		{
			text:     "@media print { @charset \"utf-8\"; a { top: 0 } }",
			minified: "@media print{a{top:0}}",
			kinds:    []report.Kind{report.MisplacedCharset},
		},
		{
			text:     "a[x { top: 0 }",
			minified: "",
			kinds:    []report.Kind{report.StructuralMismatch},
		},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			sheet, rep := css.Parse(test.text)
			var kinds []report.Kind
			for _, d := range rep {
				kinds = append(kinds, d.Kind)
			}
			assert.Equal(t, test.kinds, kinds)
			assert.True(t, rep.HasErrors())
			assert.Equal(t, test.minified, writer.MinifiedString(sheet))
		})
	}
}

func TestBadDeclaration(t *testing.T) {
	t.Parallel()

	_, rep := css.Parse("a { margin-trim: block inline; }")
	require.Len(t, rep, 1)
	d := rep[0]
	assert.Equal(t, report.BadDeclaration, d.Kind)
	assert.Equal(t, "identifier `inline`", d.Got)
	assert.Equal(t, source.Span{Start: 23, End: 29}, d.Span)

	var bad css.ErrBadDeclaration
	require.ErrorAs(t, d.Err, &bad)
	assert.Equal(t, source.Span{Start: 4, End: 30}, bad.Span)
	assert.ErrorAs(t, d.Err, new(parser.ErrUnexpected))
}

func TestIndex(t *testing.T) {
	t.Parallel()

	sheet, _ := css.Parse("a { color: red }\n@media print { b { margin: 0 } }")
	ix := css.NewIndex(sheet)

	node, ok := ix.At(0)
	require.True(t, ok)
	assert.IsType(t, css.Selector{}, node.Node)
	assert.Equal(t, source.Span{Start: 0, End: 1}, node.Span)

	node, ok = ix.At(2)
	require.True(t, ok)
	assert.IsType(t, css.StyleRule{}, node.Node)
	assert.Equal(t, source.Span{Start: 0, End: 16}, node.Span)

	node, ok = ix.At(12)
	require.True(t, ok)
	decl, ok := node.Node.(css.Declaration)
	require.True(t, ok)
	assert.Equal(t, "color", decl.Name.String())
	assert.Equal(t, source.Span{Start: 4, End: 14}, node.Span)

	node, ok = ix.At(25)
	require.True(t, ok)
	assert.IsType(t, media.Query{}, node.Node)

	node, ok = ix.At(44)
	require.True(t, ok)
	decl, ok = node.Node.(css.Declaration)
	require.True(t, ok)
	assert.Equal(t, "margin", decl.Name.String())

	node, ok = ix.At(31)
	require.True(t, ok)
	assert.IsType(t, css.MediaRule{}, node.Node)

	_, ok = ix.At(16)
	assert.False(t, ok)
}
