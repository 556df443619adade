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

package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maraisr/hdx/lexer"
	"github.com/maraisr/hdx/token"
)

type tok struct {
	kind  token.Kind
	raw   string
	value string
}

func TestLex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, text string
		want       []tok
	}{
		{
			name: "media prelude",
			text: "screen and (min-width: 10px)",
			want: []tok{
				{token.Ident, "screen", "screen"},
				{token.Whitespace, " ", ""},
				{token.Ident, "and", "and"},
				{token.Whitespace, " ", ""},
				{token.LeftParen, "(", ""},
				{token.Ident, "min-width", "min-width"},
				{token.Colon, ":", ""},
				{token.Whitespace, " ", ""},
				{token.Dimension, "10px", "px"},
				{token.RightParen, ")", ""},
			},
		},
		{
			name: "charset",
			text: `@charset "UTF-8";`,
			want: []tok{
				{token.AtKeyword, "@charset", "charset"},
				{token.Whitespace, " ", ""},
				{token.String, `"UTF-8"`, "UTF-8"},
				{token.Semicolon, ";", ""},
			},
		},
		{
			name: "numbers",
			text: "-1.5e2 +3 .5% 0",
			want: []tok{
				{token.Number, "-1.5e2", ""},
				{token.Whitespace, " ", ""},
				{token.Number, "+3", ""},
				{token.Whitespace, " ", ""},
				{token.Percentage, ".5%", ""},
				{token.Whitespace, " ", ""},
				{token.Number, "0", ""},
			},
		},
		{
			name: "hashes and delims",
			text: "#fff #1a > *",
			want: []tok{
				{token.Hash, "#fff", "fff"},
				{token.Whitespace, " ", ""},
				{token.Hash, "#1a", "1a"},
				{token.Whitespace, " ", ""},
				{token.Delim, ">", ">"},
				{token.Whitespace, " ", ""},
				{token.Delim, "*", "*"},
			},
		},
		{
			name: "comments and cdo",
			text: "<!--/* hi */-->",
			want: []tok{
				{token.CDO, "<!--", ""},
				{token.Comment, "/* hi */", ""},
				{token.CDC, "-->", ""},
			},
		},
		{
			name: "urls",
			text: `url( a.png ) url("b.png") url(c d)`,
			want: []tok{
				{token.URL, "url( a.png )", "a.png"},
				{token.Whitespace, " ", ""},
				{token.Function, "url(", "url"},
				{token.String, `"b.png"`, "b.png"},
				{token.RightParen, ")", ""},
				{token.Whitespace, " ", ""},
				{token.BadURL, "url(c d)", ""},
			},
		},
		{
			name: "escapes",
			text: `\66 oo -\2d x "a\"b"`,
			want: []tok{
				{token.Ident, `\66 oo`, "foo"},
				{token.Whitespace, " ", ""},
				{token.Ident, `-\2d x`, "--x"},
				{token.Whitespace, " ", ""},
				{token.String, `"a\"b"`, `a"b`},
			},
		},
		{
			name: "bad string",
			text: "'abc\nd",
			want: []tok{
				{token.BadString, "'abc", "abc"},
				{token.Whitespace, "\n", ""},
				{token.Ident, "d", "d"},
			},
		},
		{
			name: "custom property",
			text: "--brand-color:#333",
			want: []tok{
				{token.Ident, "--brand-color", "--brand-color"},
				{token.Colon, ":", ""},
				{token.Hash, "#333", "333"},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			stream := lexer.Lex(test.text)
			var got []tok
			for _, tt := range stream.All() {
				if tt.Kind == token.EOF {
					continue
				}
				got = append(got, tok{tt.Kind, tt.Text(), tt.Value.String()})
			}
			assert.Equal(t, test.want, got)

			eof := stream.EOF()
			assert.Equal(t, token.EOF, eof.Kind)
			assert.Equal(t, len(test.text), eof.Span.Start)
		})
	}
}

func TestNumbers(t *testing.T) {
	t.Parallel()

	stream := lexer.Lex("-1.5e2 +3 12px 50%")
	all := stream.All()

	assert.InDelta(t, -150.0, all[0].Number, 1e-9)
	assert.Equal(t, token.Signed, all[0].Flags)
	assert.InDelta(t, 3.0, all[2].Number, 1e-9)
	assert.Equal(t, token.Signed|token.Integer, all[2].Flags)
	assert.InDelta(t, 12.0, all[4].Number, 1e-9)
	assert.Equal(t, token.Integer, all[4].Flags)
	assert.InDelta(t, 50.0, all[6].Number, 1e-9)
}

func TestSpans(t *testing.T) {
	t.Parallel()

	text := "a { color : red }"
	for _, tt := range lexer.Lex(text).All() {
		assert.Equal(t, tt.Text(), text[tt.Span.Start:tt.Span.End])
	}
}
