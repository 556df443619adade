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

package parser_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maraisr/hdx/atom"
	"github.com/maraisr/hdx/keyword"
	"github.com/maraisr/hdx/lexer"
	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/report"
	"github.com/maraisr/hdx/source"
	"github.com/maraisr/hdx/token"
)

type scan int

const (
	interlace scan = iota
	progressive
)

func (s scan) String() string {
	return [...]string{"interlace", "progressive"}[s]
}

var scans = keyword.New(slices.Values([]scan{interlace, progressive}))

func parseScan(p *parser.Parser) (scan, error) {
	return parser.Keyword(p, scans, "a scan mode")
}

func TestKeyword(t *testing.T) {
	t.Parallel()

	v, err := parser.Parse("Progressive", parseScan)
	require.NoError(t, err)
	assert.Equal(t, progressive, v)

	_, err = parser.Parse("interlaced", parseScan)
	var kw parser.ErrUnexpectedKeyword
	require.ErrorAs(t, err, &kw)
	assert.Equal(t, "interlaced", kw.Got)
	assert.Equal(t, "interlace", kw.Suggestion)
	assert.Equal(t, source.Span{Start: 0, End: 10}, kw.Span)
	assert.Equal(t, "unexpected keyword `interlaced`, expected a scan mode", err.Error())

	_, err = parser.Parse("12px", parseScan)
	var unexpected parser.ErrUnexpected
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, "dimension `12px`", unexpected.Got)
	assert.Equal(t, []string{"a scan mode"}, unexpected.Want)
}

func TestTrailing(t *testing.T) {
	t.Parallel()

	_, err := parser.Parse("interlace  progressive", parseScan)
	var unexpected parser.ErrUnexpected
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, source.Span{Start: 11, End: 22}, unexpected.Span)
	assert.Equal(t, []string{"end of input"}, unexpected.Want)

	v, err := parser.Parse(" interlace /* done */ ", parseScan)
	require.NoError(t, err)
	assert.Equal(t, interlace, v)
}

func TestSpanned(t *testing.T) {
	t.Parallel()

	p := parser.New(lexer.Lex("  interlace progressive "))
	first, err := parser.Spanned(p, parseScan)
	require.NoError(t, err)
	second, err := parser.Spanned(p, parseScan)
	require.NoError(t, err)

	assert.Equal(t, source.Wrap(interlace, source.Span{Start: 2, End: 11}), first)
	assert.Equal(t, source.Wrap(progressive, source.Span{Start: 12, End: 23}), second)
	assert.True(t, p.Done())
}

func TestExpect(t *testing.T) {
	t.Parallel()

	p := parser.New(lexer.Lex("(scan: x"))
	open, err := p.Expect(token.LeftParen)
	require.NoError(t, err)
	require.NoError(t, p.ExpectIdent(atom.New("scan")))
	_, err = p.Expect(token.Colon)
	require.NoError(t, err)
	assert.False(t, p.AtValueEnd())

	err = p.ExpectIdent(atom.New("y"))
	assert.EqualError(t, err, "unexpected identifier `x`, expected `y`")

	p.Advance()
	assert.True(t, p.AtValueEnd())
	err = p.Close(open)
	var mismatch parser.ErrMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, token.RightParen, mismatch.Want)
	assert.Equal(t, source.Span{Start: 0, End: 1}, mismatch.Open)
}

func TestAtValueEnd(t *testing.T) {
	t.Parallel()

	for _, text := range []string{";", "}", ")", "]", ",", "!important", ""} {
		p := parser.New(lexer.Lex(text))
		assert.True(t, p.AtValueEnd(), "%q", text)
	}
	for _, text := range []string{"a", "1px", "(", "/"} {
		p := parser.New(lexer.Lex(text))
		assert.False(t, p.AtValueEnd(), "%q", text)
	}
}

func TestDiagnose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  report.Diagnose
		kind report.Kind
	}{
		{parser.ErrUnexpected{Got: "x"}, report.UnexpectedToken},
		{parser.ErrUnexpectedKeyword{Got: "x"}, report.UnexpectedKeyword},
		{parser.ErrDuplicate{Got: "x"}, report.UnexpectedDuplicate},
		{parser.ErrMalformedNumber{Got: "x"}, report.MalformedNumber},
		{parser.ErrMismatch{}, report.StructuralMismatch},
		{parser.ErrUnimplemented{What: "x"}, report.Unimplemented},
	}
	for _, test := range tests {
		t.Run(test.kind.String(), func(t *testing.T) {
			t.Parallel()

			var r report.Report
			d := r.Error(test.err)
			assert.Equal(t, test.kind, d.Kind)
			assert.Equal(t, report.Error, d.Level)
			assert.Equal(t, test.err, d.Err)
			assert.True(t, r.HasErrors())
		})
	}
}
