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

package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maraisr/hdx/atom"
	"github.com/maraisr/hdx/grammar"
	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/source"
)

var scanName = atom.New("scan")

func parseScan(p *parser.Parser) (grammar.Discrete[scan], error) {
	return grammar.ParseDiscrete(p, scanName, scans)
}

func TestDiscrete(t *testing.T) {
	t.Parallel()

	d, err := parser.Parse("scan", parseScan)
	require.NoError(t, err)
	assert.Equal(t, grammar.Is[scan](scanName), d)
	roundTrip(t, d, "scan", "scan")

	d, err = parser.Parse("SCAN : Progressive", parseScan)
	require.NoError(t, err)
	assert.Equal(t, grammar.Equals(scanName, progressive), d)
	roundTrip(t, d, "scan:progressive", "scan:progressive")

	_, err = parser.Parse("scan:", parseScan)
	var unexpected parser.ErrUnexpected
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, "end of input", unexpected.Got)
	assert.Equal(t, []string{"a value for `scan`"}, unexpected.Want)

	_, err = parser.Parse("scan: interlaced", parseScan)
	var kw parser.ErrUnexpectedKeyword
	require.ErrorAs(t, err, &kw)
	assert.Equal(t, "interlace", kw.Suggestion)
	assert.Equal(t, source.Span{Start: 6, End: 16}, kw.Span)

	_, err = parser.Parse("scan: 1", parseScan)
	assert.ErrorAs(t, err, new(parser.ErrUnexpected))

	_, err = parser.Parse("grid", parseScan)
	assert.EqualError(t, err, "unexpected identifier `grid`, expected `scan`")
}

var width = atom.New("width")

func parseWidth(prefix grammar.Prefix) parser.Func[grammar.Range[word]] {
	return func(p *parser.Parser) (grammar.Range[word], error) {
		return grammar.ParseRange(p, width, prefix, parseWord)
	}
}

func TestRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text      string
		prefix    grammar.Prefix
		want      grammar.Range[word]
		canonical string
		minified  string
	}{
		{
			text:      "width",
			want:      grammar.Range[word]{Name: width},
			canonical: "width",
			minified:  "width",
		},
		{
			text:      "width : 600px",
			want:      grammar.Range[word]{Name: width, Op: grammar.Colon, Value: "600px"},
			canonical: "width:600px",
			minified:  "width:600px",
		},
		{
			text:      "min-width: 600px",
			prefix:    grammar.Min,
			want:      grammar.Range[word]{Name: width, Prefix: grammar.Min, Op: grammar.Colon, Value: "600px"},
			canonical: "min-width:600px",
			minified:  "min-width:600px",
		},
		{
			text:      "max-width:0",
			prefix:    grammar.Max,
			want:      grammar.Range[word]{Name: width, Prefix: grammar.Max, Op: grammar.Colon, Value: "0"},
			canonical: "max-width:0",
			minified:  "max-width:0",
		},
		{
			text:      "width>=600px",
			want:      grammar.Range[word]{Name: width, Op: grammar.GreaterEqual, Value: "600px"},
			canonical: "width >= 600px",
			minified:  "width>=600px",
		},
		{
			text:      "width <= 10em",
			want:      grammar.Range[word]{Name: width, Op: grammar.LessEqual, Value: "10em"},
			canonical: "width <= 10em",
			minified:  "width<=10em",
		},
		{
			text:      "width < 10em",
			want:      grammar.Range[word]{Name: width, Op: grammar.Less, Value: "10em"},
			canonical: "width < 10em",
			minified:  "width<10em",
		},
		{
			text:      "width = 1px",
			want:      grammar.Range[word]{Name: width, Op: grammar.Equal, Value: "1px"},
			canonical: "width = 1px",
			minified:  "width=1px",
		},
	}
	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			r, err := parser.Parse(test.text, parseWidth(test.prefix))
			require.NoError(t, err)
			assert.Equal(t, test.want, r)
			roundTrip(t, r, test.canonical, test.minified)
		})
	}
}

func TestRangeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text   string
		prefix grammar.Prefix
		err    string
	}{
		{"min-width", grammar.Min, "unexpected end of input, expected `:`"},
		{"min-width > 1px", grammar.Min, "unexpected `>`, expected `:`"},
		{"max-width <= 1px", grammar.Max, "unexpected `<=`, expected `:`"},
		{"width > = 1px", grammar.NoPrefix, "unexpected delimiter `=`, expected a word"},
		{"width:", grammar.NoPrefix, "unexpected end of input, expected a word"},
		{"1px", grammar.NoPrefix, "unexpected dimension `1px`, expected `width`"},
	}
	for _, test := range tests {
		_, err := parser.Parse(test.text, parseWidth(test.prefix))
		assert.EqualError(t, err, test.err, test.text)
	}
}
