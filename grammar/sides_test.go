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

	"github.com/maraisr/hdx/grammar"
	"github.com/maraisr/hdx/lexer"
	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/token"
)

func parseRect(p *parser.Parser) (grammar.Rect[word], error) {
	return grammar.ParseRect(p, parseWord)
}

func TestRect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text  string
		sides [4]word
		want  string
	}{
		{"1px", [4]word{"1px", "1px", "1px", "1px"}, "1px"},
		{"1px 1px", [4]word{"1px", "1px", "1px", "1px"}, "1px"},
		{"1px 1px 1px 1px", [4]word{"1px", "1px", "1px", "1px"}, "1px"},
		{"1px 2px", [4]word{"1px", "2px", "1px", "2px"}, "1px 2px"},
		{"1px 2px 1px", [4]word{"1px", "2px", "1px", "2px"}, "1px 2px"},
		{"1px 2px 1px 2px", [4]word{"1px", "2px", "1px", "2px"}, "1px 2px"},
		{"1px 2px medium", [4]word{"1px", "2px", "medium", "2px"}, "1px 2px medium"},
		{"1px 2px medium 2px", [4]word{"1px", "2px", "medium", "2px"}, "1px 2px medium"},
		{"thick medium thick medium", [4]word{"thick", "medium", "thick", "medium"}, "thick medium"},
		{"thick medium thin 0", [4]word{"thick", "medium", "thin", "0"}, "thick medium thin 0"},
		{"1px 1px 1px 2px", [4]word{"1px", "1px", "1px", "2px"}, "1px 1px 1px 2px"},
	}
	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			rect, err := parser.Parse(test.text, parseRect)
			require.NoError(t, err)
			assert.Equal(t, test.sides, rect.Sides())
			roundTrip(t, rect, test.want, test.want)

			again, err := parser.Parse(test.want, parseRect)
			require.NoError(t, err)
			assert.Equal(t, rect, again)
		})
	}
}

func TestRectArity(t *testing.T) {
	t.Parallel()

	_, err := parser.Parse("1px 2px 3px 4px 5px", parseRect)
	assert.ErrorAs(t, err, new(parser.ErrUnexpected))

	_, err = parser.Parse("", parseRect)
	assert.ErrorAs(t, err, new(parser.ErrUnexpected))

	p := parser.New(lexer.Lex("1px 2px; 3px"))
	rect, err := parseRect(p)
	require.NoError(t, err)
	assert.Equal(t, grammar.Expand[word]("1px", "2px"), rect)
	assert.Equal(t, token.Semicolon, p.Current().Kind)

	assert.Panics(t, func() { grammar.Expand[word]() })
}

func TestLogicalSides(t *testing.T) {
	t.Parallel()

	parse := func(p *parser.Parser) (grammar.LogicalSides[word], error) {
		return grammar.ParseLogicalSides(p, parseWord)
	}

	tests := []struct {
		text  string
		sides grammar.LogicalSides[word]
		want  string
	}{
		{"thin", grammar.LogicalSides[word]{"thin", "thin"}, "thin"},
		{"thin thin", grammar.LogicalSides[word]{"thin", "thin"}, "thin"},
		{"thin 2px", grammar.LogicalSides[word]{"thin", "2px"}, "thin 2px"},
	}
	for _, test := range tests {
		sides, err := parser.Parse(test.text, parse)
		require.NoError(t, err, test.text)
		assert.Equal(t, test.sides, sides, test.text)
		roundTrip(t, sides, test.want, test.want)
	}

	_, err := parser.Parse("thin 2px thick", parse)
	assert.ErrorAs(t, err, new(parser.ErrUnexpected))
}
