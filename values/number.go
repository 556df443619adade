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

package values

import (
	"math"
	"strconv"
	"strings"

	"github.com/maraisr/hdx/atom"
	"github.com/maraisr/hdx/keyword"
	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/token"
	"github.com/maraisr/hdx/writer"
)

// Integer is an <integer>.
type Integer int32

// ParseInteger parses a number token without a fraction or exponent.
func ParseInteger(p *parser.Parser) (Integer, error) {
	tok := p.Current()
	if tok.Kind != token.Number {
		return 0, p.Unexpected("an integer")
	}
	if tok.Flags&token.Integer == 0 {
		return 0, parser.ErrMalformedNumber{Span: tok.Span, Got: tok.Text(), Reason: "must be an integer"}
	}
	if tok.Number > math.MaxInt32 || tok.Number < math.MinInt32 {
		return 0, parser.ErrMalformedNumber{Span: tok.Span, Got: tok.Text(), Reason: "out of range"}
	}
	p.Advance()
	return Integer(tok.Number), nil
}

// ParseNonNegativeInteger is like [ParseInteger], but rejects negative
// integers.
func ParseNonNegativeInteger(p *parser.Parser) (Integer, error) {
	tok := p.Current()
	n, err := ParseInteger(p)
	if err == nil && n < 0 {
		return 0, negative(tok)
	}
	return n, err
}

// WriteCSS implements [writer.Writable].
func (n Integer) WriteCSS(w writer.Writer) error {
	return w.WriteString(strconv.FormatInt(int64(n), 10))
}

// Number is a <number>.
type Number float64

// ParseNumber parses a number token.
func ParseNumber(p *parser.Parser) (Number, error) {
	tok := p.Current()
	if tok.Kind != token.Number {
		return 0, p.Unexpected("a number")
	}
	p.Advance()
	return Number(tok.Number), nil
}

// WriteCSS implements [writer.Writable].
func (n Number) WriteCSS(w writer.Writer) error {
	return writeNumber(w, float64(n))
}

// formatNumber formats v in the shortest decimal form that parses back to v,
// dropping the leading zero of a fraction if asked to.
func formatNumber(v float64, leadingZero bool) string {
	text := strconv.FormatFloat(v, 'f', -1, 64)
	if !leadingZero {
		if rest, ok := strings.CutPrefix(text, "0."); ok {
			return "." + rest
		}
		if rest, ok := strings.CutPrefix(text, "-0."); ok {
			return "-." + rest
		}
	}
	return text
}

func writeNumber(w writer.Writer, v float64) error {
	return w.WriteString(formatNumber(v, w.CanOutput(writer.LeadingZero)))
}

func negative(tok token.Token) error {
	return parser.ErrMalformedNumber{Span: tok.Span, Got: tok.Text(), Reason: "must not be negative"}
}

// parseUnit resolves the unit of a dimension token.
func parseUnit[U comparable](tok token.Token, units *keyword.Table[U], what string) (U, error) {
	unit, ok := units.Resolve(atom.Lower(tok.Value))
	if !ok {
		var z U
		return z, parser.ErrUnexpectedKeyword{
			Span:       tok.Span,
			Got:        tok.Value.String(),
			Want:       what,
			Suggestion: units.Suggest(tok.Value.String()),
		}
	}
	return unit, nil
}
