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
	"strings"

	"github.com/mazznoer/csscolorparser"

	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/token"
	"github.com/maraisr/hdx/writer"
)

// Color is a <color>.
//
// Colors other than the keywords carry their text as written (with
// whitespace normalized) and the shortest hex notation for the same color,
// which is written instead whenever it is shorter and long colors are not
// asked for.
type Color struct {
	Kind ColorKind
	Text string
	Hex  string
}

// ParseColor parses a keyword, named, hex or functional color.
func ParseColor(p *parser.Parser) (Color, error) {
	tok := p.Current()
	var text string
	switch tok.Kind {
	case token.Ident:
		if k, ok := colorKeywords.Resolve(tok.Keyword()); ok {
			p.Advance()
			return Color{Kind: k}, nil
		}
		text = tok.Keyword().String()
	case token.Hash:
		text = tok.Text()
	case token.Function:
		var err error
		if text, err = functionText(p); err != nil {
			return Color{}, err
		}
	default:
		return Color{}, p.Unexpected("a color")
	}

	c, err := csscolorparser.Parse(text)
	if err != nil {
		if tok.Kind == token.Ident {
			return Color{}, parser.ErrUnexpectedKeyword{Span: tok.Span, Got: tok.Text(), Want: "a color"}
		}
		span := tok.Span
		if tok.Kind == token.Function {
			span = p.SpanFrom(tok.Span.Start)
		}
		return Color{}, parser.ErrUnexpected{
			Span: span,
			Got:  "`" + text + "`",
			Want: []string{"a color"},
		}
	}
	if tok.Kind != token.Function {
		p.Advance()
	}
	return Color{Text: text, Hex: shortHex(c)}, nil
}

// WriteCSS implements [writer.Writable].
func (c Color) WriteCSS(w writer.Writer) error {
	switch {
	case c.Kind != ColorValue:
		return w.WriteString(c.Kind.String())
	case w.CanOutput(writer.LongColors):
		return w.WriteString(c.Text)
	case c.Hex != "" && len(c.Hex) < len(c.Text):
		return w.WriteString(c.Hex)
	default:
		return w.WriteString(strings.ToLower(c.Text))
	}
}

// shortHex returns the shortest hex notation of c: #rgb or #rgba when every
// channel is a repeated digit, #rrggbb or #rrggbbaa otherwise.
func shortHex(c csscolorparser.Color) string {
	hex := c.HexString()
	if len(hex) != 7 && len(hex) != 9 {
		return hex
	}
	short := []byte{'#'}
	for i := 1; i < len(hex); i += 2 {
		if hex[i] != hex[i+1] {
			return hex
		}
		short = append(short, hex[i])
	}
	return string(short)
}

// functionText consumes a function call and returns its text, with
// whitespace normalized to a single space between arguments.
func functionText(p *parser.Parser) (string, error) {
	open := p.Current()
	var out strings.Builder
	out.WriteString(strings.ToLower(open.Value.String()))
	out.WriteByte('(')
	p.Advance()

	prev := token.LeftParen
	for depth := 1; ; {
		tok := p.Current()
		switch tok.Kind {
		case token.EOF:
			return "", parser.ErrMismatch{Span: tok.Span, Open: open.Span, Want: token.RightParen}
		case token.LeftParen, token.Function:
			depth++
		case token.RightParen:
			depth--
		}
		p.Advance()
		if depth == 0 {
			out.WriteByte(')')
			return out.String(), nil
		}

		if prev != token.LeftParen && prev != token.Function &&
			tok.Kind != token.Comma && tok.Kind != token.RightParen {
			out.WriteByte(' ')
		}
		out.WriteString(tok.Text())
		prev = tok.Kind
	}
}
