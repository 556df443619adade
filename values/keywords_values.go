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
	"errors"

	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/token"
	"github.com/maraisr/hdx/writer"
)

// LineWidth is a <line-width>: a non-negative length, or one of thin, medium
// and thick.
type LineWidth struct {
	Kind   LineWidthKind
	Length Length // Set when Kind is LineWidthLength.
}

// ParseLineWidth parses a <line-width>.
func ParseLineWidth(p *parser.Parser) (LineWidth, error) {
	if p.Current().Kind == token.Ident {
		k, err := parser.Keyword(p, lineWidths, "a line width")
		return LineWidth{Kind: k}, err
	}
	l, err := nonNegative(ParseLength)(p)
	if errors.As(err, new(parser.ErrUnexpected)) {
		return LineWidth{}, p.Unexpected("a line width")
	}
	return LineWidth{Length: l}, err
}

// WriteCSS implements [writer.Writable].
func (l LineWidth) WriteCSS(w writer.Writer) error {
	if l.Kind == LineWidthLength {
		return l.Length.WriteCSS(w)
	}
	return w.WriteString(l.Kind.String())
}

// ParseLineStyle parses a <line-style>.
func ParseLineStyle(p *parser.Parser) (LineStyle, error) {
	return parser.Keyword(p, lineStyles, "a line style")
}

// WriteCSS implements [writer.Writable].
func (s LineStyle) WriteCSS(w writer.Writer) error {
	return w.WriteString(s.String())
}

// ParseVisibility parses a value of the visibility property.
func ParseVisibility(p *parser.Parser) (Visibility, error) {
	return parser.Keyword(p, visibilities, "a visibility")
}

// WriteCSS implements [writer.Writable].
func (v Visibility) WriteCSS(w writer.Writer) error {
	return w.WriteString(v.String())
}

// ParseCSSWide parses a CSS-wide keyword.
func ParseCSSWide(p *parser.Parser) (CSSWide, error) {
	return parser.Keyword(p, cssWide, "a CSS-wide keyword")
}

// WriteCSS implements [writer.Writable].
func (k CSSWide) WriteCSS(w writer.Writer) error {
	return w.WriteString(k.String())
}

// Zoom is a value of the non-standard zoom property.
type Zoom struct {
	Kind  ZoomKind
	Value float64 // Set when Kind is ZoomNumber or ZoomPercentage.
}

// ParseZoom parses normal, reset, or a non-negative number or percentage.
func ParseZoom(p *parser.Parser) (Zoom, error) {
	tok := p.Current()
	switch tok.Kind {
	case token.Ident:
		k, err := parser.Keyword(p, zooms, "a zoom")
		return Zoom{Kind: k}, err
	case token.Number, token.Percentage:
		if tok.Number < 0 {
			return Zoom{}, negative(tok)
		}
		p.Advance()
		if tok.Kind == token.Number {
			return Zoom{Kind: ZoomNumber, Value: tok.Number}, nil
		}
		return Zoom{Kind: ZoomPercentage, Value: tok.Number}, nil
	}
	return Zoom{}, p.Unexpected("a zoom")
}

// WriteCSS implements [writer.Writable].
func (z Zoom) WriteCSS(w writer.Writer) error {
	switch z.Kind {
	case ZoomNumber:
		return writeNumber(w, z.Value)
	case ZoomPercentage:
		_ = writeNumber(w, z.Value)
		return w.WriteByte('%')
	default:
		return w.WriteString(z.Kind.String())
	}
}
