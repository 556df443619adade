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
	"github.com/maraisr/hdx/atom"
	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/token"
	"github.com/maraisr/hdx/writer"
)

// MaxSize is a value of max-width, max-height and their logical
// equivalents.
type MaxSize struct {
	Kind  MaxSizeKind
	Value LengthPercentage // Set when Kind is MaxSizeLength or FitContentFunction.
}

var fitContent = atom.New("fit-content")

// ParseMaxSize parses a keyword, a non-negative length or percentage, or
// fit-content() around one.
func ParseMaxSize(p *parser.Parser) (MaxSize, error) {
	tok := p.Current()
	switch {
	case tok.Kind == token.Ident:
		k, err := parser.Keyword(p, maxSizes, "a maximum size")
		return MaxSize{Kind: k}, err

	case tok.IsFunction(fitContent):
		p.Advance()
		v, err := nonNegative(ParseLengthPercentage)(p)
		if err != nil {
			return MaxSize{}, err
		}
		if err := p.Close(tok); err != nil {
			return MaxSize{}, err
		}
		return MaxSize{Kind: FitContentFunction, Value: v}, nil

	case tok.Kind == token.Number, tok.Kind == token.Dimension, tok.Kind == token.Percentage:
		v, err := nonNegative(ParseLengthPercentage)(p)
		return MaxSize{Kind: MaxSizeLength, Value: v}, err
	}
	return MaxSize{}, p.Unexpected("a maximum size")
}

// WriteCSS implements [writer.Writable].
func (m MaxSize) WriteCSS(w writer.Writer) error {
	switch m.Kind {
	case MaxSizeLength:
		return m.Value.WriteCSS(w)
	case FitContentFunction:
		_ = w.WriteString(fitContent.String())
		_ = w.WriteByte('(')
		_ = m.Value.WriteCSS(w)
		return w.WriteByte(')')
	default:
		return w.WriteString(m.Kind.String())
	}
}
