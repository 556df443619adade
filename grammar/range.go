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

package grammar

import (
	"github.com/maraisr/hdx/atom"
	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/token"
	"github.com/maraisr/hdx/writer"
)

// Range is a media feature compared against a value of type V, as in
// `(width)`, `(min-width: 600px)` or `(width >= 600px)`.
//
// Value is meaningless when Op is [Bare]. A Prefix is only ever paired with
// [Colon].
type Range[V writer.Writable] struct {
	Name   atom.Atom
	Prefix Prefix
	Op     Op
	Value  V
}

// ParseRange parses a range feature, starting at its (possibly prefixed)
// name and stopping before the closing parenthesis. The caller has already
// matched the name against name and prefix.
func ParseRange[V writer.Writable](p *parser.Parser, name atom.Atom, prefix Prefix, value parser.Func[V]) (Range[V], error) {
	r := Range[V]{Name: name, Prefix: prefix}
	if p.Current().Kind != token.Ident {
		return r, p.Unexpected("`" + prefix.String() + name.String() + "`")
	}
	p.Advance()

	op, ok := parseOp(p)
	switch {
	case !ok && prefix != NoPrefix:
		return r, p.Unexpected("`:`")
	case !ok:
		return r, nil
	case op != Colon && prefix != NoPrefix:
		// Comparisons cannot be combined with min- and max-.
		return r, parser.ErrUnexpected{
			Span: p.SpanFrom(p.LastEnd() - len(op.String())),
			Got:  "`" + op.String() + "`",
			Want: []string{"`:`"},
		}
	}

	v, err := value(p)
	if err != nil {
		return r, err
	}
	r.Op, r.Value = op, v
	return r, nil
}

// parseOp consumes a `:` or a comparison operator, if there is one.
func parseOp(p *parser.Parser) (Op, bool) {
	tok := p.Current()
	var op Op
	switch {
	case tok.Kind == token.Colon:
		op = Colon
	case tok.IsDelim('<'):
		op = Less
	case tok.IsDelim('>'):
		op = Greater
	case tok.IsDelim('='):
		op = Equal
	default:
		return Bare, false
	}
	p.Advance()

	// <= and >= are two delimiter tokens with nothing between them.
	if next := p.Current(); (op == Less || op == Greater) &&
		next.IsDelim('=') && next.Span.Start == tok.Span.End {
		if op == Less {
			op = LessEqual
		} else {
			op = GreaterEqual
		}
		p.Advance()
	}
	return op, true
}

// WriteCSS implements [writer.Writable].
func (r Range[V]) WriteCSS(w writer.Writer) error {
	_ = w.WriteString(r.Prefix.String())
	err := w.WriteString(r.Name.String())
	switch r.Op {
	case Bare:
		return err
	case Colon:
		_ = w.WriteByte(':')
	default:
		_ = w.WriteWhitespace()
		_ = w.WriteString(r.Op.String())
		_ = w.WriteWhitespace()
	}
	return r.Value.WriteCSS(w)
}
