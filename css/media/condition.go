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

package media

import (
	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/source"
	"github.com/maraisr/hdx/writer"
)

// Condition is a media condition: one or more features combined by a single
// operator.
//
// Features has exactly one element for [Is] and [Not], and at least one for
// [And] and [Or].
type Condition struct {
	Kind     ConditionKind
	Features []source.Spanned[Feature]
}

// ParseCondition parses a condition that does not follow a media type:
// `not (a)`, `(a)`, `(a) and (b) ...` or `(a) or (b) ...`.
func ParseCondition(p *parser.Parser) (Condition, error) {
	if p.Current().IsIdent(kwNot) {
		p.Advance()
		f, err := parser.Spanned(p, ParseFeature)
		if err != nil {
			return Condition{}, err
		}
		return Condition{Kind: Not, Features: []source.Spanned[Feature]{f}}, nil
	}

	first, err := parser.Spanned(p, ParseFeature)
	if err != nil {
		return Condition{}, err
	}
	c := Condition{Kind: Is, Features: []source.Spanned[Feature]{first}}
	switch {
	case p.Current().IsIdent(kwAnd):
		c.Kind = And
	case p.Current().IsIdent(kwOr):
		c.Kind = Or
	default:
		return c, nil
	}
	return c, parseList(p, &c)
}

// parseTypedCondition parses the condition after a media type, which must be
// an `and` list.
func parseTypedCondition(p *parser.Parser) (Condition, error) {
	c := Condition{Kind: And}
	if !p.Current().IsIdent(kwAnd) {
		return c, p.Unexpected("`and`")
	}
	return c, parseList(p, &c)
}

// parseList appends `<op> <feature>` pairs to c while the current token is
// the operator of c.
func parseList(p *parser.Parser, c *Condition) error {
	op, other := kwAnd, kwOr
	if c.Kind == Or {
		op, other = other, op
	}

	for p.Current().IsIdent(op) {
		p.Advance()
		f, err := parser.Spanned(p, ParseFeature)
		if err != nil {
			return err
		}
		c.Features = append(c.Features, f)
	}

	if tok := p.Current(); tok.IsIdent(other) {
		return parser.ErrUnexpectedKeyword{
			Span: tok.Span,
			Got:  tok.Text(),
			Want: "`" + op.String() + "`",
		}
	}
	return nil
}

// WriteCSS implements [writer.Writable].
func (c Condition) WriteCSS(w writer.Writer) error {
	if c.Kind == Not {
		_ = w.WriteString(Not.String())
		_ = w.WriteWhitespace()
	}

	var err error
	for i, f := range c.Features {
		if i > 0 {
			_ = w.WriteWhitespace()
			_ = w.WriteString(c.Kind.String())
			_ = w.WriteWhitespace()
		}
		err = f.Node.WriteCSS(w)
	}
	return err
}
