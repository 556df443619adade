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

package css

import (
	"github.com/maraisr/hdx/atom"
	"github.com/maraisr/hdx/css/media"
	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/source"
	"github.com/maraisr/hdx/token"
	"github.com/maraisr/hdx/writer"
)

var kwMedia = atom.New("media")

// Rule is a rule in a rule list: a [CharsetRule], [MediaRule], [StyleRule]
// or [UnknownRule].
type Rule interface {
	writer.Writable

	// Redundant returns whether removing this rule would not change the
	// meaning of the stylesheet, such as a rule with an empty body.
	Redundant() bool

	isRule()
}

// StyleRule is a selector and a block of declarations.
type StyleRule struct {
	Selector     Selector
	Declarations []source.Spanned[Declaration]
}

// parseStyleRule parses a style rule.
func parseStyleRule(p *parser.Parser) (StyleRule, error) {
	sel, err := parseRaw(p, func(tok token.Token) bool {
		return tok.Kind == token.LeftCurly || tok.Kind == token.Semicolon
	})
	if err != nil {
		return StyleRule{}, err
	}
	if len(sel) == 0 {
		return StyleRule{}, p.Unexpected("a selector")
	}

	open, err := p.Expect(token.LeftCurly)
	if err != nil {
		return StyleRule{}, err
	}
	r := StyleRule{
		Selector:     Selector(sel),
		Declarations: parseDeclarations(p),
	}
	closeBlock(p, open)
	return r, nil
}

// WriteCSS implements [writer.Writable].
func (r StyleRule) WriteCSS(w writer.Writer) error {
	if r.Redundant() && !w.CanOutput(writer.RedundantRules) {
		return nil
	}

	_ = r.Selector.WriteCSS(w)
	_ = w.WriteWhitespace()

	last := len(r.Declarations) - 1
	return writeBlock(w, len(r.Declarations), func(i int) error {
		err := r.Declarations[i].Node.WriteCSS(w)
		if i < last || w.CanOutput(writer.TrailingSemicolon) {
			err = w.WriteByte(';')
		}
		return err
	})
}

// Redundant implements [Rule].
func (r StyleRule) Redundant() bool { return len(r.Declarations) == 0 }

func (StyleRule) isRule() {}

// MediaRule is an @media rule.
type MediaRule struct {
	Queries media.QueryList
	Rules   []source.Spanned[Rule]
}

// ParseMediaRule parses an @media rule.
func ParseMediaRule(p *parser.Parser) (MediaRule, error) {
	if !p.Current().IsAtKeyword(kwMedia) {
		return MediaRule{}, p.Unexpected("`@media`")
	}
	p.Advance()

	queries, err := media.ParseQueryList(p)
	if err != nil {
		return MediaRule{}, err
	}
	open, err := p.Expect(token.LeftCurly)
	if err != nil {
		return MediaRule{}, err
	}
	r := MediaRule{
		Queries: queries,
		Rules:   parseRules(p, false),
	}
	closeBlock(p, open)
	return r, nil
}

// WriteCSS implements [writer.Writable].
func (r MediaRule) WriteCSS(w writer.Writer) error {
	if r.Redundant() && !w.CanOutput(writer.RedundantRules) {
		return nil
	}

	_ = w.WriteString("@media")
	_ = w.WriteWhitespace()
	_ = r.Queries.WriteCSS(w)
	_ = w.WriteWhitespace()

	rules := writtenRules(w, r.Rules)
	return writeBlock(w, len(rules), func(i int) error {
		return rules[i].WriteCSS(w)
	})
}

// Redundant implements [Rule].
func (r MediaRule) Redundant() bool {
	for _, rule := range r.Rules {
		if !rule.Node.Redundant() {
			return false
		}
	}
	return true
}

func (MediaRule) isRule() {}

// UnknownRule is an at-rule with no known grammar, kept as written.
type UnknownRule struct {
	Name    atom.Atom
	Prelude Raw

	// The contents of the rule's block. Nil if the rule ends in a
	// semicolon instead.
	Block Raw
}

// parseUnknownRule parses an unknown at-rule. It also returns an
// [ErrUnknownAtRule] for the caller to report.
func parseUnknownRule(p *parser.Parser) (UnknownRule, error) {
	tok := p.Current()
	if tok.Kind != token.AtKeyword {
		return UnknownRule{}, p.Unexpected("an at-rule")
	}
	p.Advance()

	r := UnknownRule{Name: tok.Value}
	var err error
	r.Prelude, err = parseRaw(p, func(tok token.Token) bool {
		return tok.Kind == token.LeftCurly || tok.Kind == token.Semicolon
	})
	if err != nil {
		return UnknownRule{}, err
	}

	switch open := p.Current(); open.Kind {
	case token.Semicolon:
		p.Advance()
	case token.LeftCurly:
		p.Advance()
		if r.Block, err = parseRaw(p, func(token.Token) bool { return false }); err != nil {
			return UnknownRule{}, err
		}
		if r.Block == nil {
			r.Block = Raw{}
		}
		closeBlock(p, open)
	default:
		return UnknownRule{}, p.Unexpected("`{`", "`;`")
	}
	return r, ErrUnknownAtRule{Span: tok.Span, Got: tok.Value.String()}
}

// WriteCSS implements [writer.Writable].
func (r UnknownRule) WriteCSS(w writer.Writer) error {
	_ = w.WriteByte('@')
	_ = w.WriteString(r.Name.String())
	if len(r.Prelude) > 0 {
		_ = w.WriteWhitespace()
		_ = r.Prelude.WriteCSS(w)
	}
	if r.Block == nil {
		return w.WriteByte(';')
	}

	_ = w.WriteWhitespace()
	_ = w.WriteByte('{')
	_ = w.WriteWhitespace()
	_ = r.Block.WriteCSS(w)
	_ = w.WriteWhitespace()
	return w.WriteByte('}')
}

// Redundant implements [Rule].
func (UnknownRule) Redundant() bool { return false }

func (UnknownRule) isRule() {}

// writtenRules returns the rules that w will write.
func writtenRules(w writer.Writer, rules []source.Spanned[Rule]) []Rule {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if w.CanOutput(writer.RedundantRules) || !r.Node.Redundant() {
			out = append(out, r.Node)
		}
	}
	return out
}

// writeBlock writes a curly-brace block of n items, one per line.
func writeBlock(w writer.Writer, n int, item func(i int) error) error {
	_ = w.WriteByte('{')
	_ = w.WriteNewline()
	w.Indent()
	for i := range n {
		if i > 0 {
			_ = w.WriteNewline()
		}
		_ = item(i)
	}
	w.Dedent()
	_ = w.WriteNewline()
	return w.WriteByte('}')
}
