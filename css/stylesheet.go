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
	"errors"

	"github.com/maraisr/hdx/lexer"
	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/report"
	"github.com/maraisr/hdx/source"
	"github.com/maraisr/hdx/token"
	"github.com/maraisr/hdx/writer"
)

// StyleSheet is a parsed stylesheet.
type StyleSheet struct {
	Rules []source.Spanned[Rule]
}

// Parse parses text as a stylesheet.
//
// Parsing never fails outright; whatever could not be parsed is described by
// the returned report.
func Parse(text string) (StyleSheet, report.Report) {
	p := parser.New(lexer.Lex(text))
	sheet := ParseStyleSheet(p)
	return sheet, p.Report
}

// ParseStyleSheet parses a rule list up to the end of input, recording any
// errors in p.Report.
func ParseStyleSheet(p *parser.Parser) StyleSheet {
	return StyleSheet{Rules: parseRules(p, true)}
}

// WriteCSS implements [writer.Writable].
func (s StyleSheet) WriteCSS(w writer.Writer) error {
	rules := writtenRules(w, s.Rules)
	var err error
	for i, r := range rules {
		if i > 0 {
			_ = w.WriteNewline()
		}
		err = r.WriteCSS(w)
	}
	if len(rules) > 0 {
		err = w.WriteNewline()
	}
	return err
}

// parseRules parses rules until the end of input or, unless top is set, a
// closing `}`.
func parseRules(p *parser.Parser, top bool) []source.Spanned[Rule] {
	var rules []source.Spanned[Rule]
	for {
		tok := p.Current()
		switch {
		case tok.Kind == token.EOF:
			return rules
		case tok.Kind == token.RightCurly && !top:
			return rules
		case tok.Kind == token.CDO || tok.Kind == token.CDC:
			if top {
				p.Advance()
				continue
			}
		case tok.Kind == token.RightCurly, tok.Kind == token.Semicolon:
			record(p, p.Unexpected("a rule"))
			p.Advance()
			continue
		}

		start := tok.Span.Start
		rule, err := parseRule(p)
		span := p.SpanFrom(start)

		var unknown ErrUnknownAtRule
		switch {
		case errors.As(err, &unknown):
			p.Report.Warn(unknown)
		case err != nil:
			record(p, err)
			skipRule(p)
			continue
		}

		// @charset is only meaningful as the very first bytes of a file.
		if _, ok := rule.(CharsetRule); ok && (!top || start != 0) {
			p.Report.Error(ErrMisplacedCharset{Span: span})
			continue
		}
		rules = append(rules, source.Wrap(rule, span))
	}
}

// parseRule parses a single rule, dispatching on its first token.
func parseRule(p *parser.Parser) (Rule, error) {
	tok := p.Current()
	switch {
	case tok.IsAtKeyword(kwCharset):
		return ParseCharsetRule(p)
	case tok.IsAtKeyword(kwMedia):
		return ParseMediaRule(p)
	case tok.Kind == token.AtKeyword:
		return parseUnknownRule(p)
	default:
		return parseStyleRule(p)
	}
}

// parseDeclarations parses the declarations of a block, up to but not
// including the closing `}`.
func parseDeclarations(p *parser.Parser) []source.Spanned[Declaration] {
	var decls []source.Spanned[Declaration]
	for {
		tok := p.Current()
		switch tok.Kind {
		case token.Semicolon:
			p.Advance()
			continue
		case token.RightCurly, token.EOF:
			return decls
		}

		start := tok.Span.Start
		d, err := ParseDeclaration(p)
		span := p.SpanFrom(start)

		var unknown ErrUnknownProperty
		switch {
		case errors.As(err, &unknown):
			p.Report.Warn(unknown)
		case err != nil:
			skipDeclaration(p)
			p.Report.Error(ErrBadDeclaration{Span: p.SpanFrom(start), Err: err})
			continue
		}
		decls = append(decls, source.Wrap(d, span))
	}
}

// closeBlock consumes the `}` that closes open. A block left open at the end
// of input is reported, and otherwise treated as closed; anything else in
// front of the `}` is reported and skipped.
func closeBlock(p *parser.Parser, open token.Token) {
	err := p.Close(open)
	if err == nil {
		return
	}
	record(p, err)

	depth := 0
	for !p.Done() {
		tok := p.Current()
		p.Advance()
		switch {
		case tok.Kind.IsOpen():
			depth++
		case depth > 0 && isCloser(tok.Kind):
			depth--
		case tok.Kind == token.RightCurly:
			return
		}
	}
}

// skipDeclaration skips to just after the next `;`, or to the `}` that ends
// the enclosing block.
func skipDeclaration(p *parser.Parser) {
	depth := 0
	for {
		tok := p.Current()
		switch {
		case tok.Kind == token.EOF:
			return
		case depth == 0 && tok.Kind == token.Semicolon:
			p.Advance()
			return
		case depth == 0 && tok.Kind == token.RightCurly:
			return
		case tok.Kind.IsOpen():
			depth++
		case isCloser(tok.Kind) && depth > 0:
			depth--
		}
		p.Advance()
	}
}

// skipRule skips the rest of a rule that failed to parse: up to and
// including the next `;` or block, or up to the `}` that ends the enclosing
// block.
func skipRule(p *parser.Parser) {
	depth := 0
	for {
		tok := p.Current()
		switch {
		case tok.Kind == token.EOF:
			return
		case depth == 0 && tok.Kind == token.Semicolon:
			p.Advance()
			return
		case depth == 0 && tok.Kind == token.RightCurly:
			return
		case tok.Kind.IsOpen():
			depth++
		case isCloser(tok.Kind) && depth > 0:
			depth--
			if depth == 0 && tok.Kind == token.RightCurly {
				p.Advance()
				return
			}
		}
		p.Advance()
	}
}

// record pushes err onto p's report as an error.
func record(p *parser.Parser, err error) {
	var d report.Diagnose
	if !errors.As(err, &d) {
		d = parser.ErrUnexpected{Span: p.Position(), Got: err.Error()}
	}
	p.Report.Error(d)
}
