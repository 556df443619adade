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

// Package parser provides the recursive descent machinery shared by every
// CSS grammar: a [Parser] over a [token.Cursor], keyword matching against
// [keyword.Table]s, and the typed errors grammars fail with.
//
// Grammars in this module fail atomically: a parse function either returns a
// complete node or an error describing the first token it could not accept.
// Recovering from errors is the business of the stylesheet grammar, which
// discards whole declarations and rules.
package parser

import (
	"github.com/maraisr/hdx/atom"
	"github.com/maraisr/hdx/keyword"
	"github.com/maraisr/hdx/lexer"
	"github.com/maraisr/hdx/report"
	"github.com/maraisr/hdx/source"
	"github.com/maraisr/hdx/token"
)

// Parser is the state of a single parse.
type Parser struct {
	*token.Cursor

	// Diagnostics that do not abort the parse, such as warnings and errors
	// the stylesheet grammar recovered from.
	Report report.Report
}

// New returns a parser over stream.
func New(stream *token.Stream) *Parser {
	return &Parser{Cursor: stream.Cursor()}
}

// Func is a grammar production.
type Func[T any] func(*Parser) (T, error)

// Parse lexes text and parses all of it with f.
//
// Any tokens left over after f returns are an error.
func Parse[T any](text string, f Func[T]) (T, error) {
	p := New(lexer.Lex(text))
	v, err := f(p)
	if err == nil && !p.Done() {
		err = p.Unexpected("end of input")
	}
	if err != nil {
		var z T
		return z, err
	}
	return v, nil
}

// Spanned runs f and pairs its result with the span of the tokens it
// consumed.
func Spanned[T any](p *Parser, f Func[T]) (source.Spanned[T], error) {
	start := p.Position().Start
	v, err := f(p)
	if err != nil {
		return source.Spanned[T]{}, err
	}
	return source.Wrap(v, p.SpanFrom(start)), nil
}

// Expect consumes the current token if it has the given kind, and returns it.
func (p *Parser) Expect(kind token.Kind) (token.Token, error) {
	tok := p.Current()
	if tok.Kind != kind {
		return tok, p.Unexpected(kind.String())
	}
	p.Advance()
	return tok, nil
}

// ExpectIdent consumes the current token if it is the identifier name,
// ignoring ASCII case.
func (p *Parser) ExpectIdent(name atom.Atom) error {
	if !p.Current().IsIdent(name) {
		return p.Unexpected("`" + name.String() + "`")
	}
	p.Advance()
	return nil
}

// Close consumes the token that closes the block opened at open.
func (p *Parser) Close(open token.Token) error {
	closer := open.Kind.Closer()
	if p.Current().Kind != closer {
		if p.Current().Kind == token.EOF {
			return ErrMismatch{Span: p.Position(), Open: open.Span, Want: closer}
		}
		return p.Unexpected(closer.String())
	}
	p.Advance()
	return nil
}

// AtValueEnd returns whether the current token ends a value: a declaration
// terminator, a closing bracket, a comma, `!important`, or the end of input.
func (p *Parser) AtValueEnd() bool {
	tok := p.Current()
	switch tok.Kind {
	case token.EOF, token.Semicolon, token.Comma,
		token.RightParen, token.RightSquare, token.RightCurly:
		return true
	default:
		return tok.IsDelim('!')
	}
}

// Unexpected returns an [ErrUnexpected] for the current token.
func (p *Parser) Unexpected(want ...string) error {
	tok := p.Current()
	return ErrUnexpected{Span: tok.Span, Got: describe(tok), Want: want}
}

// Keyword resolves the current identifier against table and consumes it.
//
// what describes the set of keywords in error messages, e.g. "a media type".
func Keyword[V comparable](p *Parser, table *keyword.Table[V], what string) (V, error) {
	tok := p.Current()
	if tok.Kind != token.Ident {
		var z V
		return z, p.Unexpected(what)
	}
	v, ok := table.Resolve(tok.Keyword())
	if !ok {
		var z V
		return z, ErrUnexpectedKeyword{
			Span:       tok.Span,
			Got:        tok.Text(),
			Want:       what,
			Suggestion: table.Suggest(tok.Value.String()),
		}
	}
	p.Advance()
	return v, nil
}

// describe renders a token for use in an error.
func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return tok.Kind.String()
	case token.Ident, token.Number, token.Dimension, token.Percentage,
		token.Hash, token.String, token.Delim, token.AtKeyword, token.Function:
		return tok.Kind.String() + " `" + tok.Text() + "`"
	default:
		return tok.Kind.String()
	}
}
