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
	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/source"
	"github.com/maraisr/hdx/token"
	"github.com/maraisr/hdx/writer"
)

// Raw is a run of tokens kept as written, for the parts of a stylesheet this
// package has no grammar for: selectors, custom property values, and the
// bodies of unknown at-rules.
//
// Comments are dropped, and each run of whitespace is a single
// [token.Whitespace] token. A Raw never starts or ends with whitespace.
type Raw []token.Token

// parseRaw consumes tokens up to, but not including, the first token outside
// of any block for which stop returns true. A closing bracket outside of any
// block always stops.
func parseRaw(p *parser.Parser, stop func(token.Token) bool) (Raw, error) {
	var (
		raw   Raw
		open  []token.Token
		space bool
	)
	for {
		tok := p.Current()
		switch tok.Kind {
		case token.Whitespace:
			space = len(raw) > 0
			p.AdvanceIncludingTrivia()
			continue
		case token.Comment:
			p.AdvanceIncludingTrivia()
			continue
		case token.EOF:
			if len(open) > 0 {
				last := open[len(open)-1]
				return nil, parser.ErrMismatch{Span: tok.Span, Open: last.Span, Want: last.Kind.Closer()}
			}
			return raw, nil
		}

		if len(open) == 0 && (stop(tok) || isCloser(tok.Kind)) {
			return raw, nil
		}
		switch {
		case tok.Kind.IsOpen():
			open = append(open, tok)
		case isCloser(tok.Kind):
			if last := open[len(open)-1]; last.Kind.Closer() != tok.Kind {
				return nil, parser.ErrMismatch{Span: tok.Span, Open: last.Span, Want: last.Kind.Closer()}
			}
			open = open[:len(open)-1]
		}

		if space {
			raw = append(raw, token.Token{Kind: token.Whitespace})
			space = false
		}
		raw = append(raw, tok)
		p.AdvanceIncludingTrivia()
	}
}

func isCloser(k token.Kind) bool {
	return k == token.RightParen || k == token.RightSquare || k == token.RightCurly
}

// Span returns the span of the text this run was parsed from.
func (r Raw) Span() source.Span {
	if len(r) == 0 {
		return source.Span{}
	}
	return r[0].Span.Cover(r[len(r)-1].Span)
}

// WriteCSS implements [writer.Writable].
//
// When minifying, whitespace inside brackets, after a colon, or next to a
// comma or semicolon is dropped. Any other whitespace is kept.
func (r Raw) WriteCSS(w writer.Writer) error {
	return r.write(w, false)
}

// Selector is the raw prelude of a style rule.
type Selector Raw

// WriteCSS implements [writer.Writable].
//
// Like [Raw.WriteCSS], but whitespace around combinators is dropped too.
func (s Selector) WriteCSS(w writer.Writer) error {
	return Raw(s).write(w, true)
}

func (r Raw) write(w writer.Writer, selector bool) error {
	var err error
	for i, tok := range r {
		if tok.Kind == token.Whitespace {
			if w.Options().Minify &&
				(dropsAfter(r[i-1], selector) || dropsBefore(r[i+1], selector)) {
				continue
			}
			err = w.WriteByte(' ')
			continue
		}

		// Tokens only ever touch like this if a comment was dropped from
		// between them.
		if i > 0 && r[i-1].Kind != token.Whitespace && merges(r[i-1], tok) {
			_ = w.WriteString("/**/")
		}
		err = w.WriteString(tok.Text())
	}
	return err
}

// dropsAfter returns whether whitespace after tok may be dropped.
func dropsAfter(tok token.Token, selector bool) bool {
	switch tok.Kind {
	case token.Comma, token.Semicolon, token.LeftParen, token.LeftSquare, token.LeftCurly, token.Function:
		return true
	case token.Colon:
		return !selector
	}
	return selector && isCombinator(tok)
}

// dropsBefore returns whether whitespace before tok may be dropped.
func dropsBefore(tok token.Token, selector bool) bool {
	switch tok.Kind {
	case token.Comma, token.Semicolon, token.RightParen, token.RightSquare, token.RightCurly:
		return true
	}
	return selector && isCombinator(tok)
}

func isCombinator(tok token.Token) bool {
	return tok.IsDelim('>') || tok.IsDelim('+') || tok.IsDelim('~')
}

// merges returns whether a and b would lex as a single token if written
// with nothing between them.
func merges(a, b token.Token) bool {
	at, bt := a.Text(), b.Text()
	if a.Span.End == b.Span.Start || at == "" || bt == "" {
		return false
	}
	return isNameByte(at[len(at)-1]) && (isNameByte(bt[0]) || bt[0] == '(')
}

func isNameByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '-' || c == '_' || c >= 0x80
}
