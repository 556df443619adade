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

// Package lexer turns stylesheet text into a [token.Stream], following the
// tokenization rules of CSS Syntax Level 3.
//
// Lexing never fails: malformed input produces [token.BadString],
// [token.BadURL] or [token.Delim] tokens, and it is up to the grammar to
// reject them. Offsets in token spans always refer to the original text,
// without the newline normalization CSS describes.
package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/maraisr/hdx/atom"
	"github.com/maraisr/hdx/source"
	"github.com/maraisr/hdx/token"
)

// Lex tokenizes text.
func Lex(text string) *token.Stream {
	l := &lexer{text: text}
	for !l.Done() {
		l.next()
	}
	l.tokens = append(l.tokens, token.Token{
		Kind: token.EOF,
		Span: source.Span{Start: len(text), End: len(text)},
	})
	return token.NewStream(l.tokens)
}

// lexer is the state of a single call to [Lex].
type lexer struct {
	text   string
	cursor int
	tokens []token.Token
}

// Done returns whether or not we're done lexing runes.
func (l *lexer) Done() bool {
	return l.cursor >= len(l.text)
}

// Rest returns unlexed text.
func (l *lexer) Rest() string {
	return l.text[l.cursor:]
}

// Peek peeks the next character.
//
// Returns -1 if l.Done().
func (l *lexer) Peek() rune {
	return l.PeekAt(0)
}

// PeekAt peeks n characters past the next one.
//
// Returns -1 past the end of the text.
func (l *lexer) PeekAt(n int) rune {
	rest := l.Rest()
	for {
		if rest == "" {
			return -1
		}
		r, size := utf8.DecodeRuneInString(rest)
		if n == 0 {
			return r
		}
		rest = rest[size:]
		n--
	}
}

// Pop consumes the next character.
//
// Returns -1 if l.Done().
func (l *lexer) Pop() rune {
	if l.Done() {
		return -1
	}
	r, size := utf8.DecodeRuneInString(l.Rest())
	l.cursor += size
	return r
}

// TakeWhile consumes the characters while they match the given function.
// Returns consumed characters.
func (l *lexer) TakeWhile(f func(rune) bool) string {
	start := l.cursor
	for !l.Done() && f(l.Peek()) {
		l.Pop()
	}
	return l.text[start:l.cursor]
}

// Push mints a token covering the text from start to the cursor.
func (l *lexer) Push(start int, kind token.Kind, value string) *token.Token {
	l.tokens = append(l.tokens, token.Token{
		Kind:  kind,
		Value: atom.New(value),
		Raw:   atom.New(l.text[start:l.cursor]),
		Span:  source.Span{Start: start, End: l.cursor},
	})
	return &l.tokens[len(l.tokens)-1]
}

// next lexes a single token.
func (l *lexer) next() {
	start := l.cursor
	r := l.Pop()

	switch {
	case isWhitespace(r):
		l.TakeWhile(isWhitespace)
		l.Push(start, token.Whitespace, "")

	case r == '/' && l.Peek() == '*':
		l.Pop()
		if end := strings.Index(l.Rest(), "*/"); end >= 0 {
			l.cursor += end + len("*/")
		} else {
			l.cursor = len(l.text)
		}
		l.Push(start, token.Comment, "")

	case r == '"' || r == '\'':
		l.lexString(start, r)

	case r == '#':
		if isName(l.Peek()) || isEscape(l.Peek(), l.PeekAt(1)) {
			id := startsIdent(l.Peek(), l.PeekAt(1), l.PeekAt(2))
			tok := l.Push(start, token.Hash, l.name())
			if id {
				tok.Flags |= token.ID
			}
		} else {
			l.Push(start, token.Delim, "#")
		}

	case r == '+' || r == '.':
		if startsNumber(r, l.Peek(), l.PeekAt(1)) {
			l.cursor = start
			l.lexNumeric(start)
		} else {
			l.Push(start, token.Delim, string(r))
		}

	case r == '-':
		switch {
		case startsNumber(r, l.Peek(), l.PeekAt(1)):
			l.cursor = start
			l.lexNumeric(start)
		case l.Peek() == '-' && l.PeekAt(1) == '>':
			l.cursor += len("->")
			l.Push(start, token.CDC, "")
		case startsIdent(r, l.Peek(), l.PeekAt(1)):
			l.cursor = start
			l.lexIdentLike(start)
		default:
			l.Push(start, token.Delim, "-")
		}

	case r == '<' && strings.HasPrefix(l.Rest(), "!--"):
		l.cursor += len("!--")
		l.Push(start, token.CDO, "")

	case r == '@':
		if startsIdent(l.Peek(), l.PeekAt(1), l.PeekAt(2)) {
			name := l.name()
			l.Push(start, token.AtKeyword, name)
		} else {
			l.Push(start, token.Delim, "@")
		}

	case r == '\\':
		if isEscape(r, l.Peek()) {
			l.cursor = start
			l.lexIdentLike(start)
		} else {
			l.Push(start, token.Delim, "\\")
		}

	case isDigit(r):
		l.cursor = start
		l.lexNumeric(start)

	case isNameStart(r):
		l.cursor = start
		l.lexIdentLike(start)

	default:
		if kind, ok := punct[r]; ok {
			l.Push(start, kind, "")
			break
		}
		l.Push(start, token.Delim, string(r))
	}
}

var punct = map[rune]token.Kind{
	':': token.Colon,
	';': token.Semicolon,
	',': token.Comma,
	'(': token.LeftParen,
	')': token.RightParen,
	'[': token.LeftSquare,
	']': token.RightSquare,
	'{': token.LeftCurly,
	'}': token.RightCurly,
}

// lexIdentLike lexes an identifier, function or url token.
func (l *lexer) lexIdentLike(start int) {
	name := l.name()
	if l.Peek() != '(' {
		l.Push(start, token.Ident, name)
		return
	}
	l.Pop()

	if !strings.EqualFold(name, "url") {
		l.Push(start, token.Function, name)
		return
	}

	// A quoted url is an ordinary function; the whitespace before the string
	// is left for the next token.
	rest := strings.TrimLeft(l.Rest(), " \t\n\r\f")
	if rest != "" && (rest[0] == '"' || rest[0] == '\'') {
		l.Push(start, token.Function, name)
		return
	}
	l.lexURL(start)
}

// lexURL lexes the remainder of an unquoted url token, after `url(`.
func (l *lexer) lexURL(start int) {
	l.TakeWhile(isWhitespace)

	var value strings.Builder
	for {
		r := l.Pop()
		switch {
		case r == -1 || r == ')':
			l.Push(start, token.URL, value.String())
			return

		case isWhitespace(r):
			l.TakeWhile(isWhitespace)
			if l.Peek() == ')' || l.Peek() == -1 {
				l.Pop()
				l.Push(start, token.URL, value.String())
				return
			}
			l.badURL(start)
			return

		case r == '"' || r == '\'' || r == '(' || isNonPrintable(r):
			l.badURL(start)
			return

		case r == '\\':
			if !isEscape(r, l.Peek()) {
				l.badURL(start)
				return
			}
			value.WriteRune(l.escape())

		default:
			value.WriteRune(r)
		}
	}
}

// badURL consumes the remnants of a bad url.
func (l *lexer) badURL(start int) {
	for {
		r := l.Pop()
		if r == -1 || r == ')' {
			break
		}
		if isEscape(r, l.Peek()) {
			l.escape()
		}
	}
	l.Push(start, token.BadURL, "")
}

// lexString lexes a string token whose opening quote has been consumed.
func (l *lexer) lexString(start int, quote rune) {
	var value strings.Builder
	for {
		r := l.Peek()
		switch {
		case r == -1:
			l.Push(start, token.String, value.String())
			return

		case r == quote:
			l.Pop()
			l.Push(start, token.String, value.String())
			return

		case isNewline(r):
			// The newline is not part of the bad string.
			l.Push(start, token.BadString, value.String())
			return

		case r == '\\':
			l.Pop()
			switch next := l.Peek(); {
			case next == -1:
			case isNewline(next):
				l.popNewline()
			default:
				value.WriteRune(l.escape())
			}

		default:
			value.WriteRune(l.Pop())
		}
	}
}

// lexNumeric lexes a number, percentage or dimension.
func (l *lexer) lexNumeric(start int) {
	integer := true
	if r := l.Peek(); r == '+' || r == '-' {
		l.Pop()
	}
	l.TakeWhile(isDigit)
	if l.Peek() == '.' && isDigit(l.PeekAt(1)) {
		integer = false
		l.Pop()
		l.TakeWhile(isDigit)
	}
	if r := l.Peek(); r == 'e' || r == 'E' {
		next := l.PeekAt(1)
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(l.PeekAt(2))) {
			integer = false
			l.Pop()
			l.Pop()
			l.TakeWhile(isDigit)
		}
	}

	repr := l.text[start:l.cursor]
	value, _ := strconv.ParseFloat(repr, 64)

	var flags token.Flags
	if integer {
		flags |= token.Integer
	}
	if repr[0] == '+' || repr[0] == '-' {
		flags |= token.Signed
	}

	var tok *token.Token
	switch {
	case startsIdent(l.Peek(), l.PeekAt(1), l.PeekAt(2)):
		unit := l.name()
		tok = l.Push(start, token.Dimension, unit)
	case l.Peek() == '%':
		l.Pop()
		tok = l.Push(start, token.Percentage, "")
	default:
		tok = l.Push(start, token.Number, "")
	}
	tok.Number = value
	tok.Flags = flags
}

// name consumes a CSS name, decoding any escapes in it.
func (l *lexer) name() string {
	start := l.cursor
	var out *strings.Builder
	for {
		r := l.Peek()
		switch {
		case isName(r):
			l.Pop()
			if out != nil {
				out.WriteRune(r)
			}
		case isEscape(r, l.PeekAt(1)):
			if out == nil {
				out = new(strings.Builder)
				out.WriteString(l.text[start:l.cursor])
			}
			l.Pop()
			out.WriteRune(l.escape())
		default:
			if out == nil {
				return l.text[start:l.cursor]
			}
			return out.String()
		}
	}
}

// escape consumes an escape sequence after its backslash, returning the code
// point it denotes.
func (l *lexer) escape() rune {
	r := l.Pop()
	if r == -1 {
		return utf8.RuneError
	}
	if !isHex(r) {
		return r
	}

	digits := string(r)
	for len(digits) < 6 && isHex(l.Peek()) {
		digits += string(l.Pop())
	}
	if isWhitespace(l.Peek()) {
		l.popNewline()
	}

	v, _ := strconv.ParseUint(digits, 16, 32)
	if v == 0 || v > utf8.MaxRune || (v >= 0xd800 && v <= 0xdfff) {
		return utf8.RuneError
	}
	return rune(v)
}

// popNewline consumes one whitespace character, treating \r\n as a single
// newline.
func (l *lexer) popNewline() {
	if l.Pop() == '\r' && l.Peek() == '\n' {
		l.Pop()
	}
}
