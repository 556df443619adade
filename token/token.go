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

package token

import (
	"fmt"

	"github.com/maraisr/hdx/atom"
	"github.com/maraisr/hdx/source"
)

// Flags are extra bits of information about a numeric or hash token.
type Flags uint8

const (
	// Integer is set on numeric tokens whose text has no fraction or exponent.
	Integer Flags = 1 << iota
	// Signed is set on numeric tokens written with an explicit + or -.
	Signed
	// ID is set on hash tokens whose name would be a valid identifier.
	ID
)

// Token is a single CSS token.
//
// Tokens are plain values; two tokens with the same fields are the same
// token.
type Token struct {
	Kind  Kind
	Flags Flags

	// The decoded payload of the token: an identifier's or function's name
	// (escapes resolved), an at-keyword or hash's name, a string's contents,
	// a URL, a dimension's unit, or a delimiter's code point.
	Value atom.Atom

	// The exact source text of the token.
	Raw atom.Atom

	// The numeric value of a number, percentage or dimension token.
	Number float64

	Span source.Span
}

// IsTrivia returns whether this kind is skipped by [Cursor.Advance].
func (k Kind) IsTrivia() bool {
	return k == Whitespace || k == Comment
}

// IsOpen returns whether this kind opens a block.
func (k Kind) IsOpen() bool {
	return k == LeftParen || k == LeftSquare || k == LeftCurly || k == Function
}

// Closer returns the kind that closes a block opened by k, or [Invalid].
func (k Kind) Closer() Kind {
	switch k {
	case LeftParen, Function:
		return RightParen
	case LeftSquare:
		return RightSquare
	case LeftCurly:
		return RightCurly
	default:
		return Invalid
	}
}

// IsNumeric returns whether this token carries a [Token.Number].
func (t Token) IsNumeric() bool {
	return t.Kind == Number || t.Kind == Percentage || t.Kind == Dimension
}

// IsIdent returns whether this is an identifier that matches name, ignoring
// ASCII case. name must already be lowercase.
func (t Token) IsIdent(name atom.Atom) bool {
	return t.Kind == Ident && atom.Lower(t.Value) == name
}

// IsFunction is like [Token.IsIdent], but for function tokens.
func (t Token) IsFunction(name atom.Atom) bool {
	return t.Kind == Function && atom.Lower(t.Value) == name
}

// IsAtKeyword is like [Token.IsIdent], but for at-keyword tokens.
func (t Token) IsAtKeyword(name atom.Atom) bool {
	return t.Kind == AtKeyword && atom.Lower(t.Value) == name
}

// IsDelim returns whether this is a delimiter token for r.
func (t Token) IsDelim(r rune) bool {
	return t.Kind == Delim && t.Value.String() == string(r)
}

// Keyword returns the lowercased value of an identifier token, or the zero
// atom for any other kind.
func (t Token) Keyword() atom.Atom {
	if t.Kind != Ident {
		return 0
	}
	return atom.Lower(t.Value)
}

// Text returns the exact source text of this token.
func (t Token) Text() string {
	return t.Raw.String()
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	if t.Kind == EOF {
		return t.Kind.String()
	}
	return fmt.Sprintf("%v %q", t.Kind, t.Text())
}
