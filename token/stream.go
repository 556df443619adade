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

import "github.com/maraisr/hdx/source"

// Stream is a finite sequence of tokens terminated by [EOF].
//
// Streams are immutable once constructed and may be shared between any
// number of cursors.
type Stream struct {
	tokens []Token
}

// NewStream builds a stream out of tokens.
//
// If tokens does not already end in an [EOF] token, one is appended, spanning
// the empty range just after the last token.
func NewStream(tokens []Token) *Stream {
	if n := len(tokens); n == 0 || tokens[n-1].Kind != EOF {
		var end int
		if n > 0 {
			end = tokens[n-1].Span.End
		}
		tokens = append(tokens[:n:n], Token{
			Kind: EOF,
			Span: source.Span{Start: end, End: end},
		})
	}
	return &Stream{tokens: tokens}
}

// Len returns the number of tokens in this stream, including the trailing
// EOF.
func (s *Stream) Len() int {
	return len(s.tokens)
}

// At returns the token at index i. Indices past the end yield the EOF token.
func (s *Stream) At(i int) Token {
	if i >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}
	return s.tokens[i]
}

// All returns every token in the stream, including the trailing EOF.
//
// The returned slice must not be modified.
func (s *Stream) All() []Token {
	return s.tokens
}

// EOF returns the stream's final token.
func (s *Stream) EOF() Token {
	return s.tokens[len(s.tokens)-1]
}

// Cursor returns a new cursor positioned on the first significant token of
// this stream.
func (s *Stream) Cursor() *Cursor {
	return NewCursor(s)
}
