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

// Cursor walks a [Stream] with one token of lookahead.
//
// A cursor never fails: when it runs off the end of its stream it keeps
// returning the EOF token, and it is up to callers to compare [Cursor.Current]
// against what their grammar expects.
type Cursor struct {
	stream *Stream
	// idx is the index of the current token. It only ever refers to a trivia
	// token after a call to AdvanceIncludingTrivia.
	idx int
	// lastEnd is the end offset of the most recently consumed significant
	// token.
	lastEnd int
}

// CursorMark is the return value of [Cursor.Mark], which marks a position on
// a Cursor for rewinding to.
type CursorMark struct {
	// This contains exactly the values needed to rewind the cursor.
	owner        *Cursor
	idx, lastEnd int
}

// NewCursor returns a new cursor over stream, skipping any leading trivia.
func NewCursor(stream *Stream) *Cursor {
	c := &Cursor{stream: stream}
	c.lastEnd = stream.At(0).Span.Start
	c.skipTrivia()
	return c
}

// Current returns the token under the cursor.
func (c *Cursor) Current() Token {
	return c.stream.At(c.idx)
}

// Position returns the span of the token under the cursor.
func (c *Cursor) Position() source.Span {
	return c.Current().Span
}

// Done returns whether the cursor has reached the end of its stream.
func (c *Cursor) Done() bool {
	return c.Current().Kind == EOF
}

// LastEnd returns the end offset of the last significant token consumed.
//
// Parsers close the span of a node with this, so that trailing trivia is never
// part of a span.
func (c *Cursor) LastEnd() int {
	return c.lastEnd
}

// SpanFrom returns the span from start to [Cursor.LastEnd].
func (c *Cursor) SpanFrom(start int) source.Span {
	return source.Span{Start: start, End: max(start, c.lastEnd)}
}

// Advance consumes the current token, and then any trivia after it.
func (c *Cursor) Advance() {
	c.AdvanceIncludingTrivia()
	c.skipTrivia()
}

// AdvanceIncludingTrivia consumes exactly one token, leaving the cursor on the
// token right after it even if that token is trivia.
//
// This is used by the few productions where whitespace is significant.
func (c *Cursor) AdvanceIncludingTrivia() {
	tok := c.Current()
	if tok.Kind == EOF {
		return
	}
	if !tok.Kind.IsTrivia() {
		c.lastEnd = tok.Span.End
	}
	c.idx++
}

// Peek returns the significant token after the current one, without moving
// the cursor.
func (c *Cursor) Peek() Token {
	i := c.idx
	if c.stream.At(i).Kind != EOF {
		i++
	}
	for c.stream.At(i).Kind.IsTrivia() {
		i++
	}
	return c.stream.At(i)
}

// PeekIs returns whether the token after the current one has the given kind.
func (c *Cursor) PeekIs(kind Kind) bool {
	return c.Peek().Kind == kind
}

// Mark makes a mark on this cursor to indicate a place that can be rewound
// to.
func (c *Cursor) Mark() CursorMark {
	return CursorMark{
		owner:   c,
		idx:     c.idx,
		lastEnd: c.lastEnd,
	}
}

// Rewind moves this cursor back to the position described by mark.
//
// Panics if mark was not created using this cursor's Mark method.
func (c *Cursor) Rewind(mark CursorMark) {
	if c != mark.owner {
		panic("hdx/token: rewound cursor using the wrong cursor's mark")
	}
	c.idx = mark.idx
	c.lastEnd = mark.lastEnd
}

func (c *Cursor) skipTrivia() {
	for c.Current().Kind.IsTrivia() {
		c.idx++
	}
}
