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

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maraisr/hdx/atom"
	"github.com/maraisr/hdx/lexer"
	"github.com/maraisr/hdx/token"
)

func TestCursor(t *testing.T) {
	t.Parallel()

	c := lexer.Lex("  screen /* c */ AND (grid)").Cursor()

	require.Equal(t, token.Ident, c.Current().Kind)
	assert.Equal(t, "screen", c.Current().Text())
	assert.Equal(t, 2, c.Position().Start)
	assert.True(t, c.PeekIs(token.Ident))
	assert.True(t, c.Peek().IsIdent(atom.New("and")))

	c.Advance()
	assert.Equal(t, "AND", c.Current().Text())
	assert.Equal(t, 8, c.LastEnd())
	assert.True(t, c.PeekIs(token.LeftParen))

	mark := c.Mark()
	c.Advance()
	c.Advance()
	assert.Equal(t, "grid", c.Current().Text())
	c.Rewind(mark)
	assert.Equal(t, "AND", c.Current().Text())
	assert.Equal(t, 8, c.LastEnd())

	for range 10 {
		c.Advance()
	}
	assert.True(t, c.Done())
	assert.Equal(t, token.EOF, c.Current().Kind)
	assert.Equal(t, token.EOF, c.Peek().Kind)
	assert.Equal(t, 27, c.LastEnd())
}

func TestCursorTrivia(t *testing.T) {
	t.Parallel()

	c := lexer.Lex(`@charset "utf-8";`).Cursor()
	c.AdvanceIncludingTrivia()
	assert.Equal(t, token.Whitespace, c.Current().Kind)
	assert.Equal(t, 8, c.LastEnd())

	c.AdvanceIncludingTrivia()
	assert.Equal(t, token.String, c.Current().Kind)
	assert.Equal(t, 8, c.LastEnd(), "trivia does not move LastEnd")

	c = lexer.Lex(`@charset  /**/"utf-8";`).Cursor()
	c.Advance()
	assert.Equal(t, token.String, c.Current().Kind)
	assert.Equal(t, 8, c.SpanFrom(0).End)
}

func TestStream(t *testing.T) {
	t.Parallel()

	empty := token.NewStream(nil)
	assert.Equal(t, 1, empty.Len())
	assert.Equal(t, token.EOF, empty.At(5).Kind)
	assert.True(t, empty.Cursor().Done())

	for kind := range token.Kinds() {
		assert.NotEqual(t, token.Invalid, kind)
		assert.NotEmpty(t, kind.String())
	}
	assert.Equal(t, "token.Kind(200)", token.Kind(200).GoString())
	assert.Equal(t, token.RightParen, token.Function.Closer())
}
