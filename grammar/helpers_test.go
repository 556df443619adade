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

package grammar_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maraisr/hdx/keyword"
	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/token"
	"github.com/maraisr/hdx/writer"
)

// word is a value that writes back exactly what it was parsed from.
type word string

func (v word) WriteCSS(w writer.Writer) error {
	return w.WriteString(string(v))
}

func parseWord(p *parser.Parser) (word, error) {
	tok := p.Current()
	if tok.Kind != token.Ident && !tok.IsNumeric() {
		return "", p.Unexpected("a word")
	}
	p.Advance()
	return word(tok.Text()), nil
}

type scan uint8

const (
	interlace scan = iota
	progressive
)

func (s scan) String() string {
	return [...]string{"interlace", "progressive"}[s]
}

type trim uint8

const (
	block trim = iota
	inline
	blockStart
	blockEnd
	inlineStart
	inlineEnd
)

func (t trim) String() string {
	return [...]string{"block", "inline", "block-start", "block-end", "inline-start", "inline-end"}[t]
}

var (
	scans = keyword.New(slices.Values([]scan{interlace, progressive}))
	trims = keyword.New(slices.Values([]trim{block, inline, blockStart, blockEnd, inlineStart, inlineEnd}))
)

func roundTrip(t *testing.T, node writer.Writable, canonical, minified string) {
	t.Helper()
	assert.Equal(t, canonical, writer.CanonicalString(node), "canonical")
	assert.Equal(t, minified, writer.MinifiedString(node), "minified")
}
