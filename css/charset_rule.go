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
	"github.com/maraisr/hdx/keyword"
	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/token"
	"github.com/maraisr/hdx/writer"
)

var (
	kwCharset = atom.New("charset")

	charsets = keyword.New(Charsets())
)

// CharsetRule is an `@charset "name";` rule.
type CharsetRule struct {
	Charset Charset
}

// ParseCharsetRule parses an @charset rule.
//
// Unlike most of CSS, the whitespace after the at-keyword is required.
func ParseCharsetRule(p *parser.Parser) (CharsetRule, error) {
	if !p.Current().IsAtKeyword(kwCharset) {
		return CharsetRule{}, p.Unexpected("`@charset`")
	}
	p.AdvanceIncludingTrivia()
	if p.Current().Kind != token.Whitespace {
		return CharsetRule{}, p.Unexpected(token.Whitespace.String())
	}
	p.Advance()

	tok := p.Current()
	if tok.Kind != token.String {
		return CharsetRule{}, p.Unexpected("a charset name")
	}
	name := tok.Value.String()
	c, ok := charsets.Lookup(name)
	if !ok {
		return CharsetRule{}, parser.ErrUnexpectedKeyword{
			Span:       tok.Span,
			Got:        name,
			Want:       "a charset name",
			Suggestion: charsets.Suggest(name),
		}
	}
	p.Advance()

	if _, err := p.Expect(token.Semicolon); err != nil {
		return CharsetRule{}, err
	}
	return CharsetRule{Charset: c}, nil
}

// WriteCSS implements [writer.Writable].
func (r CharsetRule) WriteCSS(w writer.Writer) error {
	_ = w.WriteString(`@charset "`)
	_ = w.WriteString(r.Charset.String())
	return w.WriteString(`";`)
}

// Redundant implements [Rule].
func (CharsetRule) Redundant() bool { return false }

func (CharsetRule) isRule() {}
