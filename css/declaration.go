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
	"strings"

	"github.com/maraisr/hdx/atom"
	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/token"
	"github.com/maraisr/hdx/values"
	"github.com/maraisr/hdx/writer"
)

var kwImportant = atom.New("important")

// Declaration is a `name: value` pair in a style rule.
type Declaration struct {
	// The property name, lowercased unless this is a custom property.
	Name atom.Atom

	// Whether Name is a property with a known grammar. If so, Property is
	// that property and Value is the node its grammar produced; otherwise
	// Value is a [Raw].
	Known    bool
	Property values.Property

	Value     writer.Writable
	Important bool
}

// IsCustom returns whether this declares a custom property, such as --gap.
func (d Declaration) IsCustom() bool {
	return strings.HasPrefix(d.Name.String(), "--")
}

// ParseDeclaration parses a declaration, stopping before the `;` or `}` that
// ends it.
//
// A property with no known grammar is kept as a [Raw] value, but it is also
// returned with an [ErrUnknownProperty] for the caller to report.
func ParseDeclaration(p *parser.Parser) (Declaration, error) {
	tok := p.Current()
	if tok.Kind != token.Ident {
		return Declaration{}, p.Unexpected("a property name")
	}
	p.Advance()
	if _, err := p.Expect(token.Colon); err != nil {
		return Declaration{}, err
	}

	d := Declaration{Name: tok.Value}
	if !d.IsCustom() {
		d.Name = atom.Lower(tok.Value)
		d.Property, d.Known = values.LookupProperty(d.Name.String())
	}

	var unknown error
	if d.Known {
		v, err := values.ParseValue(p, d.Property)
		if err != nil {
			return Declaration{}, err
		}
		d.Value = v
		if d.Important, err = parseImportant(p); err != nil {
			return Declaration{}, err
		}
	} else {
		if !d.IsCustom() {
			unknown = ErrUnknownProperty{
				Span:       tok.Span,
				Got:        tok.Text(),
				Suggestion: values.SuggestProperty(d.Name.String()),
			}
		}
		raw, err := parseRaw(p, func(tok token.Token) bool { return tok.Kind == token.Semicolon })
		if err != nil {
			return Declaration{}, err
		}
		raw, d.Important = trimImportant(raw)
		d.Value = raw
	}

	if tok := p.Current(); tok.Kind != token.Semicolon && tok.Kind != token.RightCurly && tok.Kind != token.EOF {
		return Declaration{}, p.Unexpected("`;`")
	}
	return d, unknown
}

// parseImportant parses an optional `!important`.
func parseImportant(p *parser.Parser) (bool, error) {
	if !p.Current().IsDelim('!') {
		return false, nil
	}
	p.Advance()
	return true, p.ExpectIdent(kwImportant)
}

// trimImportant removes a trailing `!important` from a raw value.
func trimImportant(raw Raw) (Raw, bool) {
	n := len(raw)
	if n < 2 || !raw[n-1].IsIdent(kwImportant) || !raw[n-2].IsDelim('!') {
		return raw, false
	}
	raw = raw[:n-2]
	if n := len(raw); n > 0 && raw[n-1].Kind == token.Whitespace {
		raw = raw[:n-1]
	}
	return raw, true
}

// WriteCSS implements [writer.Writable].
func (d Declaration) WriteCSS(w writer.Writer) error {
	_ = w.WriteString(d.Name.String())
	_ = w.WriteByte(':')
	_ = w.WriteWhitespace()
	err := d.Value.WriteCSS(w)
	if d.Important {
		_ = w.WriteWhitespace()
		err = w.WriteString("!important")
	}
	return err
}
