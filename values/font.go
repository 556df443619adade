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

package values

import (
	"strings"

	"github.com/maraisr/hdx/atom"
	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/source"
	"github.com/maraisr/hdx/token"
	"github.com/maraisr/hdx/writer"
)

// FamilyKind is the variant of a [SingleFontFamily].
type FamilyKind uint8

const (
	FamilyName FamilyKind = iota
	FamilyGeneric
	FamilySystem
)

// SingleFontFamily is one entry of a font-family list.
type SingleFontFamily struct {
	Kind    FamilyKind
	Name    string        // Set when Kind is FamilyName.
	Generic GenericFamily // Set when Kind is FamilyGeneric.
	System  SystemFamily  // Set when Kind is FamilySystem.
}

// FontFamily is a value of the font-family property.
type FontFamily []source.Spanned[SingleFontFamily]

var reservedFamily = atom.New("default")

// ParseFontFamily parses a comma-separated list of families.
func ParseFontFamily(p *parser.Parser) (FontFamily, error) {
	var list FontFamily
	for {
		family, err := parser.Spanned(p, ParseSingleFontFamily)
		if err != nil {
			return nil, err
		}
		list = append(list, family)
		if p.Current().Kind != token.Comma {
			return list, nil
		}
		p.Advance()
	}
}

// ParseSingleFontFamily parses a quoted family name, a sequence of
// identifiers naming a family, or a generic or system family keyword.
func ParseSingleFontFamily(p *parser.Parser) (SingleFontFamily, error) {
	tok := p.Current()
	switch tok.Kind {
	case token.String:
		p.Advance()
		return SingleFontFamily{Name: tok.Value.String()}, nil
	case token.Ident:
	default:
		return SingleFontFamily{}, p.Unexpected("a font family")
	}

	p.Advance()
	if p.Current().Kind != token.Ident {
		kw := tok.Keyword()
		if g, ok := genericFamilies.Resolve(kw); ok {
			return SingleFontFamily{Kind: FamilyGeneric, Generic: g}, nil
		}
		if s, ok := systemFamilies.Resolve(kw); ok {
			return SingleFontFamily{Kind: FamilySystem, System: s}, nil
		}
		if cssWide.Has(kw) || kw == reservedFamily {
			return SingleFontFamily{}, parser.ErrUnexpectedKeyword{
				Span: tok.Span,
				Got:  tok.Text(),
				Want: "a font family name",
			}
		}
		return SingleFontFamily{Name: tok.Value.String()}, nil
	}

	words := []string{tok.Value.String()}
	for p.Current().Kind == token.Ident {
		words = append(words, p.Current().Value.String())
		p.Advance()
	}
	return SingleFontFamily{Name: strings.Join(words, " ")}, nil
}

// WriteCSS implements [writer.Writable].
func (f SingleFontFamily) WriteCSS(w writer.Writer) error {
	switch f.Kind {
	case FamilyGeneric:
		return w.WriteString(f.Generic.String())
	case FamilySystem:
		return w.WriteString(f.System.String())
	}
	if w.CanOutput(writer.QuotedFamilyNames) || !bareFamilyName(f.Name) {
		return w.WriteString(writer.Quote(f.Name))
	}
	return w.WriteString(f.Name)
}

// WriteCSS implements [writer.Writable].
func (f FontFamily) WriteCSS(w writer.Writer) error {
	var err error
	for i, family := range f {
		if i > 0 {
			_ = w.WriteByte(',')
			_ = w.WriteWhitespace()
		}
		err = family.Node.WriteCSS(w)
	}
	return err
}

// bareFamilyName returns whether name can be written as a sequence of
// identifiers that parses back to the same family name.
func bareFamilyName(name string) bool {
	if name == "" {
		return false
	}
	for word := range strings.SplitSeq(name, " ") {
		if !isIdent(word) {
			return false
		}
		kw := atom.Lower(atom.New(word))
		if genericFamilies.Has(kw) || systemFamilies.Has(kw) || cssWide.Has(kw) || kw == reservedFamily {
			return false
		}
	}
	return true
}

// isIdent returns whether word lexes as a single identifier with no
// escapes.
func isIdent(word string) bool {
	if word == "" {
		return false
	}
	start := strings.TrimPrefix(word, "-")
	if start == "" || (start[0] != '-' && !isNameStart(start[0])) {
		return false
	}
	for i := range len(word) {
		if c := word[i]; !isNameStart(c) && !(c >= '0' && c <= '9') && c != '-' {
			return false
		}
	}
	return true
}

func isNameStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || c >= 0x80
}
