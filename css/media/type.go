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

package media

import (
	"github.com/maraisr/hdx/atom"
	"github.com/maraisr/hdx/keyword"
	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/token"
	"github.com/maraisr/hdx/writer"
)

var (
	kwNot  = atom.New("not")
	kwOnly = atom.New("only")
	kwAnd  = atom.New("and")
	kwOr   = atom.New("or")

	types = keyword.New(TypeKinds())

	// Identifiers that can never name a media type.
	reservedTypes = atom.Set{
		kwNot:             {},
		kwOnly:            {},
		kwAnd:             {},
		kwOr:              {},
		atom.New("layer"): {},
	}
)

// Type is a media type, such as `screen`.
type Type struct {
	Kind TypeKind

	// The lowercased name of a [CustomType].
	Custom atom.Atom
}

// ParseType parses a media type.
func ParseType(p *parser.Parser) (Type, error) {
	tok := p.Current()
	if tok.Kind != token.Ident {
		return Type{}, p.Unexpected("a media type")
	}
	name := tok.Keyword()
	if reservedTypes.Has(name) {
		return Type{}, parser.ErrUnexpectedKeyword{
			Span: tok.Span,
			Got:  tok.Text(),
			Want: "a media type",
		}
	}
	p.Advance()

	if kind, ok := types.Resolve(name); ok {
		return Type{Kind: kind}, nil
	}
	return Type{Kind: CustomType, Custom: name}, nil
}

// String returns the canonical spelling of this type.
func (t Type) String() string {
	if t.Kind == CustomType {
		return t.Custom.String()
	}
	return t.Kind.String()
}

// WriteCSS implements [writer.Writable].
func (t Type) WriteCSS(w writer.Writer) error {
	return w.WriteString(t.String())
}
