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

package grammar

import (
	"math/bits"

	"github.com/maraisr/hdx/keyword"
	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/source"
	"github.com/maraisr/hdx/token"
	"github.com/maraisr/hdx/writer"
)

// Flags is a set of up to eight keywords of a [FlagSet].
type Flags uint8

// Bit returns the flag for the keyword k.
func Bit[K ~uint8](k K) Flags {
	return 1 << k
}

// Has returns whether f contains every flag in g.
func (f Flags) Has(g Flags) bool { return f&g == g }

// Intersects returns whether f and g have any flag in common.
func (f Flags) Intersects(g Flags) bool { return f&g != 0 }

// IsEmpty returns whether no flags are set.
func (f Flags) IsEmpty() bool { return f == 0 }

// Len returns the number of flags set.
func (f Flags) Len() int { return bits.OnesCount8(uint8(f)) }

// FlagSet is the grammar of a space-separated list of keywords, each of
// which may appear at most once, such as margin-trim's
// `block-start || inline-start || block-end || inline-end`.
//
// Coarse keywords stand alone: they may not be combined with any other
// keyword. Once the keywords parsed so far are terminal (a coarse keyword,
// or every keyword in Full) nothing may follow them.
type FlagSet[K interface {
	~uint8
	Keyword
}] struct {
	Keywords *keyword.Table[K]
	Full     Flags
	Coarse   Flags

	// Describes the keywords in errors, e.g. "a margin-trim keyword".
	What string
}

// IsAll returns whether f is the complete set of fine flags.
func (s *FlagSet[K]) IsAll(f Flags) bool {
	return f.Has(s.Full)
}

// IsTerminal returns whether no keyword may follow the flags f.
func (s *FlagSet[K]) IsTerminal(f Flags) bool {
	return f.Intersects(s.Coarse) || s.IsAll(f)
}

// Parse parses at least one keyword.
func (s *FlagSet[K]) Parse(p *parser.Parser) (Flags, error) {
	var (
		flags Flags
		first [8]source.Span
	)
	for flags.IsEmpty() || p.Current().Kind == token.Ident {
		if s.IsTerminal(flags) {
			return 0, p.Unexpected("end of value")
		}

		tok := p.Current()
		k, err := parser.Keyword(p, s.Keywords, s.What)
		if err != nil {
			return 0, err
		}
		bit := Bit(k)
		switch {
		case flags.Has(bit):
			return 0, parser.ErrDuplicate{Span: tok.Span, First: first[k], Got: tok.Text()}
		case bit.Intersects(s.Coarse) && !flags.IsEmpty():
			return 0, parser.ErrUnexpectedKeyword{
				Span: tok.Span,
				Got:  tok.Text(),
				Want: "a keyword that combines with " + s.Write(flags).String(),
			}
		}
		flags |= bit
		first[k] = tok.Span
	}
	return flags, nil
}

// Write returns a node that writes f.
func (s *FlagSet[K]) Write(f Flags) FlagsNode[K] {
	return FlagsNode[K]{s, f}
}

// FlagsNode writes a set of flags in the order of their enum, separated by
// spaces. The empty set writes nothing.
type FlagsNode[K interface {
	~uint8
	Keyword
}] struct {
	set   *FlagSet[K]
	flags Flags
}

// WriteCSS implements [writer.Writable].
func (n FlagsNode[K]) WriteCSS(w writer.Writer) error {
	var err error
	sep := false
	for k := range n.set.Keywords.All() {
		if !n.flags.Has(Bit(k)) {
			continue
		}
		if sep {
			_ = w.WriteWhitespace()
		}
		err = w.WriteString(k.String())
		sep = true
	}
	return err
}

// String returns the canonical text of the flags.
func (n FlagsNode[K]) String() string {
	return writer.CanonicalString(n)
}
