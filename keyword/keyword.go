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

// Package keyword maps closed sets of CSS keywords to Go enums and back.
//
// Keyword sets are generated enums (see internal/enum) whose String method
// returns each value's canonical, lowercase spelling. [New] indexes such an
// enum by the interned atoms of those spellings, so that resolving a keyword
// is a single map lookup on an integer key.
package keyword

import (
	"fmt"
	"iter"
	"slices"

	"github.com/maraisr/hdx/atom"
)

// Table is a bidirectional mapping between keyword atoms and the values of
// an enum.
//
// Tables are built once, usually in a package-level var, and are read-only
// afterwards; they are safe for concurrent use.
type Table[V comparable] struct {
	forward  atom.Map[V]
	backward map[V]atom.Atom
	values   []V
}

// New builds a table out of every value yielded by values, keyed by their
// String method.
//
// Panics if two values share a spelling, or if a spelling is not lowercase.
func New[V interface {
	comparable
	fmt.Stringer
}](values iter.Seq[V]) *Table[V] {
	t := &Table[V]{
		forward:  make(atom.Map[V]),
		backward: make(map[V]atom.Atom),
	}
	for v := range values {
		text := v.String()
		if fold(text) != text {
			panic(fmt.Sprintf("hdx/keyword: keyword %q is not lowercase", text))
		}
		a := atom.New(text)
		if prev, ok := t.forward.Add(a, v); !ok {
			panic(fmt.Sprintf("hdx/keyword: %q names both %v and %v", text, prev, v))
		}
		t.backward[v] = a
		t.values = append(t.values, v)
	}
	return t
}

// Resolve returns the value named by a.
//
// a must already be lowercase; callers fold explicitly with [atom.Lower].
func (t *Table[V]) Resolve(a atom.Atom) (V, bool) {
	v, ok := t.forward[a]
	return v, ok
}

// Unresolve returns the canonical spelling of v.
//
// Returns the zero atom if v is not in this table.
func (t *Table[V]) Unresolve(v V) atom.Atom {
	return t.backward[v]
}

// Lookup resolves text, ignoring ASCII case.
func (t *Table[V]) Lookup(text string) (V, bool) {
	return t.forward.Get(fold(text))
}

// Has returns whether a names a value in this table.
func (t *Table[V]) Has(a atom.Atom) bool {
	_, ok := t.forward[a]
	return ok
}

// Len returns the number of keywords in this table.
func (t *Table[V]) Len() int {
	return len(t.values)
}

// All returns an iterator over the values of this table, in enum order.
func (t *Table[V]) All() iter.Seq[V] {
	return slices.Values(t.values)
}

// Spellings returns the canonical spellings of this table, in enum order.
func (t *Table[V]) Spellings() []string {
	out := make([]string, len(t.values))
	for i, v := range t.values {
		out[i] = t.backward[v].String()
	}
	return out
}

// Suggest returns the spelling in this table closest to text, for "did you
// mean" hints. Returns "" if nothing is within an edit distance of two.
func (t *Table[V]) Suggest(text string) string {
	text = fold(text)
	best, bestDist := "", maxSuggestDistance+1
	for _, v := range t.values {
		spelling := t.backward[v].String()
		if d := distance(text, spelling); d < bestDist {
			best, bestDist = spelling, d
		}
	}
	return best
}

// fold returns the ASCII-lowercased text. CSS keywords are matched ASCII
// case-insensitively, so non-ASCII runes are left alone.
func fold(text string) string {
	for i := range len(text) {
		if c := text[i]; c >= 'A' && c <= 'Z' {
			buf := []byte(text)
			for j := i; j < len(buf); j++ {
				if c := buf[j]; c >= 'A' && c <= 'Z' {
					buf[j] = c + ('a' - 'A')
				}
			}
			return string(buf)
		}
	}
	return text
}
