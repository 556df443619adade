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

// Package atom provides interned string handles for identifiers and keywords.
//
// An [Atom] can be compared with ==, which is the whole point: keyword
// matching throughout the parser is an integer comparison, never a scan over
// string contents.
package atom

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unsafe"
)

// Atom is an interned string.
//
// Atoms produced by the package-level functions all come from a single shared
// table, so they may be compared across parses. The zero value of Atom always
// corresponds to the empty string.
//
// # Representation
//
// If the high bit is cleared, then this is an index into the stored strings
// inside of the [Table] that created it.
//
// Otherwise, it is up to ten characters drawn from a variant of the
// [LLVM char6 encoding], represented in-line using the bits of the Atom. Most
// CSS units and short keywords ("px", "none", "screen") never touch the table.
//
// [LLVM char6 encoding]: https://llvm.org/docs/BitCodeFormat.html#bit-characters
type Atom int64

// shared is the table behind [New] and [Atom.String].
var shared Table

// New interns s into the shared table.
func New(s string) Atom {
	return shared.Intern(s)
}

// Query returns the atom for s if it has already been interned.
func Query(s string) (Atom, bool) {
	return shared.Query(s)
}

// Lower returns the atom for the ASCII-lowercased spelling of a.
//
// CSS keywords match ASCII case-insensitively; callers fold explicitly with
// this function before comparing against a keyword table.
func Lower(a Atom) Atom {
	s := a.String()
	for i := range len(s) {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			return New(strings.ToLower(s))
		}
	}
	return a
}

// String returns the text of this atom.
func (a Atom) String() string {
	return shared.Value(a)
}

// GoString implements [fmt.GoStringer].
func (a Atom) GoString() string {
	return fmt.Sprintf("atom.Atom(%q)", a.String())
}

// IsZero returns whether this is the empty atom.
func (a Atom) IsZero() bool {
	return a == 0
}

// Table is an interning table.
//
// A table can be used to convert strings into [Atom]s and back again.
//
// The zero value of Table is empty and ready to use.
type Table struct {
	mu    sync.RWMutex
	index map[string]Atom
	table []string
}

// Intern interns the given string into this table.
//
// This function may be called by multiple goroutines concurrently.
func (t *Table) Intern(s string) Atom {
	// Fast path for strings that have already been interned. In the common case
	// all keywords are interned, so we can take a read lock to avoid needing
	// to trap to the scheduler on concurrent access.
	if a, ok := t.Query(s); ok {
		return a
	}

	return t.internSlow(s)
}

// Query will query whether s has already been interned.
//
// If s is small enough to be inlined in an Atom, it is treated as always being
// interned.
func (t *Table) Query(s string) (Atom, bool) {
	if char6, ok := encodeChar6(s); ok {
		// This also handles s == "".
		return char6, true
	}

	t.mu.RLock()
	a, ok := t.index[s]
	t.mu.RUnlock()

	return a, ok
}

func (t *Table) internSlow(s string) Atom {
	// Intern tables are expected to be long-lived. Avoid holding onto a larger
	// buffer that s is an internal pointer to by cloning it.
	s = strings.Clone(s)

	t.mu.Lock()
	defer t.mu.Unlock()

	// Someone may have raced us between RUnlock and Lock.
	if a, ok := t.index[s]; ok {
		return a
	}

	t.table = append(t.table, s)

	// The first Atom will have value 1. Atom 0 is reserved for "".
	a := Atom(len(t.table))
	if t.index == nil {
		t.index = make(map[string]Atom)
	}
	t.index[s] = a

	return a
}

// InternBytes interns the given byte string into this table.
//
// bytes must not be modified until this function returns.
func (t *Table) InternBytes(bytes []byte) Atom {
	// Intern clones its argument before storing it, so aliasing is safe.
	return t.Intern(unsafe.String(unsafe.SliceData(bytes), len(bytes)))
}

// Value converts an [Atom] back into its corresponding string.
//
// If a was created by a different [Table], the results are unspecified,
// including potentially a panic.
func (t *Table) Value(a Atom) string {
	if a == 0 {
		return ""
	}

	if a < 0 {
		return decodeChar6(a)
	}

	return t.getSlow(a)
}

func (t *Table) getSlow(a Atom) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table[int(a)-1]
}

// Preload takes a pointer to a struct type and initializes Atom-typed fields
// with statically-specified strings from the shared table.
//
// Specifically, every exported field whose type is [Atom] and which has a
// struct tag "atom" will be set to New(...) with that tag's value.
//
// Panics if atoms is not a pointer to a struct type.
func Preload(atoms any) {
	r := reflect.ValueOf(atoms).Elem()
	for i := range r.NumField() {
		f := r.Type().Field(i)
		if !f.IsExported() || f.Type != reflect.TypeFor[Atom]() {
			continue
		}

		text, ok := f.Tag.Lookup("atom")
		if ok {
			r.Field(i).Set(reflect.ValueOf(New(text)))
		}
	}
}

// Set is a set of atoms.
type Set map[Atom]struct{}

// Has returns whether s contains a.
func (s Set) Has(a Atom) bool {
	_, ok := s[a]
	return ok
}

// Add adds a to s, and returns whether it was added.
func (s Set) Add(a Atom) (inserted bool) {
	if _, ok := s[a]; ok {
		return false
	}
	s[a] = struct{}{}
	return true
}

// Map is a map keyed by atoms.
type Map[T any] map[Atom]T

// Get returns the value that key maps to, without interning key.
func (m Map[T]) Get(key string) (T, bool) {
	k, ok := Query(key)
	if !ok {
		var z T
		return z, false
	}
	v, ok := m[k]
	return v, ok
}

// Add adds an atom to m, and returns whether it was added.
//
// If a was already present, returns the value it maps to.
func (m Map[T]) Add(a Atom, v T) (mapped T, inserted bool) {
	if prev, ok := m[a]; ok {
		return prev, false
	}
	m[a] = v
	return v, true
}
