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

package source

import "fmt"

// Span is a half-open byte range [Start, End) into some source text.
type Span struct {
	Start, End int
}

// Spanned is a node paired with the span of the text it was parsed from.
type Spanned[T any] struct {
	Node T
	Span Span
}

// Wrap pairs node with span.
func Wrap[T any](node T, span Span) Spanned[T] {
	return Spanned[T]{Node: node, Span: span}
}

// Len returns the length of this span, in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns whether this span covers no text.
func (s Span) IsEmpty() bool {
	return s.Start >= s.End
}

// Contains returns whether offset falls inside this span.
func (s Span) Contains(offset int) bool {
	return s.Start <= offset && offset < s.End
}

// Cover returns the smallest span that covers s and every span in others.
func (s Span) Cover(others ...Span) Span {
	for _, o := range others {
		s.Start = min(s.Start, o.Start)
		s.End = max(s.End, o.End)
	}
	return s
}

// Text returns the text this span covers in src.
func (s Span) Text(src string) string {
	return src[s.Start:s.End]
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	return fmt.Sprintf("[%d:%d]", s.Start, s.End)
}
