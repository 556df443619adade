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
	"github.com/maraisr/hdx/parser"
	"github.com/maraisr/hdx/writer"
)

// Value is a node that can fill a slot of a shorthand.
//
// When choosing the shortest way to write a shorthand, two values are the
// same if they are == or if they write the same text under the writer's
// policy.
type Value interface {
	comparable
	writer.Writable
}

func same[T Value](w writer.Writer, a, b T) bool {
	return a == b || writer.Same(w, a, b)
}

// LogicalSides is a shorthand over the start and end of one logical axis,
// such as border-block-width.
type LogicalSides[T Value] struct {
	Start, End T
}

// ParseLogicalSides parses one or two values. A single value fills both
// sides.
func ParseLogicalSides[T Value](p *parser.Parser, value parser.Func[T]) (LogicalSides[T], error) {
	vs, err := parseValues(p, 2, value)
	if err != nil {
		return LogicalSides[T]{}, err
	}
	return LogicalSides[T]{Start: vs[0], End: vs[len(vs)-1]}, nil
}

// WriteCSS implements [writer.Writable].
func (s LogicalSides[T]) WriteCSS(w writer.Writer) error {
	err := s.Start.WriteCSS(w)
	if same(w, s.Start, s.End) {
		return err
	}
	_ = w.WriteWhitespace()
	return s.End.WriteCSS(w)
}

// Rect is a shorthand over the four physical sides of a box, such as margin.
type Rect[T Value] struct {
	Top, Right, Bottom, Left T
}

// Expand fills a Rect from one to four values, in the order they are written
// in CSS.
//
// Panics if given no values or more than four.
func Expand[T Value](vs ...T) Rect[T] {
	switch len(vs) {
	case 1:
		return Rect[T]{vs[0], vs[0], vs[0], vs[0]}
	case 2:
		return Rect[T]{vs[0], vs[1], vs[0], vs[1]}
	case 3:
		return Rect[T]{vs[0], vs[1], vs[2], vs[1]}
	case 4:
		return Rect[T]{vs[0], vs[1], vs[2], vs[3]}
	default:
		panic("hdx/grammar: a rect has between one and four values")
	}
}

// ParseRect parses one to four values and expands them onto the sides of a
// box.
func ParseRect[T Value](p *parser.Parser, value parser.Func[T]) (Rect[T], error) {
	vs, err := parseValues(p, 4, value)
	if err != nil {
		return Rect[T]{}, err
	}
	return Expand(vs...), nil
}

// Sides returns the four sides in top, right, bottom, left order.
func (r Rect[T]) Sides() [4]T {
	return [...]T{r.Top, r.Right, r.Bottom, r.Left}
}

// Collapse returns the shortest list of values that [Expand]s back to r.
func (r Rect[T]) Collapse() []T {
	return r.collapse(func(a, b T) bool { return a == b })
}

func (r Rect[T]) collapse(eq func(a, b T) bool) []T {
	sides := r.Sides()
	n := 4
	if eq(r.Left, r.Right) {
		n = 3
		if eq(r.Bottom, r.Top) {
			n = 2
			if eq(r.Right, r.Top) {
				n = 1
			}
		}
	}
	return sides[:n]
}

// WriteCSS implements [writer.Writable].
func (r Rect[T]) WriteCSS(w writer.Writer) error {
	var err error
	eq := func(a, b T) bool { return same(w, a, b) }
	for i, v := range r.collapse(eq) {
		if i > 0 {
			_ = w.WriteWhitespace()
		}
		err = v.WriteCSS(w)
	}
	return err
}

// parseValues parses between one and n space-separated values, stopping
// early at the end of the enclosing value.
func parseValues[T any](p *parser.Parser, n int, value parser.Func[T]) ([]T, error) {
	var vs []T
	for len(vs) < n && (len(vs) == 0 || !p.AtValueEnd()) {
		v, err := value(p)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}
