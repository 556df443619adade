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
	"github.com/maraisr/hdx/internal/interval"
	"github.com/maraisr/hdx/source"
	"github.com/maraisr/hdx/writer"
)

// Index maps byte offsets in a stylesheet's source to the nodes parsed from
// them, for tools that need to know what is under a cursor.
//
// The indexed nodes are rules, selectors, declarations, media queries and
// media features.
type Index struct {
	nodes interval.Nesting[int, writer.Writable]
}

// NewIndex indexes every node of sheet.
func NewIndex(sheet StyleSheet) *Index {
	ix := new(Index)
	ix.rules(sheet.Rules)
	return ix
}

// At returns the innermost node whose span contains offset.
func (ix *Index) At(offset int) (source.Spanned[writer.Writable], bool) {
	e, ok := ix.nodes.Innermost(offset)
	if !ok {
		return source.Spanned[writer.Writable]{}, false
	}
	return source.Wrap(e.Value, source.Span{Start: e.Start, End: e.End + 1}), true
}

// rules inserts rules and their children. Parents are inserted before
// children, which is the order the nesting collection requires.
func (ix *Index) rules(rules []source.Spanned[Rule]) {
	for _, r := range rules {
		ix.insert(r.Span, r.Node)
		switch rule := r.Node.(type) {
		case StyleRule:
			ix.insert(Raw(rule.Selector).Span(), rule.Selector)
			for _, d := range rule.Declarations {
				ix.insert(d.Span, d.Node)
			}
		case MediaRule:
			for _, q := range rule.Queries {
				ix.insert(q.Span, q.Node)
				for _, f := range q.Node.Condition.Features {
					ix.insert(f.Span, f.Node)
				}
			}
			ix.rules(rule.Rules)
		}
	}
}

func (ix *Index) insert(span source.Span, node writer.Writable) {
	if span.IsEmpty() {
		return
	}
	// Spans are half-open, the collection's intervals are closed.
	ix.nodes.Insert(span.Start, span.End-1, node)
}
