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

// Package writer serializes CSS trees back to text.
//
// Every node implements [Writable] in terms of the primitives of [Writer]
// alone, so the output policy chosen in [Options] applies uniformly to a
// whole tree: [Canonical] keeps newlines, indentation and every redundant
// construct, while [Minified] collapses trivia to the syntactic minimum and
// drops whatever does not change the meaning of the stylesheet.
package writer

import "strings"

// Writable is implemented by every node that can be written as CSS.
type Writable interface {
	WriteCSS(w Writer) error
}

// Writer is the sink nodes write themselves to.
//
// Errors are sticky: once a write fails, every later call returns the same
// error and writes nothing. Nodes may therefore check only the result of
// their last write.
type Writer interface {
	// WriteString and WriteByte emit literal text.
	WriteString(s string) error
	WriteByte(c byte) error

	// WriteWhitespace emits one space between two tokens.
	//
	// When minifying, the space is only emitted if the tokens on either side
	// of it would otherwise lex as a single token.
	WriteWhitespace() error

	// WriteNewline ends the current line. It does nothing when minifying.
	WriteNewline() error

	// Indent and Dedent adjust the indentation of subsequent lines. They do
	// nothing when minifying.
	Indent()
	Dedent()

	// CanOutput returns whether the constructs described by opt should be
	// written.
	CanOutput(opt Option) bool

	// Options returns the policy this writer applies.
	Options() Options
}

// String writes node to a string under the given options.
//
// Writing to a string cannot fail, so errors from node itself are returned
// with whatever text was produced up to that point.
func String(node Writable, options Options) (string, error) {
	var out strings.Builder
	p := New(&out, options)
	err := node.WriteCSS(p)
	if err == nil {
		err = p.Flush()
	}
	return out.String(), err
}

// CanonicalString is a shorthand for String(node, Canonical).
func CanonicalString(node Writable) string {
	s, _ := String(node, Canonical)
	return s
}

// MinifiedString is a shorthand for String(node, Minified).
func MinifiedString(node Writable) string {
	s, _ := String(node, Minified)
	return s
}

// Same returns whether a and b write the same text under the policy of w.
//
// Shorthands use this to merge values that only differ in ways the policy
// discards, such as the unit of a zero length when minifying.
func Same(w Writer, a, b Writable) bool {
	sa, errA := String(a, w.Options())
	sb, errB := String(b, w.Options())
	return errA == nil && errB == nil && sa == sb
}
